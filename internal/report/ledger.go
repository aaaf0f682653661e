package report

import (
	"github.com/hamed0406/statusprobe/internal/probe"
)

type Entry struct {
	Key    string
	Result probe.CheckResult
}

// Ledger records probe outcomes in the order they were written.
type Ledger struct {
	entries []Entry
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Record(key string, r probe.CheckResult) {
	l.entries = append(l.entries, Entry{Key: key, Result: r})
}

func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Passed() int {
	n := 0
	for _, e := range l.entries {
		if e.Result.Success {
			n++
		}
	}
	return n
}

func (l *Ledger) Total() int { return len(l.entries) }

// OK is true when every recorded probe succeeded.
func (l *Ledger) OK() bool { return l.Passed() == l.Total() }

func (l *Ledger) ExitCode() int {
	if l.OK() {
		return 0
	}
	return 1
}
