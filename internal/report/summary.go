package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const rule = "============================================================"

type Printer struct {
	Out   io.Writer
	Color bool
}

func NewPrinter(out io.Writer, useColor bool) *Printer {
	return &Printer{Out: out, Color: useColor}
}

// Banner opens the run.
func (p *Printer) Banner(baseURL string) {
	fmt.Fprintln(p.Out, rule)
	fmt.Fprintln(p.Out, "🚀 Status API probe run started")
	fmt.Fprintf(p.Out, "🌐 Testing base URL: %s\n", baseURL)
	fmt.Fprintln(p.Out, rule)
}

// Summary prints one line per probe, the passed/total count and a verdict.
func (p *Printer) Summary(l *Ledger) {
	fmt.Fprintln(p.Out, rule)
	fmt.Fprintln(p.Out, "📊 TEST RESULTS SUMMARY")
	fmt.Fprintln(p.Out, rule)

	for _, e := range l.Entries() {
		fmt.Fprintf(p.Out, "%s: %s\n", HumanName(e.Key), p.marker(e.Result.Success))
	}

	fmt.Fprintf(p.Out, "\nOverall: %d/%d tests passed\n", l.Passed(), l.Total())
	if l.OK() {
		fmt.Fprintln(p.Out, p.paint(color.Green, "🎉 All probes PASSED!"))
	} else {
		fmt.Fprintln(p.Out, p.paint(color.Yellow, "⚠️  Some probes FAILED!"))
	}
}

func (p *Printer) marker(ok bool) string {
	if ok {
		return p.paint(color.Green, "✅ PASS")
	}
	return p.paint(color.Red, "❌ FAIL")
}

func (p *Printer) paint(c color.Color, s string) string {
	if !p.Color {
		return s
	}
	return c.Sprint(s)
}

// HumanName turns a ledger key such as "root_endpoint" into "Root Endpoint".
func HumanName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
