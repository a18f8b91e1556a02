package progress

import (
	"fmt"
	"io"
	"strings"

	"domaincheck/internal/core/domain"
)

// Reporter imprime el progreso por consola: una línea inmediata por par
// chequeado (suprimiendo taken para reducir ruido) y un resumen final.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Start(words, tlds int) {
	fmt.Fprintf(r.out, "\nChecking %d words × %d TLDs = %d domains\n\n", words, tlds, words*tlds)
	fmt.Fprintf(r.out, "%-30s %s\n", "Domain", "Status")
	fmt.Fprintln(r.out, strings.Repeat("─", 45))
}

func (r *Reporter) Report(result domain.CheckResult) {
	switch result.Verdict.Bucket() {
	case domain.BucketAvailable:
		fmt.Fprintf(r.out, "✓ AVAILABLE  %s\n", result.Domain)
	case domain.BucketTaken:
		// Suprimido: la mayoría de los dominios están tomados.
	default:
		fmt.Fprintf(r.out, "? %-10s %s\n", result.Verdict.String(), result.Domain)
	}
}

func (r *Reporter) Summary(tally domain.RunTally, recordFile string) {
	fmt.Fprintln(r.out, "\n"+strings.Repeat("═", 45))
	fmt.Fprintf(r.out, "Checked:   %d\n", tally.Checked)
	fmt.Fprintf(r.out, "Available: %d\n", len(tally.Available))
	fmt.Fprintf(r.out, "Taken:     %d\n", len(tally.Taken))
	fmt.Fprintf(r.out, "Unknown:   %d\n", len(tally.Unknown))

	if len(tally.Available) > 0 {
		fmt.Fprintln(r.out, "\n── Available domains ──────────────────────")
		for _, d := range tally.Available {
			fmt.Fprintf(r.out, "  ✓ %s\n", d)
		}
	}

	if recordFile != "" {
		fmt.Fprintf(r.out, "\nResults saved to %s\n", recordFile)
	}
}
