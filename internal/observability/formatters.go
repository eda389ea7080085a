package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/rephrase-master/internal/entitlement"
	"github.com/jonathan/rephrase-master/internal/rephrase"
	"github.com/jonathan/rephrase-master/internal/sharing"
	"github.com/jonathan/rephrase-master/internal/styles"
)

const boxWidth = 60

// Printer writes framed summaries for the CLI.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox frames content under title. Lines are not wrapped.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s\n", title)
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s\n", line)
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDelivery shows generated share content and where it goes.
func (p *Printer) PrintDelivery(d sharing.Delivery) {
	var sb strings.Builder
	sb.WriteString(d.Content)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Length:   %d characters\n", len([]rune(d.Content))))
	sb.WriteString(fmt.Sprintf("Delivery: %s", d.Method))
	if d.URL != "" {
		sb.WriteString(fmt.Sprintf("\nURL:      %s", d.URL))
	}
	if d.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n\n%s", d.Hint))
	}

	p.printBox(fmt.Sprintf("SHARE: %s", strings.ToUpper(string(d.Platform))), sb.String())
}

// PrintRephrased shows one or more style results.
func (p *Printer) PrintRephrased(results []rephrase.Result) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for i, r := range results {
		name := string(r.Style)
		if entry, ok := styles.Lookup(r.Style); ok {
			name = entry.Name
		}
		sb.WriteString(fmt.Sprintf("[%s]\n%s", name, r.Text))
		if i < len(results)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("REPHRASED", sb.String())
}

// PrintEntitlement summarizes the tier and effective share options.
func (p *Printer) PrintEntitlement(snap entitlement.Snapshot) {
	tier := "Free"
	if snap.IsPro {
		tier = "Pro"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tier:     %s\n", tier))
	sb.WriteString(fmt.Sprintf("Hashtags: %s\n", onOff(snap.EffectiveTags())))
	sb.WriteString(fmt.Sprintf("LP link:  %s", onOff(snap.EffectiveLink())))
	if !snap.IsPro {
		sb.WriteString("\n\nUpgrade to Pro to remove hashtags and the link.")
	}

	p.printBox("ENTITLEMENT", sb.String())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
