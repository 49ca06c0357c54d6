package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ANSI color codes for confidence display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

var (
	strongConfidence = decimal.NewFromFloat(0.8)
	fairConfidence   = decimal.NewFromFloat(0.5)
)

// ParseFormat normalizes a --format value.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want text, json or yaml)", s)
	}
}

// IsColorEnabled reports whether ANSI codes should be written to f.
// NO_COLOR disables colour regardless of the terminal.
func IsColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// Write renders r in the given format.
func Write(w io.Writer, format string, r *Report, color bool) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return WriteText(w, r, color)
	}
}

// WriteText prints every level then every rule in a console layout:
//
//	Frequent 2-itemsets:
//	bread, milk   -> Support: 3
//
//	Association Rules with Confidence:
//	bread -> milk : Confidence = 0.75
func WriteText(w io.Writer, r *Report, color bool) error {
	var sb strings.Builder

	for _, lv := range r.Levels {
		fmt.Fprintf(&sb, "Frequent %d-itemsets:\n", lv.Level)
		for _, is := range lv.Itemsets {
			fmt.Fprintf(&sb, "%s   -> Support: %d\n", strings.Join(is.Items, ", "), is.Support)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Association Rules with Confidence:\n")
	if len(r.Rules) == 0 {
		sb.WriteString("(none)\n")
	}
	for _, rule := range r.Rules {
		conf := rule.Confidence.StringFixed(2)
		if color {
			conf = confidenceColor(rule.Confidence) + conf + colorReset
		}
		fmt.Fprintf(&sb, "%s : Confidence = %s\n", rule.Display, conf)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func confidenceColor(c decimal.Decimal) string {
	switch {
	case c.GreaterThanOrEqual(strongConfidence):
		return colorGreen
	case c.GreaterThanOrEqual(fairConfidence):
		return colorYellow
	default:
		return colorGray
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report json: %w", err)
	}
	return nil
}

// WriteYAML writes r as YAML.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report yaml: %w", err)
	}
	return enc.Close()
}
