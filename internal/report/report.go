// Package report turns a mining run into a presentation-ready view and
// renders it as text, JSON or YAML.
//
// The view is what the HTTP API returns and what the CLI prints:
//   - every level of the frequent-itemset table, itemsets in lexicographic order
//   - LastLevel, the highest level holding at least one itemset
//   - every rule with its confidence rounded for display
package report

import (
	"github.com/aevon-lab/basket/internal/core/mining"
	"github.com/shopspring/decimal"
)

// confidencePlaces is the rounding applied to displayed confidences.
const confidencePlaces = 4

// Meta describes the run a report belongs to.
type Meta struct {
	RunID         string
	Dataset       string
	MinSupport    float64
	MinConfidence float64
	Transactions  int
}

// Report is the rendered result of one mining run.
type Report struct {
	RunID         string      `json:"run_id" yaml:"run_id"`
	Dataset       string      `json:"dataset,omitempty" yaml:"dataset,omitempty"`
	MinSupport    float64     `json:"min_support" yaml:"min_support"`
	MinConfidence float64     `json:"min_confidence" yaml:"min_confidence"`
	Transactions  int         `json:"transactions" yaml:"transactions"`
	LastLevel     int         `json:"last_level" yaml:"last_level"`
	Levels        []LevelView `json:"levels" yaml:"levels"`
	Rules         []RuleView  `json:"rules" yaml:"rules"`
}

// LevelView lists the frequent itemsets of one size.
type LevelView struct {
	Level    int           `json:"level" yaml:"level"`
	Itemsets []ItemsetView `json:"itemsets" yaml:"itemsets"`
}

// ItemsetView is one frequent itemset with its support count.
type ItemsetView struct {
	Items   []string `json:"items" yaml:"items"`
	Support int      `json:"support" yaml:"support"`
}

// RuleView is one association rule. Display reads "a, b -> c".
type RuleView struct {
	Antecedent []string        `json:"antecedent" yaml:"antecedent"`
	Consequent []string        `json:"consequent" yaml:"consequent"`
	Confidence decimal.Decimal `json:"confidence" yaml:"confidence"`
	Display    string          `json:"display" yaml:"display"`
}

// Build assembles a report. Levels keep the table's trailing empty level so
// consumers see where mining stopped.
func Build(meta Meta, table mining.Table, rules []mining.Rule) *Report {
	r := &Report{
		RunID:         meta.RunID,
		Dataset:       meta.Dataset,
		MinSupport:    meta.MinSupport,
		MinConfidence: meta.MinConfidence,
		Transactions:  meta.Transactions,
		LastLevel:     table.LastPopulatedLevel(),
		Levels:        make([]LevelView, 0, len(table)),
		Rules:         make([]RuleView, 0, len(rules)),
	}

	for _, k := range table.Levels() {
		sorted := table[k].Sorted()
		lv := LevelView{Level: k, Itemsets: make([]ItemsetView, 0, len(sorted))}
		for _, fi := range sorted {
			lv.Itemsets = append(lv.Itemsets, ItemsetView{Items: fi.Items.Strings(), Support: fi.Support})
		}
		r.Levels = append(r.Levels, lv)
	}

	for _, rule := range rules {
		r.Rules = append(r.Rules, RuleView{
			Antecedent: rule.Antecedent.Strings(),
			Consequent: rule.Consequent.Strings(),
			Confidence: decimal.NewFromFloat(rule.Confidence).Round(confidencePlaces),
			Display:    rule.Antecedent.String() + " -> " + rule.Consequent.String(),
		})
	}
	return r
}

// ItemsetCount returns the number of frequent itemsets over all levels.
func (r *Report) ItemsetCount() int {
	n := 0
	for _, lv := range r.Levels {
		n += len(lv.Itemsets)
	}
	return n
}
