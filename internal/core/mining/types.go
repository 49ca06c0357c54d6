package mining

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Item is a single label inside a transaction. Labels are ordered byte-wise.
type Item string

// Itemset is a canonical (sorted, duplicate-free) set of items.
// Always build one with NewItemset so that two itemsets assembled from
// different orderings compare and hash equal.
type Itemset []Item

// NewItemset returns the canonical form of items.
func NewItemset(items ...Item) Itemset {
	if len(items) == 0 {
		return Itemset{}
	}
	out := make(Itemset, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	// Collapse duplicates in place.
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}

// Key returns a map key that is identical for equal itemsets and distinct
// otherwise. Each label is length-prefixed, so labels may hold any byte.
func (s Itemset) Key() string {
	var b strings.Builder
	for _, it := range s {
		b.WriteString(strconv.Itoa(len(it)))
		b.WriteByte(':')
		b.WriteString(string(it))
	}
	return b.String()
}

// Len returns k, the number of items.
func (s Itemset) Len() int { return len(s) }

// Equal reports whether both itemsets hold the same items.
func (s Itemset) Equal(other Itemset) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Less orders itemsets lexicographically, shorter prefix first.
func (s Itemset) Less(other Itemset) bool {
	for i := 0; i < len(s) && i < len(other); i++ {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return len(s) < len(other)
}

// Without returns the canonical itemset s minus every item in remove.
func (s Itemset) Without(remove Itemset) Itemset {
	drop := make(map[Item]struct{}, len(remove))
	for _, it := range remove {
		drop[it] = struct{}{}
	}
	out := make(Itemset, 0, len(s))
	for _, it := range s {
		if _, ok := drop[it]; !ok {
			out = append(out, it)
		}
	}
	return out
}

// Strings returns the labels as plain strings.
func (s Itemset) Strings() []string {
	out := make([]string, len(s))
	for i, it := range s {
		out[i] = string(it)
	}
	return out
}

// String renders the itemset as "a, b, c".
func (s Itemset) String() string {
	return strings.Join(s.Strings(), ", ")
}

// Transaction is an identifier paired with a set of distinct items.
// It is immutable once constructed.
type Transaction struct {
	ID    string
	items map[Item]struct{}
}

// NewTransaction builds a transaction; repeated items collapse.
func NewTransaction(id string, items ...Item) Transaction {
	set := make(map[Item]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return Transaction{ID: id, items: set}
}

// Len returns the number of distinct items.
func (t Transaction) Len() int { return len(t.items) }

// Has reports whether the transaction holds item.
func (t Transaction) Has(item Item) bool {
	_, ok := t.items[item]
	return ok
}

// Contains reports whether every item of s is in the transaction.
func (t Transaction) Contains(s Itemset) bool {
	if len(s) > len(t.items) {
		return false
	}
	for _, it := range s {
		if _, ok := t.items[it]; !ok {
			return false
		}
	}
	return true
}

// Items returns the transaction's items in canonical order.
func (t Transaction) Items() Itemset {
	out := make(Itemset, 0, len(t.items))
	for it := range t.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TransactionSet maps a transaction ID to its transaction.
type TransactionSet map[string]Transaction

// Add inserts a transaction, replacing any previous one with the same ID.
func (ts TransactionSet) Add(t Transaction) {
	ts[t.ID] = t
}

// FrequentItemset is an itemset together with its exact support count.
type FrequentItemset struct {
	Items   Itemset
	Support int
}

// Rule is an association rule antecedent -> consequent.
// Antecedent and Consequent are disjoint, non-empty and together form a
// frequent itemset.
type Rule struct {
	Antecedent Itemset
	Consequent Itemset
	Confidence float64
}

// String renders the rule as "a, b -> c (0.67)".
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s (%.2f)", r.Antecedent, r.Consequent, r.Confidence)
}
