package mining

import "sort"

// Level holds every frequent itemset of one size k, keyed by Itemset.Key.
type Level map[string]FrequentItemset

// Sorted returns the level's itemsets in lexicographic order.
func (l Level) Sorted() []FrequentItemset {
	out := make([]FrequentItemset, 0, len(l))
	for _, fi := range l {
		out = append(out, fi)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Items.Less(out[j].Items) })
	return out
}

// Table maps a level k (starting at 1) to the frequent itemsets of size k.
//
// A table produced by Mine always has contiguous keys 1..L where level L is
// empty and levels 1..L-1 are not.
type Table map[int]Level

// Levels returns the table's level numbers in ascending order.
func (t Table) Levels() []int {
	out := make([]int, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Support returns the stored support of s and whether s is in the table.
func (t Table) Support(s Itemset) (int, bool) {
	level, ok := t[len(s)]
	if !ok {
		return 0, false
	}
	fi, ok := level[s.Key()]
	if !ok {
		return 0, false
	}
	return fi.Support, true
}

// LastPopulatedLevel returns the highest level that holds at least one
// itemset, or 0 when nothing met the support threshold.
func (t Table) LastPopulatedLevel() int {
	last := 0
	for k, level := range t {
		if len(level) > 0 && k > last {
			last = k
		}
	}
	return last
}

// Count returns the total number of frequent itemsets across all levels.
func (t Table) Count() int {
	n := 0
	for _, level := range t {
		n += len(level)
	}
	return n
}
