package mining

import "sort"

// Mine runs the level-wise (Apriori) search over ts and returns every itemset
// whose occurrence count is >= minSupport, grouped by size.
//
// minSupport is an absolute count, not a fraction. It is compared literally:
// a threshold above every count yields {1: {}}. The returned table always ends
// with exactly one empty level (see Table).
func Mine(ts TransactionSet, minSupport float64) Table {
	idx := newItemIndex(ts)

	table := Table{1: frequentSingles(idx, minSupport)}

	for k := 2; len(table[k-1]) > 0; k++ {
		candidates := generateCandidates(table[k-1].Sorted(), k)
		level := make(Level)
		for _, c := range candidates {
			if support := idx.support(c); meets(support, minSupport) {
				level[c.Key()] = FrequentItemset{Items: c, Support: support}
			}
		}
		table[k] = level
	}
	return table
}

func meets(support int, minSupport float64) bool {
	return float64(support) >= minSupport
}

func frequentSingles(idx *itemIndex, minSupport float64) Level {
	level := make(Level)
	for item, postings := range idx.postings {
		if meets(len(postings), minSupport) {
			s := Itemset{item}
			level[s.Key()] = FrequentItemset{Items: s, Support: len(postings)}
		}
	}
	return level
}

// generateCandidates joins size-(k-1) itemsets that share their first k-2
// items and differ in the last one. prev must be sorted lexicographically;
// the result is deduplicated and sorted.
func generateCandidates(prev []FrequentItemset, k int) []Itemset {
	prefix := k - 2
	seen := make(map[string]Itemset)

	for i := 0; i < len(prev); i++ {
		a := prev[i].Items
		for j := i + 1; j < len(prev); j++ {
			b := prev[j].Items
			if !samePrefix(a, b, prefix) {
				// Sorted input: no later b can share a's prefix either.
				break
			}
			if a[prefix] == b[prefix] {
				continue
			}
			joined := make([]Item, 0, k)
			joined = append(joined, a...)
			joined = append(joined, b[prefix])
			c := NewItemset(joined...)
			seen[c.Key()] = c
		}
	}

	out := make([]Itemset, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func samePrefix(a, b Itemset, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// itemIndex is an inverted index item -> positions of the transactions that
// hold it. Support counting only scans the postings of a candidate's rarest
// item; the count is still exact.
type itemIndex struct {
	txs      []Transaction
	postings map[Item][]int
}

func newItemIndex(ts TransactionSet) *itemIndex {
	idx := &itemIndex{
		txs:      make([]Transaction, 0, len(ts)),
		postings: make(map[Item][]int),
	}
	for _, t := range ts {
		if t.Len() == 0 {
			continue
		}
		pos := len(idx.txs)
		idx.txs = append(idx.txs, t)
		for item := range t.items {
			idx.postings[item] = append(idx.postings[item], pos)
		}
	}
	return idx
}

// support counts the transactions that are a superset of c.
func (idx *itemIndex) support(c Itemset) int {
	if len(c) == 0 {
		return len(idx.txs)
	}
	rarest := idx.postings[c[0]]
	for _, item := range c[1:] {
		p := idx.postings[item]
		if len(p) < len(rarest) {
			rarest = p
		}
	}

	count := 0
	for _, pos := range rarest {
		if idx.txs[pos].Contains(c) {
			count++
		}
	}
	return count
}
