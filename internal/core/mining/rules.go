package mining

import "fmt"

// DeriveRules splits every frequent itemset of size >= 2 into each
// antecedent -> consequent pair and keeps those whose confidence
// support(itemset) / support(antecedent) is >= minConfidence.
//
// minConfidence is taken literally: above 1 yields nothing, <= 0 yields every
// split. An antecedent with support 0 (only kept when minSupport <= 0) gives
// confidence 0 rather than 0/0. Output order is deterministic: level, then itemset in lexicographic
// order, then antecedent size, then antecedent in combination order.
//
// DeriveRules panics if an antecedent is absent from t. Every subset of a
// frequent itemset was itself frequent at its level, so a missing one means
// the table was not produced by Mine.
func DeriveRules(t Table, minConfidence float64) []Rule {
	var rules []Rule
	for _, k := range t.Levels() {
		if k < 2 {
			continue
		}
		for _, fi := range t[k].Sorted() {
			rules = appendRules(rules, t, fi, minConfidence)
		}
	}
	return rules
}

func appendRules(rules []Rule, t Table, fi FrequentItemset, minConfidence float64) []Rule {
	n := len(fi.Items)
	for size := 1; size < n; size++ {
		forEachCombination(n, size, func(idx []int) {
			antecedent := make(Itemset, size)
			for i, p := range idx {
				antecedent[i] = fi.Items[p]
			}

			base, ok := t.Support(antecedent)
			if !ok {
				panic(fmt.Sprintf("mining: antecedent {%s} of {%s} missing from level %d", antecedent, fi.Items, size))
			}

			confidence := 0.0
			if base > 0 {
				confidence = float64(fi.Support) / float64(base)
			}
			if confidence >= minConfidence {
				rules = append(rules, Rule{
					Antecedent: antecedent,
					Consequent: fi.Items.Without(antecedent),
					Confidence: confidence,
				})
			}
		})
	}
	return rules
}

// forEachCombination calls fn with every r-element index combination of
// 0..n-1 in lexicographic order. fn must not retain idx.
func forEachCombination(n, r int, fn func(idx []int)) {
	if r <= 0 || r > n {
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)

		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
