package postgres

import (
	"fmt"
	"sort"

	"github.com/aevon-lab/basket/internal/core/mining"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanItemRow scans one (transaction_id, item) row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanItemRow(row scanner) (string, mining.Item, error) {
	var id, item string
	if err := row.Scan(&id, &item); err != nil {
		return "", "", fmt.Errorf("failed to scan transaction row: %w", err)
	}
	return id, mining.Item(item), nil
}

// sortedTransactions returns ts ordered by ID so that writes happen in a
// stable order.
func sortedTransactions(ts mining.TransactionSet) []mining.Transaction {
	out := make([]mining.Transaction, 0, len(ts))
	for _, t := range ts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
