package postgres

// SQL queries for transaction storage.

const (
	// queryInsertItem writes one (transaction, item) pair.
	// The primary key keeps items distinct per transaction; duplicates affect 0 rows.
	queryInsertItem = `
		INSERT INTO transaction_items (dataset, transaction_id, item, loaded_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (dataset, transaction_id, item) DO NOTHING
	`

	// queryLoadTransactions reads a dataset ordered so rows of one transaction are adjacent.
	queryLoadTransactions = `
		SELECT transaction_id, item
		FROM transaction_items
		WHERE dataset = $1
		ORDER BY transaction_id ASC, item ASC
	`

	queryListDatasets = `
		SELECT
			dataset,
			COUNT(DISTINCT transaction_id),
			COUNT(DISTINCT item),
			MAX(loaded_at)
		FROM transaction_items
		GROUP BY dataset
		ORDER BY dataset ASC
	`

	queryDeleteDataset = `DELETE FROM transaction_items WHERE dataset = $1`
)
