// Package loader turns CSV exports of point-of-sale records into a
// mining.TransactionSet.
//
// The expected layout has one row per line item (or per basket) with a
// transaction column and an items column; the items column may itself hold
// several labels joined by a separator. Rows are grouped by transaction and
// items are deduplicated, so a transaction is always a set.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aevon-lab/basket/internal/core/mining"
)

const (
	DefaultTransactionColumn = "TransactionNo"
	DefaultItemsColumn       = "Items"
	DefaultItemSeparator     = ","
	DefaultPercentage        = 100
)

var (
	// ErrInvalidPercentage is returned when the sample percentage is outside 1..100.
	ErrInvalidPercentage = errors.New("percentage must be between 1 and 100")

	// ErrMissingColumn is returned when the header lacks a configured column.
	ErrMissingColumn = errors.New("required column missing from header")
)

// Options controls how records are read and sampled.
type Options struct {
	TransactionColumn string
	ItemsColumn       string
	ItemSeparator     string

	// Percentage keeps only the first Percentage% of data rows.
	Percentage int
}

// DefaultOptions returns the layout of the bakery exports.
func DefaultOptions() Options {
	return Options{
		TransactionColumn: DefaultTransactionColumn,
		ItemsColumn:       DefaultItemsColumn,
		ItemSeparator:     DefaultItemSeparator,
		Percentage:        DefaultPercentage,
	}
}

func (o Options) normalized() Options {
	n := o
	if n.TransactionColumn == "" {
		n.TransactionColumn = DefaultTransactionColumn
	}
	if n.ItemsColumn == "" {
		n.ItemsColumn = DefaultItemsColumn
	}
	if n.ItemSeparator == "" {
		n.ItemSeparator = DefaultItemSeparator
	}
	if n.Percentage == 0 {
		n.Percentage = DefaultPercentage
	}
	return n
}

// Stats describes one load.
type Stats struct {
	RowsRead     int `json:"rows_read"`
	RowsUsed     int `json:"rows_used"`
	Transactions int `json:"transactions"`
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts Options) (mining.TransactionSet, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open transactions file: %w", err)
	}
	defer f.Close()

	return Load(f, opts)
}

// Load reads a header row followed by data rows from r.
//
// Only the first floor(rows * Percentage / 100) data rows are used. Labels are
// trimmed, empty labels are dropped and transactions left without items are
// skipped.
func Load(r io.Reader, opts Options) (mining.TransactionSet, Stats, error) {
	opts = opts.normalized()
	if opts.Percentage < 1 || opts.Percentage > 100 {
		return nil, Stats{}, fmt.Errorf("%w: got %d", ErrInvalidPercentage, opts.Percentage)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return mining.TransactionSet{}, Stats{}, nil
	}
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read csv header: %w", err)
	}

	txCol, err := columnIndex(header, opts.TransactionColumn)
	if err != nil {
		return nil, Stats{}, err
	}
	itemsCol, err := columnIndex(header, opts.ItemsColumn)
	if err != nil {
		return nil, Stats{}, err
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read csv records: %w", err)
	}

	stats := Stats{RowsRead: len(records)}
	keep := len(records) * opts.Percentage / 100
	stats.RowsUsed = keep

	grouped := make(map[string][]mining.Item)
	for _, rec := range records[:keep] {
		if txCol >= len(rec) || itemsCol >= len(rec) {
			continue
		}
		id := strings.TrimSpace(rec[txCol])
		if id == "" {
			continue
		}
		for _, label := range strings.Split(rec[itemsCol], opts.ItemSeparator) {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			grouped[id] = append(grouped[id], mining.Item(label))
		}
	}

	ts := make(mining.TransactionSet, len(grouped))
	for id, items := range grouped {
		ts.Add(mining.NewTransaction(id, items...))
	}
	stats.Transactions = len(ts)

	return ts, stats, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		// Excel exports prefix the first header with a UTF-8 BOM.
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}
