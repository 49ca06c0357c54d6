package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aevon-lab/basket/internal/core/mining"
)

// ErrDatasetNotFound is returned when a dataset holds no transactions.
var ErrDatasetNotFound = errors.New("dataset not found")

// DatasetInfo summarises one stored dataset.
type DatasetInfo struct {
	Name         string    `json:"name"`
	Transactions int       `json:"transactions"`
	Items        int       `json:"items"`
	LoadedAt     time.Time `json:"loaded_at"`
}

// TransactionStore persists loaded transactions grouped into named datasets.
// Mined itemsets and rules are never stored; every analysis starts from the
// raw transactions.
type TransactionStore interface {
	// SaveTransactions adds ts to dataset and returns the number of new
	// (transaction, item) pairs written. Pairs already present are ignored.
	SaveTransactions(ctx context.Context, dataset string, ts mining.TransactionSet) (int, error)

	// ReplaceTransactions atomically swaps the contents of dataset for ts and
	// returns the number of pairs written. A failure keeps the old contents.
	ReplaceTransactions(ctx context.Context, dataset string, ts mining.TransactionSet) (int, error)

	// LoadTransactions returns every transaction of dataset.
	// Returns ErrDatasetNotFound when the dataset is empty or unknown.
	LoadTransactions(ctx context.Context, dataset string) (mining.TransactionSet, error)

	// ListDatasets returns all datasets ordered by name.
	ListDatasets(ctx context.Context) ([]DatasetInfo, error)

	// DeleteDataset removes every transaction of dataset.
	// Returns ErrDatasetNotFound when nothing was deleted.
	DeleteDataset(ctx context.Context, dataset string) error
}
