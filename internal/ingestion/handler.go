package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	httperr "github.com/aevon-lab/basket/internal/core/errors"
	"github.com/aevon-lab/basket/internal/core/mining"
	"github.com/aevon-lab/basket/internal/core/storage"
	"github.com/aevon-lab/basket/internal/loader"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidJSON     = "Invalid JSON body"
	msgInvalidCSV      = "Invalid CSV body"
	msgInvalidQuery    = "Invalid query parameter"
	msgInvalidDataset  = "Invalid dataset name"
	msgPersistFailed   = "Failed to persist transactions"
	msgListFailed      = "Failed to list datasets"
	msgDeleteFailed    = "Failed to delete dataset"
	msgDatasetNotFound = "Dataset not found"

	maxDatasetNameLen = 128
)

// uploadRequest is the JSON body of POST /v1/datasets/:dataset/transactions.
type uploadRequest struct {
	Transactions []uploadTransaction `json:"transactions" binding:"required"`
}

type uploadTransaction struct {
	ID    string   `json:"id"`
	Items []string `json:"items"`
}

// uploadResponse reports what one upload wrote.
type uploadResponse struct {
	LoadID       string        `json:"load_id"`
	Dataset      string        `json:"dataset"`
	Transactions int           `json:"transactions"`
	RowsWritten  int           `json:"rows_written"`
	Replaced     bool          `json:"replaced,omitempty"`
	CSV          *loader.Stats `json:"csv,omitempty"`
}

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestTransactionsHandler handles POST /v1/datasets/:dataset/transactions.
func (s *Service) IngestTransactionsHandler(c *gin.Context) {
	dataset, ierr := datasetParam(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	body, ierr := s.readBody(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(body))
		ingestionRejected.WithLabelValues("invalid_json").Inc()
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		})
		return
	}

	ts, ierr := toTransactionSet(req.Transactions)
	if ierr != nil {
		ingestionRejected.WithLabelValues("invalid_json").Inc()
		writeError(c, ierr)
		return
	}

	resp, ierr := s.persist(c.Request.Context(), dataset, ts, false, "json")
	if ierr != nil {
		writeError(c, ierr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// IngestCSVHandler handles POST /v1/datasets/:dataset/csv.
// Query parameters: percentage (1..100), replace (bool).
func (s *Service) IngestCSVHandler(c *gin.Context) {
	dataset, ierr := datasetParam(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	opts := s.csvOptions
	if raw := c.Query("percentage"); raw != "" {
		pct, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, invalidQuery("percentage must be an integer"))
			return
		}
		opts.Percentage = pct
	}
	replace := false
	if raw := c.Query("replace"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(c, invalidQuery("replace must be a boolean"))
			return
		}
		replace = v
	}

	body, ierr := s.readBody(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	ts, stats, err := loader.Load(bytes.NewReader(body), opts)
	if err != nil {
		slog.Warn("[Ingestion] CSV rejected", "dataset", dataset, "error", err)
		ingestionRejected.WithLabelValues("invalid_csv").Inc()
		if errors.Is(err, loader.ErrInvalidPercentage) {
			writeError(c, invalidQuery(err.Error()))
			return
		}
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidCSVError,
			message:    msgInvalidCSV,
			details:    err.Error(),
		})
		return
	}

	resp, ierr := s.persist(c.Request.Context(), dataset, ts, replace, "csv")
	if ierr != nil {
		writeError(c, ierr)
		return
	}
	resp.CSV = &stats
	c.JSON(http.StatusCreated, resp)
}

// ListDatasetsHandler handles GET /v1/datasets.
func (s *Service) ListDatasetsHandler(c *gin.Context) {
	datasets, err := s.store.ListDatasets(c.Request.Context())
	if err != nil {
		slog.Error("[Ingestion] Failed to list datasets", "error", err)
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgListFailed,
		})
		return
	}
	if datasets == nil {
		datasets = []storage.DatasetInfo{}
	}
	c.JSON(http.StatusOK, gin.H{"datasets": datasets})
}

// DeleteDatasetHandler handles DELETE /v1/datasets/:dataset.
func (s *Service) DeleteDatasetHandler(c *gin.Context) {
	dataset, ierr := datasetParam(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	if err := s.store.DeleteDataset(c.Request.Context(), dataset); err != nil {
		if errors.Is(err, storage.ErrDatasetNotFound) {
			writeError(c, notFound(dataset))
			return
		}
		slog.Error("[Ingestion] Failed to delete dataset", "dataset", dataset, "error", err)
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgDeleteFailed,
		})
		return
	}

	slog.Info("[Ingestion] Dataset deleted", "dataset", dataset)
	c.Status(http.StatusNoContent)
}

// readBody reads the request body up to the configured limit.
func (s *Service) readBody(c *gin.Context) ([]byte, *ingestionError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	body, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return nil, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(body)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "size", len(body), "max", maxBytes)
		ingestionRejected.WithLabelValues("too_large").Inc()
		return nil, &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLargeError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}
	return body, nil
}

// persist writes ts to dataset. With replace the old contents are swapped out
// atomically, so a failed upload leaves the dataset as it was.
func (s *Service) persist(ctx context.Context, dataset string, ts mining.TransactionSet, replace bool, source string) (*uploadResponse, *ingestionError) {
	loadID := s.loadIDFn()

	write := s.store.SaveTransactions
	if replace {
		write = s.store.ReplaceTransactions
	}

	written, err := write(ctx, dataset, ts)
	if err != nil {
		slog.Error("[Ingestion] Failed to persist transactions",
			"load_id", loadID,
			"dataset", dataset,
			"replace", replace,
			"error", err)
		return nil, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}

	ingestedTransactions.WithLabelValues(source).Add(float64(len(ts)))
	ingestedItems.WithLabelValues(source).Add(float64(written))

	slog.Info("[Ingestion] Transactions stored",
		"load_id", loadID,
		"dataset", dataset,
		"source", source,
		"transactions", len(ts),
		"rows_written", written,
		"replaced", replace)

	return &uploadResponse{
		LoadID:       loadID,
		Dataset:      dataset,
		Transactions: len(ts),
		RowsWritten:  written,
		Replaced:     replace,
	}, nil
}

// toTransactionSet groups uploaded rows by id. Rows sharing an id are merged,
// blank labels are dropped and transactions left without items are skipped.
func toTransactionSet(rows []uploadTransaction) (mining.TransactionSet, *ingestionError) {
	grouped := make(map[string][]mining.Item, len(rows))
	for i, row := range rows {
		id := strings.TrimSpace(row.ID)
		if id == "" {
			return nil, &ingestionError{
				statusCode: http.StatusBadRequest,
				errorType:  httperr.HttpInvalidJsonError,
				message:    "transaction id is required",
				details:    map[string]interface{}{"index": i},
			}
		}
		for _, label := range row.Items {
			if label = strings.TrimSpace(label); label != "" {
				grouped[id] = append(grouped[id], mining.Item(label))
			}
		}
	}

	ts := make(mining.TransactionSet, len(grouped))
	for id, items := range grouped {
		ts.Add(mining.NewTransaction(id, items...))
	}
	return ts, nil
}

func datasetParam(c *gin.Context) (string, *ingestionError) {
	name := c.Param("dataset")
	if name == "" || len(name) > maxDatasetNameLen {
		return "", &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidQueryError,
			message:    msgInvalidDataset,
			details:    map[string]interface{}{"max_length": maxDatasetNameLen},
		}
	}
	for _, r := range name {
		if !isDatasetRune(r) {
			return "", &ingestionError{
				statusCode: http.StatusBadRequest,
				errorType:  httperr.HttpInvalidQueryError,
				message:    msgInvalidDataset,
				details:    "allowed characters: letters, digits, '-', '_' and '.'",
			}
		}
	}
	return name, nil
}

func isDatasetRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '.':
		return true
	}
	return false
}

func invalidQuery(details string) *ingestionError {
	return &ingestionError{
		statusCode: http.StatusBadRequest,
		errorType:  httperr.HttpInvalidQueryError,
		message:    msgInvalidQuery,
		details:    details,
	}
}

func notFound(dataset string) *ingestionError {
	return &ingestionError{
		statusCode: http.StatusNotFound,
		errorType:  httperr.HttpDatasetNotFoundError,
		message:    msgDatasetNotFound,
		details:    dataset,
	}
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
