package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httperr "github.com/aevon-lab/basket/internal/core/errors"
	"github.com/aevon-lab/basket/internal/core/mining"
	"github.com/aevon-lab/basket/internal/core/storage"
	"github.com/aevon-lab/basket/internal/loader"
	storagemocks "github.com/aevon-lab/basket/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const bakeryCSV = `TransactionNo,Items,DateTime,Daypart,DayType
1,Bread,2016-10-30 09:58:11,Morning,Weekend
2,Scandinavian,2016-10-30 10:05:34,Morning,Weekend
2,Scandinavian,2016-10-30 10:05:34,Morning,Weekend
3,Hot chocolate,2016-10-30 10:07:57,Morning,Weekend
3,Jam,2016-10-30 10:07:57,Morning,Weekend
4,Muffin,2016-10-30 10:08:41,Morning,Weekend
`

func newTestRouter(t *testing.T, store *storagemocks.TransactionStore, maxBodySizeMB int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(store, loader.DefaultOptions(), maxBodySizeMB)
	svc.loadIDFn = func() string { return "load-1" }

	r := gin.New()
	svc.RegisterRoutes(r)
	return r
}

func do(r *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) httperr.ErrorResponse {
	t.Helper()
	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func TestIngestTransactionsHandler_Success(t *testing.T) {
	body := []byte(`{"transactions":[
		{"id":"T1","items":["a","b"]},
		{"id":"T2","items":["a"," c ",""]},
		{"id":"T1","items":["b","d"]},
		{"id":"T3","items":[]}
	]}`)

	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		SaveTransactions(mock.Anything, "toy", mock.MatchedBy(func(ts mining.TransactionSet) bool {
			return len(ts) == 2 &&
				ts["T1"].Items().Equal(mining.NewItemset("a", "b", "d")) &&
				ts["T2"].Items().Equal(mining.NewItemset("a", "c"))
		})).
		Return(5, nil).
		Once()

	resp := do(newTestRouter(t, store, 1), http.MethodPost, "/v1/datasets/toy/transactions", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	var result uploadResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, "load-1", result.LoadID)
	require.Equal(t, "toy", result.Dataset)
	require.Equal(t, 2, result.Transactions)
	require.Equal(t, 5, result.RowsWritten)
	require.Nil(t, result.CSV)
}

func TestIngestTransactionsHandler_InvalidJSON(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	resp := do(newTestRouter(t, store, 1), http.MethodPost, "/v1/datasets/toy/transactions", []byte(`{"transactions":`))

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, httperr.HttpInvalidJsonError, decodeError(t, resp).ErrorType)
}

func TestIngestTransactionsHandler_MissingID(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	body := []byte(`{"transactions":[{"id":"T1","items":["a"]},{"id":" ","items":["b"]}]}`)
	resp := do(newTestRouter(t, store, 1), http.MethodPost, "/v1/datasets/toy/transactions", body)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	errBody := decodeError(t, resp)
	require.Equal(t, httperr.HttpInvalidJsonError, errBody.ErrorType)
	require.Equal(t, map[string]interface{}{"index": float64(1)}, errBody.Details)
}

func TestIngestTransactionsHandler_PayloadTooLarge(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	body := []byte(`{"transactions":[{"id":"T1","items":["` + strings.Repeat("x", 1024*1024) + `"]}]}`)
	resp := do(newTestRouter(t, store, 1), http.MethodPost, "/v1/datasets/toy/transactions", body)

	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	require.Equal(t, httperr.HttpPayloadTooLargeError, decodeError(t, resp).ErrorType)
}

func TestIngestTransactionsHandler_InvalidDatasetName(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	body := []byte(`{"transactions":[]}`)
	resp := do(newTestRouter(t, store, 1), http.MethodPost, "/v1/datasets/bad%20name/transactions", body)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, httperr.HttpInvalidQueryError, decodeError(t, resp).ErrorType)
}

func TestIngestTransactionsHandler_StoreFailure(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		SaveTransactions(mock.Anything, "toy", mock.Anything).
		Return(0, errors.New("db down")).
		Once()

	body := []byte(`{"transactions":[{"id":"T1","items":["a"]}]}`)
	resp := do(newTestRouter(t, store, 1), http.MethodPost, "/v1/datasets/toy/transactions", body)

	require.Equal(t, http.StatusInternalServerError, resp.Code)
	errBody := decodeError(t, resp)
	require.Equal(t, httperr.HttpInternalError, errBody.ErrorType)
	require.Equal(t, msgPersistFailed, errBody.Message)
}

func TestIngestCSVHandler_Success(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		SaveTransactions(mock.Anything, "bakery", mock.MatchedBy(func(ts mining.TransactionSet) bool {
			return len(ts) == 4 && ts["3"].Items().Equal(mining.NewItemset("Hot chocolate", "Jam"))
		})).
		Return(5, nil).
		Once()

	resp := do(newTestRouter(t, store, 1), http.MethodPost, "/v1/datasets/bakery/csv", []byte(bakeryCSV))
	require.Equal(t, http.StatusCreated, resp.Code)

	var result uploadResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, 4, result.Transactions)
	require.Equal(t, 5, result.RowsWritten)
	require.False(t, result.Replaced)
	require.Equal(t, &loader.Stats{RowsRead: 6, RowsUsed: 6, Transactions: 4}, result.CSV)
}

func TestIngestCSVHandler_PercentageAndReplace(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		ReplaceTransactions(mock.Anything, "bakery", mock.MatchedBy(func(ts mining.TransactionSet) bool {
			return len(ts) == 2
		})).
		Return(2, nil).
		Once()

	resp := do(newTestRouter(t, store, 1), http.MethodPost, "/v1/datasets/bakery/csv?percentage=50&replace=true", []byte(bakeryCSV))
	require.Equal(t, http.StatusCreated, resp.Code)

	var result uploadResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.True(t, result.Replaced)
	require.Equal(t, 3, result.CSV.RowsUsed)
	require.Equal(t, 2, result.Transactions)
}

func TestIngestCSVHandler_ReplaceFailureNeverDeletesSeparately(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		ReplaceTransactions(mock.Anything, "bakery", mock.Anything).
		Return(0, errors.New("connection reset")).
		Once()

	resp := do(newTestRouter(t, store, 1), http.MethodPost, "/v1/datasets/bakery/csv?replace=true", []byte(bakeryCSV))
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.Equal(t, msgPersistFailed, decodeError(t, resp).Message)
	store.AssertNotCalled(t, "DeleteDataset", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SaveTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestCSVHandler_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		body      string
		wantCode  int
		wantError string
	}{
		{
			name:      "non integer percentage",
			target:    "/v1/datasets/bakery/csv?percentage=half",
			body:      bakeryCSV,
			wantCode:  http.StatusBadRequest,
			wantError: httperr.HttpInvalidQueryError,
		},
		{
			name:      "percentage out of range",
			target:    "/v1/datasets/bakery/csv?percentage=150",
			body:      bakeryCSV,
			wantCode:  http.StatusBadRequest,
			wantError: httperr.HttpInvalidQueryError,
		},
		{
			name:      "bad replace flag",
			target:    "/v1/datasets/bakery/csv?replace=maybe",
			body:      bakeryCSV,
			wantCode:  http.StatusBadRequest,
			wantError: httperr.HttpInvalidQueryError,
		},
		{
			name:      "missing items column",
			target:    "/v1/datasets/bakery/csv",
			body:      "TransactionNo,Product\n1,Bread\n",
			wantCode:  http.StatusBadRequest,
			wantError: httperr.HttpInvalidCSVError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storagemocks.NewTransactionStore(t)
			resp := do(newTestRouter(t, store, 1), http.MethodPost, tc.target, []byte(tc.body))

			require.Equal(t, tc.wantCode, resp.Code)
			require.Equal(t, tc.wantError, decodeError(t, resp).ErrorType)
		})
	}
}

func TestListDatasetsHandler(t *testing.T) {
	loadedAt := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		ListDatasets(mock.Anything).
		Return([]storage.DatasetInfo{{Name: "bakery", Transactions: 4, Items: 5, LoadedAt: loadedAt}}, nil).
		Once()

	resp := do(newTestRouter(t, store, 1), http.MethodGet, "/v1/datasets", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var result struct {
		Datasets []storage.DatasetInfo `json:"datasets"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Len(t, result.Datasets, 1)
	require.Equal(t, "bakery", result.Datasets[0].Name)
	require.True(t, loadedAt.Equal(result.Datasets[0].LoadedAt))
}

func TestListDatasetsHandler_EmptyIsArray(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().ListDatasets(mock.Anything).Return(nil, nil).Once()

	resp := do(newTestRouter(t, store, 1), http.MethodGet, "/v1/datasets", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"datasets":[]}`, resp.Body.String())
}

func TestDeleteDatasetHandler(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantCode int
	}{
		{name: "deleted", storeErr: nil, wantCode: http.StatusNoContent},
		{name: "not found", storeErr: storage.ErrDatasetNotFound, wantCode: http.StatusNotFound},
		{name: "store failure", storeErr: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storagemocks.NewTransactionStore(t)
			store.EXPECT().DeleteDataset(mock.Anything, "bakery").Return(tc.storeErr).Once()

			resp := do(newTestRouter(t, store, 1), http.MethodDelete, "/v1/datasets/bakery", nil)
			require.Equal(t, tc.wantCode, resp.Code)
		})
	}
}

func TestNewService_NilStorePanics(t *testing.T) {
	require.Panics(t, func() { NewService(nil, loader.DefaultOptions(), 1) })
}
