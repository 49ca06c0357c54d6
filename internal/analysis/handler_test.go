package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httperr "github.com/aevon-lab/basket/internal/core/errors"
	"github.com/aevon-lab/basket/internal/core/storage"
	storagemocks "github.com/aevon-lab/basket/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, store *storagemocks.TransactionStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	newTestService(t, store).RegisterRoutes(r)
	return r
}

func doGet(r *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestHandleAnalyze_JSON(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		LoadTransactions(mock.Anything, "toy").
		Return(toyTransactions(), nil).
		Once()

	resp := doGet(newTestRouter(t, store), "/v1/datasets/toy/analysis?min_support=2&min_confidence=0.6")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		RunID     string `json:"run_id"`
		LastLevel int    `json:"last_level"`
		Levels    []struct {
			Level    int `json:"level"`
			Itemsets []struct {
				Items   []string `json:"items"`
				Support int      `json:"support"`
			} `json:"itemsets"`
		} `json:"levels"`
		Rules []struct {
			Antecedent []string `json:"antecedent"`
			Consequent []string `json:"consequent"`
			Confidence string   `json:"confidence"`
		} `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	require.Equal(t, "run-1", body.RunID)
	require.Equal(t, 2, body.LastLevel)
	require.Len(t, body.Levels, 3)
	require.Len(t, body.Levels[0].Itemsets, 3)
	require.Len(t, body.Levels[1].Itemsets, 3)
	require.Empty(t, body.Levels[2].Itemsets)
	require.Len(t, body.Rules, 6)
	require.Equal(t, []string{"a"}, body.Rules[0].Antecedent)
	require.Equal(t, []string{"b"}, body.Rules[0].Consequent)
	require.Equal(t, "0.6667", body.Rules[0].Confidence)
}

func TestHandleAnalyze_DefaultsApplied(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		LoadTransactions(mock.Anything, "toy").
		Return(toyTransactions(), nil).
		Once()

	resp := doGet(newTestRouter(t, store), "/v1/datasets/toy/analysis")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, float64(2), body["min_support"])
	require.Equal(t, 0.6, body["min_confidence"])
}

func TestHandleAnalyze_TextAndYAML(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		LoadTransactions(mock.Anything, "toy").
		Return(toyTransactions(), nil).
		Twice()

	r := newTestRouter(t, store)

	text := doGet(r, "/v1/datasets/toy/analysis?format=text")
	require.Equal(t, http.StatusOK, text.Code)
	require.True(t, strings.HasPrefix(text.Header().Get("Content-Type"), "text/plain"))
	require.Contains(t, text.Body.String(), "Frequent 2-itemsets:\na, b   -> Support: 2\n")
	require.Contains(t, text.Body.String(), "c -> b : Confidence = 0.67\n")
	require.NotContains(t, text.Body.String(), "\033[")

	yml := doGet(r, "/v1/datasets/toy/analysis?format=yaml")
	require.Equal(t, http.StatusOK, yml.Code)
	require.True(t, strings.HasPrefix(yml.Header().Get("Content-Type"), "application/yaml"))
	require.Contains(t, yml.Body.String(), "last_level: 2")
}

func TestHandleAnalyze_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "non numeric support", query: "min_support=lots"},
		{name: "negative support", query: "min_support=-1"},
		{name: "nan confidence", query: "min_confidence=NaN"},
		{name: "unknown format", query: "format=xml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storagemocks.NewTransactionStore(t)
			resp := doGet(newTestRouter(t, store), "/v1/datasets/toy/analysis?"+tc.query)

			require.Equal(t, http.StatusBadRequest, resp.Code)
			var body httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			require.Equal(t, httperr.HttpInvalidQueryError, body.ErrorType)
		})
	}
}

func TestHandleAnalyze_DatasetNotFound(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		LoadTransactions(mock.Anything, "missing").
		Return(nil, storage.ErrDatasetNotFound).
		Once()

	resp := doGet(newTestRouter(t, store), "/v1/datasets/missing/analysis")
	require.Equal(t, http.StatusNotFound, resp.Code)

	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, httperr.HttpDatasetNotFoundError, body.ErrorType)
	require.Equal(t, "missing", body.Details)
}

func TestHandleAnalyze_StoreFailure(t *testing.T) {
	store := storagemocks.NewTransactionStore(t)
	store.EXPECT().
		LoadTransactions(mock.Anything, "toy").
		Return(nil, errors.New("connection reset")).
		Once()

	resp := doGet(newTestRouter(t, store), "/v1/datasets/toy/analysis")
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, httperr.HttpInternalError, body.ErrorType)
	require.Contains(t, body.Details, "connection reset")
}
