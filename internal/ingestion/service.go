package ingestion

import (
	"github.com/aevon-lab/basket/internal/core/storage"
	"github.com/aevon-lab/basket/internal/loader"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Service struct {
	store            storage.TransactionStore
	csvOptions       loader.Options
	maxBodySizeBytes int
	loadIDFn         func() string
}

func NewService(repo storage.TransactionStore, csvOptions loader.Options, maxBodySizeMB int) *Service {
	if repo == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            repo,
		csvOptions:       csvOptions,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		loadIDFn:         uuid.NewString,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/datasets/:dataset/transactions", s.IngestTransactionsHandler)
	r.POST("/v1/datasets/:dataset/csv", s.IngestCSVHandler)
	r.GET("/v1/datasets", s.ListDatasetsHandler)
	r.DELETE("/v1/datasets/:dataset", s.DeleteDatasetHandler)
}
