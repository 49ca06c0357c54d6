package analysis

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	httperr "github.com/aevon-lab/basket/internal/core/errors"
	"github.com/aevon-lab/basket/internal/core/storage"
	"github.com/aevon-lab/basket/internal/report"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all analysis API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/datasets/:dataset/analysis", s.HandleAnalyze)
}

// HandleAnalyze handles GET /v1/datasets/:dataset/analysis
// Query parameters: min_support, min_confidence, format (json | yaml | text)
func (s *Service) HandleAnalyze(c *gin.Context) {
	req := Request{Dataset: c.Param("dataset")}
	defaults := s.Defaults()

	var err error
	if req.MinSupport, err = floatParam(c, "min_support", defaults.MinSupport); err != nil {
		writeInvalidQuery(c, err)
		return
	}
	if req.MinConfidence, err = floatParam(c, "min_confidence", defaults.MinConfidence); err != nil {
		writeInvalidQuery(c, err)
		return
	}
	format, err := report.ParseFormat(c.DefaultQuery("format", report.FormatJSON))
	if err != nil {
		writeInvalidQuery(c, err)
		return
	}

	r, err := s.Analyze(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuery):
			writeInvalidQuery(c, err)
		case errors.Is(err, storage.ErrDatasetNotFound):
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpDatasetNotFoundError,
				Message:   "Dataset not found",
				Details:   req.Dataset,
			})
		default:
			c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpInternalError,
				Message:   "Failed to analyze dataset",
				Details:   err.Error(),
			})
		}
		return
	}

	switch format {
	case report.FormatJSON:
		c.JSON(http.StatusOK, r)
	default:
		var buf bytes.Buffer
		if err := report.Write(&buf, format, r, false); err != nil {
			c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpInternalError,
				Message:   "Failed to render report",
				Details:   err.Error(),
			})
			return
		}
		contentType := "text/plain; charset=utf-8"
		if format == report.FormatYAML {
			contentType = "application/yaml; charset=utf-8"
		}
		c.Data(http.StatusOK, contentType, buf.Bytes())
	}
}

func floatParam(c *gin.Context, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidQueryf("%s must be a number, got %q", name, raw)
	}
	return v, nil
}

func writeInvalidQuery(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidQueryError,
		Message:   "Invalid analysis query",
		Details:   err.Error(),
	})
}
