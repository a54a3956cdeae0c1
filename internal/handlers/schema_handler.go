package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"microdata/internal/responses"
	"microdata/internal/schema"
	"microdata/internal/services"
	"microdata/internal/vocabulary"
)

type SchemaHandler struct {
	schemaService *services.SchemaService
}

func NewSchemaHandler(schemaService *services.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
	}
}

// ListTypes handles GET /api/v1/types
func (h *SchemaHandler) ListTypes(c *gin.Context) {
	names, err := h.schemaService.TypeNames()
	if err != nil {
		responses.Fail(c, buildErrorStatus(err), err, "Vocabulary is not available")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"types": names,
	}, "Types listed successfully")
}

// PreviewSchema handles GET /api/v1/types/:type/schema
func (h *SchemaHandler) PreviewSchema(c *gin.Context) {
	typeName := c.Param("type")
	table := c.Query("table")

	desc, err := h.schemaService.Preview(typeName, table)
	if err != nil {
		responses.Fail(c, buildErrorStatus(err), err, "Cannot build schema")
		return
	}

	responses.Success(c, http.StatusOK, desc, "Schema built successfully")
}

// VisualizeSchema handles GET /api/v1/types/:type/schema/visualize
func (h *SchemaHandler) VisualizeSchema(c *gin.Context) {
	typeName := c.Param("type")

	desc, err := h.schemaService.Preview(typeName, c.Query("table"))
	if err != nil {
		responses.Fail(c, buildErrorStatus(err), err, "Cannot build schema")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"mermaid": services.Mermaid(desc),
		"table":   desc.Table,
	}, "Schema visualization generated successfully")
}

// buildErrorStatus maps schema build failures to HTTP status codes.
func buildErrorStatus(err error) int {
	switch {
	case errors.Is(err, vocabulary.ErrVocabularyUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, vocabulary.ErrLookup):
		return http.StatusNotFound
	case errors.Is(err, schema.ErrDuplicateColumn):
		return http.StatusConflict
	case errors.Is(err, schema.ErrUnknownFieldKind):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
