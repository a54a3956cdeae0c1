package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microdata/internal/responses"
	"microdata/internal/services"
)

type TableHandler struct {
	schemaService *services.SchemaService
}

func NewTableHandler(schemaService *services.SchemaService) *TableHandler {
	return &TableHandler{
		schemaService: schemaService,
	}
}

type CreateTableRequest struct {
	Type      string `json:"type" binding:"required"`
	Table     string `json:"table"`
	Overwrite bool   `json:"overwrite"`
}

// ListTables handles GET /api/v1/tables
func (h *TableHandler) ListTables(c *gin.Context) {
	tables, err := h.schemaService.ListTables(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusBadGateway, err, "Cannot list tables")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"connection": h.schemaService.Connection(),
		"tables":     tables,
	}, "Tables listed successfully")
}

// CreateTable handles POST /api/v1/tables
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	desc, result, err := h.schemaService.Materialize(c.Request.Context(), req.Type, req.Table, req.Overwrite)
	if err != nil {
		responses.Fail(c, buildErrorStatus(err), err, "Cannot build schema")
		return
	}

	response := gin.H{
		"result": result,
		"schema": desc,
	}

	switch result.Status {
	case services.StatusCreated:
		responses.Success(c, http.StatusCreated, response, "Table created successfully")
	case services.StatusSkipped:
		responses.JSON(c, http.StatusConflict, "error", response, "Table already exists; set overwrite to replace it", nil)
	default:
		responses.JSON(c, http.StatusBadGateway, "error", response, "Error while creating the table", result.Err)
	}
}
