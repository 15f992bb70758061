package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"usuarios-api/internal/config"
	"usuarios-api/internal/db"
	apierrors "usuarios-api/internal/errors"
	"usuarios-api/internal/logging"
	"usuarios-api/internal/model"
)

// SystemHandler serves the operational endpoints: health check, database
// diagnostics, log test and the service description at the root.
type SystemHandler struct {
	db  *gorm.DB
	cfg *config.Config
	log *logging.Logger
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(gormDB *gorm.DB, cfg *config.Config, log *logging.Logger) *SystemHandler {
	return &SystemHandler{db: gormDB, cfg: cfg, log: log}
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// TestDBResponse is the /test-db diagnostic body.
type TestDBResponse struct {
	Message           string `json:"message"`
	DatabaseConnected bool   `json:"database_connected"`
	TableExists       bool   `json:"table_exists"`
	TableCreated      bool   `json:"table_created"`
	Timestamp         string `json:"timestamp"`
}

// TestLogResponse is the /test-log body.
type TestLogResponse struct {
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// RootResponse is the service description at /.
type RootResponse struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Endpoints   map[string]string `json:"endpoints"`
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.cfg.Env,
		Version:     h.cfg.Version,
	})
}

// TestDB godoc
// @Summary Database diagnostics
// @Tags system
// @Produce json
// @Success 200 {object} TestDBResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /test-db [get]
func (h *SystemHandler) TestDB(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return apierrors.MapErrorToHTTP(err, "Erro no teste de banco de dados")
	}
	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return apierrors.MapErrorToHTTP(err, "Erro no teste de banco de dados")
	}

	tableExists := h.db.Migrator().HasTable(&model.User{})
	tableCreated := false
	if !tableExists {
		if err := db.EnsureSchema(h.db); err != nil {
			return apierrors.MapErrorToHTTP(err, "Erro no teste de banco de dados")
		}
		tableCreated = true
	}

	return c.JSON(http.StatusOK, TestDBResponse{
		Message:           "Teste de banco de dados",
		DatabaseConnected: true,
		TableExists:       tableExists,
		TableCreated:      tableCreated,
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	})
}

// TestLog godoc
// @Summary Emit a test log entry
// @Tags system
// @Produce json
// @Success 200 {object} TestLogResponse
// @Router /test-log [get]
func (h *SystemHandler) TestLog(c echo.Context) error {
	h.log.Info("Endpoint de teste acessado")
	return c.JSON(http.StatusOK, TestLogResponse{
		Message:     "Log de teste enviado!",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.cfg.Env,
	})
}

// Root godoc
// @Summary Service description
// @Tags system
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{
		Message:     "API de Usuários",
		Version:     h.cfg.Version,
		Environment: h.cfg.Env,
		Endpoints: map[string]string{
			"usuarios": "/usuarios",
			"docs":     "/api-docs",
			"health":   "/health",
			"testLog":  "/test-log",
		},
	})
}
