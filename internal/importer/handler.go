package importer

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const maxUploadBytes = 20 << 20

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	lockKey, _ := c.Get("idempotency_lock_key")
	if lk, ok := lockKey.(string); ok && lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

func (h *Handler) cacheReport(c *gin.Context, report Report) {
	if h.rdb == nil {
		return
	}
	cacheKey, _ := c.Get("idempotency_cache_key")
	if ck, ok := cacheKey.(string); ok && ck != "" {
		if payload, err := json.Marshal(report); err == nil {
			_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
		}
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeReport(c *gin.Context, report Report) {
	if report.Skipped > 0 {
		response.SuccessWithWarning(c, http.StatusOK, report, gin.H{
			"code":    apperror.CodePartialImport,
			"message": "Some rows were skipped, see the report for details",
		})
		return
	}

	response.Success(c, http.StatusOK, report, nil)
}

// ImportFile accepts a spreadsheet upload under the "file" form field.
func (h *Handler) ImportFile(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	entity, err := ParseEntityType(c.Param("entity"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"Missing file upload", err.Error())
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.Error(c, http.StatusRequestEntityTooLarge, apperror.CodeInvalidInput,
			"File too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer file.Close()

	rows, err := ReadSpreadsheet(file, fileHeader.Filename)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	report, err := h.service.Import(c.Request.Context(), entity, rows)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheReport(c, report)
	h.writeReport(c, report)
}

type importTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// ImportText accepts already-extracted document text and parses it
// positionally.
func (h *Handler) ImportText(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	entity, err := ParseEntityType(c.Param("entity"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req importTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	rows, rejected := ParseDocumentText(req.Text, entity)
	if len(rows) == 0 && rejected == 0 {
		h.writeServiceError(c, ErrEmptyFile)
		return
	}

	report, err := h.service.Import(c.Request.Context(), entity, rows)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Lines the positional parser could not read never reached the service;
	// fold them in so the caller sees them as skipped, not as nothing.
	report.Processed += rejected
	report.Skipped += rejected

	h.cacheReport(c, report)
	h.writeReport(c, report)
}
