package advance

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	reconcileerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile/errors"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

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

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// writeResult reports the saved row. A pending reconciliation is still a
// success for the caller; it shows up as a warning, not an error.
func (h *Handler) writeResult(c *gin.Context, status int, data any, err error) {
	if err == nil {
		response.Success(c, status, data, nil)
		return
	}

	if errors.Is(err, reconcileerrors.ErrReconcilePending) {
		response.SuccessWithWarning(c, status, data, gin.H{
			"code":    apperror.CodeReconcilePending,
			"message": reconcileerrors.ErrReconcilePending.Message,
		})
		return
	}

	h.writeServiceError(c, err)
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req CreateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)

	// A pending reconciliation still saved the row, so the replay cache
	// treats it the same as a clean success.
	if h.rdb != nil && (err == nil || errors.Is(err, reconcileerrors.ErrReconcilePending)) {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	h.writeResult(c, http.StatusCreated, resp, err)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	h.writeResult(c, http.StatusOK, resp, err)
}

func (h *Handler) Delete(c *gin.Context) {
	resp, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	h.writeResult(c, http.StatusOK, resp, err)
}
