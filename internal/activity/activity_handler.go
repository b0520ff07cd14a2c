package activity

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ActivityResponse struct {
	ID        string          `json:"id"`
	TableName string          `json:"table_name"`
	Action    string          `json:"action"`
	RowID     string          `json:"row_id"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt string          `json:"created_at"`
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetRecent(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	table := c.Query("table")

	var (
		entries []ActivityLog
		err     error
	)
	if table != "" {
		entries, err = h.repo.FindByTable(ctx, table, limit)
	} else {
		entries, err = h.repo.FindRecent(ctx, limit)
	}
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp := make([]ActivityResponse, len(entries))
	for i, e := range entries {
		resp[i] = ActivityResponse{
			ID:        e.ID.String(),
			TableName: e.EntityTable,
			Action:    e.Action,
			RowID:     e.RowID,
			Details:   json.RawMessage(e.Details),
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}
