package exporter

import (
	"fmt"
	"net/http"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/apperror"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Export(c *gin.Context) {
	format := Format(c.DefaultQuery("format", string(FormatXLSX)))
	if format != FormatXLSX && format != FormatPDF {
		httpErr := apperror.ToHTTP(ErrUnknownFormat)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	file, err := h.service.Export(c.Request.Context(), c.Param("entity"), format)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
