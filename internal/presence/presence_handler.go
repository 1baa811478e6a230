package presence

import (
	"net/http"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
	"github.com/ahmedalmoraly/clockin-system/internal/shared/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, records, nil)
}
