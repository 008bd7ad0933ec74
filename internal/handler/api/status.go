package api

import (
	"errors"
	"net/http"

	resdto "linkpay/internal/handler/dto/response"
	"linkpay/internal/handler/httperr"
	"linkpay/internal/pkg/errs"
	"linkpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatusHandler struct {
	statusQuery *queries.CheckoutStatusQuery
}

func NewStatusHandler(statusQuery *queries.CheckoutStatusQuery) *StatusHandler {
	return &StatusHandler{statusQuery: statusQuery}
}

// @Summary Check payment session status
// @Description Poll the fulfillment state of a payment session
// @Tags urls
// @Produce json
// @Param sessionId path string true "Payment session id"
// @Success 200 {object} resdto.CheckoutStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /urls/check-status/{sessionId} [get]
func (h *StatusHandler) CheckStatus(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return
	}

	view, err := h.statusQuery.Execute(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Session not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutStatusView(sessionID, view))
}
