package api

import (
	"errors"
	"net/http"

	resdto "linkpay/internal/handler/dto/response"
	"linkpay/internal/handler/httperr"
	"linkpay/internal/pkg/errs"
	"linkpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	linkQuery *queries.LinkInfoQuery
}

func NewLinkHandler(linkQuery *queries.LinkInfoQuery) *LinkHandler {
	return &LinkHandler{linkQuery: linkQuery}
}

// @Summary Get short link info
// @Description Fetch metadata for a short link
// @Tags urls
// @Produce json
// @Param shortCode path string true "Short code"
// @Success 200 {object} resdto.LinkInfoResponse
// @Failure 404 {object} map[string]string
// @Router /urls/info/{shortCode} [get]
func (h *LinkHandler) Info(c *gin.Context) {
	view, err := h.linkQuery.Execute(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrURLNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "URL not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromLinkInfoView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}
