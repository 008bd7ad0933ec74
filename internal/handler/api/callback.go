package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"linkpay/internal/pkg/config"
	"linkpay/internal/pkg/errs"
	"linkpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CallbackHandler serves the browser returns from checkout. Every response is
// a redirect back to the front end; the query string carries the outcome.
type CallbackHandler struct {
	successReturn *commands.SuccessReturnUsecase
	returnURL     string
}

func NewCallbackHandler(successReturn *commands.SuccessReturnUsecase, cfg config.ShortlinkConfig) *CallbackHandler {
	return &CallbackHandler{
		successReturn: successReturn,
		returnURL:     strings.TrimRight(cfg.ReturnURL, "/"),
	}
}

// @Summary Checkout success return
// @Description Landing for the browser after an approved checkout
// @Tags callback
// @Param session_id query string true "Payment session id"
// @Param payment_id query string false "Gateway payment id"
// @Param merchant_order_id query string false "Gateway merchant order id"
// @Success 302
// @Router /success [get]
func (h *CallbackHandler) Success(c *gin.Context) {
	sessionID, ok := h.sessionIDParam(c)
	if !ok {
		return
	}

	result, err := h.successReturn.Execute(c.Request.Context(), sessionID, c.Query("payment_id"))
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			h.redirectError(c)
			return
		}
		_ = c.Error(err)
		h.redirect(c, "success", url.Values{
			"session_id": {sessionID.String()},
			"processing": {"true"},
		})
		return
	}

	params := url.Values{"session_id": {sessionID.String()}}
	h.copyGatewayParams(c, params)
	if result.ShortURL != nil {
		params.Set("short_url", *result.ShortURL)
	} else {
		params.Set("processing", "true")
	}

	h.redirect(c, "success", params)
}

// @Summary Checkout pending return
// @Tags callback
// @Param session_id query string true "Payment session id"
// @Success 302
// @Router /pending [get]
func (h *CallbackHandler) Pending(c *gin.Context) {
	h.passthrough(c, "pending")
}

// @Summary Checkout failure return
// @Tags callback
// @Param session_id query string true "Payment session id"
// @Success 302
// @Router /failure [get]
func (h *CallbackHandler) Failure(c *gin.Context) {
	h.passthrough(c, "failure")
}

// passthrough forwards the gateway params without touching fulfillment; the
// webhook channel remains responsible for any late approval.
func (h *CallbackHandler) passthrough(c *gin.Context, page string) {
	sessionID, ok := h.sessionIDParam(c)
	if !ok {
		return
	}

	params := url.Values{"session_id": {sessionID.String()}}
	h.copyGatewayParams(c, params)
	h.redirect(c, page, params)
}

func (h *CallbackHandler) sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Query("session_id")
	if raw == "" {
		// The gateway appends the preference's external_reference (our
		// session id) to the return URL; accept it as a fallback.
		raw = c.Query("external_reference")
	}
	if raw == "" {
		h.redirectError(c)
		return uuid.Nil, false
	}
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		h.redirectError(c)
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *CallbackHandler) copyGatewayParams(c *gin.Context, params url.Values) {
	for _, key := range []string{"payment_id", "merchant_order_id"} {
		if v := c.Query(key); v != "" {
			params.Set(key, v)
		}
	}
}

func (h *CallbackHandler) redirect(c *gin.Context, page string, params url.Values) {
	c.Redirect(http.StatusFound, h.returnURL+"/@/"+page+"?"+params.Encode())
}

func (h *CallbackHandler) redirectError(c *gin.Context) {
	c.Redirect(http.StatusFound, h.returnURL+"/@/error")
}
