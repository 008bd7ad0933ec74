package api

import (
	"io"
	"net/http"

	"linkpay/internal/infra/gateway"
	"linkpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBodyBytes = 64 << 10

type WebhookHandler struct {
	verifier *gateway.SignatureVerifier
	webhook  *commands.WebhookUsecase
}

func NewWebhookHandler(verifier *gateway.SignatureVerifier, webhook *commands.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, webhook: webhook}
}

// @Summary Payment gateway webhook
// @Description Receive payment notifications from the gateway
// @Tags webhook
// @Accept json
// @Produce json
// @Param x-signature header string false "HMAC signature (ts=<unix>,v1=<hex>)"
// @Param x-request-id header string false "Gateway delivery id"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		// Acknowledge anyway; a truncated read will be redelivered.
		c.JSON(http.StatusOK, gin.H{"error": "Internal error"})
		return
	}

	notification, err := gateway.ParseNotification(body, c.Query("topic"), c.Query("id"))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusOK, gin.H{"error": "Internal error"})
		return
	}

	// The signature covers the notified resource id. An invalid signature is
	// the one case that hard-rejects, before any side effect.
	if err := h.verifier.Verify(
		c.GetHeader("x-signature"),
		notification.ResourceID,
		c.GetHeader("x-request-id"),
	); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	replayed, err := h.webhook.Execute(c.Request.Context(), notification)
	if err != nil {
		// Still a 200: the gateway interprets anything else as "retry with
		// backoff forever", and the pipeline is idempotent on redelivery.
		_ = c.Error(err)
		c.JSON(http.StatusOK, gin.H{"error": "Internal error"})
		return
	}
	if replayed {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Already processed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
