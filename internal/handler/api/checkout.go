package api

import (
	"errors"
	"net/http"

	"linkpay/internal/domain/payment"
	"linkpay/internal/domain/shorturl"
	reqdto "linkpay/internal/handler/dto/request"
	resdto "linkpay/internal/handler/dto/response"
	"linkpay/internal/handler/httperr"
	"linkpay/internal/pkg/errs"
	"linkpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout *commands.CheckoutUsecase
}

func NewCheckoutHandler(checkout *commands.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// @Summary Create payment preference
// @Description Open a payment session for a premium short link
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /prefer [post]
func (h *CheckoutHandler) CreatePreference(c *gin.Context) {
	var req reqdto.CreateCheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkout.Execute(c.Request.Context(), commands.CheckoutInput{
		OriginalURL: req.OriginalURL,
		CustomAlias: req.CustomAlias,
		ExpiryDate:  req.ExpiryDate,
		Quantity:    req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAliasTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Custom alias already taken",
			})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

func isValidationError(err error) bool {
	return errors.Is(err, payment.ErrInvalidOriginalURL) ||
		errors.Is(err, payment.ErrInvalidQuantity) ||
		errors.Is(err, payment.ErrInvalidAmount) ||
		errors.Is(err, payment.ErrExpiryInPast) ||
		errors.Is(err, shorturl.ErrInvalidShortCode)
}
