package request

import (
	"time"
)

type CreateCheckoutRequest struct {
	OriginalURL string     `json:"originalUrl" binding:"required,url"`
	CustomAlias *string    `json:"customAlias"`
	ExpiryDate  *time.Time `json:"expiryDate"`
	Quantity    int        `json:"quantity" binding:"omitempty,min=1"`
}
