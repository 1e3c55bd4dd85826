package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AuctionItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CurrentBid  decimal.Decimal `json:"current_bid"`
	TimeLeft    int             `json:"time_left"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateAuctionItemRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description"`
	CurrentBid  int64  `json:"current_bid" validate:"gte=0"`
	TimeLeft    int    `json:"time_left" validate:"gte=0"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateAuctionItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty"`
	CurrentBid  *int64  `json:"current_bid,omitempty" validate:"omitempty,gte=0"`
	TimeLeft    *int    `json:"time_left,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type Admin struct {
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
