package models

import (
	"github.com/almasezhe/warauction/internal/cart"
	"github.com/shopspring/decimal"
)

// Option is a purchasable catalog entry as stored in the options table.
type Option struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Cost     decimal.Decimal `json:"cost"`
	ImageURL string          `json:"image_url,omitempty"`
}

func (o Option) CatalogItem() cart.CatalogItem {
	return cart.CatalogItem{ID: o.ID, Name: o.Name, UnitCost: o.Cost}
}

type CreateOptionRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Cost     int64  `json:"cost" validate:"gte=0"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateOptionRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Cost     *int64  `json:"cost,omitempty" validate:"omitempty,gte=0"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
}
