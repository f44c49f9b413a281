package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AddToCartRequest struct {
	ProductID uuid.UUID       `json:"product_id"`
	VariantID *uuid.UUID      `json:"variant_id,omitempty"`
	Quantity  int             `json:"quantity"`
	Snapshot  json.RawMessage `json:"snapshot,omitempty"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity"`
}

type CartLine struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	VariantID       *uuid.UUID      `json:"variant_id,omitempty"`
	Quantity        int             `json:"quantity"`
	UnitPrice       float64         `json:"unit_price"`
	LineTotal       float64         `json:"line_total"`
	Stock           int             `json:"stock"`
	Snapshot        json.RawMessage `json:"snapshot,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CartListResponse struct {
	Success    bool       `json:"success"`
	Carts      []CartLine `json:"carts"`
	Pagination Pagination `json:"pagination"`
}

type CartCountResponse struct {
	Success bool  `json:"success"`
	Count   int64 `json:"count"`
}

type CartTotalResponse struct {
	Success bool    `json:"success"`
	Total   float64 `json:"total"`
	Items   int     `json:"items"`
}
