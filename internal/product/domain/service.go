package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id int64) (*Response, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id int64) error
}

type CreateRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UpdateRequest carries a partial update; nil fields keep their current value.
type UpdateRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// Response is the canonical external projection of a product.
type Response struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var (
	ErrIncompleteData = errors.New("incomplete data")
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidPrice   = errors.New("invalid price")
	ErrInvalidID      = errors.New("invalid id")
	ErrNotFound       = errors.New("product not found")
)
