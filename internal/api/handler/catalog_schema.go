package handler

import (
	"time"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// --- Request / Response types ---

type productRequest struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Cover    string  `json:"cover"`
	Desc     string  `json:"desc"`
}

// Response-only types owned by the transport layer, so the JSON
// contract is not coupled to internal domain changes.

type productResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Price        float64   `json:"price"`
	PriceDisplay string    `json:"price_display"`
	Stock        int       `json:"stock"`
	Category     string    `json:"category"`
	Cover        string    `json:"cover"`
	Desc         string    `json:"desc"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type productListResponse struct {
	Products []productResponse `json:"products"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Title:    req.Title,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Cover:    req.Cover,
		Desc:     req.Desc,
	}
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		Title:        p.Title,
		Price:        p.Price,
		PriceDisplay: formatCLP(p.Price),
		Stock:        p.Stock,
		Category:     p.Category,
		Cover:        p.Cover,
		Desc:         p.Desc,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
