package response

import "flexmode/internal/domain/entities"

// ProductResponse is one catalog entry as exposed to the storefront page.
// The fulfillment link never leaves the server.
type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Level       string   `json:"level"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

type ProductListResponse struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
}

func FromProducts(products []entities.Product) ProductListResponse {
	out := ProductListResponse{Success: true, Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Level:       p.Level,
			Price:       p.Price,
			Description: p.Description,
			Image:       p.Image,
			Features:    p.Features,
		})
	}
	return out
}
