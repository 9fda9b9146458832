package handlers

import (
	"net/http"

	response "flexmode/internal/adapter/http/dto/response"
	"flexmode/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the static catalog to the storefront page.

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// ListProducts returns every catalog entry in display order.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromProducts(entities.Products()))
}
