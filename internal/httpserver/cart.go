package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	cartstore "storefront/internal/store/cart"

	"github.com/gin-gonic/gin"
)

type cartItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PriceCents  int64  `json:"priceCents"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Qty         int    `json:"qty"`
}

type cartResponse struct {
	Items         []cartItemResponse `json:"items"`
	TotalQuantity int                `json:"totalQuantity"`
	TotalCents    int64              `json:"totalCents"`
	Total         string             `json:"total"`
}

// formatPrice renders cents as a display amount. This is the presentation
// boundary; everything below it works in cents.
func formatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func toCartItemResponse(it domain.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:          it.ID,
		Title:       it.Title,
		PriceCents:  it.PriceCents,
		Price:       formatPrice(it.PriceCents),
		Description: it.Description,
		Image:       it.Image,
		Qty:         it.Qty,
	}
}

func toCartResponse(cart *cartstore.Store) cartResponse {
	items := cart.Items()
	out := cartResponse{
		Items:         make([]cartItemResponse, 0, len(items)),
		TotalQuantity: 0,
		TotalCents:    0,
	}
	for _, it := range items {
		out.Items = append(out.Items, toCartItemResponse(it))
		out.TotalQuantity += it.Qty
		out.TotalCents += it.TotalCents()
	}
	out.Total = formatPrice(out.TotalCents)
	return out
}

func getCartHandler(cart *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func addCartItemHandler(cart *cartstore.Store, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ProductID string `json:"productId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}
		product, err := cat.ByID(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog lookup failed"})
			return
		}
		cart.Add(product)
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func decreaseCartItemHandler(cart *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.DecreaseQty(c.Param("id"))
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func removeCartItemHandler(cart *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Remove(c.Param("id"))
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func clearCartHandler(cart *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}
