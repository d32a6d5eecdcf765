package httpserver

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/domain"
	orderstore "storefront/internal/store/order"

	"github.com/gin-gonic/gin"
)

type orderResponse struct {
	ID         string             `json:"id"`
	Items      []cartItemResponse `json:"items"`
	Status     domain.OrderStatus `json:"status"`
	TotalCents int64              `json:"totalCents"`
	Total      string             `json:"total"`
	Date       time.Time          `json:"date"`
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]cartItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, toCartItemResponse(it))
	}
	return orderResponse{
		ID:         o.ID,
		Items:      items,
		Status:     o.Status,
		TotalCents: o.TotalCents,
		Total:      formatPrice(o.TotalCents),
		Date:       o.Date,
	}
}

func listProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	type productResponse struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		PriceCents  int64  `json:"priceCents"`
		Price       string `json:"price"`
		Description string `json:"description,omitempty"`
		Image       string `json:"image,omitempty"`
	}
	return func(c *gin.Context) {
		products := cat.Products()
		out := make([]productResponse, 0, len(products))
		for _, p := range products {
			out = append(out, productResponse{
				ID:          p.ID,
				Title:       p.Title,
				PriceCents:  p.PriceCents,
				Price:       formatPrice(p.PriceCents),
				Description: p.Description,
				Image:       p.Image,
			})
		}
		c.JSON(http.StatusOK, gin.H{"products": out})
	}
}

func listOffersHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"offers": cat.Offers()})
	}
}

func checkoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.ShippingInfo
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		order, err := svc.PlaceOrder(req)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrNotAuthenticated):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "please log in to checkout"})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(*order))
	}
}

func listOrdersHandler(orders *orderstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := orders.Orders()
		out := make([]orderResponse, 0, len(all))
		for _, o := range all {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, gin.H{"orders": out})
	}
}

func updateOrderStatusHandler(orders *orderstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status domain.OrderStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if !domain.ValidOrderStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		if !orders.UpdateStatus(c.Param("id"), req.Status) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		order, err := orders.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(order))
	}
}
