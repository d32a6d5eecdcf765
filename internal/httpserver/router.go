package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	cartstore "storefront/internal/store/cart"
	orderstore "storefront/internal/store/order"
	sessionstore "storefront/internal/store/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the stores the router dispatches to.
type Deps struct {
	Session  *sessionstore.Store
	Cart     *cartstore.Store
	Orders   *orderstore.Store
	Checkout *checkout.Service
	Catalog  *catalog.Catalog
}

// buildRouter wires routes for the storefront.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.Session == nil || deps.Cart == nil || deps.Orders == nil || deps.Checkout == nil || deps.Catalog == nil {
		return nil, errors.New("httpserver: missing dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	auth := router.Group("/auth")
	{
		auth.GET("/session", sessionHandler(deps.Session))
		auth.POST("/login", loginHandler(deps.Session))
		auth.POST("/login/credential", credentialLoginHandler(deps.Session))
		auth.POST("/register", registerHandler(deps.Session))
		auth.POST("/logout", logoutHandler(deps.Session))
		auth.PATCH("/profile", updateProfileHandler(deps.Session))
		auth.POST("/password-reset", resetPasswordHandler(deps.Session))
		auth.POST("/email-verification", emailVerificationHandler(deps.Session))
	}

	cat := router.Group("/catalog")
	{
		cat.GET("/products", listProductsHandler(deps.Catalog))
		cat.GET("/offers", listOffersHandler(deps.Catalog))
	}

	cart := router.Group("/cart")
	{
		cart.GET("", getCartHandler(deps.Cart))
		cart.POST("/items", addCartItemHandler(deps.Cart, deps.Catalog))
		cart.POST("/items/:id/decrease", decreaseCartItemHandler(deps.Cart))
		cart.DELETE("/items/:id", removeCartItemHandler(deps.Cart))
		cart.DELETE("", clearCartHandler(deps.Cart))
	}

	router.POST("/checkout", checkoutHandler(deps.Checkout))

	orders := router.Group("/orders")
	{
		orders.GET("", listOrdersHandler(deps.Orders))
		orders.PATCH("/:id/status", updateOrderStatusHandler(deps.Orders))
	}

	return router, nil
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			// In-memory mode has no external dependency to check.
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
