package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	"storefront/internal/identity"
	"storefront/internal/storage"
	cartstore "storefront/internal/store/cart"
	orderstore "storefront/internal/store/order"
	sessionstore "storefront/internal/store/session"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var pool *pgxpool.Pool
	var adapter storage.Adapter = storage.NewMemory()
	if cfg.DBConnString != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		adapter = storage.NewPostgres(pool)
	}

	var verifier identity.Verifier = identity.NewDirectory()
	if cfg.DemoLogins {
		verifier = identity.NewStaticDirectory(identity.DemoCredentials())
		logger.Printf("demo credential directory enabled")
	}

	cat := catalog.Default()
	if cfg.CatalogCSVPath != "" {
		f, err := os.Open(cfg.CatalogCSVPath)
		if err != nil {
			logger.Fatalf("open catalog csv: %v", err)
		}
		products, err := catalog.LoadProductsCSV(f)
		f.Close()
		if err != nil {
			logger.Fatalf("load catalog csv: %v", err)
		}
		cat = catalog.New(products, cat.Offers())
		logger.Printf("loaded %d products from %s", len(products), cfg.CatalogCSVPath)
	}

	session := sessionstore.New(verifier, adapter, logger)
	session.Initialize(ctx)

	cart := cartstore.New()
	orders := orderstore.New()
	checkoutSvc := checkout.New(session, cart, orders, cfg.ShippingCents, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Session:  session,
		Cart:     cart,
		Orders:   orders,
		Checkout: checkoutSvc,
		Catalog:  cat,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
