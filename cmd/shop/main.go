package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/miamore/shopd/internal/cart/app"
	cartadapter "github.com/miamore/shopd/internal/cart/infra/adapter"
	catalogapp "github.com/miamore/shopd/internal/catalog/app"
	"github.com/miamore/shopd/internal/catalog/infra/static"
	checkoutapp "github.com/miamore/shopd/internal/checkout/app"
	checkoutdomain "github.com/miamore/shopd/internal/checkout/domain"
	checkoutadapter "github.com/miamore/shopd/internal/checkout/infra/adapter"
	"github.com/miamore/shopd/internal/rest"
	"github.com/miamore/shopd/pkg/config"
	"github.com/miamore/shopd/pkg/logger"
	"github.com/miamore/shopd/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "shop", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	source, err := static.Load(cfg.CatalogPath)
	if err != nil {
		log.Error("catalog load failed", slog.Any("err", err), slog.String("path", cfg.CatalogPath))
		os.Exit(1)
	}

	contact := checkoutdomain.Contact{
		ShopName: cfg.ShopName,
		Phone:    cfg.ShopPhone,
		Hours:    cfg.ShopHours,
	}

	// Catalog
	catalogSvc := catalogapp.NewService(source)

	// Cart
	cartSvc := cartapp.NewService(cartadapter.NewCatalogServiceReader(catalogSvc))

	// Checkout (adapters)
	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(cartReader, catalogReader, contact, 10)

	router := rest.NewRouter(rest.Handlers{
		Catalog:  rest.NewCatalogHandler(catalogSvc),
		Cart:     rest.NewCartHandler(cartSvc),
		Checkout: rest.NewCheckoutHandler(checkoutSvc),
		Shop:     contact,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
