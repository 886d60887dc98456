package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"biltone-supplies/internal/config"
	"biltone-supplies/internal/db"
	"biltone-supplies/internal/httpserver"
	"biltone-supplies/internal/kv"
	contentrepo "biltone-supplies/internal/repository/content"
	messagerepo "biltone-supplies/internal/repository/message"
	orderrepo "biltone-supplies/internal/repository/order"
	productrepo "biltone-supplies/internal/repository/product"
	tokenrepo "biltone-supplies/internal/repository/token"
	userrepo "biltone-supplies/internal/repository/user"
	authsvc "biltone-supplies/internal/service/auth"
	cartsvc "biltone-supplies/internal/service/cart"
	catalogsvc "biltone-supplies/internal/service/catalog"
	contentsvc "biltone-supplies/internal/service/content"
	messagesvc "biltone-supplies/internal/service/message"
	ordersvc "biltone-supplies/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	catalogService := catalogsvc.New(productrepo.NewPostgres(dbpool, logger))
	cartEngine := cartsvc.New(kv.NewPostgres(dbpool), logger)
	cartEngine.Notify(func(sessionID string, itemCount int) {
		logger.Printf("cart updated session=%s items=%d", sessionID, itemCount)
	})
	orderService := ordersvc.New(orderrepo.NewPostgres(dbpool, logger), cartEngine, logger)
	authService := authsvc.New(userrepo.NewPostgres(dbpool, logger), tokenrepo.NewPostgres(dbpool))
	messageService := messagesvc.New(messagerepo.NewPostgres(dbpool, logger))
	contentService := contentsvc.New(contentrepo.NewPostgres(dbpool))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:  catalogService,
		Carts:    cartEngine,
		Orders:   orderService,
		Auth:     authService,
		Messages: messageService,
		Content:  contentService,
	}, cfg.CORSOrigins)
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
