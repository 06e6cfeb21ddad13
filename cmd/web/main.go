package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/auth"
	"github.com/skh121/merobazaar-web/internal/cart"
	"github.com/skh121/merobazaar-web/internal/catalog"
	"github.com/skh121/merobazaar-web/internal/checkout"
	"github.com/skh121/merobazaar-web/internal/content"
	"github.com/skh121/merobazaar-web/internal/profile"
	"github.com/skh121/merobazaar-web/internal/session"
	"github.com/skh121/merobazaar-web/internal/vendorpanel"
	"github.com/skh121/merobazaar-web/internal/webserver"
	"github.com/skh121/merobazaar-web/internal/wishlist"
)

func main() {
	_ = godotenv.Load()

	// Port resolution: prefer MB_WEB_PORT, then PORT, else 8080.
	port := os.Getenv("MB_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	apiBase := envOr("MB_API_BASE_URL", "http://localhost:4000/api")

	apiClient, err := api.NewClient(apiBase, &http.Client{Timeout: 15 * time.Second})
	if err != nil {
		log.Fatalf("api client: %v", err)
	}

	mgr, err := session.NewManager(session.Config{
		HashKey:      sessionKey("MB_SESSION_HASH_KEY", 64),
		BlockKey:     sessionKey("MB_SESSION_BLOCK_KEY", 32),
		CookieSecure: os.Getenv("MB_COOKIE_SECURE") == "true",
	})
	if err != nil {
		log.Fatalf("session manager: %v", err)
	}

	handler, err := webserver.New(webserver.Config{
		SessionManager: mgr,
		Catalog:        catalog.NewHTTPService(apiClient),
		Cart:           cart.NewHTTPService(apiClient),
		Wishlist:       wishlist.NewHTTPService(apiClient),
		Profile:        profile.NewHTTPService(apiClient),
		Vendor:         vendorpanel.NewHTTPService(apiClient),
		Auth:           auth.NewClient(apiClient),
		Checkout:       checkout.NewClient(apiClient),
		Content:        content.NewLoader(),
		Pricing:        cart.DefaultPricing,
	})
	if err != nil {
		log.Fatalf("storefront: %v", err)
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("storefront listening on %s (api=%s)", server.Addr, apiBase)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-shutdown
	log.Printf("shutdown signal received; draining requests")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// sessionKey reads a cookie key from the environment, generating an
// ephemeral one when unset. Ephemeral keys invalidate all sessions on
// restart, acceptable only outside production.
func sessionKey(name string, size int) []byte {
	if v := os.Getenv(name); v != "" {
		return []byte(v)
	}
	log.Printf("%s not set; using an ephemeral key (sessions reset on restart)", name)
	return securecookie.GenerateRandomKey(size)
}
