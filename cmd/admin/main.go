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

	"github.com/skh121/merobazaar-web/internal/admin/customers"
	"github.com/skh121/merobazaar-web/internal/admin/dashboard"
	"github.com/skh121/merobazaar-web/internal/admin/messages"
	"github.com/skh121/merobazaar-web/internal/admin/orders"
	"github.com/skh121/merobazaar-web/internal/admin/vendors"
	"github.com/skh121/merobazaar-web/internal/adminserver"
	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/auth"
	"github.com/skh121/merobazaar-web/internal/session"
)

func main() {
	_ = godotenv.Load()

	// Port resolution: prefer MB_ADMIN_PORT, then PORT, else 8081.
	port := os.Getenv("MB_ADMIN_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8081"
	}
	apiBase := envOr("MB_API_BASE_URL", "http://localhost:4000/api")

	apiClient, err := api.NewClient(apiBase, &http.Client{Timeout: 15 * time.Second})
	if err != nil {
		log.Fatalf("api client: %v", err)
	}

	mgr, err := session.NewManager(session.Config{
		CookieName:   "mb_admin_session",
		HashKey:      sessionKey("MB_ADMIN_SESSION_HASH_KEY", 64),
		BlockKey:     sessionKey("MB_ADMIN_SESSION_BLOCK_KEY", 32),
		CookieSecure: os.Getenv("MB_COOKIE_SECURE") == "true",
	})
	if err != nil {
		log.Fatalf("session manager: %v", err)
	}

	cfg := adminserver.Config{
		SessionManager: mgr,
		Auth:           auth.NewClient(apiClient),
		Dashboard:      dashboard.NewHTTPService(apiClient),
		Orders:         orders.NewHTTPService(apiClient),
		Customers:      customers.NewHTTPService(apiClient),
		Vendors:        vendors.NewHTTPService(apiClient),
		Messages:       messages.NewHTTPService(apiClient),
	}
	// Canned dashboard figures for local work without an analytics backend.
	if os.Getenv("MB_ADMIN_STATIC_DASHBOARD") == "true" {
		cfg.Dashboard = dashboard.NewStaticService()
	}

	handler, err := adminserver.New(cfg)
	if err != nil {
		log.Fatalf("admin console: %v", err)
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
		log.Printf("admin console listening on %s (api=%s)", server.Addr, apiBase)
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

func sessionKey(name string, size int) []byte {
	if v := os.Getenv(name); v != "" {
		return []byte(v)
	}
	log.Printf("%s not set; using an ephemeral key (sessions reset on restart)", name)
	return securecookie.GenerateRandomKey(size)
}
