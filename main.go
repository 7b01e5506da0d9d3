package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medistore/admin"
	"medistore/backend"
	"medistore/cart"
	"medistore/cartsync"
	"medistore/orders"
	"medistore/products"
	"medistore/ratelim"
	"medistore/rdx"
	"medistore/routes"
	"medistore/seller"
	"medistore/session"
	"medistore/web"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware tags each request with an ID and logs method, path,
// remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s from %s – %v", reqID, r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// setupRouter builds the router with all routes except the cart websocket.
// That one is added separately in main to avoid passing the hub around
// globally.
func setupRouter(rateLimiter *ratelim.RateLimiter, hub *cartsync.Hub) *httprouter.Router {
	api := backend.New()
	sessions := session.NewResolver()

	productSvc := &products.Service{API: api, CacheList: true}
	cartSvc := &cart.Service{API: api}
	orderSvc := &orders.Service{API: api}
	adminSvc := &admin.Service{API: api}
	sellerSvc := &seller.Service{API: api}

	pages := &web.Handler{
		R:        web.NewRenderer(),
		Sessions: sessions,
		Products: productSvc,
		Cart:     cartSvc,
		Orders:   orderSvc,
		Admin:    adminSvc,
		Seller:   sellerSvc,
	}

	router := httprouter.New()
	router.GET("/health", routes.Index)

	routes.AddPageRoutes(router, pages, rateLimiter)
	routes.AddAuthRoutes(router, sessions, rateLimiter)
	routes.AddCartRoutes(router, cart.NewHandler(cartSvc, hub), rateLimiter)
	routes.AddOrderRoutes(router, orders.NewHandler(orderSvc, hub), rateLimiter)
	routes.AddAdminRoutes(router, admin.NewHandler(adminSvc), sessions, rateLimiter)
	routes.AddSellerRoutes(router, seller.NewHandler(sellerSvc), sessions, rateLimiter)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	rdx.Init()

	rateLimiter := ratelim.NewRateLimiter()

	hub := cartsync.NewHub()
	go hub.Run()

	router := setupRouter(rateLimiter, hub)
	routes.AddCartSyncRoutes(router, hub)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down cart hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
