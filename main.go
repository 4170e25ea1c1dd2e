package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photo-gallery/internal/handlers"
	"photo-gallery/internal/logging"
	"photo-gallery/internal/metrics"
	"photo-gallery/internal/middleware"
	"photo-gallery/internal/startup"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Initialize handlers
	h := handlers.New(config)

	// Setup router
	router := setupRouter(h)

	var handler http.Handler = router

	// Apply metrics middleware
	if config.MetricsEnabled {
		handler = middleware.Metrics(middleware.DefaultMetricsConfig())(handler)
	}

	// Apply logging middleware
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogStaticFiles = config.LogStaticFiles
	handler = middleware.Logger(loggingConfig)(handler)

	// Apply compression middleware
	handler = middleware.Compression(middleware.DefaultCompressionConfig())(handler)

	// Create server
	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	// Start metrics server on its own port
	if config.MetricsEnabled {
		metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)
		go startMetricsServer(config.MetricsPort)
	}

	// Start graceful shutdown handler
	go handleShutdown(srv)

	// Start server
	startup.LogServerStarted(config, time.Since(startTime))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	// Health check and version routes
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	// Gallery pages
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/album/{slug}", h.AlbumPage).Methods("GET")
	r.HandleFunc("/album/{slug}/{filename}", h.PhotoPage).Methods("GET")

	// Image serving
	r.HandleFunc("/photos/{album}/{filename}", h.ServePhoto).Methods("GET")
	r.HandleFunc("/thumbs/{album}/{size}/{filename}", h.ServeThumbnail).Methods("GET")

	// Static assets
	r.HandleFunc("/static/style.css", h.StyleSheet).Methods("GET")

	return r
}

func startMetricsServer(port string) {
	handler := http.NewServeMux()
	handler.Handle("/metrics", promhttp.Handler())

	logging.Info("Metrics server listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logging.Error("Metrics server error: %v", err)
	}
}

func handleShutdown(srv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	}

	startup.LogShutdownComplete()
}
