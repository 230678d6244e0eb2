package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/voyago/config"
	"voyago/voyago/controllers"
	"voyago/voyago/middlewares"
	"voyago/voyago/routes"
	"voyago/voyago/services/pybridge"
	"voyago/voyago/services/unsplash"
	"voyago/voyago/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logging.InitLogger()
	cfg := config.LoadConfig()

	runner := pybridge.NewRunner(cfg.PythonBin)
	plannerCtrl := controllers.NewPlannerController(runner, cfg)
	imagesCtrl := controllers.NewImagesController(unsplash.NewClient(cfg.UnsplashAccessKey))
	exportCtrl := controllers.NewExportController()
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.Recoverer)

	r.Mount("/api", routes.API(plannerCtrl, imagesCtrl, exportCtrl, healthCtrl))

	// The browser UI is served from another origin in dev.
	allowedOrigins := append([]string{"http://localhost:5173", "http://localhost:3000"}, cfg.FrontendURLs...)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposedHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:         int(12 * time.Hour / time.Second),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler.Handler(r),
	}

	go func() {
		logging.AppLogger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
