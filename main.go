package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/diozenio/ecommerce-app-backend/config"
	"github.com/diozenio/ecommerce-app-backend/handlers"
	"github.com/diozenio/ecommerce-app-backend/routes"
	"github.com/diozenio/ecommerce-app-backend/store"
	"github.com/diozenio/ecommerce-app-backend/synth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.MustLoad()
	slog.Info("configuration loaded", "addr", cfg.Addr(), "base_url", cfg.BaseURL)

	// Load the dataset; the process must not serve anything from an
	// inconsistent fixture.
	st, err := store.Load(cfg.DataFile, cfg.BaseURL)
	if err != nil {
		slog.Error("failed to load dataset", "file", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	slog.Info("dataset loaded",
		"users", len(st.Users()),
		"categories", len(st.Categories()),
		"products", len(st.Products()),
		"orders", len(st.Orders()),
		"images", len(st.Images()),
	)

	gen := synth.NewGenerator(synth.Bounds{
		VATMin:      cfg.Taxes.VATMin,
		VATMax:      cfg.Taxes.VATMax,
		ShippingMin: cfg.Taxes.ShippingMin,
		ShippingMax: cfg.Taxes.ShippingMax,
	})

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// The mock exists to serve browser and emulator clients during
	// development, so CORS is wide open.
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "E-Commerce Mock API",
		})
	})

	// Landing page for anyone opening the server in a browser
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.IndexFile)
	})

	routes.SetupRoutes(r, handlers.New(st, gen))

	slog.Info("server listening", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
