package api

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/hotel-booking-backend/internal/booking/http"
)

// Config holds the dependencies required to build the router.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         *slog.Logger
	BookingService booking.Service
	// Ready reports whether the storage backend can serve requests.
	Ready func(ctx context.Context) error
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (request ID, access log, recovery, CORS) and registering routes.
func NewRouter(cfg Config) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()

	// Global Middleware:
	// - RequestID: Tags every request and response with X-Request-ID.
	// - AccessLog: Logs request information through slog.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestID(), AccessLog(log), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	// Without any allowed origin only same-origin callers are served.
	if origins := allowedOrigins(cfg.IsProduction, cfg.ProdOrigins); len(origins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = origins
		config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Type", requestIDHeader}
		config.ExposeHeaders = []string{requestIDHeader}
		r.Use(cors.New(config))
	}

	health := HealthHandlers{Ready: cfg.Ready}
	r.GET("/livez", health.Livez)
	r.GET("/readyz", health.Readyz)

	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		bookingHttp.RegisterRoutes(v1, bookingHandler)
	}

	return r
}

func allowedOrigins(isProduction bool, prodOrigins string) []string {
	if !isProduction {
		return []string{
			"http://localhost:8081", // Swagger
			"http://localhost:3000",
		}
	}
	var origins []string
	for _, o := range strings.Split(prodOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
