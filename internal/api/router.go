package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/hotel-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/db"
	"github.com/nekogravitycat/hotel-booking-backend/internal/file"
	fileHttp "github.com/nekogravitycat/hotel-booking-backend/internal/file/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	hotelHttp "github.com/nekogravitycat/hotel-booking-backend/internal/hotel/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
	roomHttp "github.com/nekogravitycat/hotel-booking-backend/internal/room/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/search"
	searchHttp "github.com/nekogravitycat/hotel-booking-backend/internal/search/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
	userHttp "github.com/nekogravitycat/hotel-booking-backend/internal/user/http"
)

// Config holds the services and settings the router is assembled from.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	// DB is pinged by /healthz. Nil reports healthy.
	DB db.Pinger

	UserService    user.Service
	FileService    file.Service
	HotelService   hotel.Service
	RoomService    room.Service
	BookingService booking.Service
	SearchService  search.Service

	JWTManager  *auth.JWTManager
	JWTTTL      time.Duration
	Revocations auth.RevocationStore
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request id, logger, recovery, CORS, auth) and registers routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(RequestID(), Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", requestIDHeader}
	corsConfig.ExposeHeaders = []string{requestIDHeader, "Content-Disposition"}
	if len(corsConfig.AllowOrigins) > 0 {
		r.Use(cors.New(corsConfig))
	}

	// authMiddleware validates the bearer token and rejects revoked ones.
	authMiddleware := auth.AuthRequired(cfg.JWTManager, cfg.Revocations)
	adminMiddleware := auth.RequireRoles(auth.RoleAdmin)
	guestMiddleware := auth.RequireRoles(auth.RoleUser, auth.RoleAdmin)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager, cfg.Revocations, cfg.JWTTTL)
	fileHandler := fileHttp.NewHandler(cfg.FileService)
	uploader := fileHttp.NewImageUploader(cfg.FileService)
	hotelHandler := hotelHttp.NewHandler(cfg.HotelService, uploader)
	roomHandler := roomHttp.NewHandler(cfg.RoomService, uploader)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	searchHandler := searchHttp.NewHandler(cfg.SearchService)

	r.GET("/healthz", healthz(cfg.DB))

	userHttp.RegisterRoutes(r.Group("/api"), userHandler, authMiddleware)

	v1 := r.Group("/api/v1")
	{
		hotelHttp.RegisterRoutes(v1, hotelHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware, guestMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, guestMiddleware)
		searchHttp.RegisterRoutes(v1, searchHandler, authMiddleware, guestMiddleware)
	}

	fileHttp.RegisterRoutes(r, fileHandler)

	return r
}

func healthz(p db.Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p != nil {
			if err := db.Ping(c.Request.Context(), p); err != nil {
				log.Printf("[ERROR] request_id=%s health check failed: %v", c.GetString(response.RequestIDKey), err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
