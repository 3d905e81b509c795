package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/user"
	"github.com/Harishsingh-01/roomeaseserver/internal/handler/api"
	"github.com/Harishsingh-01/roomeaseserver/internal/handler/middleware"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	contactHandler *api.ContactHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, roomHandler, bookingHandler, reviewHandler, contactHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	contactHandler *api.ContactHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/send-otp", Handler: authHandler.SendOTP},
				{Method: http.MethodPost, Path: "/verify-otp", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/send-booking-email", Handler: bookingHandler.SendBookingEmail},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/featured", Handler: roomHandler.ListFeatured},
				{Method: http.MethodGet, Path: "/statistics", Handler: roomHandler.Statistics},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/confirm-booking", Handler: bookingHandler.ConfirmBooking},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/userbookings", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/room/:id", Handler: reviewHandler.GetRoomReviews},
			})

			reviewsAuth := reviews.Group("")
			reviewsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(reviewsAuth, []route{
				{Method: http.MethodPost, Path: "/add", Handler: reviewHandler.CreateReview},
				{Method: http.MethodGet, Path: "/user", Handler: reviewHandler.GetUserReviews},
				{Method: http.MethodGet, Path: "/booking/:id", Handler: reviewHandler.GetBookingReview},
				{Method: http.MethodPut, Path: "/:id", Handler: reviewHandler.UpdateReview},
				{Method: http.MethodDelete, Path: "/:id", Handler: reviewHandler.DeleteReview},
			})
		}

		userGroup := apiGroup.Group("/user")
		userGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(userGroup, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: authHandler.Profile},
			})
		}

		contact := apiGroup.Group("/contact")
		{
			addRoutes(contact, []route{
				{Method: http.MethodPost, Path: "/submit", Handler: contactHandler.Submit},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/addroom", Handler: adminHandler.AddRoom},
				{Method: http.MethodPut, Path: "/rooms/:id", Handler: adminHandler.UpdateRoom},
				{Method: http.MethodDelete, Path: "/rooms/:id", Handler: adminHandler.DeleteRoom},
				{Method: http.MethodGet, Path: "/booked-rooms", Handler: adminHandler.BookedRooms},
				{Method: http.MethodGet, Path: "/usersdata", Handler: adminHandler.UsersData},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: adminHandler.DeleteUser},
				{Method: http.MethodGet, Path: "/contacts", Handler: adminHandler.Contacts},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
