package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
	"github.com/hotelworks/hotel-ops-backend/internal/billing"
	billingHttp "github.com/hotelworks/hotel-ops-backend/internal/billing/http"
	"github.com/hotelworks/hotel-ops-backend/internal/config"
	"github.com/hotelworks/hotel-ops-backend/internal/document"
	documentHttp "github.com/hotelworks/hotel-ops-backend/internal/document/http"
	"github.com/hotelworks/hotel-ops-backend/internal/employee"
	employeeHttp "github.com/hotelworks/hotel-ops-backend/internal/employee/http"
	"github.com/hotelworks/hotel-ops-backend/internal/guest"
	guestHttp "github.com/hotelworks/hotel-ops-backend/internal/guest/http"
	"github.com/hotelworks/hotel-ops-backend/internal/hotel"
	hotelHttp "github.com/hotelworks/hotel-ops-backend/internal/hotel/http"
	"github.com/hotelworks/hotel-ops-backend/internal/payment"
	paymentHttp "github.com/hotelworks/hotel-ops-backend/internal/payment/http"
	"github.com/hotelworks/hotel-ops-backend/internal/report"
	reportHttp "github.com/hotelworks/hotel-ops-backend/internal/report/http"
	"github.com/hotelworks/hotel-ops-backend/internal/reservation"
	reservationHttp "github.com/hotelworks/hotel-ops-backend/internal/reservation/http"
	"github.com/hotelworks/hotel-ops-backend/internal/room"
	roomHttp "github.com/hotelworks/hotel-ops-backend/internal/room/http"
)

// Services bundles every domain service the router mounts.
type Services struct {
	Hotel       hotel.Service
	Room        room.Service
	Guest       guest.Service
	Employee    employee.Service
	Reservation reservation.Service
	Billing     billing.Service
	Report      report.Service
	Document    document.Service
}

// NewRouter assembles middleware (CORS, Logger, Auth) and registers
// routes for every module under /v1.
func NewRouter(
	cfg *config.Config,
	services Services,
	gateway payment.Gateway,
	jwtManager *auth.JWTManager,
	logger *zap.Logger,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Webhook-Signature"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(jwtManager)
	staffMiddleware := RequireRole(auth.RoleStaff)
	receptionistMiddleware := RequireRole(auth.RoleReceptionist)
	adminMiddleware := RequireRole(auth.RoleAdmin)
	superAdminMiddleware := RequireRole(auth.RoleSuperAdmin)

	authHandler := NewAuthHandler(services.Employee, services.Guest, jwtManager)
	hotelHandler := hotelHttp.NewHandler(services.Hotel)
	roomHandler := roomHttp.NewHandler(services.Room)
	guestHandler := guestHttp.NewHandler(services.Guest)
	employeeHandler := employeeHttp.NewHandler(services.Employee)
	reservationHandler := reservationHttp.NewHandler(services.Reservation)
	billingHandler := billingHttp.NewHandler(services.Billing)
	reportHandler := reportHttp.NewHandler(services.Report)
	documentHandler := documentHttp.NewHandler(services.Document)
	paymentHandler := paymentHttp.NewHandler(gateway, services.Billing, logger)

	v1 := r.Group("/v1")
	{
		authGroup := v1.Group("/auth")
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/guest/register", authHandler.RegisterGuest)
		authGroup.POST("/guest/login", authHandler.LoginGuest)
		authGroup.GET("/me", authMiddleware, authHandler.Me)

		hotelHttp.RegisterRoutes(v1, hotelHandler, authMiddleware, superAdminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		guestHttp.RegisterRoutes(v1, guestHandler, authMiddleware, receptionistMiddleware)
		employeeHttp.RegisterRoutes(v1, employeeHandler, authMiddleware, adminMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, receptionistMiddleware)
		billingHttp.RegisterRoutes(v1, billingHandler, authMiddleware, receptionistMiddleware)
		reportHttp.RegisterRoutes(v1, reportHandler, authMiddleware, adminMiddleware)
		documentHttp.RegisterRoutes(v1, documentHandler, authMiddleware, staffMiddleware, adminMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler, authMiddleware)
	}

	return r
}
