package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hotelworks/hotel-ops-backend/internal/api"
	"github.com/hotelworks/hotel-ops-backend/internal/auth"
	"github.com/hotelworks/hotel-ops-backend/internal/billing"
	"github.com/hotelworks/hotel-ops-backend/internal/config"
	"github.com/hotelworks/hotel-ops-backend/internal/document"
	"github.com/hotelworks/hotel-ops-backend/internal/employee"
	"github.com/hotelworks/hotel-ops-backend/internal/event"
	"github.com/hotelworks/hotel-ops-backend/internal/guest"
	"github.com/hotelworks/hotel-ops-backend/internal/hotel"
	"github.com/hotelworks/hotel-ops-backend/internal/payment"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/response"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/storage"
	"github.com/hotelworks/hotel-ops-backend/internal/report"
	"github.com/hotelworks/hotel-ops-backend/internal/reservation"
	"github.com/hotelworks/hotel-ops-backend/internal/room"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Publisher  event.Publisher
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, logger *zap.Logger) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	// Unmapped apperrors get logged before the generic 500 goes out.
	response.SetLogger(logger)

	var publisher event.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = event.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaEventTopic, logger)
	} else {
		publisher = event.NewNoopPublisher()
	}

	gateway := payment.NewOfflineGateway(cfg.PaymentWebhookSecret)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init local storage failed: %w", err)
	}

	// Hotel Module
	hotelRepo := hotel.NewPgxRepository(pool)
	hotelService := hotel.NewService(hotelRepo)

	// Room Module
	roomRepo := room.NewPgxRepository(pool)
	roomService := room.NewService(roomRepo, hotelService)

	// Guest Module
	guestRepo := guest.NewPgxRepository(pool)
	guestService := guest.NewService(guestRepo, passwordHasher)

	// Employee Module
	employeeRepo := employee.NewPgxRepository(pool)
	employeeService := employee.NewService(employeeRepo, passwordHasher)

	// Billing Module, built first so reservations can use it as their
	// checkout ledger.
	billingRepo := billing.NewPgxRepository(pool)
	billingService := billing.NewService(billingRepo, guestService, publisher)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(pool)
	reservationService := reservation.NewService(reservationRepo, roomService, guestService, billingService, publisher)

	// Report Module
	reportRepo := report.NewPgxRepository(pool)
	reportService := report.NewService(reportRepo)

	// Document Module
	documentRepo := document.NewPgxRepository(pool)
	documentService := document.NewService(documentRepo, employeeService, store)

	router := api.NewRouter(cfg, api.Services{
		Hotel:       hotelService,
		Room:        roomService,
		Guest:       guestService,
		Employee:    employeeService,
		Reservation: reservationService,
		Billing:     billingService,
		Report:      reportService,
		Document:    documentService,
	}, gateway, jwtManager, logger)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Publisher:  publisher,
	}, nil
}
