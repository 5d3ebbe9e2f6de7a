package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
	"github.com/hotelworks/hotel-ops-backend/internal/employee"
	"github.com/hotelworks/hotel-ops-backend/internal/guest"
	guestHttp "github.com/hotelworks/hotel-ops-backend/internal/guest/http"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/response"
)

// AuthHandler serves login and registration for both principal kinds:
// employees (staff portal) and guests (booking portal).
type AuthHandler struct {
	employeeService employee.Service
	guestService    guest.Service
	jwtManager      *auth.JWTManager
}

func NewAuthHandler(employeeService employee.Service, guestService guest.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		employeeService: employeeService,
		guestService:    guestService,
		jwtManager:      jwtManager,
	}
}

// Login authenticates an employee and issues an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	e, err := h.employeeService.Authenticate(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	hotelID := ""
	if e.HotelID != nil {
		hotelID = *e.HotelID
	}

	token, err := h.jwtManager.GenerateAccessToken(e.ID, e.Email, e.Role, hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "Bearer"})
}

// RegisterGuest creates a guest account.
func (h *AuthHandler) RegisterGuest(c *gin.Context) {
	var body RegisterGuestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	g, err := h.guestService.Register(c.Request.Context(), guest.RegisterRequest{
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Contact:   body.Contact,
		Address:   body.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, guestHttp.NewGuestResponse(g))
}

// LoginGuest authenticates a guest and issues an access token.
func (h *AuthHandler) LoginGuest(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	g, err := h.guestService.Authenticate(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(g.ID, g.Email, auth.RoleGuest, "")
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "Bearer"})
}

// Me echoes the authenticated principal from the token claims.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, MeResponse{
		ID:      auth.GetUserID(c),
		Email:   auth.GetUserEmail(c),
		Role:    string(auth.GetRole(c)),
		HotelID: auth.GetHotelID(c),
	})
}
