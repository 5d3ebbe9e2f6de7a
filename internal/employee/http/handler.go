package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelworks/hotel-ops-backend/internal/employee"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/response"
)

type Handler struct {
	service employee.Service
}

func NewHandler(service employee.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	employees, total, err := h.service.List(c.Request.Context(), employee.Filter{
		HotelID:  req.HotelID,
		Role:     req.Role,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		items[i] = NewEmployeeResponse(e)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEmployeeResponse(e))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateEmployeeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	e, err := h.service.Create(c.Request.Context(), employee.CreateRequest{
		HotelID:   body.HotelID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Role:      body.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewEmployeeResponse(e))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateEmployeeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	e, err := h.service.Update(c.Request.Context(), uri.ID, employee.UpdateRequest{
		HotelID:   body.HotelID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Role:      body.Role,
		Status:    body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEmployeeResponse(e))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "employee deleted"})
}
