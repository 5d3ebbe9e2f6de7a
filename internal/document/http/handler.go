package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
	"github.com/hotelworks/hotel-ops-backend/internal/document"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/response"
)

type Handler struct {
	service document.Service
}

func NewHandler(service document.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	// Staff upload to their own record; admins may target any employee
	// via the employee_id form field.
	employeeID := auth.GetUserID(c)
	if target := c.PostForm("employee_id"); target != "" && auth.GetRole(c).AtLeast(auth.RoleAdmin) {
		employeeID = target
	}

	d, err := h.service.Upload(c.Request.Context(), header, employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewDocumentResponse(d))
}

func (h *Handler) ListMine(c *gin.Context) {
	h.list(c, auth.GetUserID(c))
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	h.list(c, uri.ID)
}

func (h *Handler) list(c *gin.Context, employeeID string) {
	documents, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]DocumentResponse, len(documents))
	for i, d := range documents {
		items[i] = NewDocumentResponse(d)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Download(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	stream, d, err := h.service.Download(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	if !h.canRead(c, d) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+d.Filename+`"`)
	c.DataFromReader(http.StatusOK, d.Size, d.ContentType, stream, nil)
}

func (h *Handler) Thumbnail(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	stream, d, err := h.service.DownloadThumbnail(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	if !h.canRead(c, d) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	// Thumbnails are always jpeg; size is unknown ahead of time.
	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
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

	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}

// canRead allows the document's owner and admins.
func (h *Handler) canRead(c *gin.Context, d *document.Document) bool {
	return auth.GetRole(c).AtLeast(auth.RoleAdmin) || d.EmployeeID == auth.GetUserID(c)
}
