package http

import (
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/document"
)

type DocumentResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewDocumentResponse(d *document.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:          d.ID,
		EmployeeID:  d.EmployeeID,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		Size:        d.Size,
		URL:         document.DownloadURL(d.ID),
		CreatedAt:   d.CreatedAt,
	}
	if d.ThumbnailPath != nil {
		thumbURL := document.ThumbnailURL(d.ID)
		resp.ThumbnailURL = &thumbURL
	}
	return resp
}
