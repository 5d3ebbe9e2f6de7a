package document

import (
	"net/http"
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "document not found")
	ErrNoThumbnail = apperror.New(http.StatusNotFound, "document has no thumbnail")
	ErrTooLarge    = apperror.New(http.StatusBadRequest, "document exceeds the size limit")
)

// MaxUploadSize caps a single HR document at 10 MiB.
const MaxUploadSize = 10 << 20

// Document is an HR file attached to an employee record, such as a
// contract or an ID scan.
type Document struct {
	ID            string
	EmployeeID    string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// DownloadURL returns the public URL for fetching a document's content.
func DownloadURL(id string) string {
	return "/documents/" + id + "/content"
}

// ThumbnailURL returns the public URL for a document's thumbnail.
func ThumbnailURL(id string) string {
	return "/documents/" + id + "/thumbnail"
}
