package hotel

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("hotel not found")
	ErrDuplicate        = apperror.Conflict("hotel with this name or email already exists")
	ErrNameRequired     = apperror.BadRequest("name is required")
	ErrEmailRequired    = apperror.BadRequest("email is required")
	ErrLocationRequired = apperror.BadRequest("location is required")
)

// Hotel owns zero or more rooms.
type Hotel struct {
	ID            string
	Name          string
	Email         string
	Location      string
	Description   string
	ContactNumber string
	IsActive      bool
	IsFeatured    bool
	ImageFileID   *string
	CreatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for listing hotels.
type Filter struct {
	Keyword  string // matches name or location
	Page     int
	PageSize int
}
