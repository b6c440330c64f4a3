package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

// RequestIDKey is the gin context key holding the current request id.
const RequestIDKey = "requestID"

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is returned by endpoints that have nothing but a confirmation to send.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error sends a JSON error response.
// AppErrors are rendered with their own status code and message.
// Anything else is logged and reported as 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			logInternal(c, err)
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	logInternal(c, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// BindError reports a request that failed gin binding or validation.
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
}

func logInternal(c *gin.Context, err error) {
	log.Printf("[ERROR] request_id=%s method=%s path=%s err=%v",
		c.GetString(RequestIDKey), c.Request.Method, c.Request.URL.Path, err)
}
