package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// APIResponse represents the standard API response format
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  interface{} `json:"errors"`
	Meta    MetaData    `json:"meta"`
}

// MetaData represents metadata for API responses
type MetaData struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func meta(c *gin.Context) MetaData {
	id := c.GetString("request_id")
	if id == "" {
		id = c.GetHeader("X-Request-ID")
	}
	if id == "" {
		id = uuid.NewString()
	}
	return MetaData{
		RequestID: id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Errors:  nil,
		Meta:    meta(c),
	})
}

func respondError(c *gin.Context, status int, message string, errs interface{}) {
	c.JSON(status, APIResponse{
		Success: false,
		Message: message,
		Data:    nil,
		Errors:  errs,
		Meta:    meta(c),
	})
}
