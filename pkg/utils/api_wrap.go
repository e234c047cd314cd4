package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if id, ok := c.Get("trace_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError is the single place where service failures get logged
// and translated into the uniform envelope. Internal detail never reaches
// the response body.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request parameters")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrFeedbackInvalid):
		RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, ErrInvalidAIOutput):
		log.Printf("trace=%s invalid model output: %v", traceID(c), err)
		RespondError(c, http.StatusBadGateway, "The planner could not produce a valid result, please try again")
	case errors.Is(err, ErrGenerationFailed):
		log.Printf("trace=%s generation failed: %v", traceID(c), err)
		RespondError(c, http.StatusBadGateway, "The planner is unavailable right now, please try again")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("trace=%s database error: %v", traceID(c), err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("trace=%s unknown error: %v", traceID(c), err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
