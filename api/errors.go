package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	codeMissingOrigin         = "MISSING_ORIGIN"
	codeMissingDestination    = "MISSING_DESTINATION"
	codeMissingDate           = "MISSING_DATE"
	codeInvalidOrigin         = "INVALID_ORIGIN"
	codeInvalidDestination    = "INVALID_DESTINATION"
	codeUnknownOrigin         = "UNKNOWN_ORIGIN"
	codeUnknownDestination    = "UNKNOWN_DESTINATION"
	codeSameOriginDestination = "SAME_ORIGIN_DESTINATION"
	codeInvalidDate           = "INVALID_DATE"
	codeInternalError         = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: code, Message: message, StatusCode: http.StatusBadRequest})
}

func internalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:      codeInternalError,
		Message:    "An unexpected error occurred. Please try again later.",
		StatusCode: http.StatusInternalServerError,
	})
}
