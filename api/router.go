package api

import (
	"net/http"

	"github.com/Domenick1991/skypath/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP handlers onto a fresh gin engine.
func NewRouter(service flights.FlightUseCase) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), accessLog(), recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	NewFlightHandler(service).Register(api.Group("/flights"))
	NewAirportHandler(service).Register(api.Group("/airports"))

	return router
}
