package api

import (
	"net/http"

	"github.com/Domenick1991/skypath/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service flights.FlightUseCase
}

func NewAirportHandler(service flights.FlightUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

func (h *AirportHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Airports(c.Request.Context()))
}
