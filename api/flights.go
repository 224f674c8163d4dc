package api

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Domenick1991/skypath/internal/domain"
	"github.com/Domenick1991/skypath/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type searchResponse struct {
	Itineraries []domain.Itinerary `json:"itineraries"`
	Count       int                `json:"count"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
}

func (h *FlightHandler) search(c *gin.Context) {
	ctx := c.Request.Context()
	origin := c.Query("origin")
	destination := c.Query("destination")
	date := c.Query("date")

	if strings.TrimSpace(origin) == "" {
		badRequest(c, codeMissingOrigin, "The 'origin' parameter is required.")
		return
	}
	if strings.TrimSpace(destination) == "" {
		badRequest(c, codeMissingDestination, "The 'destination' parameter is required.")
		return
	}
	if strings.TrimSpace(date) == "" {
		badRequest(c, codeMissingDate, "The 'date' parameter is required.")
		return
	}

	from := strings.ToUpper(strings.TrimSpace(origin))
	to := strings.ToUpper(strings.TrimSpace(destination))

	if !isAirportCode(from) {
		badRequest(c, codeInvalidOrigin, "Origin must be a 3-letter IATA airport code. Got: '"+origin+"'.")
		return
	}
	if !isAirportCode(to) {
		badRequest(c, codeInvalidDestination, "Destination must be a 3-letter IATA airport code. Got: '"+destination+"'.")
		return
	}
	if !h.service.AirportExists(ctx, from) {
		badRequest(c, codeUnknownOrigin, "Airport '"+from+"' not found in the dataset.")
		return
	}
	if !h.service.AirportExists(ctx, to) {
		badRequest(c, codeUnknownDestination, "Airport '"+to+"' not found in the dataset.")
		return
	}
	if from == to {
		badRequest(c, codeSameOriginDestination, "Origin and destination must be different airports.")
		return
	}

	day, err := domain.ParseLocalDate(strings.TrimSpace(date))
	if err != nil {
		badRequest(c, codeInvalidDate, "Date must be in ISO 8601 format (YYYY-MM-DD). Got: '"+date+"'.")
		return
	}

	itineraries, err := h.service.Search(ctx, from, to, day)
	if err != nil {
		slog.ErrorContext(ctx, "flight search failed", "origin", from, "destination", to, "date", day.String(), "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, searchResponse{Itineraries: itineraries, Count: len(itineraries)})
}

// isAirportCode accepts exactly three upper-case letters.
func isAirportCode(code string) bool {
	if utf8.RuneCountInString(code) != 3 {
		return false
	}
	for _, r := range code {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
