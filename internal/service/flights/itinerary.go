package flights

import (
	"errors"
	"math"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
)

var errEmptyPath = errors.New("itinerary needs at least one flight")

// ItineraryBuilder turns an already validated chain of flights into the
// response entity.
type ItineraryBuilder struct {
	provider  DataProvider
	validator ConnectionValidator
}

func NewItineraryBuilder(provider DataProvider, validator ConnectionValidator) ItineraryBuilder {
	return ItineraryBuilder{provider: provider, validator: validator}
}

func (b ItineraryBuilder) Build(flights []domain.Flight) (domain.Itinerary, error) {
	if len(flights) == 0 {
		return domain.Itinerary{}, errEmptyPath
	}

	segments := make([]domain.FlightSegment, 0, len(flights))
	layovers := make([]domain.Layover, 0, len(flights)-1)
	var totalPrice float64
	var firstDeparture, lastArrival time.Time

	for i, f := range flights {
		origin, err := lookupAirport(b.provider, f.Origin)
		if err != nil {
			return domain.Itinerary{}, err
		}
		destination, err := lookupAirport(b.provider, f.Destination)
		if err != nil {
			return domain.Itinerary{}, err
		}
		originZone, err := airportZone(origin)
		if err != nil {
			return domain.Itinerary{}, err
		}
		destinationZone, err := airportZone(destination)
		if err != nil {
			return domain.Itinerary{}, err
		}

		departure := f.DepartureTime.In(originZone)
		arrival := f.ArrivalTime.In(destinationZone)
		if i == 0 {
			firstDeparture = departure
		}
		lastArrival = arrival

		segments = append(segments, domain.FlightSegment{
			FlightNumber:    f.FlightNumber,
			Airline:         f.Airline,
			OriginCode:      f.Origin,
			OriginName:      origin.Name,
			OriginCity:      origin.City,
			DestinationCode: f.Destination,
			DestinationName: destination.Name,
			DestinationCity: destination.City,
			DepartureTime:   departure.Format(time.RFC3339),
			ArrivalTime:     arrival.Format(time.RFC3339),
			DurationMinutes: minutesBetween(departure, arrival),
			Aircraft:        f.Aircraft,
		})
		totalPrice += f.Price

		if i < len(flights)-1 {
			layover, err := b.validator.LayoverMinutes(f, flights[i+1])
			if err != nil {
				return domain.Itinerary{}, err
			}
			layovers = append(layovers, domain.Layover{
				AirportCode:     f.Destination,
				AirportName:     destination.Name,
				AirportCity:     destination.City,
				DurationMinutes: layover,
			})
		}
	}

	return domain.Itinerary{
		Segments:             segments,
		Layovers:             layovers,
		TotalDurationMinutes: minutesBetween(firstDeparture, lastArrival),
		TotalPrice:           roundToCents(totalPrice),
		Stops:                len(flights) - 1,
	}, nil
}

// roundToCents rounds half away from zero; prices are never negative.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
