package flights

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
	"github.com/Domenick1991/skypath/internal/kafka"
	"github.com/google/uuid"
)

type FlightUseCase interface {
	Search(ctx context.Context, origin, destination string, date domain.LocalDate) ([]domain.Itinerary, error)
	Airports(ctx context.Context) []domain.Airport
	AirportExists(ctx context.Context, code string) bool
}

// DataProvider is the read-only view of the loaded dataset.
type DataProvider interface {
	Airport(code string) (domain.Airport, bool)
	AirportExists(code string) bool
	Airports() []domain.Airport
	// FlightsDepartingOnDate matches on the departure's local calendar date.
	FlightsDepartingOnDate(origin string, date domain.LocalDate) []domain.Flight
	// FlightsDepartingFrom ignores dates; later legs are filtered by layover rules.
	FlightsDepartingFrom(origin string) []domain.Flight
}

type Producer interface {
	PublishSearch(ctx context.Context, topic string, event kafka.SearchEvent) error
}

type FlightService struct {
	data              DataProvider
	producer          Producer
	searchEventsTopic string
}

type FlightServiceOption func(*FlightService)

// WithSearchEvents publishes a kafka.SearchEvent for every completed search.
func WithSearchEvents(producer Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.searchEventsTopic = topic
	}
}

func NewFlightService(data DataProvider, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{data: data}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns every itinerary from origin to destination with at most
// MaxStops connections whose first leg departs on date, shortest first.
// Inputs are expected to be validated by the caller. An empty result is not
// an error; an error means the dataset is inconsistent.
func (s *FlightService) Search(ctx context.Context, origin, destination string, date domain.LocalDate) ([]domain.Itinerary, error) {
	start := time.Now()

	itineraries, err := findItineraries(s.data, origin, destination, date)
	if err != nil {
		return nil, fmt.Errorf("search %s-%s on %s: %w", origin, destination, date, err)
	}
	sortByDuration(itineraries)

	elapsed := time.Since(start)
	slog.DebugContext(ctx, "search completed",
		"origin", origin,
		"destination", destination,
		"date", date.String(),
		"itineraries", len(itineraries),
		"elapsed", elapsed,
	)

	s.publishSearch(ctx, kafka.SearchEvent{
		ID:          uuid.NewString(),
		Origin:      origin,
		Destination: destination,
		Date:        date.String(),
		Results:     len(itineraries),
		DurationMs:  elapsed.Milliseconds(),
		SearchedAt:  start.UTC(),
	})

	return itineraries, nil
}

func (s *FlightService) Airports(ctx context.Context) []domain.Airport {
	return s.data.Airports()
}

func (s *FlightService) AirportExists(ctx context.Context, code string) bool {
	return s.data.AirportExists(code)
}

// Event delivery is best effort and never fails a search.
func (s *FlightService) publishSearch(ctx context.Context, event kafka.SearchEvent) {
	if s.producer == nil || s.searchEventsTopic == "" {
		return
	}
	if err := s.producer.PublishSearch(ctx, s.searchEventsTopic, event); err != nil {
		slog.WarnContext(ctx, "failed to publish search event", "id", event.ID, "error", err)
	}
}

// sortByDuration keeps discovery order among equal durations.
func sortByDuration(itineraries []domain.Itinerary) {
	sort.SliceStable(itineraries, func(i, j int) bool {
		return itineraries[i].TotalDurationMinutes < itineraries[j].TotalDurationMinutes
	})
}

var _ FlightUseCase = (*FlightService)(nil)
