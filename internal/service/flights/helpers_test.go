package flights

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/skypath/internal/dataset"
	"github.com/Domenick1991/skypath/internal/domain"
	"github.com/Domenick1991/skypath/internal/kafka"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	JFK = domain.Airport{Code: "JFK", Name: "JFK International", City: "New York", Country: "US", Timezone: "America/New_York"}
	LAX = domain.Airport{Code: "LAX", Name: "LAX International", City: "Los Angeles", Country: "US", Timezone: "America/Los_Angeles"}
	ORD = domain.Airport{Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "US", Timezone: "America/Chicago"}
	DFW = domain.Airport{Code: "DFW", Name: "DFW International", City: "Dallas", Country: "US", Timezone: "America/Chicago"}
	SFO = domain.Airport{Code: "SFO", Name: "SFO Airport", City: "San Francisco", Country: "US", Timezone: "America/Los_Angeles"}
	LHR = domain.Airport{Code: "LHR", Name: "London Heathrow", City: "London", Country: "GB", Timezone: "Europe/London"}
	NRT = domain.Airport{Code: "NRT", Name: "Narita International", City: "Tokyo", Country: "JP", Timezone: "Asia/Tokyo"}
	SYD = domain.Airport{Code: "SYD", Name: "Sydney Airport", City: "Sydney", Country: "AU", Timezone: "Australia/Sydney"}

	testAirports = []domain.Airport{JFK, LAX, ORD, DFW, SFO, LHR, NRT, SYD}

	searchDate = domain.LocalDate{Year: 2024, Month: time.March, Day: 15}
)

// flight departs and arrives on the search date.
func flight(num, origin, dest string, depHour, depMin, arrHour, arrMin int, price float64) domain.Flight {
	return flightOn(num, origin, dest, 15, depHour, depMin, 15, arrHour, arrMin, price)
}

func flightOn(num, origin, dest string, depDay, depHour, depMin, arrDay, arrHour, arrMin int, price float64) domain.Flight {
	return domain.Flight{
		FlightNumber:  num,
		Airline:       "TestAir",
		Origin:        origin,
		Destination:   dest,
		DepartureTime: domain.NewLocalDateTime(2024, time.March, depDay, depHour, depMin),
		ArrivalTime:   domain.NewLocalDateTime(2024, time.March, arrDay, arrHour, arrMin),
		Price:         price,
		Aircraft:      "A320",
	}
}

func newStore(t *testing.T, flights ...domain.Flight) *dataset.Store {
	t.Helper()
	store, err := dataset.New(testAirports, flights)
	require.NoError(t, err)
	return store
}

func newService(t *testing.T, flights ...domain.Flight) *FlightService {
	t.Helper()
	return NewFlightService(newStore(t, flights...))
}

func search(t *testing.T, svc *FlightService, origin, destination string) []domain.Itinerary {
	t.Helper()
	results, err := svc.Search(context.Background(), origin, destination, searchDate)
	require.NoError(t, err)
	return results
}

type MockDataProvider struct {
	mock.Mock
}

func (m *MockDataProvider) Airport(code string) (domain.Airport, bool) {
	args := m.Called(code)
	return args.Get(0).(domain.Airport), args.Bool(1)
}

func (m *MockDataProvider) AirportExists(code string) bool {
	args := m.Called(code)
	return args.Bool(0)
}

func (m *MockDataProvider) Airports() []domain.Airport {
	args := m.Called()
	return args.Get(0).([]domain.Airport)
}

func (m *MockDataProvider) FlightsDepartingOnDate(origin string, date domain.LocalDate) []domain.Flight {
	args := m.Called(origin, date)
	return args.Get(0).([]domain.Flight)
}

func (m *MockDataProvider) FlightsDepartingFrom(origin string) []domain.Flight {
	args := m.Called(origin)
	return args.Get(0).([]domain.Flight)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishSearch(ctx context.Context, topic string, event kafka.SearchEvent) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}
