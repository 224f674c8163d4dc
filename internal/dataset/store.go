// Package dataset holds the airports and flights the search runs against.
// A Store is built once at startup and is read-only afterwards, so it is
// safe for concurrent use without locking.
package dataset

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
)

var (
	ErrUnknownAirport  = domain.ErrUnknownAirport
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrMissingTime     = errors.New("missing departure or arrival time")
)

type Store struct {
	airports        map[string]domain.Airport
	flightsByOrigin map[string][]domain.Flight
	flightCount     int
}

// Empty returns a store with no airports and no flights.
func Empty() *Store {
	return &Store{
		airports:        map[string]domain.Airport{},
		flightsByOrigin: map[string][]domain.Flight{},
	}
}

// New indexes airports by code and flights by origin. A later airport with
// the same code replaces an earlier one. Every flight must reference known
// airports and carry both times, and every airport must carry a loadable
// IANA timezone.
func New(airports []domain.Airport, flights []domain.Flight) (*Store, error) {
	s := Empty()

	zones := make(map[string]*time.Location)
	for _, a := range airports {
		loc, ok := zones[a.Timezone]
		if !ok {
			var err error
			loc, err = time.LoadLocation(a.Timezone)
			if err != nil {
				return nil, fmt.Errorf("airport %s: %w %q: %v", a.Code, ErrInvalidTimezone, a.Timezone, err)
			}
			zones[a.Timezone] = loc
		}
		a.Location = loc
		s.airports[a.Code] = a
	}

	for _, f := range flights {
		if _, ok := s.airports[f.Origin]; !ok {
			return nil, fmt.Errorf("flight %s: origin %s: %w", f.FlightNumber, f.Origin, ErrUnknownAirport)
		}
		if _, ok := s.airports[f.Destination]; !ok {
			return nil, fmt.Errorf("flight %s: destination %s: %w", f.FlightNumber, f.Destination, ErrUnknownAirport)
		}
		if f.DepartureTime.IsZero() || f.ArrivalTime.IsZero() {
			return nil, fmt.Errorf("flight %s: %w", f.FlightNumber, ErrMissingTime)
		}
		s.flightsByOrigin[f.Origin] = append(s.flightsByOrigin[f.Origin], f)
	}
	s.flightCount = len(flights)

	return s, nil
}

func (s *Store) Airport(code string) (domain.Airport, bool) {
	a, ok := s.airports[code]
	return a, ok
}

func (s *Store) AirportExists(code string) bool {
	_, ok := s.airports[code]
	return ok
}

// Airports returns every airport ordered by code.
func (s *Store) Airports() []domain.Airport {
	list := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list
}

// FlightsDepartingOnDate compares date with the departure's local calendar
// date as stored, without any zone conversion.
func (s *Store) FlightsDepartingOnDate(origin string, date domain.LocalDate) []domain.Flight {
	var out []domain.Flight
	for _, f := range s.flightsByOrigin[origin] {
		if f.DepartureTime.Date() == date {
			out = append(out, f)
		}
	}
	return out
}

// FlightsDepartingFrom returns all flights leaving origin on any date. The
// returned slice is shared and must not be modified.
func (s *Store) FlightsDepartingFrom(origin string) []domain.Flight {
	return s.flightsByOrigin[origin]
}

func (s *Store) AirportCount() int { return len(s.airports) }

func (s *Store) FlightCount() int { return s.flightCount }
