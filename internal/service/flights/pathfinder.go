package flights

import (
	"errors"

	"github.com/Domenick1991/skypath/internal/domain"
)

// MaxStops bounds a path to MaxStops+1 legs.
const MaxStops = 2

// pathFinder owns the mutable state of a single search. It must not be
// shared between searches.
type pathFinder struct {
	provider    DataProvider
	validator   ConnectionValidator
	builder     ItineraryBuilder
	destination string

	path    []domain.Flight
	visited map[string]struct{}
	results []domain.Itinerary
}

// findItineraries enumerates every chain of at most MaxStops+1 flights from
// origin to destination whose first leg departs on date. Results come back
// in discovery order.
func findItineraries(provider DataProvider, origin, destination string, date domain.LocalDate) ([]domain.Itinerary, error) {
	validator := NewConnectionValidator(provider)
	pf := &pathFinder{
		provider:    provider,
		validator:   validator,
		builder:     NewItineraryBuilder(provider, validator),
		destination: destination,
		path:        make([]domain.Flight, 0, MaxStops+1),
		visited:     map[string]struct{}{origin: {}},
		results:     []domain.Itinerary{},
	}

	for _, first := range provider.FlightsDepartingOnDate(origin, date) {
		pf.push(first)

		var err error
		if first.Destination == destination {
			err = pf.record()
		} else {
			unmark := pf.mark(first.Destination)
			err = pf.extend(1)
			unmark()
		}

		pf.pop()
		if err != nil {
			return nil, err
		}
	}

	return pf.results, nil
}

func (pf *pathFinder) extend(depth int) error {
	if depth > MaxStops {
		return nil
	}

	previous := pf.path[len(pf.path)-1]
	for _, candidate := range pf.provider.FlightsDepartingFrom(previous.Destination) {
		if _, err := pf.validator.Validate(previous, candidate); err != nil {
			if errors.Is(err, ErrConnectionRejected) {
				continue
			}
			return err
		}

		if _, seen := pf.visited[candidate.Destination]; seen && candidate.Destination != pf.destination {
			continue
		}

		pf.push(candidate)

		var err error
		if candidate.Destination == pf.destination {
			err = pf.record()
		} else if depth < MaxStops {
			unmark := pf.mark(candidate.Destination)
			err = pf.extend(depth + 1)
			unmark()
		}

		pf.pop()
		if err != nil {
			return err
		}
	}

	return nil
}

func (pf *pathFinder) record() error {
	legs := make([]domain.Flight, len(pf.path))
	copy(legs, pf.path)

	itinerary, err := pf.builder.Build(legs)
	if err != nil {
		return err
	}
	pf.results = append(pf.results, itinerary)
	return nil
}

// mark adds code to the visited set and returns the undo for this branch.
// An airport that was already visited stays visited after the undo.
func (pf *pathFinder) mark(code string) func() {
	if _, ok := pf.visited[code]; ok {
		return func() {}
	}
	pf.visited[code] = struct{}{}
	return func() { delete(pf.visited, code) }
}

func (pf *pathFinder) push(f domain.Flight) {
	pf.path = append(pf.path, f)
}

func (pf *pathFinder) pop() {
	pf.path = pf.path[:len(pf.path)-1]
}
