package flights

import (
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/skypath/internal/domain"
)

const (
	MinLayoverDomesticMinutes      int64 = 45
	MinLayoverInternationalMinutes int64 = 90
	MaxLayoverMinutes              int64 = 360
)

var (
	// ErrConnectionRejected wraps every reason a pair of flights cannot be
	// chained. Rejections prune the search; they are never surfaced.
	ErrConnectionRejected = errors.New("connection rejected")
	ErrNegativeLayover    = fmt.Errorf("%w: departs before arrival", ErrConnectionRejected)
	ErrLayoverTooShort    = fmt.Errorf("%w: layover below minimum", ErrConnectionRejected)
	ErrLayoverTooLong     = fmt.Errorf("%w: layover above maximum", ErrConnectionRejected)

	// ErrUnknownAirport is a data-integrity fault, not a pruning reason.
	ErrUnknownAirport = domain.ErrUnknownAirport
)

// ConnectionValidator decides whether departing can follow arriving at the
// airport they share.
type ConnectionValidator struct {
	provider DataProvider
}

func NewConnectionValidator(provider DataProvider) ConnectionValidator {
	return ConnectionValidator{provider: provider}
}

// LayoverMinutes is the time between arriving's arrival and departing's
// departure, each read in its own airport's timezone.
func (v ConnectionValidator) LayoverMinutes(arriving, departing domain.Flight) (int64, error) {
	arrivalZone, err := v.zone(arriving.Destination)
	if err != nil {
		return 0, err
	}
	departureZone, err := v.zone(departing.Origin)
	if err != nil {
		return 0, err
	}

	return minutesBetween(arriving.ArrivalTime.In(arrivalZone), departing.DepartureTime.In(departureZone)), nil
}

// IsDomesticConnection reports whether both legs are domestic on their own:
// each leg's origin and destination share a country.
func (v ConnectionValidator) IsDomesticConnection(arriving, departing domain.Flight) (bool, error) {
	arrivingDomestic, err := v.isDomesticLeg(arriving)
	if err != nil {
		return false, err
	}
	departingDomestic, err := v.isDomesticLeg(departing)
	if err != nil {
		return false, err
	}
	return arrivingDomestic && departingDomestic, nil
}

// Validate returns the layover in minutes when the connection is legal.
// Illegal connections return an error wrapping ErrConnectionRejected.
func (v ConnectionValidator) Validate(arriving, departing domain.Flight) (int64, error) {
	layover, err := v.LayoverMinutes(arriving, departing)
	if err != nil {
		return 0, err
	}
	if layover < 0 {
		return layover, ErrNegativeLayover
	}

	domestic, err := v.IsDomesticConnection(arriving, departing)
	if err != nil {
		return 0, err
	}
	minimum := MinLayoverInternationalMinutes
	if domestic {
		minimum = MinLayoverDomesticMinutes
	}

	if layover < minimum {
		return layover, ErrLayoverTooShort
	}
	if layover > MaxLayoverMinutes {
		return layover, ErrLayoverTooLong
	}
	return layover, nil
}

func (v ConnectionValidator) isDomesticLeg(f domain.Flight) (bool, error) {
	origin, err := lookupAirport(v.provider, f.Origin)
	if err != nil {
		return false, err
	}
	destination, err := lookupAirport(v.provider, f.Destination)
	if err != nil {
		return false, err
	}
	return origin.Country == destination.Country, nil
}

func (v ConnectionValidator) zone(code string) (*time.Location, error) {
	airport, err := lookupAirport(v.provider, code)
	if err != nil {
		return nil, err
	}
	return airportZone(airport)
}

func lookupAirport(provider DataProvider, code string) (domain.Airport, error) {
	airport, ok := provider.Airport(code)
	if !ok {
		return domain.Airport{}, fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}
	return airport, nil
}

func airportZone(airport domain.Airport) (*time.Location, error) {
	loc, err := airport.Zone()
	if err != nil {
		return nil, fmt.Errorf("airport %s timezone %q: %w", airport.Code, airport.Timezone, err)
	}
	return loc, nil
}

// minutesBetween truncates toward zero.
func minutesBetween(from, to time.Time) int64 {
	return int64(to.Sub(from) / time.Minute)
}
