package domain

import (
	"errors"
	"time"
)

// ErrUnknownAirport means a flight references an airport the dataset does
// not know. It is a data-integrity fault wherever it surfaces.
var ErrUnknownAirport = errors.New("unknown airport")

type Airport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`

	// Location is Timezone resolved once when the dataset is loaded.
	Location *time.Location `json:"-"`
}

// Zone returns the airport's resolved location, loading it from Timezone
// when the airport was built outside the dataset loader.
func (a Airport) Zone() (*time.Location, error) {
	if a.Location != nil {
		return a.Location, nil
	}
	return time.LoadLocation(a.Timezone)
}
