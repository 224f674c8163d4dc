package domain

type FlightSegment struct {
	FlightNumber    string `json:"flightNumber"`
	Airline         string `json:"airline"`
	OriginCode      string `json:"originCode"`
	OriginName      string `json:"originName"`
	OriginCity      string `json:"originCity"`
	DestinationCode string `json:"destinationCode"`
	DestinationName string `json:"destinationName"`
	DestinationCity string `json:"destinationCity"`
	DepartureTime   string `json:"departureTime"`
	ArrivalTime     string `json:"arrivalTime"`
	DurationMinutes int64  `json:"durationMinutes"`
	Aircraft        string `json:"aircraft"`
}

type Layover struct {
	AirportCode     string `json:"airportCode"`
	AirportName     string `json:"airportName"`
	AirportCity     string `json:"airportCity"`
	DurationMinutes int64  `json:"durationMinutes"`
}

// Itinerary is one complete origin-to-destination path. Stops always equals
// len(Segments)-1 and len(Layovers).
type Itinerary struct {
	Segments             []FlightSegment `json:"segments"`
	Layovers             []Layover       `json:"layovers"`
	TotalDurationMinutes int64           `json:"totalDurationMinutes"`
	TotalPrice           float64         `json:"totalPrice"`
	Stops                int             `json:"stops"`
}
