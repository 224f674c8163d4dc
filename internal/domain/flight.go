package domain

type Flight struct {
	FlightNumber  string        `json:"flightNumber"`
	Airline       string        `json:"airline"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	DepartureTime LocalDateTime `json:"departureTime"`
	ArrivalTime   LocalDateTime `json:"arrivalTime"`
	Price         float64       `json:"price"`
	Aircraft      string        `json:"aircraft"`
}
