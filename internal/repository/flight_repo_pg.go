package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/skypath/internal/dataset"
	"github.com/Domenick1991/skypath/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FlightRepository reads the schedule used to build the in-memory dataset.
// departure_time and arrival_time are "timestamp without time zone" columns
// holding airport-local wall-clock values.
type FlightRepository interface {
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name, city, country, timezone FROM airports ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Timezone); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGFlightRepository) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT flight_number, airline, origin, destination, departure_time, arrival_time, price::float8, aircraft FROM flights ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var (
			f                  domain.Flight
			departure, arrival time.Time
		)
		if err := rows.Scan(&f.FlightNumber, &f.Airline, &f.Origin, &f.Destination, &departure, &arrival, &f.Price, &f.Aircraft); err != nil {
			return nil, err
		}
		f.DepartureTime = domain.LocalDateTimeOf(departure)
		f.ArrivalTime = domain.LocalDateTimeOf(arrival)
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// LoadDataset reads every airport and flight from repo into a dataset.Store.
func LoadDataset(ctx context.Context, repo FlightRepository) (*dataset.Store, error) {
	airports, err := repo.ListAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	flights, err := repo.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	store, err := dataset.New(airports, flights)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "dataset loaded from postgres", "airports", store.AirportCount(), "flights", store.FlightCount())
	return store, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
