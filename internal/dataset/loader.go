package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/Domenick1991/skypath/internal/domain"
)

// File is the on-disk layout of a dataset.
type File struct {
	Airports []domain.Airport `json:"airports"`
	Flights  []domain.Flight  `json:"flights"`
}

// LoadFile reads a dataset from path. A missing, unreadable or malformed
// file yields an empty store so the service still starts; only integrity
// faults in otherwise valid data are returned as errors.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("dataset file not found, starting with empty dataset", "path", path)
		} else {
			slog.Error("failed to read dataset file", "path", path, "error", err)
		}
		return Empty(), nil
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		slog.Error("failed to parse dataset file", "path", path, "error", err)
		return Empty(), nil
	}

	store, err := New(file.Airports, file.Flights)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}

	slog.Info("dataset loaded", "path", path, "airports", store.AirportCount(), "flights", store.FlightCount())
	return store, nil
}
