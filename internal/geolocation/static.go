package geolocation

import (
	"context"

	"fhapp-weather/internal/types"
)

// Static always grants access and reports a fixed position. It backs the CLI
// and the server's configured default location.
type Static struct {
	position types.Coords
}

func NewStatic(latitude, longitude float64) *Static {
	return &Static{position: types.NewCoords(latitude, longitude)}
}

func (s *Static) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (s *Static) CurrentPosition(ctx context.Context) (types.Coords, error) {
	return s.position, nil
}
