package geolocation

import (
	"context"
	"errors"
	"fmt"

	"fhapp-weather/internal/types"
)

var (
	// ErrPermissionDenied is returned when the user refuses location access.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrPositionUnavailable is returned when permission was granted but no
	// position could be read.
	ErrPositionUnavailable = errors.New("position unavailable")
)

// Provider supplies the device position once the user has granted access.
type Provider interface {
	// RequestPermission asks for foreground location access.
	RequestPermission(ctx context.Context) (bool, error)
	// CurrentPosition returns the raw, un-normalized device position.
	CurrentPosition(ctx context.Context) (types.Coords, error)
}

// Locate runs the permission request followed by the position read and returns
// the normalized coordinate.
func Locate(ctx context.Context, p Provider) (types.Coords, error) {
	granted, err := p.RequestPermission(ctx)
	if err != nil {
		return types.Coords{}, fmt.Errorf("failed to request location permission: %w", err)
	}
	if !granted {
		return types.Coords{}, ErrPermissionDenied
	}

	pos, err := p.CurrentPosition(ctx)
	if err != nil {
		return types.Coords{}, fmt.Errorf("failed to read current position: %w", err)
	}
	if !pos.Valid() {
		return types.Coords{}, fmt.Errorf("%w: %v is out of range", ErrPositionUnavailable, pos)
	}

	return pos.Normalize(), nil
}
