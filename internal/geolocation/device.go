package geolocation

import (
	"context"

	"fhapp-weather/internal/types"
)

// Device is the position reported by a client device: the outcome of the
// permission prompt shown on the device and, when granted, its raw position.
type Device struct {
	PermissionGranted bool
	Position          *types.Coords
}

func NewDevice(granted bool, latitude, longitude float64) *Device {
	d := &Device{PermissionGranted: granted}
	if granted {
		pos := types.NewCoords(latitude, longitude)
		d.Position = &pos
	}
	return d
}

func (d *Device) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return d.PermissionGranted, nil
}

func (d *Device) CurrentPosition(ctx context.Context) (types.Coords, error) {
	if err := ctx.Err(); err != nil {
		return types.Coords{}, err
	}
	if d.Position == nil {
		return types.Coords{}, ErrPositionUnavailable
	}
	return *d.Position, nil
}
