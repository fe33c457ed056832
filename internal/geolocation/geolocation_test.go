package geolocation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fhapp-weather/internal/types"

	"github.com/google/go-cmp/cmp"
)

type mockProvider struct {
	granted       bool
	permissionErr error
	position      types.Coords
	positionErr   error
	positionCalls int
}

func (m *mockProvider) RequestPermission(ctx context.Context) (bool, error) {
	return m.granted, m.permissionErr
}

func (m *mockProvider) CurrentPosition(ctx context.Context) (types.Coords, error) {
	m.positionCalls++
	return m.position, m.positionErr
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name          string
		provider      *mockProvider
		want          types.Coords
		wantErr       error
		errContains   string
		positionCalls int
	}{
		{
			name:          "granted position is normalized",
			provider:      &mockProvider{granted: true, position: types.NewCoords(40.71234567, -74.00594321)},
			want:          types.NewCoords(40.7123, -74.0059),
			positionCalls: 1,
		},
		{
			name:          "denied never reads position",
			provider:      &mockProvider{granted: false, position: types.NewCoords(1, 1)},
			wantErr:       ErrPermissionDenied,
			positionCalls: 0,
		},
		{
			name:          "permission request error",
			provider:      &mockProvider{permissionErr: errors.New("prompt dismissed")},
			errContains:   "failed to request location permission",
			positionCalls: 0,
		},
		{
			name:          "position error",
			provider:      &mockProvider{granted: true, positionErr: errors.New("gps off")},
			errContains:   "failed to read current position",
			positionCalls: 1,
		},
		{
			name:          "out of range position",
			provider:      &mockProvider{granted: true, position: types.NewCoords(91, 0)},
			wantErr:       ErrPositionUnavailable,
			positionCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(context.Background(), tt.provider)

			if tt.provider.positionCalls != tt.positionCalls {
				t.Errorf("CurrentPosition called %d times, want %d", tt.provider.positionCalls, tt.positionCalls)
			}

			if tt.wantErr != nil || tt.errContains != "" {
				if err == nil {
					t.Fatal("Locate() expected error but got none")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("Locate() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Locate() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Locate() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Locate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDevice(t *testing.T) {
	t.Run("granted", func(t *testing.T) {
		got, err := Locate(context.Background(), NewDevice(true, 39.11539, -107.6584))
		if err != nil {
			t.Fatalf("Locate() unexpected error = %v", err)
		}
		if diff := cmp.Diff(types.NewCoords(39.1154, -107.6584), got); diff != "" {
			t.Errorf("Locate() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("denied", func(t *testing.T) {
		_, err := Locate(context.Background(), NewDevice(false, 39.11539, -107.6584))
		if !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("Locate() error = %v, want %v", err, ErrPermissionDenied)
		}
	})

	t.Run("granted without position", func(t *testing.T) {
		_, err := Locate(context.Background(), &Device{PermissionGranted: true})
		if !errors.Is(err, ErrPositionUnavailable) {
			t.Errorf("Locate() error = %v, want %v", err, ErrPositionUnavailable)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Locate(ctx, NewDevice(true, 1, 1))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Locate() error = %v, want context.Canceled", err)
		}
	})
}

func TestStatic(t *testing.T) {
	got, err := Locate(context.Background(), NewStatic(40.71234567, -74.00594321))
	if err != nil {
		t.Fatalf("Locate() unexpected error = %v", err)
	}
	if diff := cmp.Diff(types.NewCoords(40.7123, -74.0059), got); diff != "" {
		t.Errorf("Locate() mismatch (-want +got):\n%s", diff)
	}
}
