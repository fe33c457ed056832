package timezone

import (
	"testing"

	"fhapp-weather/internal/types"
)

func TestService_Lookup(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name   string
		coords types.Coords
		want   string
	}{
		{
			name:   "Aspen, Colorado",
			coords: types.NormalizeCoords(39.11539, -107.65840),
			want:   "America/Denver",
		},
		{
			name:   "New York City",
			coords: types.NormalizeCoords(40.71234567, -74.00594321),
			want:   "America/New_York",
		},
		{
			name:   "Honolulu",
			coords: types.NormalizeCoords(21.3069, -157.8583),
			want:   "Pacific/Honolulu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Lookup(tt.coords)
			if err != nil {
				t.Errorf("Lookup() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewService_Singleton(t *testing.T) {
	a, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	b, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	if a != b {
		t.Error("NewService() returned different instances")
	}
}
