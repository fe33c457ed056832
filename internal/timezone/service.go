package timezone

import (
	"fmt"
	"sync"

	"fhapp-weather/internal/types"

	"github.com/ringsaturn/tzf"
)

// Service resolves the IANA timezone a forecast location falls in.
type Service interface {
	Lookup(coords types.Coords) (string, error)
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide timezone service. The finder holds the
// timezone polygons in memory, so it is built once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// Lookup returns names like "America/Denver" for the given coordinate.
func (s *service) Lookup(coords types.Coords) (string, error) {
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for %s", coords)
	}
	return name, nil
}
