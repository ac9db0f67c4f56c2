package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates in WGS-84 degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate rejects NaN/Inf and out-of-range latitude or longitude.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}
