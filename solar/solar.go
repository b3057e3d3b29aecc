// Package solar picks the phase matching the real sun position at a location.
package solar

import (
	"fmt"
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/lixenwraith/daycycle/constant"
	"github.com/lixenwraith/daycycle/phase"
)

// Location is a point on Earth in decimal degrees
type Location struct {
	Lat, Lon float64
}

// Validate checks coordinate ranges
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90,90]", l.Lat)
	}
	if math.IsNaN(l.Lon) || l.Lon < -180 || l.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180,180]", l.Lon)
	}
	return nil
}

// Altitude returns the sun's altitude above the horizon in degrees
func Altitude(t time.Time, loc Location) float64 {
	pos := suncalc.GetPosition(t, loc.Lat, loc.Lon)
	return pos.Altitude * 180.0 / math.Pi
}

// PhaseAt maps the sun at t to a phase
// Within civil twilight of the horizon it is dawn while rising and dusk while setting,
// above that day, below it night
func PhaseAt(t time.Time, loc Location) phase.ID {
	alt := Altitude(t, loc)

	switch {
	case alt > constant.TwilightAltitudeDeg:
		return phase.Day
	case alt < -constant.TwilightAltitudeDeg:
		return phase.Night
	}

	if Altitude(t.Add(constant.SolarTrendLookahead), loc) >= alt {
		return phase.Dawn
	}
	return phase.Dusk
}
