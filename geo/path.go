package geo

import (
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
)

// Path returns the closed route of c: every participant's current location in
// cycle order, followed by the first one again.
//
// Returns ErrUnknownLocation (wrapped, naming the location) when any court
// cannot be placed.
//
// Complexity: O(k).
func (g *Gazetteer) Path(c cycle.Cycle) (orb.LineString, error) {
	if c.Len() == 0 {
		return nil, nil
	}
	ls := make(orb.LineString, 0, c.Len()+1)
	for _, l := range c.Legs {
		p, ok := g.Lookup(l.Participant.CurrentLocation)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, l.Participant.CurrentLocation)
		}
		ls = append(ls, p)
	}

	return append(ls, ls[0]), nil
}

// FeatureCollection converts cycles into GeoJSON LineString features carrying
// the participants, their courts, the cycle key and the route length in km.
// Cycles visiting a location the gazetteer cannot place are skipped with a
// warning on logger (slog.Default when nil).
func (g *Gazetteer) FeatureCollection(cycles []cycle.Cycle, logger *slog.Logger) *geojson.FeatureCollection {
	if logger == nil {
		logger = slog.Default()
	}
	fc := geojson.NewFeatureCollection()
	for _, c := range cycles {
		ls, err := g.Path(c)
		if err != nil {
			logger.Warn("geo: skipping cycle", slog.String("cycle", c.Key()), slog.Any("error", err))
			continue
		}
		if ls == nil {
			continue
		}

		names := make([]string, c.Len())
		locations := make([]string, c.Len())
		for i, l := range c.Legs {
			names[i] = l.Participant.Name
			locations[i] = l.Participant.CurrentLocation
		}

		f := geojson.NewFeature(ls)
		f.Properties["key"] = c.Key()
		f.Properties["length"] = c.Len()
		f.Properties["participants"] = names
		f.Properties["locations"] = locations
		f.Properties["length_km"] = orbgeo.LengthHaversine(ls) / 1000
		fc.Append(f)
	}

	return fc
}
