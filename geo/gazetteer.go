package geo

import (
	"errors"
	"sort"

	"github.com/paulmach/orb"

	"github.com/logindomarcio/permuta-magis-v3/normalize"
)

// ErrUnknownLocation is returned when a cycle visits a location the gazetteer cannot place.
var ErrUnknownLocation = errors.New("geo: unknown location")

// courts holds approximate capital coordinates of the state courts, {lon, lat}.
var courts = map[string]orb.Point{
	"TJAC": {-67.8243, -9.97499},
	"TJAL": {-35.735, -9.6658},
	"TJAM": {-60.0212, -3.1187},
	"TJAP": {-51.0694, 0.0349},
	"TJBA": {-38.5014, -12.9714},
	"TJCE": {-38.5433, -3.7172},
	"TJDF": {-47.8828, -15.7939},
	"TJES": {-40.3128, -20.3155},
	"TJGO": {-49.2648, -16.6869},
	"TJMA": {-44.3068, -2.5307},
	"TJMG": {-43.9345, -19.9167},
	"TJMS": {-54.6295, -20.4486},
	"TJMT": {-56.0949, -15.5989},
	"TJPA": {-48.5039, -1.4558},
	"TJPB": {-34.8641, -7.115},
	"TJPE": {-34.877, -8.0476},
	"TJPI": {-42.8016, -5.0892},
	"TJPR": {-49.2733, -25.4284},
	"TJRJ": {-43.1729, -22.9068},
	"TJRN": {-35.211, -5.7945},
	"TJRO": {-63.8999, -8.7608},
	"TJRR": {-60.6753, 2.8238},
	"TJRS": {-51.2177, -30.0346},
	"TJSC": {-48.548, -27.5954},
	"TJSE": {-37.0731, -10.9472},
	"TJSP": {-46.6333, -23.5505},
	"TJTO": {-48.3336, -10.1849},
}

// Gazetteer maps normalized location names to points. The zero value is empty;
// a Gazetteer is immutable once built and safe for concurrent use.
type Gazetteer struct {
	points map[string]orb.Point
	codes  []string // declared spellings, sorted
}

// Default returns a gazetteer with the 27 state courts.
func Default() *Gazetteer {
	g := &Gazetteer{points: make(map[string]orb.Point, len(courts))}
	for code, p := range courts {
		g.points[normalize.String(code)] = p
		g.codes = append(g.codes, code)
	}
	sort.Strings(g.codes)

	return g
}

// With returns a copy of g that also places code at p, replacing any previous
// point for the same normalized code. Blank codes are ignored.
func (g *Gazetteer) With(code string, p orb.Point) *Gazetteer {
	out := &Gazetteer{points: make(map[string]orb.Point, g.Len()+1)}
	if g != nil {
		for k, v := range g.points {
			out.points[k] = v
		}
		out.codes = append(out.codes, g.codes...)
	}
	key := normalize.String(code)
	if key == "" {
		return out
	}
	if _, exists := out.points[key]; !exists {
		out.codes = append(out.codes, code)
		sort.Strings(out.codes)
	}
	out.points[key] = p

	return out
}

// Lookup returns the point of loc in any spelling.
func (g *Gazetteer) Lookup(loc string) (orb.Point, bool) {
	if g == nil {
		return orb.Point{}, false
	}
	p, ok := g.points[normalize.String(loc)]

	return p, ok
}

// Len returns the number of known locations.
func (g *Gazetteer) Len() int {
	if g == nil {
		return 0
	}

	return len(g.points)
}

// Codes returns the known locations as first declared, sorted.
func (g *Gazetteer) Codes() []string {
	if g == nil {
		return nil
	}

	return append([]string(nil), g.codes...)
}
