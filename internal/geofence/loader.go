package geofence

import (
	"encoding/json"
	"os"
)

// polygonFile mirrors the on-disk shape of a geofence file: one polygon
// ring, an optional altitude band, and whether a valid home position is
// required before the fence can be evaluated at all.
type polygonFile struct {
	Vertices   [][2]float64 `json:"vertices"`
	HomeNeeded bool         `json:"home_needed"`
	MinAlt     *float64     `json:"min_alt"`
	MaxAlt     *float64     `json:"max_alt"`
}

// LoadPolygonFile reads a JSON-encoded polygon geofence from path.
func LoadPolygonFile(path string) (*Polygon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f polygonFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}

	p := &Polygon{
		Vertices:   f.Vertices,
		HomeNeeded: f.HomeNeeded,
	}
	if f.MinAlt != nil {
		p.HasMinAlt = true
		p.MinAlt = *f.MinAlt
	}
	if f.MaxAlt != nil {
		p.HasMaxAlt = true
		p.MaxAlt = *f.MaxAlt
	}

	return p, nil
}
