// Package boundary provides borough boundary polygons for map overlays.
package boundary

import "strings"

// Polygon is a closed ring of [longitude, latitude] pairs; the first and
// last points are equal.
type Polygon [][2]float64

// Provider looks up a boundary polygon by region name. Absent entries mean
// no overlay is drawn; additional boroughs can be supplied by plugging in a
// different Provider.
type Provider interface {
	Lookup(name string) (Polygon, bool)
}

// StaticProvider serves a fixed set of boundary rings keyed by lowercased
// borough name.
type StaticProvider struct {
	polygons map[string]Polygon
}

// NewStaticProvider returns a provider with the built-in borough rings.
// The rings are coarse bounding boxes, not surveyed borough limits.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		polygons: map[string]Polygon{
			"manhattan": {
				{-74.0201, 40.7003},
				{-73.9306, 40.7003},
				{-73.9306, 40.8003},
				{-74.0201, 40.8003},
				{-74.0201, 40.7003},
			},
			"brooklyn": {
				{-73.9794, 40.5730},
				{-73.8994, 40.5730},
				{-73.8994, 40.6930},
				{-73.9794, 40.6930},
				{-73.9794, 40.5730},
			},
		},
	}
}

// Lookup is case-insensitive.
func (p *StaticProvider) Lookup(name string) (Polygon, bool) {
	poly, ok := p.polygons[strings.ToLower(strings.TrimSpace(name))]
	return poly, ok
}
