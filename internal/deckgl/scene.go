// Package deckgl composes declarative deck.gl scene descriptions. It builds
// the JSON the browser-side renderer consumes; no rendering happens here.
package deckgl

import (
	"github.com/rk-304/nyc-collision-dashboard/internal/boundary"
	"github.com/rk-304/nyc-collision-dashboard/internal/domain"
)

// Layer types understood by the renderer.
const (
	ScatterplotLayer = "ScatterplotLayer"
	PolygonLayer     = "PolygonLayer"
)

// Point layer styling: fixed radius, translucent red fill.
var (
	accidentRadius    = 50.0
	accidentFillColor = [4]int{255, 0, 0, 160}
	overlayFillColor  = [4]int{255, 165, 0, 180}
)

// Position is a [longitude, latitude] pair, in deck.gl coordinate order.
type Position [2]float64

// Layer describes one deck.gl layer. Data holds []Position for scatterplot
// layers and []PolygonDatum for polygon layers.
type Layer struct {
	Type         string  `json:"type"`
	Data         any     `json:"data"`
	GetRadius    float64 `json:"getRadius,omitempty"`
	GetFillColor [4]int  `json:"getFillColor"`
	Pickable     bool    `json:"pickable"`
	Opacity      float64 `json:"opacity"`
}

// PolygonDatum wraps a boundary ring the way deck.gl's PolygonLayer
// expects its rows.
type PolygonDatum struct {
	Coordinates boundary.Polygon `json:"coordinates"`
}

// ViewState is the initial map viewport.
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
	Pitch     int     `json:"pitch"`
}

// Scene is a complete declarative map description.
type Scene struct {
	Layers    []Layer   `json:"layers"`
	ViewState ViewState `json:"initialViewState"`
}

// Compose builds a scene from filtered accidents: a point layer over every
// coordinate pair, an optional overlay polygon for the modal borough, and
// a viewport centered on the mean coordinate at a fixed zoom. Returns an
// empty scene and false when the dataset has no points to draw.
func Compose(ds domain.Dataset, modalBorough string, boundaries boundary.Provider) (Scene, bool) {
	if len(ds) == 0 {
		return Scene{}, false
	}

	positions := make([]Position, len(ds))
	var latSum, lonSum float64
	for i, a := range ds {
		positions[i] = Position{a.Longitude, a.Latitude}
		latSum += a.Latitude
		lonSum += a.Longitude
	}

	scene := Scene{
		Layers: []Layer{{
			Type:         ScatterplotLayer,
			Data:         positions,
			GetRadius:    accidentRadius,
			GetFillColor: accidentFillColor,
			Pickable:     true,
			Opacity:      0.8,
		}},
		ViewState: ViewState{
			Latitude:  latSum / float64(len(ds)),
			Longitude: lonSum / float64(len(ds)),
			Zoom:      12,
			Pitch:     0,
		},
	}

	if boundaries != nil {
		if ring, ok := boundaries.Lookup(modalBorough); ok {
			scene.Layers = append(scene.Layers, Layer{
				Type:         PolygonLayer,
				Data:         []PolygonDatum{{Coordinates: ring}},
				GetFillColor: overlayFillColor,
				Pickable:     false,
				Opacity:      0.5,
			})
		}
	}

	return scene, true
}
