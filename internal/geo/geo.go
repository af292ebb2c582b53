// Package geo derives map geometry for scenario entities. Scenario
// records store positions in the simulator's local metric frame; the map
// front end draws footprints and works in Web Mercator, so both the
// oriented footprint polygon and the CRS transforms live here.
package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"

	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

// ErrInvalidCoordinates is returned when a coordinate string cannot be parsed.
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// Footprint dimensions (length, width in meters) per entity kind. These
// match the constant bounding boxes written into the exported document.
var footprintDims = map[core.EntityKind][2]float64{
	core.KindEgoVehicle: {4.5, 2.1},
	core.KindVehicle:    {4.5, 2.1},
	core.KindPedestrian: {0.6, 0.6},
	core.KindStaticProp: {1.0, 1.0},
}

// Footprint builds the oriented bounding polygon for an entity standing
// at pos with the given heading (radians, counterclockwise from east).
func Footprint(kind core.EntityKind, pos core.Position3D, heading float64) geom.Polygon {
	dims, ok := footprintDims[kind]
	if !ok {
		dims = footprintDims[core.KindStaticProp]
	}
	halfLen, halfWid := dims[0]/2, dims[1]/2

	sin, cos := math.Sincos(heading)

	// corner offsets in the entity frame, closed ring
	local := [][2]float64{
		{halfLen, halfWid},
		{halfLen, -halfWid},
		{-halfLen, -halfWid},
		{-halfLen, halfWid},
		{halfLen, halfWid},
	}

	coords := make([]float64, 0, len(local)*2)
	for _, c := range local {
		coords = append(coords,
			pos.X+c[0]*cos-c[1]*sin,
			pos.Y+c[0]*sin+c[1]*cos,
		)
	}

	ring, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	if err != nil {
		return geom.Polygon{}
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return geom.Polygon{}
	}
	return poly
}

// PositionFromString parses "x,y" or "x,y,z" into a core.Position3D.
func PositionFromString(coords string) (core.Position3D, error) {
	parts := strings.Split(coords, ",")
	if len(parts) < 2 {
		return core.Position3D{}, ErrInvalidCoordinates
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return core.Position3D{}, ErrInvalidCoordinates
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return core.Position3D{}, ErrInvalidCoordinates
	}
	var z float64
	if len(parts) > 2 {
		z, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return core.Position3D{}, ErrInvalidCoordinates
		}
	}
	return core.Position3D{X: x, Y: y, Z: z}, nil
}

// WebMercatorFromWGS84 converts longitude/latitude (EPSG:4326) to Web
// Mercator (EPSG:3857), the projection the map canvas renders in.
func WebMercatorFromWGS84(longitude, latitude float64) (x, y float64) {
	epsg := wgs84.EPSG()
	f := epsg.Transform(4326, 3857)
	x, y, _ = f(longitude, latitude, 0)
	return x, y
}

// WGS84FromWebMercator converts Web Mercator coordinates back to
// longitude/latitude.
func WGS84FromWebMercator(x, y float64) (longitude, latitude float64) {
	epsg := wgs84.EPSG()
	f := epsg.Transform(3857, 4326)
	longitude, latitude, _ = f(x, y, 0)
	return longitude, latitude
}
