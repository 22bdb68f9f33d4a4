package region

import (
	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/angelmondragon/easydial-core/pkg/types"
)

type regionBox struct {
	region enums.AppRegion
	box    types.BoundingBox
}

// regionBoxes is checked in order; the first containing box wins. Small or
// overlapping boxes come first: Singapore and the US island boxes before
// anything nearby, South Korea before Japan before China, Portugal before
// Spain, the UK before France, and the continental US before Canada (the
// shared latitude band between 41.7 and 49.4 resolves to the US). France is
// two boxes so that its eastern strip stops at latitude 49.5 and the
// Rhineland stays German; Saarland south of that line still reads as
// France.
var regionBoxes = []regionBox{
	{enums.AppRegionSingapore, types.BoundingBox{MinLat: 1.1, MaxLat: 1.5, MinLng: 103.5, MaxLng: 104.1}},
	{enums.AppRegionUS, types.BoundingBox{MinLat: 18.5, MaxLat: 22.5, MinLng: -161.0, MaxLng: -154.0}}, // Hawaii
	{enums.AppRegionUS, types.BoundingBox{MinLat: 51.0, MaxLat: 71.5, MinLng: -170.0, MaxLng: -129.0}}, // Alaska
	{enums.AppRegionSouthKorea, types.BoundingBox{MinLat: 33.0, MaxLat: 39.0, MinLng: 124.0, MaxLng: 132.0}},
	{enums.AppRegionJapan, types.BoundingBox{MinLat: 24.0, MaxLat: 46.0, MinLng: 123.0, MaxLng: 146.0}},
	{enums.AppRegionChina, types.BoundingBox{MinLat: 18.0, MaxLat: 54.0, MinLng: 73.0, MaxLng: 135.0}},
	{enums.AppRegionPortugal, types.BoundingBox{MinLat: 36.9, MaxLat: 42.2, MinLng: -9.6, MaxLng: -6.2}},
	{enums.AppRegionSpain, types.BoundingBox{MinLat: 36.0, MaxLat: 44.0, MinLng: -9.5, MaxLng: 3.5}},
	{enums.AppRegionUK, types.BoundingBox{MinLat: 49.9, MaxLat: 59.0, MinLng: -8.2, MaxLng: 1.8}},
	{enums.AppRegionFrance, types.BoundingBox{MinLat: 42.0, MaxLat: 51.2, MinLng: -5.0, MaxLng: 5.8}},
	{enums.AppRegionFrance, types.BoundingBox{MinLat: 42.0, MaxLat: 49.5, MinLng: 5.8, MaxLng: 8.5}}, // Alsace-Lorraine
	{enums.AppRegionGermany, types.BoundingBox{MinLat: 47.0, MaxLat: 55.0, MinLng: 5.8, MaxLng: 15.0}},
	{enums.AppRegionItaly, types.BoundingBox{MinLat: 36.0, MaxLat: 47.2, MinLng: 6.6, MaxLng: 18.6}},
	{enums.AppRegionBrazil, types.BoundingBox{MinLat: -34.0, MaxLat: 5.3, MinLng: -74.0, MaxLng: -34.0}},
	{enums.AppRegionUS, types.BoundingBox{MinLat: 24.5, MaxLat: 49.4, MinLng: -125.0, MaxLng: -66.9}}, // continental
	{enums.AppRegionCanada, types.BoundingBox{MinLat: 41.7, MaxLat: 83.0, MinLng: -141.0, MaxLng: -52.0}},
	{enums.AppRegionAustralia, types.BoundingBox{MinLat: -44.0, MaxLat: -10.0, MinLng: 112.0, MaxLng: 154.0}},
}

// ResolveCoordinate maps a geographic fix to a region. Coordinates outside
// every box, and invalid coordinates, resolve to the catch-all region.
func ResolveCoordinate(c types.Coordinate) enums.AppRegion {
	if !c.Valid() {
		return enums.AppRegionOther
	}
	for _, candidate := range regionBoxes {
		if candidate.box.Contains(c) {
			return candidate.region
		}
	}
	return enums.AppRegionOther
}
