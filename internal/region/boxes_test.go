package region

import (
	"testing"

	"github.com/angelmondragon/easydial-core/pkg/enums"
	"github.com/angelmondragon/easydial-core/pkg/types"
)

func TestResolveCoordinate(t *testing.T) {
	cases := []struct {
		name string
		c    types.Coordinate
		want enums.AppRegion
	}{
		{"beijing", types.Coordinate{Lat: 39.9, Lng: 116.4}, enums.AppRegionChina},
		{"tokyo", types.Coordinate{Lat: 35.6, Lng: 139.7}, enums.AppRegionJapan},
		{"seoul", types.Coordinate{Lat: 37.5, Lng: 127.0}, enums.AppRegionSouthKorea},
		{"arctic", types.Coordinate{Lat: 90.0, Lng: 0.0}, enums.AppRegionOther},
		{"madrid", types.Coordinate{Lat: 40.4, Lng: -3.7}, enums.AppRegionSpain},
		{"lisbon", types.Coordinate{Lat: 38.7, Lng: -9.1}, enums.AppRegionPortugal},
		{"paris", types.Coordinate{Lat: 48.9, Lng: 2.4}, enums.AppRegionFrance},
		{"strasbourg", types.Coordinate{Lat: 48.6, Lng: 7.8}, enums.AppRegionFrance},
		{"cologne", types.Coordinate{Lat: 50.9, Lng: 6.96}, enums.AppRegionGermany},
		{"frankfurt", types.Coordinate{Lat: 50.1, Lng: 8.7}, enums.AppRegionGermany},
		{"london", types.Coordinate{Lat: 51.5, Lng: -0.1}, enums.AppRegionUK},
		{"berlin", types.Coordinate{Lat: 52.5, Lng: 13.4}, enums.AppRegionGermany},
		{"rome", types.Coordinate{Lat: 41.9, Lng: 12.5}, enums.AppRegionItaly},
		{"sao_paulo", types.Coordinate{Lat: -23.5, Lng: -46.6}, enums.AppRegionBrazil},
		{"new_york", types.Coordinate{Lat: 40.7, Lng: -74.0}, enums.AppRegionUS},
		{"anchorage", types.Coordinate{Lat: 61.2, Lng: -149.9}, enums.AppRegionUS},
		{"honolulu", types.Coordinate{Lat: 21.3, Lng: -157.9}, enums.AppRegionUS},
		{"yellowknife", types.Coordinate{Lat: 62.5, Lng: -114.4}, enums.AppRegionCanada},
		{"sydney", types.Coordinate{Lat: -33.9, Lng: 151.2}, enums.AppRegionAustralia},
		{"singapore", types.Coordinate{Lat: 1.35, Lng: 103.8}, enums.AppRegionSingapore},
		{"mid_atlantic", types.Coordinate{Lat: 20.0, Lng: -40.0}, enums.AppRegionOther},
		{"invalid", types.Coordinate{Lat: 120.0, Lng: 400.0}, enums.AppRegionOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveCoordinate(tc.c); got != tc.want {
				t.Fatalf("%s: expected %s, got %s", tc.c, tc.want, got)
			}
		})
	}
}

// The continental US and Canada boxes share a latitude band; the listed
// order resolves it to the US.
func TestSharedBandResolvesToUS(t *testing.T) {
	seattle := types.Coordinate{Lat: 47.6, Lng: -122.3}
	if got := ResolveCoordinate(seattle); got != enums.AppRegionUS {
		t.Fatalf("expected us, got %s", got)
	}
}
