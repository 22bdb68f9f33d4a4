package enums

import "fmt"

// AppRegion is a geographic area driving language, dialing format, and
// emergency numbers.
type AppRegion string

const (
	AppRegionChina      AppRegion = "china"
	AppRegionJapan      AppRegion = "japan"
	AppRegionSouthKorea AppRegion = "south_korea"
	AppRegionSpain      AppRegion = "spain"
	AppRegionFrance     AppRegion = "france"
	AppRegionGermany    AppRegion = "germany"
	AppRegionItaly      AppRegion = "italy"
	AppRegionPortugal   AppRegion = "portugal"
	AppRegionBrazil     AppRegion = "brazil"
	AppRegionUK         AppRegion = "uk"
	AppRegionCanada     AppRegion = "canada"
	AppRegionUS         AppRegion = "us"
	AppRegionAustralia  AppRegion = "australia"
	AppRegionSingapore  AppRegion = "singapore"
	AppRegionOther      AppRegion = "other"
)

var validAppRegions = []AppRegion{
	AppRegionChina,
	AppRegionJapan,
	AppRegionSouthKorea,
	AppRegionSpain,
	AppRegionFrance,
	AppRegionGermany,
	AppRegionItaly,
	AppRegionPortugal,
	AppRegionBrazil,
	AppRegionUK,
	AppRegionCanada,
	AppRegionUS,
	AppRegionAustralia,
	AppRegionSingapore,
	AppRegionOther,
}

// IsValid checks whether the given region matches the canonical enum.
func (a AppRegion) IsValid() bool {
	for _, candidate := range validAppRegions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAppRegion converts raw strings into AppRegion.
func ParseAppRegion(value string) (AppRegion, error) {
	for _, candidate := range validAppRegions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid app region %q", value)
}
