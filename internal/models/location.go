package models

import "strconv"

// GeoPoint is a pickup coordinate pair. The attribute names match the
// persisted record layout, so they stay capitalized in JSON as well.
type GeoPoint struct {
	Latitude  float64 `json:"Latitude" dynamodbav:"Latitude"`
	Longitude float64 `json:"Longitude" dynamodbav:"Longitude"`
	Address   string  `json:"Address,omitempty" dynamodbav:"Address,omitempty"`
}

// FormattedAddress returns the stored address, falling back to a
// "lat, lng" string when the rider did not supply one.
func (g GeoPoint) FormattedAddress() string {
	if g.Address != "" {
		return g.Address
	}
	return strconv.FormatFloat(g.Latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(g.Longitude, 'f', -1, 64)
}

func (g GeoPoint) InRange() bool {
	return g.Latitude >= -90 && g.Latitude <= 90 && g.Longitude >= -180 && g.Longitude <= 180
}
