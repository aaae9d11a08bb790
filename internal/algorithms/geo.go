package algorithms

import "math"

const earthRadiusKM = 6371.0

// HaversineKM returns the great-circle distance in kilometers between two
// coordinates.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

// WithinRadius reports whether the caregiver is reachable: the distance must
// fit inside both the searcher's radius and the caregiver's own coverage
// radius. A zero coverage radius means the caregiver serves any distance.
func WithinRadius(distanceKM, searchRadiusKM, coverageRadiusKM float64) bool {
	if distanceKM > searchRadiusKM {
		return false
	}
	if coverageRadiusKM > 0 && distanceKM > coverageRadiusKM {
		return false
	}
	return true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
