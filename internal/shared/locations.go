package shared

// AllowedLocations is the closed set of locations accepted on write and
// served on read. Matching is exact and case-sensitive.
var AllowedLocations = []string{
	"Albuquerque, New Mexico",
	"Carlsbad, California",
	"Chula Vista, California",
	"Colorado Springs, Colorado",
	"Denver, Colorado",
	"El Cajon, California",
	"El Paso, Texas",
	"Escondido, California",
	"Fresno, California",
	"La Mesa, California",
	"Las Vegas, Nevada",
	"Los Angeles, California",
	"Oceanside, California",
	"Phoenix, Arizona",
	"Sacramento, California",
	"Salt Lake City, Utah",
	"San Diego, California",
	"Tucson, Arizona",
}

var allowedSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AllowedLocations))
	for _, l := range AllowedLocations {
		m[l] = struct{}{}
	}
	return m
}()

func IsAllowedLocation(loc string) bool {
	_, ok := allowedSet[loc]
	return ok
}
