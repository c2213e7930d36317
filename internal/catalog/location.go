package catalog

// Location is a bookable room.
type Location struct {
	Key      string
	Building string
	Campus   string
}

var locations = []Location{
	{Key: "HLL114", Building: "Hill Center", Campus: "Busch"},
	{Key: "ARC103", Building: "Allison Road Classroom", Campus: "Busch"},
	{Key: "AB2225", Building: "Academic Building", Campus: "College Avenue"},
	{Key: "MU302", Building: "Murray Hall", Campus: "College Avenue"},
	{Key: "BE_AUD", Building: "Beck Hall", Campus: "Livingston"},
	{Key: "TIL232", Building: "Tillett Hall", Campus: "Livingston"},
}

// LookupLocation finds a room by key, ignoring case.
func LookupLocation(name string) (Location, bool) {
	return lookup(locations, func(l Location) string { return l.Key }, name)
}

// Locations lists every room.
func Locations() []Location {
	return append([]Location(nil), locations...)
}
