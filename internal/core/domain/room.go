package domain

// RoomType describes one bookable room category. The catalogue keeps a
// single entry per type name, chosen as the cheapest room of that type
// in the inventory file. Entries are immutable after load.
type RoomType struct {
	Name          string
	RoomID        int
	MaxPeople     int
	PricePerNight float64
}

// AvailableRoom is a search result presented to a front end. RoomNumber
// is the 1-based position of the type in the catalogue, so the ordinal a
// guest sees stays stable regardless of which types got filtered out.
type AvailableRoom struct {
	RoomNumber    int
	RoomID        int
	RoomType      string
	PricePerNight float64
}
