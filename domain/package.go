package domain

// Package is a catalog entry: a stay that can be listed, searched, wishlisted
// and booked. Prices are per night, in rupees.
type Package struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Location  string   `json:"location"`
	Price     int      `json:"price"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Image     string   `json:"image"`
	Type      string   `json:"type"`
	Category  string   `json:"category"`
	Amenities []string `json:"amenities"`
}

// Clone returns a copy that does not share the amenities slice.
func (p Package) Clone() Package {
	c := p
	c.Amenities = append([]string(nil), p.Amenities...)
	return c
}

// Location is a featured destination shown on the home page.
type Location struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Country string `json:"country"`
	Image   string `json:"image"`
}
