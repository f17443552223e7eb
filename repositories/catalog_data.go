package repositories

import "github.com/vishalpatil-45/Adventour/domain"

const unsplash = "https://images.unsplash.com/"
const imageParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"

// DefaultPackages is the catalog shipped with the site
func DefaultPackages() []domain.Package {
	return []domain.Package{
		{ID: 1, Title: "Luxury Beach Villa", Location: "Goa, India", Price: 2700, Rating: 4.8, Reviews: 124,
			Image: unsplash + "photo-1571896349842-33c89424de2d" + imageParams, Type: "beach", Category: "beach",
			Amenities: []string{"WiFi", "Pool", "Parking", "Kitchen"}},
		{ID: 2, Title: "Mountain Cabin Retreat", Location: "Kashmir, India", Price: 4999, Rating: 4.6, Reviews: 89,
			Image: unsplash + "photo-1566073771259-6a8506099945" + imageParams, Type: "mountain", Category: "mountain",
			Amenities: []string{"WiFi", "Fireplace", "Parking", "Mountain View"}},
		{ID: 3, Title: "Modern City Apartment", Location: "Mumbai, India", Price: 9999, Rating: 4.9, Reviews: 156,
			Image: unsplash + "photo-1520250497591-112f2f40a3f4" + imageParams, Type: "city", Category: "city",
			Amenities: []string{"WiFi", "Gym", "Parking", "City View"}},
		{ID: 4, Title: "5-Star Luxury Resort", Location: "Dubai, UAE", Price: 30000, Rating: 4.9, Reviews: 203,
			Image: unsplash + "photo-1578683010236-d716f9a3f461" + imageParams, Type: "luxury", Category: "luxury",
			Amenities: []string{"WiFi", "Pool", "Spa", "Restaurant", "Concierge"}},
		{ID: 5, Title: "Charming Paris Apartment", Location: "Paris, France", Price: 47500, Rating: 4.8, Reviews: 167,
			Image: unsplash + "photo-1571003123894-1f0594d2b5d9" + imageParams, Type: "city", Category: "city",
			Amenities: []string{"WiFi", "Kitchen", "Historic Building", "City Center"}},
		{ID: 6, Title: "Tropical Villa", Location: "Bali, Indonesia", Price: 37700, Rating: 4.7, Reviews: 98,
			Image: unsplash + "photo-1584132967334-10e028bd69f7" + imageParams, Type: "beach", Category: "beach",
			Amenities: []string{"WiFi", "Pool", "Garden", "Ocean View"}},
		{ID: 8, Title: "Kerala Backwater Villa", Location: "Kerala, India", Price: 12000, Rating: 4.9, Reviews: 134,
			Image: unsplash + "photo-1571983823232-07e8610c35a1" + imageParams, Type: "nature", Category: "nature",
			Amenities: []string{"WiFi", "Garden", "Boat Access", "River View"}},
		{ID: 11, Title: "Luxury Mumbai Apartment", Location: "Mumbai, India", Price: 8500, Rating: 4.6, Reviews: 89,
			Image: unsplash + "photo-1522708323590-d24dbb6b0267" + imageParams, Type: "city", Category: "city",
			Amenities: []string{"WiFi", "Gym", "Parking", "City View"}},
		{ID: 14, Title: "Historic City Center Hotel", Location: "Istanbul, Turkey", Price: 18500, Rating: 4.6, Reviews: 98,
			Image: unsplash + "photo-1524231757912-21f4fe3a7200" + imageParams, Type: "historic", Category: "historic",
			Amenities: []string{"WiFi", "Historic Building", "City Center", "Restaurant"}},
		{ID: 15, Title: "Burj Khalifa View Suite", Location: "Dubai, UAE", Price: 45000, Rating: 4.9, Reviews: 203,
			Image: unsplash + "photo-1582719478250-c89cae4dc85b" + imageParams, Type: "luxury", Category: "luxury",
			Amenities: []string{"WiFi", "Pool", "Spa", "Gym", "Luxury View"}},
		{ID: 16, Title: "Private Beach Villa", Location: "Bali, Indonesia", Price: 25000, Rating: 4.7, Reviews: 156,
			Image: unsplash + "photo-1573843981267-be1999ff37cd" + imageParams, Type: "tropical", Category: "tropical",
			Amenities: []string{"WiFi", "Pool", "Beach Access", "Garden"}},
	}
}

// DefaultLocations is the featured destinations list
func DefaultLocations() []domain.Location {
	return []domain.Location{
		{Name: "Kashmir", Country: "India", Image: unsplash + "photo-1506905925346-21bda4d32df4" + imageParams},
		{Name: "Istanbul", Country: "Turkey", Image: unsplash + "photo-1524231757912-21f4fe3a7200" + imageParams},
		{Name: "Paris", Country: "France", Image: unsplash + "photo-1502602898536-47ad22581b52" + imageParams},
		{Name: "Bali", Country: "Indonesia", Image: unsplash + "photo-1537953773345-d172ccf13cf1" + imageParams},
		{Name: "Dubai", Country: "UAE", Image: unsplash + "photo-1512453979798-5ea266f8880c" + imageParams},
		{Name: "Geneva", Country: "Switzerland", Image: unsplash + "photo-1506905925346-21bda4d32df4" + imageParams},
	}
}
