package dto

// SearchRequest holds the catalog filters accepted by /api/packages and
// /api/search. Empty or zero fields do not filter.
type SearchRequest struct {
	Query     string  `json:"q" form:"q"`
	Type      string  `json:"type" form:"type"`
	Category  string  `json:"category" form:"category"`
	Location  string  `json:"location" form:"location"`
	MinPrice  *int    `json:"minPrice" form:"minPrice"`
	MaxPrice  *int    `json:"maxPrice" form:"maxPrice"`
	MinRating float64 `json:"rating" form:"rating"`
	SortBy    string  `json:"sort" form:"sort"`
}

// Sort orders understood by the catalog
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortPopular   = "popular"
)
