package entities

// Brand is one commercial brand of a generic medicine. The brand
// table maps a lowercased generic name to its brands in load order.
type Brand struct {
	BrandName  string `json:"brand_name"`
	Company    string `json:"company"`
	Form       string `json:"form"`
	Strength   string `json:"strength"`
	PriceRange string `json:"price_range"`
}
