package models

// VendorLocation identifies one of the four fixed vendor operating areas.
// It doubles as the "which vendor" key throughout the system.
type VendorLocation string

const (
	LocationRoyapuram  VendorLocation = "royapuram"
	LocationTNagar     VendorLocation = "t.nagar"
	LocationAshokNagar VendorLocation = "ashok nagar"
	LocationSaidapetu  VendorLocation = "saidapetu"
)

// Location is a geographic coordinate pair in degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// VendorCoordinates maps each vendor location code to its fixed position.
var VendorCoordinates = map[VendorLocation]Location{
	LocationRoyapuram:  {Lat: 13.1143, Lng: 80.2936},
	LocationTNagar:     {Lat: 13.0392, Lng: 80.2337},
	LocationAshokNagar: {Lat: 13.0406, Lng: 80.2123},
	LocationSaidapetu:  {Lat: 13.0232, Lng: 80.2235},
}

// IsValidVendorLocation reports whether the code is one of the four fixed areas.
func IsValidVendorLocation(loc VendorLocation) bool {
	_, ok := VendorCoordinates[loc]
	return ok
}

type ProductCategory string

const (
	CategoryVegetables ProductCategory = "vegetables"
	CategoryFruits     ProductCategory = "fruits"
	CategoryDairy      ProductCategory = "dairy"
	CategoryChocolates ProductCategory = "chocolates"
	CategoryNewspapers ProductCategory = "newspapers"
)

// ValidCategories lists the categories the catalog accepts on write.
var ValidCategories = []ProductCategory{
	CategoryVegetables,
	CategoryFruits,
	CategoryDairy,
	CategoryChocolates,
	CategoryNewspapers,
}

// EnsureValidCategory coerces unknown categories to vegetables so the
// catalog always stays renderable. The coercion is reported by the catalog
// service rather than rejected here.
func EnsureValidCategory(category ProductCategory) ProductCategory {
	for _, valid := range ValidCategories {
		if category == valid {
			return category
		}
	}
	return CategoryVegetables
}

type Unit string

const (
	UnitKg     Unit = "kg"
	UnitLitre  Unit = "L"
	UnitPieces Unit = "pcs"
)

// Offer is a temporary discount: a percentage and the precomputed discounted
// price. Consistency between the two is the caller's responsibility.
type Offer struct {
	Percentage float64 `json:"percentage"`
	NewPrice   float64 `json:"new_price"`
}

type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      ProductCategory `json:"category"`
	Price         float64         `json:"price"`
	Unit          Unit            `json:"unit"`
	UnitIncrement float64         `json:"unit_increment,omitempty"`
	Offer         *Offer          `json:"offer,omitempty"`
	ExpiryDate    string          `json:"expiry_date"`
	Stock         float64         `json:"stock"`
	Rating        *Rating         `json:"rating,omitempty"`
	Location      VendorLocation  `json:"location"`
}

// EffectivePrice is the discounted unit price when an offer is attached.
func (p Product) EffectivePrice() float64 {
	if p.Offer != nil {
		return p.Offer.NewPrice
	}
	return p.Price
}
