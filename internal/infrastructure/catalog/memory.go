package catalog

import (
	"context"

	"github.com/loki47z/msih-hackathon/internal/domain"
)

// Categories is the controlled category vocabulary. List order is a contract:
// the query parser picks the first entry matching the query, so more specific
// or more common categories come first.
var Categories = []string{
	"Fresh Produce",
	"Clothing & Textiles",
	"Electronics",
	"Handcrafts",
	"Food & Beverages",
	"Home & Garden",
	"Health & Beauty",
	"Sports & Outdoors",
	"Books & Media",
	"Automotive",
	"Business Services",
	"Education",
}

// Cities is the controlled city vocabulary, same ordering contract as Categories
var Cities = []string{
	"Blantyre",
	"Lilongwe",
	"Mzuzu",
	"Zomba",
	"Kasungu",
	"Mangochi",
	"Salima",
	"Dedza",
	"Karonga",
	"Nsanje",
	"Nkhata Bay",
	"Balaka",
}

// MemoryCatalog is an in-memory, read-only product catalog.
// The search core never mutates it.
type MemoryCatalog struct {
	products   []domain.Product
	byID       map[string]int
	categories []string
	cities     []string
}

// NewMemoryCatalog creates a catalog over the given products and vocabularies
func NewMemoryCatalog(products []domain.Product, categories, cities []string) *MemoryCatalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &MemoryCatalog{
		products:   products,
		byID:       byID,
		categories: categories,
		cities:     cities,
	}
}

// NewSeededCatalog creates a catalog pre-populated with the marketplace
// sample listings and the standard vocabularies
func NewSeededCatalog() *MemoryCatalog {
	return NewMemoryCatalog(seedProducts, Categories, Cities)
}

// Products returns the catalog in stable order
func (c *MemoryCatalog) Products(ctx context.Context) ([]domain.Product, error) {
	return c.products, nil
}

// ProductByID looks up a single product
func (c *MemoryCatalog) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &c.products[i], nil
}

// Categories returns the category vocabulary
func (c *MemoryCatalog) Categories() []string {
	return c.categories
}

// Cities returns the city vocabulary
func (c *MemoryCatalog) Cities() []string {
	return c.cities
}

// seedProducts are the sample marketplace listings
var seedProducts = []domain.Product{
	{
		ID:           "1",
		Name:         "Fresh Organic Mangoes",
		Description:  "Sweet and juicy mangoes harvested from local farms in Salima. Perfect for smoothies and desserts.",
		Price:        100,
		Category:     "Fresh Produce",
		BusinessName: "Salima Fresh Farms",
		BusinessID:   "b1",
		Location:     domain.Location{City: "Salima", Lat: -13.7833, Lng: 34.4583},
		Rating:       4.8,
		ReviewCount:  124,
		DateAdded:    "2024-01-15",
	},
	{
		ID:           "2",
		Name:         "Chitenje Fabric",
		Description:  "Beautiful traditional Malawian fabric with vibrant patterns. 6 yards per piece.",
		Price:        8500,
		Category:     "Clothing & Textiles",
		BusinessName: "Mama Grace Textiles",
		BusinessID:   "b2",
		Location:     domain.Location{City: "Blantyre", Lat: -15.7861, Lng: 35.0058},
		Rating:       4.9,
		ReviewCount:  89,
		DateAdded:    "2024-01-10",
	},
	{
		ID:           "3",
		Name:         "Wooden Carved Giraffe",
		Description:  "Hand-carved African giraffe sculpture made from local mahogany wood. Perfect home decor.",
		Price:        15000,
		Category:     "Handcrafts",
		BusinessName: "Lilongwe Crafts Co.",
		BusinessID:   "b3",
		Location:     domain.Location{City: "Lilongwe", Lat: -13.9626, Lng: 33.7741},
		Rating:       4.7,
		ReviewCount:  56,
		DateAdded:    "2024-01-08",
	},
	{
		ID:           "4",
		Name:         "Chambo Fish (Fresh)",
		Description:  "Premium quality fresh Chambo fish from Lake Malawi. Traditional delicacy packed with protein.",
		Price:        4500,
		Category:     "Food & Beverages",
		BusinessName: "Madeco Fisheries",
		BusinessID:   "b4",
		Location:     domain.Location{City: "Mangochi", Lat: -14.4667, Lng: 35.2667},
		Rating:       4.6,
		ReviewCount:  203,
		DateAdded:    "2024-01-12",
	},
	{
		ID:           "5",
		Name:         "Organic Honey (250Ml)",
		Description:  "Pure natural honey harvested from Zomba Plateau. No additives, raw and unprocessed.",
		Price:        6000,
		Category:     "Food & Beverages",
		BusinessName: "Zomba Bee Keepers",
		BusinessID:   "b5",
		Location:     domain.Location{City: "Zomba", Lat: -15.3833, Lng: 35.3167},
		Rating:       4.9,
		ReviewCount:  167,
		DateAdded:    "2024-01-14",
	},
	{
		ID:           "6",
		Name:         "Solar Phone Charger",
		Description:  "Portable solar charger perfect for rural areas. Charges 2 phones simultaneously.",
		Price:        12000,
		Category:     "Electronics",
		BusinessName: "Green Tech Malawi",
		BusinessID:   "b6",
		Location:     domain.Location{City: "Lilongwe", Lat: -13.9626, Lng: 33.7741},
		Rating:       4.5,
		ReviewCount:  78,
		DateAdded:    "2024-01-11",
	},
	{
		ID:           "7",
		Name:         "Shea Butter Cream",
		Description:  "Natural shea butter moisturizing cream. Locally made with Malawian shea nuts.",
		Price:        3500,
		Category:     "Health & Beauty",
		BusinessName: "Natural Beauty MW",
		BusinessID:   "b7",
		Location:     domain.Location{City: "Blantyre", Lat: -15.7861, Lng: 35.0058},
		Rating:       4.7,
		ReviewCount:  92,
		DateAdded:    "2024-01-09",
	},
	{
		ID:           "8",
		Name:         "Bamboo Storage Baskets",
		Description:  "Set of 3 handwoven bamboo baskets. Perfect for kitchen or living room storage.",
		Price:        7500,
		Category:     "Home & Garden",
		BusinessName: "Eco Crafts Malawi",
		BusinessID:   "b8",
		Location:     domain.Location{City: "Mzuzu", Lat: -11.4658, Lng: 34.0207},
		Rating:       4.8,
		ReviewCount:  45,
		DateAdded:    "2024-01-13",
	},
	{
		ID:           "9",
		Name:         "Fresh Tomatoes (5kg)",
		Description:  "Farm-fresh tomatoes from Dedza highlands. Organic and pesticide-free.",
		Price:        3000,
		Category:     "Fresh Produce",
		BusinessName: "Dedza Fresh",
		BusinessID:   "b9",
		Location:     domain.Location{City: "Dedza", Lat: -14.35, Lng: 34.3},
		Rating:       4.4,
		ReviewCount:  61,
		DateAdded:    "2024-01-07",
	},
	{
		ID:           "15",
		Name:         "Fresh Vegetables (Assorted)",
		Description:  "Locally grown assorted vegetables - tomatoes, onions, greens. Sold per kg.",
		Price:        500,
		Category:     "Fresh Produce",
		BusinessName: "Green Valley Farm",
		BusinessID:   "b15",
		Location:     domain.Location{City: "Salima", Lat: -13.7833, Lng: 34.4583},
		Rating:       4.7,
		ReviewCount:  58,
		DateAdded:    "2026-01-05",
	},
	{
		ID:           "16",
		Name:         "Phone Cases",
		Description:  "Durable phone cases for popular smartphone models. Multiple colours available.",
		Price:        5000,
		Category:     "Electronics",
		BusinessName: "CaseWorks",
		BusinessID:   "b16",
		Location:     domain.Location{City: "Lilongwe", Lat: -13.9626, Lng: 33.7741},
		Rating:       4.3,
		ReviewCount:  22,
		DateAdded:    "2026-01-05",
	},
	{
		ID:           "17",
		Name:         "Bananas (1 bunch)",
		Description:  "Fresh ripe bananas from local farms - sweet and ready to eat.",
		Price:        600,
		Category:     "Fresh Produce",
		BusinessName: "Dedza Orchards",
		BusinessID:   "b17",
		Location:     domain.Location{City: "Dedza", Lat: -14.35, Lng: 34.3},
		Rating:       4.5,
		ReviewCount:  41,
		DateAdded:    "2026-01-05",
	},
}
