// Package catalog holds the storefront's product list. Products are compiled
// in rather than admin-managed; the shop carries a small, stable range of
// Kashmiri goods.
package catalog

// Product is a sellable catalog entry. Variants are pack sizes in the
// product's unit (grams for most goods).
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Variants    []float64 `json:"variants,omitempty"`
}

var products = []Product{
	{
		ID:          "saffron-premium",
		Name:        "Premium Kashmiri Saffron",
		Price:       500,
		Image:       "/products/saffron-premium.png",
		Category:    "Saffron",
		Description: "Signature Mongra saffron, hand-picked from the highlands of Pampore. Known for its deep crimson stigmas and potent aroma.",
		Variants:    []float64{1, 3, 5},
	},
	{
		ID:          "saffron-bulk",
		Name:        "Royal Saffron (Bulk)",
		Price:       9000,
		Image:       "/products/saffron-bulk.jpg",
		Category:    "Saffron",
		Description: "The same premium quality saffron in larger quantities for chefs and connoisseurs, packaged in a traditional tin.",
		Variants:    []float64{20},
	},
	{
		ID:          "shilajit-original",
		Name:        "Pure Himalayan Shilajit",
		Price:       800,
		Image:       "/products/shilajit.png",
		Category:    "Kashmiri Special",
		Description: "Sourced from the highest altitudes of the Himalayas, purified using traditional Ayurvedic methods. Rich in fulvic acid.",
		Variants:    []float64{15, 30},
	},
	{
		ID:          "almonds",
		Name:        "Mamra Almonds",
		Price:       400,
		Image:       "/products/almonds.jpg",
		Category:    "Nuts",
		Description: "Kashmiri Mamra almonds, famous for their high oil content and superior taste.",
		Variants:    []float64{250, 500},
	},
	{
		ID:          "dry-mix",
		Name:        "Premium Dry Fruit Mix",
		Price:       300,
		Image:       "/products/dry-mix.jpg",
		Category:    "Nuts",
		Description: "A royal blend of cashews, almonds, raisins, walnuts, and dried apricots.",
		Variants:    []float64{250, 500},
	},
	{
		ID:          "saffron-honey",
		Name:        "Kashmiri Saffron Honey",
		Price:       600,
		Image:       "/products/saffron-honey.png",
		Category:    "Honey",
		Description: "Raw, unprocessed acacia honey infused with premium Mongra saffron strands.",
		Variants:    []float64{250, 500},
	},
	{
		ID:          "shahi-qawah",
		Name:        "Shahi Qawah (Herbal Tea)",
		Price:       250,
		Image:       "/products/shahi-qawah.jpg",
		Category:    "Tea",
		Description: "The traditional tea of Kashmir. A fragrant blend of green tea leaves, whole spices, and rose petals.",
		Variants:    []float64{100, 200},
	},
	{
		ID:          "shahi-heing",
		Name:        "Shahi Heing (Crystal)",
		Price:       150,
		Image:       "/products/shahi-heing.jpg",
		Category:    "Spices",
		Description: "Pure crystal asafoetida with an intense aroma, a staple of Kashmiri kitchens.",
		Variants:    []float64{10, 25},
	},
}

// All returns the full product list.
func All() []Product {
	return products
}

// Find returns the product with the given id, or nil.
func Find(id string) *Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
