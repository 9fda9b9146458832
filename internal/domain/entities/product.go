package entities

// Product is a digital good sold by the storefront.
//
// Catalog notes:
//   - The catalog is compiled into the service and never mutated; products have
//     no lifecycle.
//   - Name/Price and the fulfillment PDFURL live on the same record so order
//     creation and fulfillment cannot drift apart.
//
// Monetary representation:
//   - Price is in whole rupees; GST and paise conversion happen at order time.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Level       string   `json:"level"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
	PDFURL      string   `json:"-"`
}

var catalog = []Product{
	{
		ID:          "beginner-program",
		Name:        "FlexMode Beginner Program",
		Level:       "Beginner",
		Price:       499,
		Description: "6-week structured beginner plan with RPE and home/gym versions.",
		Image:       "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=400&h=400&fit=crop",
		Features: []string{
			"5-Day Split with Push/Pull/Legs",
			"RPE chart + warm-up system",
			"Progression rules",
			"Beginner-friendly substitutions",
		},
		PDFURL: "https://drive.google.com/uc?export=download&id=YOUR_FILE_ID_1",
	},
	{
		ID:          "intermediate-program",
		Name:        "FlexMode Intermediate Program",
		Level:       "Intermediate",
		Price:       699,
		Description: "8-week bridge program with weekly intensification and volume cycling.",
		Image:       "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?w=400&h=400&fit=crop",
		Features: []string{
			"Push/Pull/Legs/Upper/Full body split",
			"RPE 7-8 progression",
			"Volume cycling",
			"Specialization add-ons",
		},
		PDFURL: "https://drive.google.com/uc?export=download&id=YOUR_FILE_ID_2",
	},
	{
		ID:          "advanced-program",
		Name:        "FlexMode Advanced Program",
		Level:       "Advanced",
		Price:       899,
		Description: "12-week elite periodization with strength and hypertrophy phases.",
		Image:       "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=400&h=400&fit=crop",
		Features: []string{
			"Advanced periodization",
			"Strength & hypertrophy phases",
			"Deload protocols",
			"Elite progression systems",
		},
		PDFURL: "https://drive.google.com/uc?export=download&id=YOUR_FILE_ID_3",
	},
	{
		ID:          "nutrition-guide",
		Name:        "FlexMode Nutrition Guide",
		Level:       "All Levels",
		Price:       399,
		Description: "Macros, calories, sample meal templates & snack lists.",
		Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=400&fit=crop",
		Features: []string{
			"Daily calorie formula",
			"Protein/Carb/Fat targets",
			"Meal templates",
			"Grocery list + snack list",
		},
		PDFURL: "https://drive.google.com/uc?export=download&id=YOUR_FILE_ID_4",
	},
	{
		ID:          "home-gym-bundle",
		Name:        "Home Gym Mastery Bundle",
		Level:       "Beginner-Intermediate",
		Price:       1199,
		Description: "Complete home workout system with minimal equipment adaptations.",
		Image:       "https://images.unsplash.com/photo-1597622985686-d560147fda9f?w=400&h=400&fit=crop",
		Features: []string{
			"Equipment substitutions",
			"4-week foundation phase",
			"Dumbbell & bodyweight options",
			"Progressive overload guide",
		},
		PDFURL: "https://drive.google.com/uc?export=download&id=YOUR_FILE_ID_5",
	},
	{
		ID:          "full-bundle",
		Name:        "FlexMode Complete Bundle",
		Level:       "All Levels",
		Price:       1999,
		Description: "Everything you need: All programs + nutrition + bonus guides.",
		Image:       "https://images.unsplash.com/photo-1517836357463-d25ddfcb3ef7?w=400&h=400&fit=crop",
		Features: []string{
			"All 3 Training Programs",
			"Complete Nutrition Guide",
			"Bonus Stretching Guide",
			"Lifetime updates",
		},
		PDFURL: "https://drive.google.com/uc?export=download&id=YOUR_FILE_ID_6",
	},
}

var catalogByID = func() map[string]Product {
	m := make(map[string]Product, len(catalog))
	for _, p := range catalog {
		m[p.ID] = p
	}
	return m
}()

// ProductByID looks a product up by its catalog key.
func ProductByID(id string) (Product, bool) {
	p, ok := catalogByID[id]
	return p, ok
}

// Products returns the catalog in display order.
func Products() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}
