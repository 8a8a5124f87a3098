package repositories

import (
	"time"

	"localconnect/models"
)

// futureDate returns a YYYY-MM-DD date the given number of days from now.
func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// SeedProducts returns the fixed default catalog: 26 products across the
// four vendor locations. Used at first startup and whenever the persisted
// catalog is missing or unreadable, and by the vendor "reset" action.
func SeedProducts() []models.Product {
	return []models.Product{
		// --- Royapuram vendor ---
		{ID: "1", Name: "Tomato", Category: models.CategoryVegetables, Price: 50, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(10), Stock: 100, Rating: &models.Rating{Average: 4.5, Count: 120}, Location: models.LocationRoyapuram},
		{ID: "5", Name: "Apple", Category: models.CategoryFruits, Price: 120, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(20), Stock: 120, Rating: &models.Rating{Average: 4.6, Count: 180}, Location: models.LocationRoyapuram},
		{ID: "12", Name: "Cabbage", Category: models.CategoryVegetables, Price: 30, Unit: models.UnitKg, UnitIncrement: 0.5, ExpiryDate: futureDate(8), Stock: 70, Rating: &models.Rating{Average: 4.3, Count: 88}, Location: models.LocationRoyapuram},
		{ID: "13", Name: "Milk (Full Cream)", Category: models.CategoryDairy, Price: 65, Unit: models.UnitLitre, UnitIncrement: 0.5, ExpiryDate: futureDate(4), Stock: 40, Offer: &models.Offer{Percentage: 5, NewPrice: 61.75}, Rating: &models.Rating{Average: 4.8, Count: 210}, Location: models.LocationRoyapuram},
		{ID: "14", Name: "Dark Chocolate (70%)", Category: models.CategoryChocolates, Price: 160, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(200), Stock: 50, Rating: &models.Rating{Average: 4.9, Count: 350}, Location: models.LocationRoyapuram},
		{ID: "15", Name: "Times of India", Category: models.CategoryNewspapers, Price: 6, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(1), Stock: 150, Rating: &models.Rating{Average: 4.1, Count: 70}, Location: models.LocationRoyapuram},
		{ID: "16", Name: "Banana (Cavendish)", Category: models.CategoryFruits, Price: 55, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(6), Stock: 200, Rating: &models.Rating{Average: 4.5, Count: 190}, Location: models.LocationRoyapuram},

		// --- T. Nagar vendor ---
		{ID: "2", Name: "Milk", Category: models.CategoryDairy, Price: 60, Unit: models.UnitLitre, UnitIncrement: 0.5, ExpiryDate: futureDate(5), Stock: 50, Offer: &models.Offer{Percentage: 10, NewPrice: 54}, Rating: &models.Rating{Average: 4.8, Count: 250}, Location: models.LocationTNagar},
		{ID: "6", Name: "Carrot", Category: models.CategoryVegetables, Price: 40, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(15), Stock: 150, Rating: &models.Rating{Average: 4.4, Count: 95}, Location: models.LocationTNagar},
		{ID: "9", Name: "Butter Milk", Category: models.CategoryDairy, Price: 20, Unit: models.UnitLitre, UnitIncrement: 0.5, ExpiryDate: futureDate(8), Stock: 30, Rating: &models.Rating{Average: 4.3, Count: 60}, Location: models.LocationTNagar},
		{ID: "17", Name: "Cauliflower", Category: models.CategoryVegetables, Price: 45, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(7), Stock: 60, Offer: &models.Offer{Percentage: 10, NewPrice: 40.5}, Rating: &models.Rating{Average: 4.6, Count: 110}, Location: models.LocationTNagar},
		{ID: "18", Name: "Apple (Shimla)", Category: models.CategoryFruits, Price: 130, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(18), Stock: 90, Rating: &models.Rating{Average: 4.7, Count: 150}, Location: models.LocationTNagar},
		{ID: "19", Name: "The Hindu", Category: models.CategoryNewspapers, Price: 5, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(1), Stock: 250, Rating: &models.Rating{Average: 4.4, Count: 120}, Location: models.LocationTNagar},
		{ID: "11", Name: "White Chocolate (100g)", Category: models.CategoryChocolates, Price: 125, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(120), Stock: 75, Rating: &models.Rating{Average: 4.7, Count: 150}, Location: models.LocationTNagar},

		// --- Ashok Nagar vendor ---
		{ID: "3", Name: "The Hindu Newspaper", Category: models.CategoryNewspapers, Price: 5, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(1), Stock: 200, Rating: &models.Rating{Average: 4.2, Count: 80}, Location: models.LocationAshokNagar},
		{ID: "7", Name: "Yogurt (200g)", Category: models.CategoryDairy, Price: 45, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(12), Stock: 60, Rating: &models.Rating{Average: 4.7, Count: 150}, Location: models.LocationAshokNagar},
		{ID: "10", Name: "Cheese (150g)", Category: models.CategoryDairy, Price: 200, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(30), Stock: 40, Offer: &models.Offer{Percentage: 15, NewPrice: 170}, Rating: &models.Rating{Average: 4.8, Count: 190}, Location: models.LocationAshokNagar},
		{ID: "20", Name: "Brinjal (Eggplant)", Category: models.CategoryVegetables, Price: 35, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(9), Stock: 80, Rating: &models.Rating{Average: 4.2, Count: 75}, Location: models.LocationAshokNagar},
		{ID: "21", Name: "Tomato (Hybrid)", Category: models.CategoryVegetables, Price: 55, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(11), Stock: 110, Rating: &models.Rating{Average: 4.6, Count: 130}, Location: models.LocationAshokNagar},
		{ID: "22", Name: "Banana (Robusta)", Category: models.CategoryFruits, Price: 45, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(5), Stock: 150, Rating: &models.Rating{Average: 4.4, Count: 180}, Location: models.LocationAshokNagar},

		// --- Saidapetu vendor ---
		{ID: "4", Name: "Dark Chocolate (100g)", Category: models.CategoryChocolates, Price: 150, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(180), Stock: 80, Rating: &models.Rating{Average: 4.9, Count: 310}, Location: models.LocationSaidapetu},
		{ID: "8", Name: "Banana", Category: models.CategoryFruits, Price: 50, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(7), Stock: 180, Offer: &models.Offer{Percentage: 20, NewPrice: 40}, Rating: &models.Rating{Average: 4.5, Count: 210}, Location: models.LocationSaidapetu},
		{ID: "23", Name: "White Chocolate (100g)", Category: models.CategoryChocolates, Price: 120, Unit: models.UnitPieces, UnitIncrement: 1, ExpiryDate: futureDate(120), Stock: 60, Rating: &models.Rating{Average: 4.7, Count: 150}, Location: models.LocationSaidapetu},
		{ID: "24", Name: "Cabbage (Green)", Category: models.CategoryVegetables, Price: 28, Unit: models.UnitKg, UnitIncrement: 0.5, ExpiryDate: futureDate(9), Stock: 65, Rating: &models.Rating{Average: 4.4, Count: 80}, Location: models.LocationSaidapetu},
		{ID: "25", Name: "Carrot (Ooty)", Category: models.CategoryVegetables, Price: 42, Unit: models.UnitKg, UnitIncrement: 0.25, ExpiryDate: futureDate(14), Stock: 130, Offer: &models.Offer{Percentage: 5, NewPrice: 39.9}, Rating: &models.Rating{Average: 4.5, Count: 105}, Location: models.LocationSaidapetu},
		{ID: "26", Name: "Milk (Toned)", Category: models.CategoryDairy, Price: 58, Unit: models.UnitLitre, UnitIncrement: 0.5, ExpiryDate: futureDate(6), Stock: 80, Rating: &models.Rating{Average: 4.7, Count: 230}, Location: models.LocationSaidapetu},
	}
}
