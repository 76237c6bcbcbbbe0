package db

import (
	"context"
	"fmt"
	"log"

	"cobudget-backend-go/internal/models"
)

// seedCatalog is the sample product catalog (prices in rupees). Two
// representative products per store category.
var seedCatalog = []*models.Product{
	{ID: "FV001", Name: "Fresh Bananas", Price: 45, Category: "Fruits & Vegetables", Tags: []string{"fruits", "fresh", "organic", "bananas"}},
	{ID: "FV002", Name: "Red Apples", Price: 180, Category: "Fruits & Vegetables", Tags: []string{"fruits", "apples", "fresh", "red"}},
	{ID: "FV003", Name: "Spinach Leaves", Price: 65, Category: "Fruits & Vegetables", Tags: []string{"vegetables", "greens", "spinach", "keto", "low sodium"}},
	{ID: "BF001", Name: "Cerelac Baby Cereal", Price: 275, Category: "Baby Food", Tags: []string{"baby", "cereal", "nutrition", "cerelac"}},
	{ID: "BF002", Name: "Baby Wipes", Price: 145, Category: "Baby Food", Tags: []string{"baby", "wipes", "gentle", "cleaning"}},
	{ID: "BS001", Name: "Kellogg's Corn Flakes", Price: 285, Category: "Breakfast & Sauces", Tags: []string{"cereal", "breakfast", "kelloggs", "cornflakes"}},
	{ID: "BS002", Name: "Maggi Tomato Ketchup", Price: 125, Category: "Breakfast & Sauces", Tags: []string{"sauce", "ketchup", "maggi", "tomato"}},
	{ID: "CE001", Name: "Surf Excel Detergent", Price: 345, Category: "Cleaning Essentials", Tags: []string{"detergent", "washing", "clothes", "surf"}},
	{ID: "CE002", Name: "Vim Dishwash Liquid", Price: 95, Category: "Cleaning Essentials", Tags: []string{"dishwash", "liquid", "cleaning", "vim"}},
	{ID: "AR001", Name: "Aashirvaad Whole Wheat Atta", Price: 485, Category: "Atta, Rice, Oil & Dals", Tags: []string{"atta", "wheat", "flour", "aashirvaad"}},
	{ID: "AR002", Name: "Basmati Rice 5kg", Price: 725, Category: "Atta, Rice, Oil & Dals", Tags: []string{"rice", "basmati", "grain", "cooking", "biryani"}},
	{ID: "AR004", Name: "Toor Dal", Price: 185, Category: "Atta, Rice, Oil & Dals", Tags: []string{"dal", "lentils", "protein", "toor"}},
	{ID: "DB001", Name: "Amul Fresh Milk", Price: 65, Category: "Dairy, Bread & Eggs", Tags: []string{"milk", "dairy", "fresh", "amul"}},
	{ID: "DB002", Name: "Britannia Bread", Price: 35, Category: "Dairy, Bread & Eggs", Tags: []string{"bread", "loaf", "britannia", "wheat"}},
	{ID: "DB003", Name: "Farm Fresh Eggs", Price: 125, Category: "Dairy, Bread & Eggs", Tags: []string{"eggs", "protein", "fresh", "dozen", "high protein"}},
	{ID: "TC001", Name: "Tata Tea Gold", Price: 425, Category: "Tea, Coffee & More", Tags: []string{"tea", "tata", "premium", "beverage"}},
	{ID: "TC002", Name: "Nescafe Instant Coffee", Price: 285, Category: "Tea, Coffee & More", Tags: []string{"coffee", "instant", "nescafe", "beverage"}},
	{ID: "MD001", Name: "MDH Garam Masala", Price: 85, Category: "Masala & Dry Fruits", Tags: []string{"spices", "masala", "cooking", "mdh", "biryani"}},
	{ID: "MD002", Name: "Almonds 250g", Price: 485, Category: "Masala & Dry Fruits", Tags: []string{"nuts", "almonds", "dry fruits", "healthy", "keto"}},
	{ID: "CD001", Name: "Coca Cola 1.25L", Price: 65, Category: "Cold Drinks & Juices", Tags: []string{"cola", "soft drink", "beverage", "coca"}},
	{ID: "CD002", Name: "Real Orange Juice", Price: 125, Category: "Cold Drinks & Juices", Tags: []string{"juice", "orange", "real", "fresh"}},
	{ID: "BI001", Name: "Parle-G Biscuits", Price: 25, Category: "Biscuits", Tags: []string{"biscuits", "parle", "glucose", "snack"}},
	{ID: "BI002", Name: "Oreo Cookies", Price: 55, Category: "Biscuits", Tags: []string{"cookies", "oreo", "chocolate", "cream"}},
	{ID: "SC001", Name: "Cadbury Dairy Milk", Price: 85, Category: "Sweet Cravings", Tags: []string{"chocolate", "cadbury", "sweet", "dairy milk"}},
	{ID: "SC002", Name: "Haldiram's Gulab Jamun", Price: 165, Category: "Sweet Cravings", Tags: []string{"sweets", "gulab jamun", "haldirams", "dessert", "wedding"}},
	{ID: "MU001", Name: "Lay's Potato Chips", Price: 25, Category: "Munchies", Tags: []string{"chips", "snacks", "lays", "potato", "party"}},
	{ID: "MU002", Name: "Kurkure Masala Munch", Price: 20, Category: "Munchies", Tags: []string{"snacks", "kurkure", "spicy", "munch"}},
	{ID: "MB001", Name: "Lakme Foundation", Price: 565, Category: "Makeup & Beauty", Tags: []string{"makeup", "foundation", "lakme", "beauty"}},
	{ID: "MB002", Name: "Himalaya Face Wash", Price: 125, Category: "Makeup & Beauty", Tags: []string{"skincare", "face wash", "himalaya", "natural"}},
	{ID: "HG001", Name: "Colgate Toothpaste", Price: 85, Category: "Hygiene & Grooming", Tags: []string{"toothpaste", "dental", "colgate", "oral care"}},
	{ID: "HG002", Name: "Head & Shoulders Shampoo", Price: 265, Category: "Hygiene & Grooming", Tags: []string{"shampoo", "hair care", "head shoulders", "dandruff"}},
	{ID: "FF001", Name: "Amul Ice Cream", Price: 185, Category: "Frozen Food & Ice Creams", Tags: []string{"ice cream", "frozen", "amul", "dessert"}},
	{ID: "FF002", Name: "McCain Fries", Price: 225, Category: "Frozen Food & Ice Creams", Tags: []string{"frozen", "fries", "mccain", "potato"}},
	{ID: "MF001", Name: "Fresh Chicken 1kg", Price: 285, Category: "Meats, Fish & Eggs", Tags: []string{"chicken", "fresh", "meat", "protein", "biryani"}},
	{ID: "MF002", Name: "Fish Fillets", Price: 385, Category: "Meats, Fish & Eggs", Tags: []string{"fish", "seafood", "fillets", "protein", "high protein"}},
	{ID: "BB001", Name: "Dove Soap", Price: 65, Category: "Bath & Body", Tags: []string{"soap", "bath", "dove", "moisturizing"}},
	{ID: "BB002", Name: "Nivea Body Lotion", Price: 185, Category: "Bath & Body", Tags: []string{"lotion", "body care", "nivea", "moisturizer"}},
	{ID: "HB001", Name: "Vicks VapoRub", Price: 125, Category: "Health & Baby Care", Tags: []string{"health", "vicks", "cold relief", "balm"}},
	{ID: "HB002", Name: "Dettol Antiseptic", Price: 145, Category: "Health & Baby Care", Tags: []string{"antiseptic", "dettol", "disinfectant", "health"}},
	{ID: "HN001", Name: "Philips LED Bulb", Price: 285, Category: "Home Needs", Tags: []string{"bulb", "led", "philips", "lighting"}},
	{ID: "HN002", Name: "Godrej Air Freshener", Price: 125, Category: "Home Needs", Tags: []string{"air freshener", "godrej", "fragrance", "home"}},
	{ID: "EA001", Name: "Samsung Phone Charger", Price: 785, Category: "Electricals & Accessories", Tags: []string{"charger", "samsung", "phone", "electronics"}},
	{ID: "EA002", Name: "Boat Earphones", Price: 1285, Category: "Electricals & Accessories", Tags: []string{"earphones", "boat", "audio", "wireless"}},
}

// SeedProducts populates the products collection with the sample catalog if
// it is empty. Returns the number of products written (zero when the
// catalog already has documents).
func SeedProducts(ctx context.Context, repo ProductRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count existing products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	products := make([]*models.Product, 0, len(seedCatalog))
	for _, p := range seedCatalog {
		seeded := *p
		seeded.Description = fmt.Sprintf("Quality %s", p.Name)
		seeded.InStock = true
		products = append(products, &seeded)
	}

	if err := repo.CreateAll(ctx, products); err != nil {
		return 0, fmt.Errorf("failed to seed products: %w", err)
	}
	log.Printf("Seeded %d products into catalog", len(products))
	return len(products), nil
}
