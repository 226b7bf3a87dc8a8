package config

import (
	"log"
	"os"

	"kifkif-backend/models"

	"gopkg.in/yaml.v3"
)

// SeedCatalog returns the products written on first initialization. When
// SEED_FILE points at a YAML catalog it is used instead of the built-in
// default; a file that cannot be read or parsed falls back to the default.
func SeedCatalog() []models.Product {
	path := os.Getenv("SEED_FILE")
	if path == "" {
		return DefaultSeedCatalog()
	}

	products, err := LoadSeedCatalog(path)
	if err != nil {
		log.Printf("Failed to load seed catalog from %s: %v", path, err)
		return DefaultSeedCatalog()
	}
	return products
}

// LoadSeedCatalog parses a YAML product list.
func LoadSeedCatalog(path string) ([]models.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := yaml.Unmarshal(raw, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// DefaultSeedCatalog is the fixed eight-product demo catalog.
func DefaultSeedCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Performance Tank", Price: 79.99, Category: "tops", Size: "XS-XL", Color: "#667eea", Emoji: "👕", Description: "Breathable performance tank top perfect for intense workouts", Stock: 50},
		{ID: 2, Name: "Compression Shirt", Price: 99.99, Category: "tops", Size: "XS-XL", Color: "#764ba2", Emoji: "👔", Description: "Moisture-wicking compression shirt for maximum support", Stock: 30},
		{ID: 3, Name: "Yoga Leggings", Price: 149.99, Category: "bottoms", Size: "XS-XL", Color: "#f093fb", Emoji: "🩳", Description: "High-waisted yoga leggings with pockets for all-day comfort", Stock: 5},
		{ID: 4, Name: "Gym Shorts", Price: 89.99, Category: "bottoms", Size: "XS-XL", Color: "#4facfe", Emoji: "⚽", Description: "Lightweight gym shorts with built-in compression", Stock: 20},
		{ID: 5, Name: "Sports Bra", Price: 119.99, Category: "tops", Size: "XS-XL", Color: "#43e97b", Emoji: "🎽", Description: "High-impact sports bra with excellent support and comfort", Stock: 40},
		{ID: 6, Name: "Training Jacket", Price: 199.99, Category: "tops", Size: "XS-XL", Color: "#fa709a", Emoji: "🧥", Description: "Water-resistant training jacket for outdoor activities", Stock: 2},
		{ID: 7, Name: "Gym Socks", Price: 34.99, Category: "accessories", Size: "One Size", Color: "#fee140", Emoji: "🧦", Description: "Cushioned gym socks with arch support", Stock: 100},
		{ID: 8, Name: "Wrist Wraps", Price: 39.99, Category: "accessories", Size: "One Size", Color: "#30b0fe", Emoji: "⏱️", Description: "Professional-grade wrist wraps for weightlifting", Stock: 15},
	}
}
