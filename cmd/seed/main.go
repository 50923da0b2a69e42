// Command seed populates the development database with demo vendors and products.
package main

import (
	"flag"
	"log"

	"vendora/internal/config"
	"vendora/internal/database"
	"vendora/internal/seed"
)

func main() {
	vendors := flag.Int("vendors", 10, "number of vendors to create")
	maxProducts := flag.Int("max-products", 8, "maximum products per vendor")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Vendors = *vendors
	opts.MaxProducts = *maxProducts

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d vendors", *vendors)
}
