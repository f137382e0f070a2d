package main

import (
	"flag"
	"gin-ratings/infra"
	"gin-ratings/seeds"
	"log"
)

func main() {
	seed := flag.Bool("seed", false, "seed default roles and users after migrating")
	flag.Parse()

	cfg, err := infra.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db := infra.SetupDB(cfg)

	if err := infra.Migrate(db); err != nil {
		panic("Failed to migrate database")
	}
	log.Println("Database tables created successfully")

	if *seed || cfg.SeedData {
		if err := seeds.Seed(db); err != nil {
			panic("Failed to seed database")
		}
		log.Println("Database seeded successfully")
	}
}
