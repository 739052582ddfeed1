package main

import (
	"flag"
	"log"
	"time"
)

func main() {
	var (
		outDir     = flag.String("out", ".", "Каталог данных (DATA_DIR)")
		customers  = flag.Int("customers", 50, "Number of customers")
		products   = flag.Int("products", 80, "Number of products")
		rules      = flag.Int("rules", 200, "Number of association rules")
		months     = flag.Int("months", 12, "History depth in months")
		candidates = flag.Int("candidates", 5, "Recommendation candidates per customer")
		multiShare = flag.Float64("multi-share", 0.1, "Share of rules with multi-item consequents")
		seed       = flag.Int64("seed", 0, "Random seed (0 = random)")
	)
	flag.Parse()

	if *customers < 1 || *products < 1 {
		log.Fatal("customers and products must be positive")
	}

	gen := NewGenerator(*seed, time.Now(), Options{
		Customers:       *customers,
		Products:        *products,
		Rules:           *rules,
		Months:          *months,
		MultiItemShare:  *multiShare,
		CandidatesPerID: *candidates,
	})

	if err := gen.Write(*outDir); err != nil {
		log.Fatalf("Failed to generate sample data: %v", err)
	}
	log.Printf("Sample data written to %s (%d customers, %d products, %d rules)", *outDir, *customers, *products, *rules)
}
