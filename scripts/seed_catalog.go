//go:build ignore
// +build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"visa-eligibility-engine/internal/catalog"
	"visa-eligibility-engine/internal/config"
	"visa-eligibility-engine/internal/services/database"
	s3service "visa-eligibility-engine/internal/services/s3"
)

func main() {
	from := flag.String("from", "", "catalog JSON file to seed from (default: built-in catalog)")
	version := flag.String("version", time.Now().UTC().Format("2006-01-02"), "catalog version label")
	publish := flag.Bool("publish-s3", false, "also publish the catalog document to S3_BUCKET/CATALOG_S3_KEY")
	flag.Parse()

	fmt.Println("=== Visa Catalog Seed Script ===")
	fmt.Println()

	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  Warning: Could not load .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var source catalog.Source = catalog.EmbeddedSource{}
	if *from != "" {
		source = catalog.FileSource{Path: *from}
	}

	fmt.Printf("📖 Loading catalog from %s...\n", source.Name())
	cat, err := source.Load(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Catalog valid: %d entries\n", cat.Len())
	fmt.Println()

	fmt.Println("📡 Connecting to database...")
	db, err := database.New(ctx, cfg)
	if err != nil {
		fmt.Printf("❌ Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewCatalogRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🚀 Writing catalog...")
	n, err := repo.ReplaceCatalog(ctx, cat, *version)
	if err != nil {
		fmt.Printf("❌ Failed to store catalog: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Stored %d entries as version %s\n", n, *version)
	fmt.Println()

	fmt.Println("🔍 Verifying stored catalog...")
	stored, err := repo.LoadCatalog(ctx)
	if err != nil {
		fmt.Printf("❌ Stored catalog does not load: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("   ─────────────────────────────────────────────────────────")
	for _, entry := range stored.Entries() {
		status := ""
		if entry.Hidden() {
			status = " (hidden)"
		}
		fmt.Printf("   %-16s %-12s base %.0f%s\n", entry.Code, entry.Type, entry.BaseScore, status)
	}
	fmt.Println("   ─────────────────────────────────────────────────────────")

	if *publish {
		fmt.Println()
		fmt.Printf("☁️  Publishing to s3://%s/%s...\n", cfg.S3Bucket, cfg.CatalogS3Key)
		svc, err := s3service.NewService(ctx, cfg)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		if err := svc.PublishCatalog(ctx, cfg.CatalogS3Key, stored, *version); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Published")
	}

	fmt.Println()
	fmt.Println("🎉 Catalog seeding completed successfully!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Set CATALOG_SOURCE=postgres (or s3) in .env")
	fmt.Println("  2. Start the API: go run ./cmd/server")
}
