package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"basketlens/internal/config"
	"basketlens/internal/db"
	"basketlens/internal/models"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	itemsetsPath := flag.String("itemsets", "", "Path to frequent itemsets JSON export")
	rulesPath := flag.String("rules", "", "Path to association rules JSON export")
	databaseURL := flag.String("database-url", cfg.DatabaseURL, "Postgres connection string (defaults to DATABASE_URL)")
	hashPassword := flag.String("hash-password", "", "Print the bcrypt hash of a password for config.yaml and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Load precomputed itemsets and rules into the database.

Usage:
  importer -itemsets itemsets.json -rules rules.json
  importer -hash-password 's3cret'

Itemsets JSON:  [{"itemsets": ["whole milk"], "support": 0.157}]
Rules JSON:     [{"antecedents": ["yogurt"], "consequents": ["whole milk"],
                  "support": 0.011, "confidence": 0.129, "lift": 0.821}]

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *hashPassword != "" {
		hash, err := models.HashPassword(*hashPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	if *itemsetsPath == "" && *rulesPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -itemsets or -rules is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx := context.Background()
	database, err := db.New(ctx, *databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.RunMigrations(*databaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	nSets, nRules, err := importFiles(ctx, database, *itemsetsPath, *rulesPath)
	if err != nil {
		log.Fatalf("Import failed, nothing was written: %v", err)
	}
	if *itemsetsPath != "" {
		log.Printf("Imported %d frequent itemsets", nSets)
	}
	if *rulesPath != "" {
		log.Printf("Imported %d association rules", nRules)
	}
}

// analysisWriter stores a validated import.
type analysisWriter interface {
	ReplaceAnalysis(ctx context.Context, sets []models.FrequentItemset, rules []models.AssociationRule) error
}

// importFiles reads and validates both exports before writing either, so a
// bad file leaves the database as it was. An empty path skips that export.
func importFiles(ctx context.Context, w analysisWriter, itemsetsPath, rulesPath string) (int, int, error) {
	var (
		sets  []models.FrequentItemset
		rules []models.AssociationRule
		err   error
	)

	if itemsetsPath != "" {
		if sets, err = readFile(itemsetsPath, readItemsets); err != nil {
			return 0, 0, fmt.Errorf("failed to read itemsets: %w", err)
		}
		if sets == nil {
			sets = []models.FrequentItemset{}
		}
	}
	if rulesPath != "" {
		if rules, err = readFile(rulesPath, readRules); err != nil {
			return 0, 0, fmt.Errorf("failed to read rules: %w", err)
		}
		if rules == nil {
			rules = []models.AssociationRule{}
		}
	}

	if err := w.ReplaceAnalysis(ctx, sets, rules); err != nil {
		return 0, 0, fmt.Errorf("failed to store analysis: %w", err)
	}
	return len(sets), len(rules), nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

var errInvalidRecord = errors.New("invalid record")

func readItemsets(r io.Reader) ([]models.FrequentItemset, error) {
	var sets []models.FrequentItemset
	if err := json.NewDecoder(r).Decode(&sets); err != nil {
		return nil, fmt.Errorf("failed to decode itemsets: %w", err)
	}
	for i, s := range sets {
		if len(s.Items) == 0 {
			return nil, fmt.Errorf("itemset %d: %w: no items", i, errInvalidRecord)
		}
		if !isFraction(s.Support) {
			return nil, fmt.Errorf("itemset %d: %w: support %v outside [0, 1]", i, errInvalidRecord, s.Support)
		}
	}
	return sets, nil
}

func readRules(r io.Reader) ([]models.AssociationRule, error) {
	var rules []models.AssociationRule
	if err := json.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("failed to decode rules: %w", err)
	}
	for i, rule := range rules {
		if len(rule.Antecedents) == 0 || len(rule.Consequents) == 0 {
			return nil, fmt.Errorf("rule %d: %w: empty side", i, errInvalidRecord)
		}
		if !isFraction(rule.Support) || !isFraction(rule.Confidence) {
			return nil, fmt.Errorf("rule %d: %w: support or confidence outside [0, 1]", i, errInvalidRecord)
		}
		if rule.Lift < 0 {
			return nil, fmt.Errorf("rule %d: %w: negative lift", i, errInvalidRecord)
		}
	}
	return rules, nil
}

func isFraction(f float64) bool {
	return f >= 0 && f <= 1
}
