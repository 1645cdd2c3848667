package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seriocomic/punnet/pkg/conceptnet"
	"github.com/seriocomic/punnet/pkg/corpus"
	"github.com/seriocomic/punnet/pkg/phoneme"
	"github.com/seriocomic/punnet/pkg/pronounce"
	"github.com/seriocomic/punnet/pkg/pun"
)

func main() {
	dbFlag := flag.String("db", "conceptnet.db", "Path to the ConceptNet SQLite database")
	importFlag := flag.String("import-conceptnet", "", "Path to a ConceptNet assertions TSV to import into -db")
	apiFlag := flag.Bool("api", false, "Query the ConceptNet HTTP API instead of the local database")
	dictFlag := flag.String("dict", "cmudict.dict", "Path to the CMU pronouncing dictionary")
	idiomsFlag := flag.String("idioms", "idioms.txt", "Path to the idiom corpus, one phrase per line")
	freqFlag := flag.String("freq", "", "Path to a frequency-ordered word list for candidate filtering")
	costsFlag := flag.String("costs", "", "Path to a YAML phoneme substitution cost table")
	maxDist := flag.Float64("max-distance", 1.0, "Maximum phoneme distance for a match")
	minDist := flag.Float64("min-distance", 0, "Minimum phoneme distance (raise to exclude homophones)")
	minRank := flag.Int("min-rank", 0, "Drop candidates more common than this frequency rank")
	maxRank := flag.Int("max-rank", 0, "Drop candidates rarer than this frequency rank")
	limit := flag.Int("limit", 50, "Maximum edges to fetch per API query")
	relations := flag.Bool("relations", false, "Show relation metadata in output")
	pronunciations := flag.Bool("pronounce", false, "Show phonetic transcriptions in output")
	approx := flag.Bool("approx", false, "Approximate pronunciations for out-of-dictionary words")
	flag.Parse()

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Build mode: convert an assertions dump into the local database.
	if *importFlag != "" {
		if err := runImport(ctx, *dbFlag, *importFlag); err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		return
	}

	seed := flag.Arg(0)
	if seed == "" {
		log.Fatal("Please provide a seed word (or -import-conceptnet)")
	}

	costs := phoneme.DefaultCosts()
	if *costsFlag != "" {
		var err error
		costs, err = phoneme.LoadCostTable(*costsFlag)
		if err != nil {
			log.Fatalf("Failed to load cost table: %v", err)
		}
	}

	dict, err := pronounce.LoadDict(*dictFlag)
	if err != nil {
		log.Fatalf("Failed to load pronouncing dictionary: %v", err)
	}
	var opts []pronounce.Option
	if *approx {
		opts = append(opts, pronounce.WithApproximation())
	}
	trans := pronounce.NewTranscriber(dict, opts...)

	idioms, err := corpus.Load(*idiomsFlag)
	if err != nil {
		log.Fatalf("Failed to load idiom corpus: %v", err)
	}
	index := corpus.NewIndex(idioms)
	fmt.Printf("Indexed %d idioms (%d distinct words)\n", len(idioms), index.Len())

	// Relation lookup backend. A missing local database degrades to
	// seed-only matching rather than aborting.
	var lookup conceptnet.Lookup
	switch {
	case *apiFlag:
		client := conceptnet.NewClient(10 * time.Second)
		client.Limit = *limit
		lookup = client
	default:
		if _, statErr := os.Stat(*dbFlag); statErr != nil {
			log.Printf("Warning: ConceptNet database not found at %s; matching seed word only", *dbFlag)
		} else {
			store, conn, err := conceptnet.OpenStore(*dbFlag)
			if err != nil {
				log.Fatalf("Failed to open ConceptNet database: %v", err)
			}
			defer conn.Close()
			lookup = store
		}
	}

	var candidates []pun.Candidate
	if lookup != nil {
		builder := &pun.Builder{
			Lookup:  lookup,
			MinRank: *minRank,
			MaxRank: *maxRank,
			Timeout: 10 * time.Second,
			Logger:  log.Default(),
		}
		if *freqFlag != "" {
			freq, err := pun.LoadRankList(*freqFlag)
			if err != nil {
				log.Fatalf("Failed to load frequency list: %v", err)
			}
			builder.Freq = freq
		}
		candidates = builder.Candidates(ctx, seed)
		fmt.Printf("Found %d related candidates for %q\n", len(candidates), seed)
	}

	matcher := pun.NewMatcher(trans, index, costs)
	matcher.MaxDistance = *maxDist
	matcher.MinDistance = *minDist

	matches, err := matcher.Find(ctx, seed, candidates)
	if err != nil {
		log.Fatalf("Matching failed: %v", err)
	}

	if len(matches) == 0 {
		fmt.Println("\nNo pun opportunities found. Try:")
		fmt.Println("  - Increasing -max-distance")
		fmt.Println("  - A larger idiom corpus or ConceptNet database")
		return
	}

	fmt.Printf("\nFound %d pun opportunities for %q:\n\n", len(matches), seed)
	for _, m := range matches {
		fmt.Println(formatMatch(m, *relations, *pronunciations))
	}
}

// runImport builds the SQLite database from an assertions dump.
func runImport(ctx context.Context, dbPath, tsvPath string) error {
	_, conn, err := conceptnet.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Importing %s into %s...\n", tsvPath, dbPath)
	im := conceptnet.NewImporter(conn)
	im.Logger = log.Default()

	count, err := im.ImportFile(ctx, tsvPath)
	if err != nil {
		return err
	}
	fmt.Printf("Done. Imported %d assertions.\n", count)
	return nil
}

// formatMatch renders one pun suggestion.
func formatMatch(m pun.Match, relations, pronunciations bool) string {
	out := fmt.Sprintf("  %s\n    %s -> %s  (distance: %.2f)",
		m.Substituted(), m.Entry.Word, m.Replacement, m.Distance)
	if relations {
		if m.Relation == "" {
			out += "\n    [seed word]"
		} else {
			out += fmt.Sprintf("\n    [relation: %s, %s]", m.Relation, m.Direction)
		}
	}
	if pronunciations {
		out += fmt.Sprintf("\n    [%s] -> [%s]",
			m.IdiomPron.Pronunciation(), m.ReplacementPron.Pronunciation())
	}
	return out
}
