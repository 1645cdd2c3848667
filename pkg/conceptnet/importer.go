package conceptnet

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Importer builds the local SQLite database from a ConceptNet assertions
// dump (tab-separated: assertion URI, relation URI, start URI, end URI,
// JSON metadata). Only English-to-English edges are kept.
type Importer struct {
	db *sql.DB
	// BatchSize controls how many rows are committed per transaction.
	BatchSize int
	// Logger receives progress messages. nil disables them.
	Logger *log.Logger
}

// NewImporter creates an importer writing to db. The schema is created on
// first use if missing.
func NewImporter(db *sql.DB) *Importer {
	return &Importer{db: db, BatchSize: 10000}
}

// ImportFile imports an assertions TSV from disk.
func (im *Importer) ImportFile(ctx context.Context, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening assertions file: %w", err)
	}
	defer f.Close()
	return im.Import(ctx, f)
}

// Import reads assertion rows from r and inserts them in batches. It
// returns the number of rows imported; on error the count reflects rows
// submitted before the failure.
func (im *Importer) Import(ctx context.Context, r io.Reader) (int64, error) {
	if err := InitSchema(im.db); err != nil {
		return 0, err
	}

	bw := newBatchWriter(im.db, im.BatchSize)
	var count int64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			_ = bw.close()
			return count, err
		}

		row, ok := parseAssertion(scanner.Text())
		if !ok {
			continue
		}

		if err := bw.submit(func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO entries (start, relation, "end", weight) VALUES (?, ?, ?, ?)`,
				row.start, row.relation, row.end, row.weight)
			return err
		}); err != nil {
			_ = bw.close()
			return count, err
		}

		count++
		if im.Logger != nil && count%500000 == 0 {
			im.Logger.Printf("imported %d assertions...", count)
		}
	}
	if err := scanner.Err(); err != nil {
		_ = bw.close()
		return count, fmt.Errorf("reading assertions: %w", err)
	}

	if err := bw.close(); err != nil {
		return count, err
	}
	return count, nil
}

type assertionRow struct {
	start    string
	relation string
	end      string
	weight   float64
}

// parseAssertion extracts one English edge from a dump line. Rows with
// fewer than five columns, non-English nodes, or empty words are skipped.
func parseAssertion(line string) (assertionRow, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 5 {
		return assertionRow{}, false
	}

	relationURI, startURI, endURI, meta := fields[1], fields[2], fields[3], fields[4]
	if !IsEnglish(startURI) || !IsEnglish(endURI) {
		return assertionRow{}, false
	}

	row := assertionRow{
		start:    ExtractWord(startURI),
		relation: ExtractRelation(relationURI),
		end:      ExtractWord(endURI),
		weight:   1.0,
	}
	if row.start == "" || row.end == "" {
		return assertionRow{}, false
	}

	if strings.Contains(meta, `"weight":`) {
		var m struct {
			Weight float64 `json:"weight"`
		}
		if err := json.Unmarshal([]byte(meta), &m); err == nil && m.Weight > 0 {
			row.weight = m.Weight
		}
	}
	return row, true
}
