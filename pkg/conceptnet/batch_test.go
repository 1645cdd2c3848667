package conceptnet

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestBatchWriterCommitsOnClose(t *testing.T) {
	db := setupTestDB(t)

	bw := newBatchWriter(db, 100)
	for i := 0; i < 5; i++ {
		err := bw.submit(func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO entries (start, relation, "end", weight) VALUES (?, ?, ?, ?)`,
				"cat", "RelatedTo", "pet", 1.0)
			return err
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if err := bw.close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	n, err := NewStore(db).CountEntries(context.Background())
	if err != nil {
		t.Fatalf("CountEntries: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 rows committed, got %d", n)
	}
}

func TestBatchWriterClosedIsTerminal(t *testing.T) {
	db := setupTestDB(t)

	bw := newBatchWriter(db, 10)
	if err := bw.close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	err := bw.submit(func(ctx context.Context, tx *sql.Tx) error { return nil })
	if !errors.Is(err, ErrWriterClosed) {
		t.Fatalf("submit after close: got %v, want ErrWriterClosed", err)
	}
	// A second close must not panic; it reports the writer already closed.
	if err := bw.close(); !errors.Is(err, ErrWriterClosed) {
		t.Fatalf("second close: got %v, want ErrWriterClosed", err)
	}
}

func TestBatchWriterReportsExecError(t *testing.T) {
	db := setupTestDB(t)

	sentinel := errors.New("bad row")
	bw := newBatchWriter(db, 10)
	if err := bw.submit(func(ctx context.Context, tx *sql.Tx) error { return sentinel }); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := bw.close(); !errors.Is(err, sentinel) {
		t.Fatalf("close: got %v, want the batch error", err)
	}
}
