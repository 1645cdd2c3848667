package conceptnet

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// WriteFunc performs database writes inside a transaction.
type WriteFunc func(ctx context.Context, tx *sql.Tx) error

// batchWriter buffers write operations and commits them in transactional
// batches on a background goroutine, so TSV parsing is not stalled by
// per-row commits. The first error seen is kept and returned from Close;
// later submissions after an error still drain but their batches fail fast.
type batchWriter struct {
	mu     sync.Mutex
	buf    []WriteFunc
	cap    int
	closed bool

	commitCh chan []WriteFunc
	wg       sync.WaitGroup
	db       *sql.DB

	errMu   sync.Mutex
	lastErr error
}

// ErrWriterClosed is returned when submitting to a closed batch writer.
var ErrWriterClosed = &writerError{"batch writer closed"}

type writerError struct{ msg string }

func (e *writerError) Error() string { return e.msg }

func newBatchWriter(db *sql.DB, batchSize int) *batchWriter {
	if batchSize <= 0 {
		batchSize = 1000
	}
	bw := &batchWriter{
		buf:      make([]WriteFunc, 0, batchSize),
		cap:      batchSize,
		commitCh: make(chan []WriteFunc, 2),
		db:       db,
	}
	bw.wg.Add(1)
	go bw.committer()
	return bw
}

func (bw *batchWriter) submit(w WriteFunc) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.closed {
		return ErrWriterClosed
	}
	bw.buf = append(bw.buf, w)
	if len(bw.buf) >= bw.cap {
		bw.flushLocked()
	}
	return nil
}

// flushLocked assumes bw.mu is held. Sending to commitCh while holding the
// lock propagates backpressure to submit when the committer falls behind.
func (bw *batchWriter) flushLocked() {
	if len(bw.buf) == 0 {
		return
	}
	batch := bw.buf
	bw.buf = make([]WriteFunc, 0, bw.cap)
	bw.commitCh <- batch
}

func (bw *batchWriter) committer() {
	defer bw.wg.Done()
	for batch := range bw.commitCh {
		if err := bw.executeBatch(batch); err != nil {
			bw.errMu.Lock()
			if bw.lastErr == nil {
				bw.lastErr = err
			}
			bw.errMu.Unlock()
		}
	}
}

func (bw *batchWriter) executeBatch(batch []WriteFunc) error {
	ctx := context.Background()

	tx, err := bw.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, w := range batch {
		if err := w(ctx, tx); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch (%d items): %w", len(batch), err)
	}
	return nil
}

// close flushes remaining writes, waits for the committer, and returns the
// first error recorded during execution.
func (bw *batchWriter) close() error {
	bw.mu.Lock()
	if bw.closed {
		bw.mu.Unlock()
		return ErrWriterClosed
	}
	bw.closed = true
	bw.flushLocked()
	bw.mu.Unlock()

	close(bw.commitCh)
	bw.wg.Wait()

	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	return bw.lastErr
}
