package worker

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rkenterprise/site-backend/internal/config"
	"github.com/rs/zerolog"
)

// minOrphanAge keeps the sweeper away from files whose row insert may
// still be in flight.
const minOrphanAge = 24 * time.Hour

// OrphanSweeper periodically removes files from the upload directory that
// no product row references. The request path compensates insert/update
// failures synchronously, but a crash between the file write and the row
// write can still leak a file; this worker is the backstop.
type OrphanSweeper struct {
	pool     *pgxpool.Pool
	cfg      *config.Config
	log      zerolog.Logger
	interval time.Duration
}

// NewOrphanSweeper creates an OrphanSweeper running at the configured
// interval.
func NewOrphanSweeper(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *OrphanSweeper {
	return &OrphanSweeper{
		pool:     pool,
		cfg:      cfg,
		log:      log,
		interval: cfg.OrphanSweepInterval,
	}
}

// Start runs the sweep loop until the context is cancelled.
func (w *OrphanSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", w.interval).Msg("Orphan sweeper started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Orphan sweeper stopped")
			return
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				w.log.Error().Err(err).Msg("Orphan sweep failed")
			}
		}
	}
}

func (w *OrphanSweeper) sweep(ctx context.Context) error {
	referenced, err := w.referencedFilenames(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(w.cfg.UploadDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Nothing uploaded yet.
		}
		return err
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < minOrphanAge {
			continue
		}

		full := filepath.Join(w.cfg.UploadDir(), entry.Name())
		if err := os.Remove(full); err != nil {
			w.log.Warn().Str("file", entry.Name()).Err(err).Msg("Orphan removal failed")
			continue
		}
		removed++
		w.log.Info().Str("file", entry.Name()).Msg("Orphaned upload removed")
	}

	if removed > 0 {
		w.log.Info().Int("removed", removed).Msg("Orphan sweep complete")
	}
	return nil
}

// referencedFilenames returns the base names of every image a product row
// points at.
func (w *OrphanSweeper) referencedFilenames(ctx context.Context) (map[string]bool, error) {
	rows, err := w.pool.Query(ctx, `SELECT image FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	referenced := make(map[string]bool)
	for rows.Next() {
		var image string
		if err := rows.Scan(&image); err != nil {
			return nil, err
		}
		referenced[filepath.Base(image)] = true
	}
	return referenced, rows.Err()
}
