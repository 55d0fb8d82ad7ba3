package worker

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/utils/logging"
)

// JournalBackupWorker periodically snapshots the journal file so a damaged
// journal can be recovered by hand. Failures are logged and never fatal.
//
// Single-process assumption: the journal has exactly one writer, so no
// locking against concurrent backups is needed.
type JournalBackupWorker struct {
	journalPath string
	interval    time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// NewJournalBackupWorker creates a worker that snapshots journalPath
func NewJournalBackupWorker(journalPath string, interval time.Duration) *JournalBackupWorker {
	return &JournalBackupWorker{
		journalPath: journalPath,
		interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// BackupPath returns the snapshot destination
func (w *JournalBackupWorker) BackupPath() string {
	return w.journalPath + ".bak"
}

// Start begins the background snapshot loop. It does not block.
func (w *JournalBackupWorker) Start(ctx context.Context) error {
	logging.From(ctx).Info("journal backup worker starting",
		"path", w.journalPath, "interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *JournalBackupWorker) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *JournalBackupWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Snapshot(ctx); err != nil {
				logging.From(ctx).Error("journal backup failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			return
		}
	}
}

// Snapshot copies the journal to the backup path atomically. A missing
// journal file is not an error: there is nothing to back up yet.
func (w *JournalBackupWorker) Snapshot(ctx context.Context) error {
	data, err := os.ReadFile(w.journalPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return goerr.Wrap(err, "failed to read journal for backup", goerr.V("path", w.journalPath))
	}

	dst := w.BackupPath()
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".backup-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp backup file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to write backup file")
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close backup file")
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return goerr.Wrap(err, "failed to replace backup file")
	}

	logging.From(ctx).Debug("journal backup written", "path", dst)
	return nil
}
