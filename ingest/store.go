package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// DefaultDebounce is how long WatchFile waits after the last file event before reloading.
const DefaultDebounce = 500 * time.Millisecond

// Snapshot is one immutable load of the dataset.
type Snapshot struct {
	Repo     *preference.Repository
	Matcher  *cycle.Matcher
	Source   string
	LoadedAt time.Time
}

// Store owns the current Snapshot of a Source. Readers call Current and keep
// using the snapshot they got; Reload replaces it atomically and never mutates
// a published snapshot.
type Store struct {
	src    Source
	logger *slog.Logger

	mu       sync.Mutex // serializes reloads and guards onReload
	onReload func(*Snapshot)
	current  atomic.Pointer[Snapshot]
}

// NewStore creates an empty Store over src. A nil logger means slog.Default().
func NewStore(src Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{src: src, logger: logger}
}

// Current returns the latest snapshot, or nil before the first successful Reload.
func (s *Store) Current() *Snapshot { return s.current.Load() }

// OnReload registers fn to run after every successful Reload with the new
// snapshot. Only the last registered fn is kept; nil removes it. fn runs while
// the reload lock is held, so it must not call Reload itself.
func (s *Store) OnReload(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReload = fn
}

// Reload reads the source, builds a fresh repository and matcher, and publishes
// them. On failure the previous snapshot stays current.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.src.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: Reload: %w", err)
	}
	repo := preference.New(rows)
	m, err := cycle.NewMatcher(repo)
	if err != nil {
		return nil, fmt.Errorf("ingest: Reload: %w", err)
	}

	snap := &Snapshot{Repo: repo, Matcher: m, Source: s.src.Name(), LoadedAt: time.Now()}
	s.current.Store(snap)
	s.logger.Info("dataset loaded",
		slog.String("source", snap.Source),
		slog.Int("participants", repo.Len()),
		slog.Int("dropped", repo.Dropped()),
	)
	if s.onReload != nil {
		s.onReload(snap)
	}

	return snap, nil
}

// Watch reloads every interval until ctx is done. Failed reloads are logged
// and the last good snapshot is kept. It returns ctx.Err().
func (s *Store) Watch(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return ErrBadInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.reloadLogged(ctx)
		}
	}
}

// WatchFile reloads whenever path is written or (re)created, after debounce
// of quiet time. The parent directory is watched so editors that replace the
// file are followed. It blocks until ctx is done and returns ctx.Err().
func (s *Store) WatchFile(ctx context.Context, path string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("ingest: WatchFile: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("ingest: WatchFile: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("ingest: WatchFile: %w", err)
	}
	s.logger.Debug("watching source file", slog.String("path", abs))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("source watcher error", slog.Any("error", err))

		case <-timer.C:
			s.reloadLogged(ctx)
		}
	}
}

func (s *Store) reloadLogged(ctx context.Context) {
	if _, err := s.Reload(ctx); err != nil {
		s.logger.Warn("reload failed; keeping previous dataset",
			slog.String("source", s.src.Name()),
			slog.Any("error", err),
		)
	}
}
