package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// StorageKey is the fixed key the snapshot lives under, both as the
// top-level JSON property and (with a .json suffix) the default file name.
const StorageKey = "app-storage"

// Sink persists snapshots. Write failures are never fatal: the in-memory
// state stays authoritative for the session.
type Sink interface {
	Write(snap Snapshot) error
	Load() (Snapshot, bool, error)
}

// FileSink keeps the snapshot in a single JSON file shaped as
// {"app-storage": {...}}. Writes go through a temp file and rename so a
// crash never leaves a torn snapshot behind.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (f *FileSink) Write(snap Snapshot) error {
	payload, err := json.MarshalIndent(map[string]Snapshot{StorageKey: snap}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create storage directory")
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return errors.Wrap(err, "replace snapshot")
	}
	return nil
}

// Load reads the snapshot back. A missing file means a fresh device, not
// an error. Unknown fields in the payload are ignored so newer snapshots
// stay readable.
func (f *FileSink) Load() (Snapshot, bool, error) {
	payload, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, errors.Wrap(err, "read snapshot")
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(payload, &wrapper); err != nil {
		return Snapshot{}, false, errors.Wrap(err, "parse snapshot")
	}
	raw, ok := wrapper[StorageKey]
	if !ok {
		return Snapshot{}, false, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, false, errors.Wrap(err, "parse snapshot entry")
	}
	return snap, true, nil
}

// Flusher drains the store's change signal and writes debounced
// snapshots: a burst of mutations quiet for the debounce interval becomes
// one write. Sink errors are logged and swallowed per the store's failure
// policy.
type Flusher struct {
	store    *Store
	sink     Sink
	debounce time.Duration
	logger   zerolog.Logger
}

func NewFlusher(store *Store, sink Sink, debounce time.Duration, logger zerolog.Logger) *Flusher {
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &Flusher{
		store:    store,
		sink:     sink,
		debounce: debounce,
		logger:   logger.With().Str("component", "flusher").Logger(),
	}
}

// Run blocks until ctx is done, then performs a final flush so shutdown
// never loses the last burst of mutations.
func (f *Flusher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			f.Flush()
			return
		case <-f.store.Changes():
			timer := time.NewTimer(f.debounce)
		drain:
			for {
				select {
				case <-ctx.Done():
					timer.Stop()
					f.Flush()
					return
				case <-f.store.Changes():
					if !timer.Stop() {
						<-timer.C
					}
					timer.Reset(f.debounce)
				case <-timer.C:
					break drain
				}
			}
			f.Flush()
		}
	}
}

// Flush writes one snapshot immediately.
func (f *Flusher) Flush() {
	if err := f.sink.Write(f.store.Snapshot()); err != nil {
		f.logger.Error().Err(err).Msg("persistence failed; in-memory state remains authoritative")
	}
}
