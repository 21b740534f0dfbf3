package progress

import (
	"log/slog"

	"github.com/skillbridge-ai/skillbridge/internal/store"
)

// StorageKey is the single key the adapter owns in the key-value store.
const StorageKey = "sb_progress"

// Adapter loads and saves the progress record. Storage failures are
// non-fatal by design: a broken store degrades to in-memory progress that
// simply does not survive the next run.
type Adapter struct {
	kv  store.KV
	log *slog.Logger
}

// NewAdapter creates an Adapter over the given key-value store.
func NewAdapter(kv store.KV, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	return &Adapter{kv: kv, log: log}
}

// Load reads the stored record. An absent or malformed blob yields the zero
// record; nothing here aborts startup.
func (a *Adapter) Load() UserProgress {
	blob, ok, err := a.kv.Get(StorageKey)
	if err != nil {
		a.log.Warn("progress load failed, using defaults", "error", err)
		return UserProgress{}
	}
	if !ok {
		return UserProgress{}
	}

	p, err := decode(blob)
	if err != nil {
		a.log.Warn("malformed progress blob, using defaults", "error", err)
		return UserProgress{}
	}
	return p
}

// Save writes the record back under the fixed key. Failures are logged and
// swallowed; the session continues with in-memory state only.
func (a *Adapter) Save(p UserProgress) {
	blob, err := encode(p)
	if err != nil {
		a.log.Warn("progress encode failed", "error", err)
		return
	}
	if err := a.kv.Put(StorageKey, blob); err != nil {
		a.log.Warn("progress save failed", "error", err)
	}
}

// Reset removes the stored record.
func (a *Adapter) Reset() error {
	return a.kv.Delete(StorageKey)
}
