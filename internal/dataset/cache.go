package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snapshot identifies one loaded copy of the dataset.
type Snapshot struct {
	ID       uuid.UUID `json:"id"`
	Source   string    `json:"source"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Cache wraps a Source with load-once read-many semantics. The source file
// never changes at runtime, so the first successful load is served to every
// reader for the life of the process. A failed load is not cached; the next
// reader retries.
type Cache struct {
	src Source

	mu      sync.Mutex
	records []Record
	snap    Snapshot
	loaded  bool
}

func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

func (c *Cache) ensure(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}
	records, err := c.src.Load(ctx)
	if err != nil {
		return err
	}
	c.records = records
	c.snap = Snapshot{
		ID:       uuid.New(),
		Source:   c.src.Name(),
		Rows:     len(records),
		LoadedAt: time.Now().UTC(),
	}
	c.loaded = true
	return nil
}

// Records returns the cached record set, loading it on first use. Callers
// must not mutate the returned slice.
func (c *Cache) Records(ctx context.Context) ([]Record, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records, nil
}

// Snapshot returns metadata for the cached load.
func (c *Cache) Snapshot(ctx context.Context) (Snapshot, error) {
	if err := c.ensure(ctx); err != nil {
		return Snapshot{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap, nil
}
