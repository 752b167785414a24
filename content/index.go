package content

import (
	"context"
	"log"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/RZeijlon/ResumeRobertZeijlon/config"
)

// LoadState is the session-wide loading flag. It transitions from Loading to
// Ready or Failed exactly once; both end states are terminal until the whole
// index is rebuilt.
type LoadState int

const (
	StateLoading LoadState = iota
	StateReady
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Index maps derived content ids to loaded records. It is written exactly
// once by Build's fan-in join and read-only afterwards.
type Index struct {
	mu      sync.RWMutex
	records map[string]*Record
	state   LoadState
	err     error
}

func NewIndex() *Index {
	return &Index{
		records: map[string]*Record{},
		state:   StateLoading,
	}
}

// Build walks the layout manifest, fetches every referenced content file
// concurrently (plus the chat welcome file when chat is enabled) and merges
// the results. Merging follows manifest order, so when two paths derive the
// same id the later manifest entry wins regardless of fetch completion
// order.
func (ix *Index) Build(ctx context.Context, loader *Loader, layout *config.LayoutManifest, site *config.SiteSettings) error {
	ix.mu.Lock()
	if ix.state != StateLoading {
		state := ix.state
		ix.mu.Unlock()
		return errors.Errorf("content index already %s", state)
	}
	ix.mu.Unlock()

	type slot struct {
		records []*Record
	}

	var queue []func(context.Context) (slot, error)
	for _, section := range layout.Layout.Sections {
		section := section
		if section.File != "" {
			queue = append(queue, func(ctx context.Context) (slot, error) {
				record, err := loader.LoadContent(ctx, section.File)
				if err != nil {
					return slot{}, err
				}
				return slot{records: []*Record{record}}, nil
			})
		}
		if len(section.Files) > 0 {
			queue = append(queue, func(ctx context.Context) (slot, error) {
				records, err := loader.LoadMany(ctx, section.Files)
				if err != nil {
					return slot{}, err
				}
				return slot{records: records}, nil
			})
		}
	}

	if site != nil && site.Features.ChatBot.Enabled && site.Features.ChatBot.WelcomeFile != "" {
		welcomeFile := site.Features.ChatBot.WelcomeFile
		queue = append(queue, func(ctx context.Context) (slot, error) {
			record, err := loader.LoadContent(ctx, welcomeFile)
			if err != nil {
				return slot{}, err
			}
			return slot{records: []*Record{record}}, nil
		})
	}

	slots := make([]slot, len(queue))
	g, gctx := errgroup.WithContext(ctx)
	for i, load := range queue {
		i, load := i, load
		g.Go(func() error {
			result, err := load(gctx)
			if err != nil {
				return err
			}
			slots[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		ix.mu.Lock()
		ix.state = StateFailed
		ix.err = err
		ix.mu.Unlock()
		return err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	for _, s := range slots {
		for _, record := range s.records {
			if _, exists := ix.records[record.ID]; exists {
				log.Printf("content index: duplicate id %q, later manifest entry wins", record.ID)
			}
			ix.records[record.ID] = record
		}
	}
	ix.state = StateReady
	return nil
}

// Lookup re-derives the id from the given path. A missing record is a valid
// layout configuration, not an error.
func (ix *Index) Lookup(sourcePath string) (*Record, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	record, ok := ix.records[DeriveID(sourcePath)]
	return record, ok
}

// LookupAll resolves the given paths, skipping any that are absent.
func (ix *Index) LookupAll(paths []string) []*Record {
	records := make([]*Record, 0, len(paths))
	for _, p := range paths {
		if record, ok := ix.Lookup(p); ok {
			records = append(records, record)
		}
	}
	return records
}

func (ix *Index) State() LoadState {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.state
}

// Err returns the failure that ended loading, if any.
func (ix *Index) Err() error {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.err
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.records)
}
