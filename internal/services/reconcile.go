package services

import (
	"context"
	"log"
)

// CleanupPlan collects storage keys that stop being referenced during an
// entity write and deletes them in a single best-effort batch. A failed
// delete is logged and never propagated: losing an orphaned object sweep
// must not block the relational write that follows it.
type CleanupPlan struct {
	store ObjectStore
	keys  []string
}

func NewCleanupPlan(store ObjectStore) *CleanupPlan {
	return &CleanupPlan{store: store}
}

// QueueChanged queues the old image for deletion when the incoming URL
// replaces it. Equal URLs, empty old URLs and URLs outside the bucket's
// public prefix are skipped.
func (p *CleanupPlan) QueueChanged(oldURL, newURL string) {
	if oldURL == "" || oldURL == newURL {
		return
	}
	if key := p.store.ExtractKey(oldURL); key != "" {
		p.keys = append(p.keys, key)
	}
}

// QueueAll queues every resolvable URL, used on entity deletion where no
// old-versus-new comparison applies.
func (p *CleanupPlan) QueueAll(urls ...string) {
	for _, u := range urls {
		if u == "" {
			continue
		}
		if key := p.store.ExtractKey(u); key != "" {
			p.keys = append(p.keys, key)
		}
	}
}

// Keys returns the queued storage keys
func (p *CleanupPlan) Keys() []string {
	return p.keys
}

// Flush executes the queued deletions as one batch. Runs before the
// relational write on purpose: a crash in between leaves a transient
// dangling URL rather than an orphaned object that nothing ever removes.
func (p *CleanupPlan) Flush(ctx context.Context) {
	if len(p.keys) == 0 {
		return
	}
	if err := p.store.Remove(ctx, p.keys); err != nil {
		log.Printf("WARN: failed to delete stale storage objects %v: %v", p.keys, err)
	}
	p.keys = nil
}
