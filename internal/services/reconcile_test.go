package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records calls so tests can assert how the cleanup plan uses
// the storage layer.
type fakeStore struct {
	prefix    string
	removed   [][]string
	removeErr error
	uploads   []string
	uploadErr error
}

func (f *fakeStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	f.uploads = append(f.uploads, key)
	return f.uploadErr
}

func (f *fakeStore) Remove(ctx context.Context, keys []string) error {
	f.removed = append(f.removed, keys)
	return f.removeErr
}

func (f *fakeStore) PublicURL(key string) string {
	return f.prefix + key
}

func (f *fakeStore) ExtractKey(rawURL string) string {
	if !strings.HasPrefix(rawURL, f.prefix) {
		return ""
	}
	return strings.TrimPrefix(rawURL, f.prefix)
}

const testPrefix = "https://cdn.example.com/assets/"

func TestCleanupPlanQueueChanged(t *testing.T) {
	store := &fakeStore{prefix: testPrefix}
	plan := NewCleanupPlan(store)

	// unchanged URL is kept
	plan.QueueChanged(testPrefix+"a.png", testPrefix+"a.png")
	assert.Empty(t, plan.Keys())

	// replaced URL is queued under its key
	plan.QueueChanged(testPrefix+"a.png", testPrefix+"b.png")
	assert.Equal(t, []string{"a.png"}, plan.Keys())

	// empty old URL is skipped
	plan.QueueChanged("", testPrefix+"c.png")
	assert.Equal(t, []string{"a.png"}, plan.Keys())

	// URL outside the public prefix is skipped
	plan.QueueChanged("https://elsewhere.example.com/x.png", testPrefix+"d.png")
	assert.Equal(t, []string{"a.png"}, plan.Keys())
}

func TestCleanupPlanQueueAll(t *testing.T) {
	store := &fakeStore{prefix: testPrefix}
	plan := NewCleanupPlan(store)

	plan.QueueAll(testPrefix+"one.png", "", "https://elsewhere.example.com/two.png", testPrefix+"three.png")
	assert.Equal(t, []string{"one.png", "three.png"}, plan.Keys())
}

func TestCleanupPlanFlushBatchesOnce(t *testing.T) {
	store := &fakeStore{prefix: testPrefix}
	plan := NewCleanupPlan(store)

	plan.QueueChanged(testPrefix+"a.png", testPrefix+"new-a.png")
	plan.QueueChanged(testPrefix+"b.png", testPrefix+"new-b.png")
	plan.Flush(context.Background())

	require.Len(t, store.removed, 1)
	assert.Equal(t, []string{"a.png", "b.png"}, store.removed[0])

	// a second flush with nothing queued issues no call
	plan.Flush(context.Background())
	assert.Len(t, store.removed, 1)
}

func TestCleanupPlanFlushEmptySkipsStorage(t *testing.T) {
	store := &fakeStore{prefix: testPrefix}
	plan := NewCleanupPlan(store)

	plan.Flush(context.Background())
	assert.Empty(t, store.removed)
}

func TestCleanupPlanFlushSwallowsStorageErrors(t *testing.T) {
	store := &fakeStore{prefix: testPrefix, removeErr: errors.New("bucket unavailable")}
	plan := NewCleanupPlan(store)

	plan.QueueAll(testPrefix + "a.png")
	plan.Flush(context.Background())

	// the failed batch was attempted and the plan reset regardless
	require.Len(t, store.removed, 1)
	assert.Empty(t, plan.Keys())
}
