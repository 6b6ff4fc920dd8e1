package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []TranslationItem {
	items := make([]TranslationItem, n)
	for i := range items {
		items[i] = TranslationItem{Index: i, Text: fmt.Sprintf("line %d", i)}
	}
	return items
}

// upper-cases every item and records batch sizes
type fakeBatches struct {
	mu     sync.Mutex
	sizes  []int
	active atomic.Int32
	peak   atomic.Int32
	failOn int
}

func (f *fakeBatches) translate(
	ctx context.Context,
	items []TranslationItem,
) ([]TranslationResult, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	f.mu.Lock()
	f.sizes = append(f.sizes, len(items))
	f.mu.Unlock()

	if f.failOn >= 0 && items[0].Index == f.failOn {
		return nil, errors.New("boom")
	}

	// reverse order inside the batch to check sorting
	out := make([]TranslationResult, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, TranslationResult{
			Index: items[i].Index,
			Text:  strings.ToUpper(items[i].Text),
		})
	}
	return out, nil
}

func TestSplitBatches(t *testing.T) {
	batches := splitBatches(makeItems(5), 2)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[2], 1)
	assert.Equal(t, 4, batches[2][0].Index)

	assert.Empty(t, splitBatches(nil, 2))
}

func TestTranslateSequential(t *testing.T) {
	fake := &fakeBatches{failOn: -1}
	results, err := translateSequential(context.Background(), makeItems(5), 2, fake.translate)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, fmt.Sprintf("LINE %d", i), r.Text)
	}
	assert.Equal(t, []int{2, 2, 1}, fake.sizes)
}

func TestTranslateSequentialError(t *testing.T) {
	fake := &fakeBatches{failOn: 2}
	_, err := translateSequential(context.Background(), makeItems(5), 2, fake.translate)
	assert.EqualError(t, err, "batch 1 failed: boom")
	assert.Len(t, fake.sizes, 2)
}

func TestTranslateEmpty(t *testing.T) {
	fake := &fakeBatches{failOn: -1}

	results, err := translateSequential(context.Background(), nil, 2, fake.translate)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = translateConcurrent(context.Background(), nil, 2, 3, fake.translate)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, fake.sizes)
}

func TestTranslateConcurrent(t *testing.T) {
	fake := &fakeBatches{failOn: -1}
	results, err := translateConcurrent(context.Background(), makeItems(23), 3, 4, fake.translate)
	require.NoError(t, err)
	require.Len(t, results, 23)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
	assert.Len(t, fake.sizes, 8)
	assert.LessOrEqual(t, fake.peak.Load(), int32(4))
}

func TestTranslateConcurrentError(t *testing.T) {
	fake := &fakeBatches{failOn: 0}
	_, err := translateConcurrent(context.Background(), makeItems(10), 2, 2, fake.translate)
	assert.EqualError(t, err, "batch 0 failed: boom")
}

func TestTranslateConcurrentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &fakeBatches{failOn: -1}
	_, err := translateConcurrent(ctx, makeItems(10), 2, 2, fake.translate)
	assert.ErrorIs(t, err, context.Canceled)
}
