package faq

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneEntry = `
entries:
  - id: office
    category: Company
    question: Where is the office?
    answer: Tokyo.
`

const twoEntries = oneEntry + `
  - id: remote
    category: Careers
    question: Can I work remotely?
    answer: Partly.
`

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.yml")
	require.NoError(t, os.WriteFile(path, []byte(oneEntry), 0o600))

	catalog, err := Load(path)
	require.NoError(t, err)
	store := NewStore(catalog)

	w := NewWatcher(path, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(twoEntries), 0o600))
	assert.Eventually(t, func() bool { return store.Catalog().Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("entries: [oops"), 0o600))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, store.Catalog().Len())

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "faq.yml"), NewStore(nil), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, w.Run(context.Background()))
}

func TestStore_Replace(t *testing.T) {
	first, err := Parse([]byte(oneEntry))
	require.NoError(t, err)
	second, err := Parse([]byte(twoEntries))
	require.NoError(t, err)

	s := NewStore(first)
	assert.Same(t, first, s.Catalog())
	s.Replace(second)
	assert.Same(t, second, s.Catalog())
}
