package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/zzbutton/internal/config"
)

func writeDoc(t *testing.T, path, name string) {
	t.Helper()
	contents := []byte(`version: "1.0"
name: ` + name + `
buttons:
  - id: go
    label: Go
`)
	require.NoError(t, os.WriteFile(path, contents, 0o644))
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buttons.yaml")
	writeDoc(t, path, "first")

	w, err := New(path, 20*time.Millisecond, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reloads := make(chan *config.Config, 4)
	go func() {
		_ = w.Run(ctx, func(cfg *config.Config, err error) {
			if err == nil {
				reloads <- cfg
			}
		})
	}()

	writeDoc(t, path, "second")

	select {
	case cfg := <-reloads:
		assert.Equal(t, "second", cfg.Name)
	case <-ctx.Done():
		t.Fatal("no reload observed")
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buttons.yaml")
	writeDoc(t, path, "first")

	w, err := New(path, 20*time.Millisecond, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	failures := make(chan error, 4)
	go func() {
		_ = w.Run(ctx, func(cfg *config.Config, err error) {
			if err != nil {
				failures <- err
			}
		})
	}()

	require.NoError(t, os.WriteFile(path, []byte("version: [\n"), 0o644))

	select {
	case err := <-failures:
		assert.Error(t, err)
	case <-ctx.Done():
		t.Fatal("no reload failure observed")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buttons.yaml")
	writeDoc(t, path, "first")

	w, err := New(path, 10*time.Millisecond, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	called := make(chan struct{}, 1)
	go func() {
		_ = w.Run(ctx, func(*config.Config, error) { called <- struct{}{} })
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-called:
		t.Fatal("sibling file must not trigger reload")
	case <-ctx.Done():
	}
}
