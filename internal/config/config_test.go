package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreDefaults(t *testing.T) {
	s := New()
	require.False(t, s.GetBool("System.pause-on-attach"))
	require.Equal(t, 1000, s.GetInt("System.suspend-timeout-ms"))
}

func TestStoreLoadMissingFileKeepsDefaults(t *testing.T) {
	s := New()
	path, err := s.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Empty(t, path)
	require.Equal(t, 1000, s.GetInt("System.suspend-timeout-ms"))
}

func TestStoreLoadReadsDottedKeysLiterally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Target.build-dir: /tmp/build\n"), 0o644))

	s := New()
	used, err := s.Load(path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, "/tmp/build", s.GetString("Target.build-dir"))
}

func TestStoreSetPublishesChange(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := s.Changes(ctx)

	s.SetBool("System.pause-on-attach", true)

	ev := <-ch
	require.Equal(t, "System.pause-on-attach", ev.Payload.Key)
	require.Equal(t, true, ev.Payload.Value)
}
