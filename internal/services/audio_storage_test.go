package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"expense-capture/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAudioStorage(t *testing.T, maxBytes int64) (*AudioStorage, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "audio")
	storage := NewAudioStorage(&config.StorageConfig{
		AudioDir:        dir,
		AudioPublicPath: "/audio",
		MaxAudioBytes:   maxBytes,
	}).(*AudioStorage)
	storage.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return storage, dir
}

func TestAudioStorage_Save(t *testing.T) {
	storage, dir := newTestAudioStorage(t, 1024)

	stored, err := storage.Save(context.Background(), strings.NewReader("voice memo"), "recording.WAV")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^audio-1700000000000-\d+\.wav$`), stored.FileName)
	assert.Equal(t, filepath.Join(dir, stored.FileName), stored.FilePath)
	assert.Equal(t, "/audio/"+stored.FileName, stored.PublicURL)

	content, err := os.ReadFile(stored.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "voice memo", string(content))
}

func TestAudioStorage_DefaultExtension(t *testing.T) {
	storage, _ := newTestAudioStorage(t, 0)

	stored, err := storage.Save(context.Background(), strings.NewReader("x"), "blob")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored.FileName, defaultAudioExtension))
}

func TestAudioStorage_UniqueNames(t *testing.T) {
	storage, _ := newTestAudioStorage(t, 0)

	first, err := storage.Save(context.Background(), strings.NewReader("a"), "a.m4a")
	require.NoError(t, err)
	second, err := storage.Save(context.Background(), strings.NewReader("b"), "b.m4a")
	require.NoError(t, err)

	assert.NotEqual(t, first.FileName, second.FileName)
}

func TestAudioStorage_TooLarge(t *testing.T) {
	storage, dir := newTestAudioStorage(t, 8)

	_, err := storage.Save(context.Background(), bytes.NewReader(make([]byte, 9)), "big.m4a")

	assert.ErrorIs(t, err, ErrAudioTooLarge)
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestAudioStorage_CancelledContext(t *testing.T) {
	storage, _ := newTestAudioStorage(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Save(ctx, strings.NewReader("x"), "a.m4a")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAudioExtension(t *testing.T) {
	tests := map[string]string{
		"memo.m4a":          ".m4a",
		"MEMO.MP3":          ".mp3",
		"clip.webm":         ".webm",
		"noext":             defaultAudioExtension,
		"../../etc/passwd":  defaultAudioExtension,
		"weird.m$a":         defaultAudioExtension,
		"long.extension123": defaultAudioExtension,
	}

	for filename, want := range tests {
		assert.Equal(t, want, audioExtension(filename), filename)
	}
}
