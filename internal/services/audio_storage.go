package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"expense-capture/internal/config"
	"expense-capture/internal/models"
)

const defaultAudioExtension = ".m4a"

var ErrAudioTooLarge = errors.New("audio upload exceeds size limit")

// AudioStorage writes uploaded recordings to the local audio directory
type AudioStorage struct {
	config *config.StorageConfig
	now    func() time.Time
}

func NewAudioStorage(cfg *config.StorageConfig) AudioStorageInterface {
	return &AudioStorage{
		config: cfg,
		now:    time.Now,
	}
}

// Save stores audio as audio-<unix millis>-<random>.<ext> and returns its disk and public paths
func (s *AudioStorage) Save(ctx context.Context, audio io.Reader, filename string) (*models.StoredAudio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.config.AudioDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio dir: %w", err)
	}

	suffix, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	if err != nil {
		return nil, fmt.Errorf("failed to generate audio file name: %w", err)
	}

	name := fmt.Sprintf("audio-%d-%d%s", s.now().UnixMilli(), suffix.Int64(), audioExtension(filename))
	fullPath := filepath.Join(s.config.AudioDir, name)

	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio file: %w", err)
	}

	reader := audio
	if s.config.MaxAudioBytes > 0 {
		reader = io.LimitReader(audio, s.config.MaxAudioBytes+1)
	}

	written, copyErr := io.Copy(file, reader)
	closeErr := file.Close()

	if copyErr == nil && s.config.MaxAudioBytes > 0 && written > s.config.MaxAudioBytes {
		copyErr = ErrAudioTooLarge
	}
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(fullPath)
		if copyErr != nil {
			return nil, fmt.Errorf("failed to write audio file: %w", copyErr)
		}
		return nil, fmt.Errorf("failed to close audio file: %w", closeErr)
	}

	return &models.StoredAudio{
		FileName:  name,
		FilePath:  fullPath,
		PublicURL: path.Join(s.config.AudioPublicPath, name),
	}, nil
}

// audioExtension keeps a short alphanumeric extension from the client file name
func audioExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 6 {
		return defaultAudioExtension
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultAudioExtension
		}
	}
	return ext
}
