package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"expense-capture/internal/config"
	"expense-capture/internal/dto"
)

// MockTranscript is returned for every existing file when mock mode is enabled
const MockTranscript = "Mock transcription: 50 dollars for food"

var (
	ErrAudioFileMissing = errors.New("audio file not found")
	ErrEmptyTranscript  = errors.New("transcription returned no text")
)

// TranscriptionError describes which step of a transcription failed
type TranscriptionError struct {
	Op  string
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription %s: %v", e.Op, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

type TranscriptionService struct {
	config  *config.TranscriptionConfig
	client  *http.Client
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewTranscriptionService(
	cfg *config.TranscriptionConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TranscriptionServiceInterface {
	return &TranscriptionService{
		config:  cfg,
		client:  newAPIClient(cfg.APIKey, cfg.Timeout),
		metrics: metrics,
		logger:  logger,
	}
}

// Transcribe uploads the file to the transcription endpoint and returns the trimmed text
func (s *TranscriptionService) Transcribe(ctx context.Context, audioFilePath string) (string, error) {
	text, err := s.transcribe(ctx, audioFilePath)

	status := "success"
	if err != nil {
		status = "failed"
	}
	s.metrics.IncrementCounter(MetricTranscription, map[string]string{"status": status})

	return text, err
}

func (s *TranscriptionService) transcribe(ctx context.Context, audioFilePath string) (string, error) {
	if _, err := os.Stat(audioFilePath); err != nil {
		return "", &TranscriptionError{Op: "open", Err: fmt.Errorf("%w: %s", ErrAudioFileMissing, filepath.Base(audioFilePath))}
	}

	if s.config.Mock {
		s.logger.InfoContext(ctx, "transcription mock mode", "file", filepath.Base(audioFilePath))
		return MockTranscript, nil
	}

	req, err := s.buildUpload(ctx, audioFilePath)
	if err != nil {
		return "", &TranscriptionError{Op: "request", Err: err}
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	s.metrics.RecordProcessingTime(MetricTranscriptionTime, time.Since(start))
	if err != nil {
		s.logger.ErrorContext(ctx, "transcription request failed", "error", err)
		return "", &TranscriptionError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TranscriptionError{Op: "request", Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(body)
		var errResp dto.APIErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}
		return "", &TranscriptionError{Op: "request", Err: fmt.Errorf("status %d: %s", resp.StatusCode, message)}
	}

	var transcription dto.TranscriptionResponse
	if err := json.Unmarshal(body, &transcription); err != nil {
		return "", &TranscriptionError{Op: "decode", Err: err}
	}

	text := strings.TrimSpace(transcription.Text)
	if text == "" {
		return "", &TranscriptionError{Op: "decode", Err: ErrEmptyTranscript}
	}

	return text, nil
}

func (s *TranscriptionService) buildUpload(ctx context.Context, audioFilePath string) (*http.Request, error) {
	file, err := os.Open(audioFilePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioFilePath))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy audio: %w", err)
	}

	fields := map[string]string{
		"model":    s.config.Model,
		"language": s.config.Language,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/audio/transcriptions", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req, nil
}
