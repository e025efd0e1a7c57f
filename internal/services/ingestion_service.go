package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"expense-capture/internal/models"
	"expense-capture/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrTranscriptionFailed = errors.New("transcription failed")
)

// IngestionService runs the capture pipeline: optional transcription, extraction,
// then one insert per extracted expense
type IngestionService struct {
	expenseRepo    repositories.ExpenseRepositoryInterface
	extraction     ExtractionServiceInterface
	transcription  TranscriptionServiceInterface
	audioStorage   AudioStorageInterface
	metrics        MetricsRecorderInterface
	pipelineLogger PipelineLoggerInterface
}

func NewIngestionService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	extraction ExtractionServiceInterface,
	transcription TranscriptionServiceInterface,
	audioStorage AudioStorageInterface,
	metrics MetricsRecorderInterface,
	pipelineLogger PipelineLoggerInterface,
) IngestionServiceInterface {
	return &IngestionService{
		expenseRepo:    expenseRepo,
		extraction:     extraction,
		transcription:  transcription,
		audioStorage:   audioStorage,
		metrics:        metrics,
		pipelineLogger: pipelineLogger,
	}
}

func (s *IngestionService) IngestText(ctx context.Context, userID uuid.UUID, text string) (*models.IngestionResult, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	return s.ingest(ctx, userID, text, models.ExpenseSourceText, nil), nil
}

// IngestAudio stores the recording before transcribing it so the expenses can link to it.
// A failed transcription persists no expenses.
func (s *IngestionService) IngestAudio(ctx context.Context, userID uuid.UUID, audio io.Reader, filename string) (*models.IngestionResult, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if audio == nil {
		return nil, fmt.Errorf("%w: audio is required", ErrInvalidInput)
	}

	stored, err := s.audioStorage.Save(ctx, audio, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store audio: %w", err)
	}

	text, err := s.transcription.Transcribe(ctx, stored.FilePath)
	if err != nil {
		s.pipelineLogger.LogTranscriptionFailed(ctx, userID, stored.PublicURL, err)
		return nil, fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
	}

	return s.ingest(ctx, userID, text, models.ExpenseSourceVoice, stored), nil
}

func (s *IngestionService) ingest(ctx context.Context, userID uuid.UUID, text, source string, audio *models.StoredAudio) *models.IngestionResult {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricIngestionPipelineTime, time.Since(start))
	}()

	extraction := s.extraction.Extract(ctx, text, userID)

	result := &models.IngestionResult{
		Source:       source,
		RawText:      text,
		MonthContext: extraction.MonthContext,
		UserID:       userID,
		Items:        make([]models.ItemResult, 0, len(extraction.Candidates)),
	}
	if audio != nil {
		result.AudioURL = audio.PublicURL
	}

	s.metrics.RecordGauge(MetricIngestionBatchSize, float64(len(extraction.Candidates)), nil)

	// inserts are independent: a failed item does not undo the ones before it
	for i, candidate := range extraction.Candidates {
		expense := &models.Expense{
			UserID:      userID,
			Amount:      candidate.Amount,
			Currency:    candidate.Currency,
			Category:    candidate.Category,
			Description: candidate.Title,
			Source:      source,
			OccurredAt:  candidate.OccurredAt,
		}
		if audio != nil {
			audioURL := audio.PublicURL
			expense.AudioPath = &audioURL
		}

		item := models.ItemResult{Index: i, Candidate: candidate}

		if err := s.expenseRepo.Create(ctx, expense); err != nil {
			item.Err = fmt.Errorf("expense %d: %w", i, err)
			s.pipelineLogger.LogIngestionItemFailed(ctx, userID, i, err)
			s.metrics.IncrementCounter(MetricExpenseIngested, map[string]string{"source": source, "status": "failed"})
		} else {
			item.Expense = expense
			s.pipelineLogger.LogExpenseIngested(ctx, expense, extraction.Source)
			s.metrics.IncrementCounter(MetricExpenseIngested, map[string]string{"source": source, "status": "success"})
		}

		result.Items = append(result.Items, item)
	}

	return result
}
