package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"expense-capture/internal/dto"
	"expense-capture/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	fallbackTitleMaxRunes = 40

	fallbackReasonCircuitOpen     = "circuit_open"
	fallbackReasonNotConfigured   = "not_configured"
	fallbackReasonRequestFailed   = "request_failed"
	fallbackReasonInvalidResponse = "invalid_response"

	llmServiceName = "llm"
)

var (
	firstNumberPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:[.,]\d+)?`)
	thousandsPattern   = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)
	currencyPattern    = regexp.MustCompile(`^[A-Z]{3}$`)
)

var extractionPrompt = fmt.Sprintf(`You extract expenses from a short personal finance note.
Reply with a single JSON object and nothing else, using this schema:
{"expenses":[{"amount":number,"currency":"ISO 4217 code","category":string,"title":string}],"month_context":"current" or an English month name}
Rules:
- One entry per distinct purchase mentioned in the note.
- category must be one of: %s.
- title is a short human readable label such as "Lunch" or "Uber ride".
- currency defaults to USD when the note does not name one.
- month_context is "current" unless the note explicitly refers to another month.`,
	strings.Join(models.AllCategories(), ", "))

type ExtractionService struct {
	llm            LLMClientInterface
	matcher        CategoryMatcherInterface
	circuitBreaker CircuitBreakerInterface
	metrics        MetricsRecorderInterface
	pipelineLogger PipelineLoggerInterface
	now            func() time.Time
}

func NewExtractionService(
	llm LLMClientInterface,
	matcher CategoryMatcherInterface,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	pipelineLogger PipelineLoggerInterface,
) ExtractionServiceInterface {
	return &ExtractionService{
		llm:            llm,
		matcher:        matcher,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
		pipelineLogger: pipelineLogger,
		now:            time.Now,
	}
}

func (s *ExtractionService) Extract(ctx context.Context, text string, userID uuid.UUID) *models.ExtractionResult {
	text = strings.TrimSpace(text)

	if s.circuitBreaker.IsOpen() {
		return s.fallback(ctx, text, userID, fallbackReasonCircuitOpen)
	}

	start := time.Now()
	content, err := s.llm.Complete(ctx, extractionPrompt, text)
	s.metrics.RecordProcessingTime(MetricLLMRequestTime, time.Since(start))

	if err != nil {
		if errors.Is(err, ErrLLMNotConfigured) {
			return s.fallback(ctx, text, userID, fallbackReasonNotConfigured)
		}
		s.circuitBreaker.RecordFailure()
		return s.fallback(ctx, text, userID, fallbackReasonRequestFailed)
	}
	s.circuitBreaker.RecordSuccess()

	parsed, err := DecodeExtraction(content)
	if err != nil {
		return s.fallback(ctx, text, userID, fallbackReasonInvalidResponse)
	}

	now := s.now()
	result := &models.ExtractionResult{
		Candidates:   make([]models.CandidateExpense, 0, len(parsed.Expenses)),
		MonthContext: normalizeMonthContext(parsed.MonthContext),
		Source:       models.ExtractionSourceLLM,
	}

	for _, item := range parsed.Expenses {
		result.Candidates = append(result.Candidates, s.normalize(item, now))
	}

	if len(result.Candidates) == 0 {
		result.Candidates = append(result.Candidates, models.CandidateExpense{
			Amount:     decimal.Zero,
			Currency:   models.DefaultCurrency,
			Category:   models.CategoryMisc,
			Title:      models.UnknownExpenseTitle,
			OccurredAt: now,
		})
	}

	s.metrics.IncrementCounter(MetricExtractionCompleted, map[string]string{
		"engine": models.ExtractionSourceLLM,
		"reason": "",
	})

	return result
}

func (s *ExtractionService) fallback(ctx context.Context, text string, userID uuid.UUID, reason string) *models.ExtractionResult {
	s.pipelineLogger.LogExtractionFallback(ctx, userID, reason)
	s.metrics.IncrementCounter(MetricExtractionCompleted, map[string]string{
		"engine": models.ExtractionSourceFallback,
		"reason": reason,
	})

	return FallbackExtract(text, s.now())
}

func (s *ExtractionService) normalize(item dto.LLMExpense, now time.Time) models.CandidateExpense {
	category, _ := s.matcher.Match(item.Category)

	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = models.DefaultExpenseTitle
	}

	return models.CandidateExpense{
		Amount:     normalizeAmount(string(item.Amount)),
		Currency:   normalizeCurrency(item.Currency),
		Category:   category,
		Title:      title,
		OccurredAt: now,
	}
}

// DecodeExtraction strictly decodes model output into the extraction schema.
// A markdown code fence around the object is tolerated; anything else is an error.
func DecodeExtraction(content string) (*dto.LLMExtraction, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, "{") {
		return nil, errors.New("extraction response is not a JSON object")
	}

	decoder := json.NewDecoder(strings.NewReader(content))
	decoder.UseNumber()

	var extraction dto.LLMExtraction
	if err := decoder.Decode(&extraction); err != nil {
		return nil, fmt.Errorf("decode extraction: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("extraction response has trailing data")
	}

	return &extraction, nil
}

// FallbackExtract builds a single Misc expense from the first number in text. It never fails.
func FallbackExtract(text string, now time.Time) *models.ExtractionResult {
	text = strings.TrimSpace(text)

	amount := decimal.Zero
	if match := firstNumberPattern.FindString(text); match != "" {
		amount = normalizeAmount(match)
	}

	return &models.ExtractionResult{
		Candidates: []models.CandidateExpense{{
			Amount:     amount,
			Currency:   models.DefaultCurrency,
			Category:   models.CategoryMisc,
			Title:      fallbackTitle(text),
			OccurredAt: now,
		}},
		MonthContext: models.MonthContextCurrent,
		Source:       models.ExtractionSourceFallback,
	}
}

func fallbackTitle(text string) string {
	if text == "" {
		return models.UnknownExpenseTitle
	}
	if utf8.RuneCountInString(text) <= fallbackTitleMaxRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:fallbackTitleMaxRunes])) + "…"
}

// normalizeAmount parses a loosely formatted amount. Commas grouping digits in threes
// are thousands separators, any other lone comma is a decimal comma. Unparsable input
// yields zero, negatives clamp to zero and the result is rounded to cents.
func normalizeAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	raw = strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', '¥', ' ':
			return -1
		}
		return r
	}, raw)

	if strings.Contains(raw, ",") {
		if strings.Contains(raw, ".") || thousandsPattern.MatchString(raw) {
			raw = strings.ReplaceAll(raw, ",", "")
		} else {
			raw = strings.ReplaceAll(raw, ",", ".")
		}
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}

	return amount.Round(2)
}

func normalizeCurrency(raw string) string {
	currency := strings.ToUpper(strings.TrimSpace(raw))
	if !currencyPattern.MatchString(currency) {
		return models.DefaultCurrency
	}
	return currency
}

// normalizeMonthContext keeps "current" or a canonical English month name
func normalizeMonthContext(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, models.MonthContextCurrent) {
		return models.MonthContextCurrent
	}

	for month := time.January; month <= time.December; month++ {
		name := month.String()
		if strings.EqualFold(raw, name) || strings.EqualFold(raw, name[:3]) {
			return name
		}
	}

	return models.MonthContextCurrent
}
