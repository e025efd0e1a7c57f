package correctionui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"expense-capture/internal/dto"
	"expense-capture/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultAddedDismiss  = 3500 * time.Millisecond
	DefaultThanksDismiss = 1800 * time.Millisecond

	ThanksFeedback = "Thanks, I'll remember this"
)

var (
	ErrNoSuchItem      = errors.New("no such popup item")
	ErrNotSelecting    = errors.New("popup is not selecting a category")
	ErrPopupNotVisible = errors.New("popup is not showing added expenses")
	ErrInvalidCategory = errors.New("invalid category")
)

type State int

const (
	StateHidden State = iota
	StateAdded
	StateSelecting
	StateThanks
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateAdded:
		return "added"
	case StateSelecting:
		return "selecting"
	case StateThanks:
		return "thanks"
	default:
		return "unknown"
	}
}

// Corrector sends a category correction to the server
type Corrector interface {
	CorrectExpense(ctx context.Context, correction dto.CorrectExpenseRequest) error
}

// Item is one just-added expense shown in the popup.
// OriginalCategory and OriginalText are kept for the training record.
type Item struct {
	ExpenseID        uuid.UUID
	Amount           decimal.Decimal
	Currency         string
	Category         string
	Title            string
	OccurredAt       time.Time
	OriginalCategory string
	OriginalText     string
}

// Expense rebuilds the minimal expense needed by the aggregation store
func (i Item) Expense() *models.Expense {
	return &models.Expense{
		ID:          i.ExpenseID,
		Amount:      i.Amount,
		Currency:    i.Currency,
		Category:    i.Category,
		Description: i.Title,
		OccurredAt:  i.OccurredAt,
	}
}

// ItemsFromResponse builds popup items from an ingestion response
func ItemsFromResponse(resp *dto.ParseExpenseResponse) []Item {
	items := make([]Item, 0, len(resp.Expenses))
	for _, e := range resp.Expenses {
		items = append(items, Item{
			ExpenseID:        e.ExpenseID,
			Amount:           e.Amount,
			Currency:         e.Currency,
			Category:         e.Category,
			Title:            e.Title,
			OccurredAt:       e.OccurredAt,
			OriginalCategory: e.Category,
			OriginalText:     resp.RawText,
		})
	}
	return items
}

// PopupState is an immutable view of the popup handed to observers
type PopupState struct {
	State    State
	Items    []Item
	Editing  int
	Feedback string
}

type Options struct {
	AddedDismiss  time.Duration
	ThanksDismiss time.Duration
	Corrector     Corrector
	Logger        *slog.Logger
	// OnCorrected runs after the optimistic update, outside the popup lock
	OnCorrected func(item Item, from, to string)
}

func (o Options) withDefaults() Options {
	if o.AddedDismiss <= 0 {
		o.AddedDismiss = DefaultAddedDismiss
	}
	if o.ThanksDismiss <= 0 {
		o.ThanksDismiss = DefaultThanksDismiss
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Popup is the confirmation and correction popup shown after an expense is added.
// It owns at most one dismissal timer; stale timer callbacks are discarded by generation.
type Popup struct {
	mu         sync.Mutex
	opts       Options
	state      State
	items      []Item
	editing    int
	timer      *time.Timer
	generation uint64
	closed     bool

	subMu       sync.Mutex
	subscribers map[int]func(PopupState)
	nextSubID   int

	inflight sync.WaitGroup
}

func NewPopup(opts Options) *Popup {
	return &Popup{
		opts:        opts.withDefaults(),
		state:       StateHidden,
		editing:     -1,
		subscribers: make(map[int]func(PopupState)),
	}
}

// Subscribe registers fn for every state change. The returned function unsubscribes.
func (p *Popup) Subscribe(fn func(PopupState)) func() {
	p.subMu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn
	p.subMu.Unlock()

	return func() {
		p.subMu.Lock()
		delete(p.subscribers, id)
		p.subMu.Unlock()
	}
}

func (p *Popup) State() PopupState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewLocked()
}

// ShowAdded displays the just-added items and arms the auto dismissal
func (p *Popup) ShowAdded(items []Item) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	if len(items) == 0 {
		p.hideLocked()
	} else {
		p.state = StateAdded
		p.items = append([]Item(nil), items...)
		p.editing = -1
		p.armLocked(p.opts.AddedDismiss)
	}
	view := p.viewLocked()
	p.mu.Unlock()

	p.notify(view)
}

// SelectItem opens the category picker for item i and keeps the popup open
func (p *Popup) SelectItem(i int) error {
	p.mu.Lock()
	if p.state != StateAdded && p.state != StateSelecting {
		p.mu.Unlock()
		return ErrPopupNotVisible
	}
	if i < 0 || i >= len(p.items) {
		p.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrNoSuchItem, i)
	}

	p.stopLocked()
	p.state = StateSelecting
	p.editing = i
	view := p.viewLocked()
	p.mu.Unlock()

	p.notify(view)
	return nil
}

// SelectCategory applies the correction optimistically, sends it in the background and
// shows the thanks feedback. A failed send is logged and not rolled back.
func (p *Popup) SelectCategory(category string) error {
	if !models.IsValidCategory(category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	p.mu.Lock()
	if p.state != StateSelecting || p.editing < 0 {
		p.mu.Unlock()
		return ErrNotSelecting
	}

	item := p.items[p.editing]
	from := item.Category
	p.items[p.editing].Category = category
	corrected := p.items[p.editing]

	p.state = StateThanks
	p.editing = -1
	p.armLocked(p.opts.ThanksDismiss)
	view := p.viewLocked()
	p.mu.Unlock()

	if p.opts.OnCorrected != nil {
		p.opts.OnCorrected(corrected, from, category)
	}
	p.notify(view)

	if p.opts.Corrector != nil {
		p.inflight.Add(1)
		go p.send(item, category)
	}

	return nil
}

func (p *Popup) send(item Item, category string) {
	defer p.inflight.Done()

	req := dto.CorrectExpenseRequest{
		ExpenseID:         item.ExpenseID.String(),
		CorrectedCategory: category,
	}
	if item.OriginalText != "" {
		text := item.OriginalText
		req.OriginalText = &text
	}
	if item.OriginalCategory != "" {
		predicted := item.OriginalCategory
		req.PredictedCategory = &predicted
	}

	if err := p.opts.Corrector.CorrectExpense(context.Background(), req); err != nil {
		p.opts.Logger.Error("correction failed",
			"expense_id", item.ExpenseID.String(),
			"category", category,
			"error", err,
		)
		return
	}

	p.opts.Logger.Debug("correction saved",
		"expense_id", item.ExpenseID.String(),
		"category", category,
	)
}

// Dismiss hides the popup immediately
func (p *Popup) Dismiss() {
	p.mu.Lock()
	if p.state == StateHidden {
		p.mu.Unlock()
		return
	}
	p.hideLocked()
	view := p.viewLocked()
	p.mu.Unlock()

	p.notify(view)
}

// Close stops the timer and rejects further ShowAdded calls
func (p *Popup) Close() {
	p.mu.Lock()
	p.closed = true
	p.hideLocked()
	p.mu.Unlock()
}

// Wait blocks until every correction sent so far has completed
func (p *Popup) Wait() {
	p.inflight.Wait()
}

func (p *Popup) armLocked(d time.Duration) {
	p.stopLocked()
	gen := p.generation
	p.timer = time.AfterFunc(d, func() {
		p.expire(gen)
	})
}

func (p *Popup) stopLocked() {
	p.generation++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Popup) hideLocked() {
	p.stopLocked()
	p.state = StateHidden
	p.items = nil
	p.editing = -1
}

func (p *Popup) expire(gen uint64) {
	p.mu.Lock()
	if gen != p.generation || p.state == StateHidden {
		p.mu.Unlock()
		return
	}
	p.hideLocked()
	view := p.viewLocked()
	p.mu.Unlock()

	p.notify(view)
}

func (p *Popup) viewLocked() PopupState {
	view := PopupState{
		State:   p.state,
		Items:   append([]Item(nil), p.items...),
		Editing: p.editing,
	}
	if p.state == StateThanks {
		view.Feedback = ThanksFeedback
	}
	return view
}

func (p *Popup) notify(view PopupState) {
	p.subMu.Lock()
	subs := make([]func(PopupState), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	p.subMu.Unlock()

	for _, fn := range subs {
		fn(view)
	}
}
