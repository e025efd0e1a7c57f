package correctionui

import (
	"sync"

	"expense-capture/internal/aggregation"
	"expense-capture/internal/dto"
	"expense-capture/internal/models"

	"github.com/google/uuid"
)

// Session holds the client-side state of one logged-in user: the monthly rollups and
// the correction popup. Logout replaces both.
type Session struct {
	mu        sync.Mutex
	userID    uuid.UUID
	opts      Options
	storeOpts []aggregation.Option
	store     *aggregation.Store
	popup     *Popup
}

func NewSession(userID uuid.UUID, opts Options, storeOpts ...aggregation.Option) *Session {
	s := &Session{
		userID:    userID,
		opts:      opts,
		storeOpts: storeOpts,
	}
	s.store, s.popup = s.fresh()
	return s
}

func (s *Session) fresh() (*aggregation.Store, *Popup) {
	store := aggregation.NewStore(s.storeOpts...)

	opts := s.opts
	userCallback := s.opts.OnCorrected
	opts.OnCorrected = func(item Item, from, to string) {
		store.ApplyCorrection(item.Expense(), from, to)
		if userCallback != nil {
			userCallback(item, from, to)
		}
	}

	return store, NewPopup(opts)
}

func (s *Session) UserID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *Session) Store() *aggregation.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store
}

func (s *Session) Popup() *Popup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.popup
}

// OnParsed adds a fresh ingestion response to the rollups, then shows the popup
func (s *Session) OnParsed(resp *dto.ParseExpenseResponse) {
	if resp == nil {
		return
	}

	s.mu.Lock()
	store, popup, userID := s.store, s.popup, s.userID
	s.mu.Unlock()

	store.ApplyBatch(toExpenses(resp.Expenses, userID))
	popup.ShowAdded(ItemsFromResponse(resp))
}

// Load rebuilds the rollups from the full expense history
func (s *Session) Load(expenses []dto.ExpenseResponse) {
	s.mu.Lock()
	store, userID := s.store, s.userID
	s.mu.Unlock()

	store.Recompute(toExpenses(expenses, userID))
}

// Logout stops pending timers and swaps in empty state for userID.
// Corrections already in flight still complete and are only logged.
func (s *Session) Logout(userID uuid.UUID) {
	s.mu.Lock()
	old := s.popup
	s.userID = userID
	s.store, s.popup = s.fresh()
	s.mu.Unlock()

	old.Close()
}

func toExpenses(responses []dto.ExpenseResponse, userID uuid.UUID) []*models.Expense {
	expenses := make([]*models.Expense, 0, len(responses))
	for _, r := range responses {
		e := r.ToModel()
		e.UserID = userID
		expenses = append(expenses, e)
	}
	return expenses
}
