package aggregation

import (
	"sort"
	"sync"
	"time"

	"expense-capture/internal/models"

	"github.com/shopspring/decimal"
)

// NewUserThreshold is the number of logged expenses below which a user counts as new
const NewUserThreshold = 5

// Snapshot is a consistent copy of the store state handed to readers and subscribers
type Snapshot struct {
	Months    map[MonthKey]MonthData
	LogsCount int
	IsNewUser bool
}

// Store keeps month -> category -> total rollups for one user.
// It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	loc    *time.Location
	months map[MonthKey]map[string]decimal.Decimal
	logs   int

	subMu       sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

type Option func(*Store)

// WithLocation buckets expenses by their month in loc instead of the local time zone
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		s.loc = loc
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		loc:         time.Local,
		months:      make(map[MonthKey]map[string]decimal.Decimal),
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called with a fresh snapshot after every change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

// ApplyBatch adds freshly persisted expenses to the rollups
func (s *Store) ApplyBatch(expenses []*models.Expense) {
	if len(expenses) == 0 {
		return
	}

	s.mu.Lock()
	for _, e := range expenses {
		s.add(e.OccurredAt, e.Category, e.Amount)
	}
	s.logs += len(expenses)
	s.mu.Unlock()

	s.notify()
}

// Recompute discards the current state and rebuilds it from the full expense list
func (s *Store) Recompute(expenses []*models.Expense) {
	s.mu.Lock()
	s.months = make(map[MonthKey]map[string]decimal.Decimal)
	for _, e := range expenses {
		s.add(e.OccurredAt, e.Category, e.Amount)
	}
	s.logs = len(expenses)
	s.mu.Unlock()

	s.notify()
}

// ApplyCorrection moves an expense amount from one category to another inside its month.
// The month total does not change.
func (s *Store) ApplyCorrection(expense *models.Expense, from, to string) {
	if from == to {
		return
	}

	s.mu.Lock()
	s.add(expense.OccurredAt, from, expense.Amount.Neg())
	s.add(expense.OccurredAt, to, expense.Amount)
	s.mu.Unlock()

	s.notify()
}

// Reset empties the store, used on logout
func (s *Store) Reset() {
	s.mu.Lock()
	s.months = make(map[MonthKey]map[string]decimal.Decimal)
	s.logs = 0
	s.mu.Unlock()

	s.notify()
}

func (s *Store) Month(key MonthKey) MonthData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newMonthData(s.months[key])
}

// Months returns the months holding data, newest first
func (s *Store) Months() []MonthKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedKeys()
}

// MonthSummary pairs a month with its rollup
type MonthSummary struct {
	Key  MonthKey
	Data MonthData
}

// Summaries returns every month with data, newest first
func (s *Store) Summaries() []MonthSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.sortedKeys()
	summaries := make([]MonthSummary, 0, len(keys))
	for _, key := range keys {
		summaries = append(summaries, MonthSummary{Key: key, Data: newMonthData(s.months[key])})
	}
	return summaries
}

func (s *Store) LogsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logs
}

func (s *Store) IsNewUser() bool {
	return s.LogsCount() < NewUserThreshold
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// RecentMonths returns the month of now followed by the n-1 months before it
func (s *Store) RecentMonths(now time.Time, n int) []MonthKey {
	return RecentMonths(now.In(s.loc), n)
}

func RecentMonths(now time.Time, n int) []MonthKey {
	keys := make([]MonthKey, 0, n)
	key := KeyOf(now)
	for i := 0; i < n; i++ {
		keys = append(keys, key)
		key = key.Prev()
	}
	return keys
}

// add must be called with mu held. Buckets that drop to zero or below are removed.
func (s *Store) add(at time.Time, category string, amount decimal.Decimal) {
	key := KeyOf(at.In(s.loc))

	categories, ok := s.months[key]
	if !ok {
		categories = make(map[string]decimal.Decimal)
		s.months[key] = categories
	}

	sum := categories[category].Add(amount)
	if sum.IsPositive() {
		categories[category] = sum
	} else {
		delete(categories, category)
	}

	if len(categories) == 0 {
		delete(s.months, key)
	}
}

func (s *Store) sortedKeys() []MonthKey {
	keys := make([]MonthKey, 0, len(s.months))
	for key := range s.months {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[j].Before(keys[i])
	})
	return keys
}

func (s *Store) snapshotLocked() Snapshot {
	months := make(map[MonthKey]MonthData, len(s.months))
	for key, categories := range s.months {
		months[key] = newMonthData(categories)
	}
	return Snapshot{
		Months:    months,
		LogsCount: s.logs,
		IsNewUser: s.logs < NewUserThreshold,
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	subscribers := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.subMu.Unlock()

	if len(subscribers) == 0 {
		return
	}

	snapshot := s.Snapshot()
	for _, fn := range subscribers {
		fn(snapshot)
	}
}
