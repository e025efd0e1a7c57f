package aggregation

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"expense-capture/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store *Store
	jan   time.Time
	feb   time.Time
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.store = NewStore(WithLocation(time.UTC))
	s.jan = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	s.feb = time.Date(2026, time.February, 3, 9, 0, 0, 0, time.UTC)
}

func expense(amount string, category string, at time.Time) *models.Expense {
	return &models.Expense{
		ID:          uuid.New(),
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: gofakeit.Word(),
		OccurredAt:  at,
	}
}

func (s *StoreTestSuite) assertConsistent(data MonthData) {
	sum := decimal.Zero
	for _, amount := range data.Categories {
		s.True(amount.IsPositive())
		sum = sum.Add(amount)
	}
	s.True(sum.Equal(data.Total), "total %s != sum %s", data.Total, sum)
}

func (s *StoreTestSuite) TestApplyBatch_BucketsByMonthAndCategory() {
	s.store.ApplyBatch([]*models.Expense{
		expense("20", models.CategoryFood, s.jan),
		expense("5.50", models.CategoryFood, s.jan),
		expense("12", models.CategoryTransport, s.jan),
		expense("100", models.CategoryBills, s.feb),
	})

	jan := s.store.Month(KeyOf(s.jan))
	s.True(decimal.RequireFromString("37.50").Equal(jan.Total))
	s.True(decimal.RequireFromString("25.50").Equal(jan.Categories[models.CategoryFood]))
	s.True(decimal.NewFromInt(12).Equal(jan.Categories[models.CategoryTransport]))
	s.assertConsistent(jan)

	feb := s.store.Month(KeyOf(s.feb))
	s.True(decimal.NewFromInt(100).Equal(feb.Total))
	s.Equal(4, s.store.LogsCount())
}

func (s *StoreTestSuite) TestApplyBatch_ZeroAmountsArePruned() {
	s.store.ApplyBatch([]*models.Expense{expense("0", models.CategoryMisc, s.jan)})

	s.True(s.store.Month(KeyOf(s.jan)).IsEmpty())
	s.Empty(s.store.Months())
	s.Equal(1, s.store.LogsCount())
}

func (s *StoreTestSuite) TestRecompute_IsIdempotent() {
	expenses := []*models.Expense{
		expense("20", models.CategoryFood, s.jan),
		expense("7", models.CategoryHealth, s.feb),
	}

	s.store.Recompute(expenses)
	first := s.store.Snapshot()
	s.store.Recompute(expenses)
	second := s.store.Snapshot()

	s.Equal(len(first.Months), len(second.Months))
	for key, data := range first.Months {
		s.True(data.Total.Equal(second.Months[key].Total), "month %s", key)
	}
	s.Equal(2, second.LogsCount)
}

func (s *StoreTestSuite) TestIncrementalApplyMatchesRecompute() {
	var expenses []*models.Expense
	categories := models.AllCategories()
	for i := 0; i < 40; i++ {
		at := s.jan.AddDate(0, rand.Intn(4), rand.Intn(20))
		amount := decimal.NewFromFloat(gofakeit.Price(0, 300)).Round(2)
		expenses = append(expenses, &models.Expense{
			ID:         uuid.New(),
			Amount:     amount,
			Category:   categories[rand.Intn(len(categories))],
			OccurredAt: at,
		})
	}

	incremental := NewStore(WithLocation(time.UTC))
	for i := 0; i < len(expenses); i += 7 {
		end := i + 7
		if end > len(expenses) {
			end = len(expenses)
		}
		incremental.ApplyBatch(expenses[i:end])
	}

	shuffled := make([]*models.Expense, len(expenses))
	copy(shuffled, expenses)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	full := NewStore(WithLocation(time.UTC))
	full.Recompute(shuffled)

	s.Equal(full.Months(), incremental.Months())
	for _, key := range full.Months() {
		want := full.Month(key)
		got := incremental.Month(key)
		s.True(want.Total.Equal(got.Total), "month %s", key)
		s.Len(got.Categories, len(want.Categories))
		for category, amount := range want.Categories {
			s.True(amount.Equal(got.Categories[category]), "month %s category %s", key, category)
		}
		s.assertConsistent(got)
	}
}

func (s *StoreTestSuite) TestApplyCorrection_MovesAmountKeepsTotal() {
	lunch := expense("20", models.CategoryFood, s.jan)
	s.store.ApplyBatch([]*models.Expense{lunch, expense("10", models.CategoryFood, s.jan)})

	s.store.ApplyCorrection(lunch, models.CategoryFood, models.CategoryTransport)

	jan := s.store.Month(KeyOf(s.jan))
	s.True(decimal.NewFromInt(30).Equal(jan.Total))
	s.True(decimal.NewFromInt(10).Equal(jan.Categories[models.CategoryFood]))
	s.True(decimal.NewFromInt(20).Equal(jan.Categories[models.CategoryTransport]))
	s.assertConsistent(jan)
}

func (s *StoreTestSuite) TestApplyCorrection_EmptiedBucketIsRemoved() {
	lunch := expense("20", models.CategoryFood, s.jan)
	s.store.ApplyBatch([]*models.Expense{lunch})

	s.store.ApplyCorrection(lunch, models.CategoryFood, models.CategoryShopping)

	jan := s.store.Month(KeyOf(s.jan))
	_, hasFood := jan.Categories[models.CategoryFood]
	s.False(hasFood)
	s.True(decimal.NewFromInt(20).Equal(jan.Total))
}

func (s *StoreTestSuite) TestApplyCorrection_ChainedCorrections() {
	lunch := expense("20", models.CategoryFood, s.jan)
	s.store.ApplyBatch([]*models.Expense{lunch})

	s.store.ApplyCorrection(lunch, models.CategoryFood, models.CategoryShopping)
	s.store.ApplyCorrection(lunch, models.CategoryShopping, models.CategoryBills)

	jan := s.store.Month(KeyOf(s.jan))
	s.Len(jan.Categories, 1)
	s.True(decimal.NewFromInt(20).Equal(jan.Categories[models.CategoryBills]))
}

func (s *StoreTestSuite) TestMonth_ReturnsCopy() {
	s.store.ApplyBatch([]*models.Expense{expense("20", models.CategoryFood, s.jan)})

	data := s.store.Month(KeyOf(s.jan))
	data.Categories[models.CategoryFood] = decimal.NewFromInt(999)

	s.True(decimal.NewFromInt(20).Equal(s.store.Month(KeyOf(s.jan)).Categories[models.CategoryFood]))
}

func (s *StoreTestSuite) TestMonths_NewestFirst() {
	dec := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)
	s.store.ApplyBatch([]*models.Expense{
		expense("1", models.CategoryFood, s.jan),
		expense("1", models.CategoryFood, dec),
		expense("1", models.CategoryFood, s.feb),
	})

	s.Equal([]MonthKey{
		{Year: 2026, Month: time.February},
		{Year: 2026, Month: time.January},
		{Year: 2025, Month: time.December},
	}, s.store.Months())
}

func (s *StoreTestSuite) TestSummaries_NewestFirst() {
	s.store.ApplyBatch([]*models.Expense{
		expense("20", models.CategoryFood, s.jan),
		expense("15", models.CategoryTravel, s.feb),
	})

	summaries := s.store.Summaries()

	s.Require().Len(summaries, 2)
	s.Equal("Feb 2026", summaries[0].Key.String())
	s.True(decimal.NewFromInt(15).Equal(summaries[0].Data.Total))
	s.Equal("Jan 2026", summaries[1].Key.String())
}

func (s *StoreTestSuite) TestIsNewUser() {
	for i := 0; i < NewUserThreshold-1; i++ {
		s.store.ApplyBatch([]*models.Expense{expense("1", models.CategoryMisc, s.jan)})
	}
	s.True(s.store.IsNewUser())

	s.store.ApplyBatch([]*models.Expense{expense("1", models.CategoryMisc, s.jan)})
	s.False(s.store.IsNewUser())
	s.False(s.store.Snapshot().IsNewUser)
}

func (s *StoreTestSuite) TestRecentMonths_CrossesYearBoundary() {
	months := s.store.RecentMonths(s.feb, 6)

	s.Equal([]string{"Feb 2026", "Jan 2026", "Dec 2025", "Nov 2025", "Oct 2025", "Sep 2025"}, labels(months))
}

func (s *StoreTestSuite) TestSubscribe_NotifiedUntilUnsubscribed() {
	var snapshots []Snapshot
	unsubscribe := s.store.Subscribe(func(snap Snapshot) {
		snapshots = append(snapshots, snap)
	})

	s.store.ApplyBatch([]*models.Expense{expense("20", models.CategoryFood, s.jan)})
	s.Require().Len(snapshots, 1)
	s.Equal(1, snapshots[0].LogsCount)

	unsubscribe()
	s.store.ApplyBatch([]*models.Expense{expense("5", models.CategoryFood, s.jan)})
	s.Len(snapshots, 1)
}

func (s *StoreTestSuite) TestReset() {
	s.store.ApplyBatch([]*models.Expense{expense("20", models.CategoryFood, s.jan)})

	s.store.Reset()

	s.Empty(s.store.Months())
	s.Zero(s.store.LogsCount())
}

func (s *StoreTestSuite) TestConcurrentApply() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.store.ApplyBatch([]*models.Expense{expense("1.25", models.CategoryFood, s.jan)})
			_ = s.store.Snapshot()
		}()
	}
	wg.Wait()

	s.True(decimal.RequireFromString("25").Equal(s.store.Month(KeyOf(s.jan)).Total))
	s.Equal(20, s.store.LogsCount())
}

func labels(keys []MonthKey) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key.String())
	}
	return out
}
