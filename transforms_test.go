package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/finance/date"
)

func TestAccountBalance(t *testing.T) {
	transactions := []Transaction{
		tx("t1", "a1", "food", -100),
		tx("t2", "a1", "salary", 200),
		tx("t3", "a2", "food", -40),
	}
	assert.Equal(t, int64(100), AccountBalance(transactions, "a1"))
	assert.Equal(t, int64(-40), AccountBalance(transactions, "a2"))
	assert.Equal(t, int64(0), AccountBalance(transactions, "a3"))
	assert.Equal(t, int64(60), TotalBalance(transactions, []Account{{ID: "a1"}, {ID: "a2"}}))
	assert.Equal(t, int64(60), SumAmounts(transactions))
	assert.Equal(t, int64(-140), SumByCategory(transactions, "food"))
}

func TestFilterMonth(t *testing.T) {
	transactions := []Transaction{
		txOn("t1", "a1", "food", -1, "2024-12-31"),
		txOn("t2", "a1", "food", -2, "2025-01-01"),
		txOn("t3", "a1", "food", -3, "2025-01-31"),
		txOn("t4", "a1", "food", -4, "2025-02-01"),
	}
	january, err := date.ParseMonth("2025-01")
	require.NoError(t, err)
	got := FilterMonth(transactions, january)

	var gotIDs []string
	for _, t := range got {
		gotIDs = append(gotIDs, t.ID)
	}
	assert.Equal(t, []string{"t2", "t3"}, gotIDs)
}

func TestMonthlyReport(t *testing.T) {
	transactions := []Transaction{
		txOn("t1", "a1", "food", -100, "2025-01-03"),
		txOn("t2", "a1", "food", -50, "2025-01-20"),
		txOn("t3", "a1", "salary", 3000, "2025-01-25"),
		txOn("t4", "a2", "food", -70, "2025-01-26"),
		txOn("t5", "a1", "food", -999, "2025-02-01"),
	}

	got, err := MonthlyReport(transactions, "2025-01")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"food": -220, "salary": 3000}, got)

	got, err = MonthlyReport(transactions, "2025-01", Where(ByAccount("a1")), Where(IsExpense))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"food": -150}, got)

	got, err = MonthlyReport(transactions, "2024-06")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = MonthlyReport(transactions, "January")
	assert.Error(t, err)
}

func TestCategoryReport(t *testing.T) {
	transactions := []Transaction{
		tx("t1", "a1", "food", 100),
		tx("t2", "a1", "food", 50),
		tx("t3", "a1", "rent", 900),
	}

	testCases := []struct {
		name        string
		aggregators []Aggregator
		want        int64
	}{
		{"sum then scale", []Aggregator{SumCategory{}, Scale{Factor: 2}}, 300},
		{"scale then sum", []Aggregator{Scale{Factor: 2}, SumCategory{}}, 150},
		{"scale only", []Aggregator{Scale{Factor: 2}}, 0},
		{"nothing", nil, 0},
		{"custom", []Aggregator{SumCategory{}, AggregatorFunc(func(_ []Transaction, _ string, prior int64) int64 { return prior + 1 })}, 151},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, map[string]int64{"food": tc.want}, CategoryReport(transactions, "food", tc.aggregators...))
		})
	}
}
