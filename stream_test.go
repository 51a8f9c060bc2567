package finance

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestIterMatching_IsLazy(t *testing.T) {
	transactions := []Transaction{
		tx("t1", "a1", "food", -10),
		tx("t2", "a1", "rent", -900),
		tx("t3", "a1", "food", -20),
		tx("t4", "a1", "food", -30),
	}
	evaluated := 0
	p := func(t Transaction) bool {
		evaluated++
		return t.CategoryID == "food"
	}

	seq := IterMatching(transactions, p)
	assert.Zero(t, evaluated, "nothing evaluated before iteration")

	for t := range seq {
		if t.ID == "t1" {
			break
		}
	}
	assert.Equal(t, 1, evaluated, "abandoning the stream stops evaluation")

	evaluated = 0
	got := slices.Collect(IterMatching(transactions, p))
	assert.Equal(t, []string{"t1", "t3", "t4"}, txIDs(got))
	assert.Equal(t, 4, evaluated)
}

func TestTake(t *testing.T) {
	transactions := []Transaction{tx("t1", "a1", "food", -1), tx("t2", "a1", "food", -2), tx("t3", "a1", "food", -3)}
	got := slices.Collect(Take(IterMatching(transactions, IsExpense), 2))
	assert.Equal(t, []string{"t1", "t2"}, txIDs(got))
	assert.Empty(t, slices.Collect(Take(IterMatching(transactions, IsExpense), 0)))
}

func TestRankStream_RunningTotals(t *testing.T) {
	categories := []Category{root("food"), root("salary")}
	transactions := []Transaction{
		tx("t1", "a1", "food", -100),
		tx("t2", "a1", "salary", 1000),
		tx("t3", "a1", "other", -5),
		tx("t4", "a1", "food", -50),
	}

	type pair struct {
		ID    string
		Total int64
	}
	var got []pair
	for id, total := range RankStream(slices.Values(transactions), categories) {
		got = append(got, pair{id, total})
	}

	want := []pair{{"food", 100}, {"salary", 1000}, {"food", 150}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RankStream() mismatch (-want +got):\n%s", diff)
	}
}

func TestTopKFinal(t *testing.T) {
	categories := []Category{root("food"), root("rent"), root("fun")}
	transactions := []Transaction{
		tx("t1", "a1", "food", -100),
		tx("t2", "a1", "fun", -300),
		tx("t3", "a1", "rent", -900),
		tx("t4", "a1", "food", -250),
		tx("t5", "a1", "ghost", -5000),
	}

	testCases := []struct {
		name string
		k    int
		want []CategoryTotal
	}{
		{
			name: "top two",
			k:    2,
			want: []CategoryTotal{{"rent", 900}, {"food", 350}},
		},
		{
			name: "k above distinct categories returns them all",
			k:    10,
			want: []CategoryTotal{{"rent", 900}, {"food", 350}, {"fun", 300}},
		},
		{
			name: "k of zero",
			k:    0,
			want: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := TopKFinal(slices.Values(transactions), categories, tc.k)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTopKFinal_TiesKeepFirstSeen(t *testing.T) {
	categories := []Category{root("a"), root("b")}
	transactions := []Transaction{tx("t1", "x", "b", -10), tx("t2", "x", "a", 10)}
	assert.Equal(t, []CategoryTotal{{"b", 10}, {"a", 10}}, TopKFinal(slices.Values(transactions), categories, 2))
}

func TestRanking_UnknownCategoriesExcluded(t *testing.T) {
	categories := []Category{{ID: "salary", Name: "Salary", Kind: Income}}
	transactions := []Transaction{tx("t1", "a1", "other", 100), tx("t2", "a1", "other", -40)}

	assert.Empty(t, slices.Collect(func(yield func(string) bool) {
		for id := range RankStream(slices.Values(transactions), categories) {
			if !yield(id) {
				return
			}
		}
	}))
	assert.Empty(t, TopKFinal(slices.Values(transactions), categories, 3))
}

func txIDs(transactions []Transaction) []string {
	out := make([]string, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, t.ID)
	}
	return out
}
