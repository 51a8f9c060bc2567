package fp

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption_GetOr(t *testing.T) {
	assert.Equal(t, 3, Some(3).GetOr(7))
	assert.Equal(t, 7, None[int]().GetOr(7))

	var zero Option[string]
	assert.True(t, zero.IsNone(), "zero value is None")
}

func TestMapOption(t *testing.T) {
	testCases := []struct {
		name   string
		in     Option[string]
		want   int
		wantOK bool
	}{
		{name: "present and valid", in: Some("42"), want: 42, wantOK: true},
		{name: "present but failing", in: Some("forty-two"), wantOK: false},
		{name: "empty", in: None[string](), wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapOption(tc.in, strconv.Atoi)
			v, ok := got.Get()
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, v)
			}
		})
	}
}

func TestBindOption_ShortCircuits(t *testing.T) {
	called := false
	half := func(n int) Option[int] {
		called = true
		if n%2 != 0 {
			return None[int]()
		}
		return Some(n / 2)
	}

	assert.Equal(t, 5, BindOption(Some(10), half).GetOr(-1))
	assert.True(t, BindOption(Some(3), half).IsNone())

	called = false
	assert.True(t, BindOption(None[int](), half).IsNone())
	assert.False(t, called, "bind must not call f on None")
}

func TestFind(t *testing.T) {
	items := []string{"food", "rent", "salary"}
	assert.Equal(t, "rent", Find(items, func(s string) bool { return s[0] == 'r' }).GetOr(""))
	assert.True(t, Find(items, func(s string) bool { return s == "tax" }).IsNone())
}

func TestOption_JSON(t *testing.T) {
	type row struct {
		Parent Option[string] `json:"parent_id"`
	}

	var r row
	require.NoError(t, json.Unmarshal([]byte(`{"parent_id":null}`), &r))
	assert.True(t, r.Parent.IsNone())

	require.NoError(t, json.Unmarshal([]byte(`{"parent_id":"food"}`), &r))
	assert.Equal(t, "food", r.Parent.GetOr(""))

	r = row{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
	assert.True(t, r.Parent.IsNone(), "absent field stays None")

	out, err := json.Marshal(row{Parent: None[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"parent_id":null}`, string(out))

	err = json.Unmarshal([]byte(`{"parent_id":12}`), &r)
	assert.Error(t, err)
}

func TestFromPtr(t *testing.T) {
	s := "note"
	assert.Equal(t, "note", FromPtr(&s).GetOr(""))
	assert.True(t, FromPtr[string](nil).IsNone())
}

var errOdd = errors.New("odd")
