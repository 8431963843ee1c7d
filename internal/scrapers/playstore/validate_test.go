package playstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateQuery(t *testing.T) {
	table := []struct {
		name    string
		query   ReviewQuery
		message string
	}{
		{name: "minimal", query: ReviewQuery{AppId: "com.example.app"}},
		{
			name: "all fields",
			query: ReviewQuery{
				AppId:    "com.example.app",
				Page:     3,
				Sort:     SORT_HELPFULNESS,
				Lang:     "ja",
				Throttle: &ThrottleConfig{Interval: time.Second, Limit: 5},
			},
		},
		{name: "missing app id", query: ReviewQuery{Page: 1}, message: "appId missing"},
		{name: "negative page", query: ReviewQuery{AppId: "com.example.app", Page: -1}, message: "page cannot be lower than 0"},
		{name: "sort too large", query: ReviewQuery{AppId: "com.example.app", Sort: Sort(3)}, message: "invalid sort 3"},
		{name: "negative sort", query: ReviewQuery{AppId: "com.example.app", Sort: Sort(-1)}, message: "invalid sort -1"},
		{
			name: "negative throttle",
			query: ReviewQuery{
				AppId:    "com.example.app",
				Throttle: &ThrottleConfig{Limit: -1},
			},
			message: "ReviewQuery.Throttle.Limit",
		},
	}

	for _, row := range table {
		err := validateQuery(row.query)
		if row.message == "" {
			require.NoError(t, err, row.name)
			continue
		}
		require.ErrorIs(t, err, ErrInvalidInput, row.name)
		require.Contains(t, err.Error(), row.message, row.name)
	}
}

func TestParseSort(t *testing.T) {
	table := []struct {
		input    string
		expected Sort
	}{
		{input: "NEWEST", expected: SORT_NEWEST},
		{input: "rating", expected: SORT_RATING},
		{input: " Helpfulness ", expected: SORT_HELPFULNESS},
	}
	for _, row := range table {
		sort, err := ParseSort(row.input)
		require.NoError(t, err)
		require.Equal(t, row.expected, sort)
		require.Equal(t, sort, mustParseSort(t, sort.String()))
	}

	_, err := ParseSort("oldest")
	require.ErrorIs(t, err, ErrInvalidInput)

	require.Equal(t, "Sort(7)", Sort(7).String())
}

func mustParseSort(t *testing.T, name string) Sort {
	t.Helper()
	sort, err := ParseSort(name)
	require.NoError(t, err)
	return sort
}
