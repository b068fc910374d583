package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateTimeCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        DateTime
		b        DateTime
		expected int
	}{
		{
			name:     "equal",
			a:        Date(2023, time.June, 15, 10, 30, 45),
			b:        Date(2023, time.June, 15, 10, 30, 45),
			expected: 0,
		},
		{
			name:     "earlier year",
			a:        Date(2022, time.December, 31, 23, 59, 59),
			b:        Date(2023, time.January, 1, 0, 0, 0),
			expected: -1,
		},
		{
			name:     "later month",
			a:        Date(2023, time.July, 1, 0, 0, 0),
			b:        Date(2023, time.June, 30, 23, 59, 59),
			expected: 1,
		},
		{
			name:     "earlier day",
			a:        Date(2023, time.June, 14, 23, 0, 0),
			b:        Date(2023, time.June, 15, 1, 0, 0),
			expected: -1,
		},
		{
			name:     "later hour",
			a:        Date(2023, time.June, 15, 11, 0, 0),
			b:        Date(2023, time.June, 15, 10, 59, 59),
			expected: 1,
		},
		{
			name:     "earlier minute",
			a:        Date(2023, time.June, 15, 10, 29, 59),
			b:        Date(2023, time.June, 15, 10, 30, 0),
			expected: -1,
		},
		{
			name:     "later second",
			a:        Date(2023, time.June, 15, 10, 30, 46),
			b:        Date(2023, time.June, 15, 10, 30, 45),
			expected: 1,
		},
		{
			name:     "bc before ad",
			a:        Date(-1, time.December, 31, 23, 59, 59),
			b:        Date(1, time.January, 1, 0, 0, 0),
			expected: -1,
		},
		{
			name: "dst hint ignored",
			a: DateTime{
				Year: 2023, Month: time.June, Day: 15, Hour: 10, DST: DSTActive,
			},
			b: DateTime{
				Year: 2023, Month: time.June, Day: 15, Hour: 10, DST: DSTInactive,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.expected, tt.b.Compare(tt.a))
		})
	}
}

func TestDateTimeEqual(t *testing.T) {
	a := Date(2023, time.June, 15, 10, 30, 45)
	b := a
	b.DST = DSTActive
	assert.True(t, a.Equal(b))

	b.Second++
	assert.False(t, a.Equal(b))
}

func TestDateTimeIntradaySeconds(t *testing.T) {
	tests := []struct {
		name     string
		from     DateTime
		to       DateTime
		expected int
	}{
		{
			name:     "identical records",
			from:     Date(2023, time.June, 15, 10, 30, 45),
			to:       Date(2023, time.June, 15, 10, 30, 45),
			expected: 0,
		},
		{
			name:     "same day forward",
			from:     Date(2023, time.June, 15, 10, 0, 0),
			to:       Date(2023, time.June, 15, 11, 30, 15),
			expected: 5415,
		},
		{
			name:     "same day backward",
			from:     Date(2023, time.June, 15, 11, 30, 15),
			to:       Date(2023, time.June, 15, 10, 0, 0),
			expected: -5415,
		},
		{
			name:     "forward across midnight",
			from:     Date(2023, time.June, 15, 23, 0, 0),
			to:       Date(2023, time.June, 16, 1, 0, 0),
			expected: 7200,
		},
		{
			name:     "backward across midnight",
			from:     Date(2023, time.June, 16, 1, 0, 0),
			to:       Date(2023, time.June, 15, 23, 0, 0),
			expected: -7200,
		},
		{
			name:     "forward across month end",
			from:     Date(2023, time.June, 30, 23, 59, 59),
			to:       Date(2023, time.July, 1, 0, 0, 1),
			expected: 2,
		},
		{
			name:     "backward across year end",
			from:     Date(2024, time.January, 1, 0, 0, 30),
			to:       Date(2023, time.December, 31, 23, 59, 30),
			expected: -60,
		},
		{
			name:     "one second apart",
			from:     Date(2023, time.June, 15, 10, 0, 0),
			to:       Date(2023, time.June, 15, 10, 0, 1),
			expected: 1,
		},
		{
			name:     "full day apart lands on zero wrap",
			from:     Date(2023, time.June, 15, 10, 0, 0),
			to:       Date(2023, time.June, 16, 10, 0, 0),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.IntradaySeconds(tt.to))
		})
	}
}
