package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempus/pkg/civil"
	"tempus/pkg/platform/sentinel"
)

func TestNewLocal(t *testing.T) {
	t.Run("defaults to process zone", func(t *testing.T) {
		e := NewLocal()
		assert.Equal(t, time.Local, e.loc)
	})

	t.Run("with location", func(t *testing.T) {
		e := NewLocal(WithLocation(time.UTC))
		assert.Equal(t, time.UTC, e.loc)
	})

	t.Run("nil location ignored", func(t *testing.T) {
		e := NewLocal(WithLocation(nil))
		assert.Equal(t, time.Local, e.loc)
	})
}

func TestLocalTimestamp(t *testing.T) {
	utc := NewLocal(WithLocation(time.UTC))

	tests := []struct {
		name     string
		dt       civil.DateTime
		expected int64
	}{
		{
			name:     "epoch",
			dt:       civil.Date(1970, time.January, 1, 0, 0, 0),
			expected: 0,
		},
		{
			name:     "first second of epoch day",
			dt:       civil.Date(1970, time.January, 1, 0, 0, 1),
			expected: 1,
		},
		{
			name:     "before epoch is negative",
			dt:       civil.Date(1969, time.December, 31, 23, 59, 59),
			expected: -1,
		},
		{
			name:     "modern instant",
			dt:       civil.Date(2030, time.January, 2, 12, 0, 0),
			expected: time.Date(2030, time.January, 2, 12, 0, 0, 0, time.UTC).Unix(),
		},
		{
			name:     "leap day",
			dt:       civil.Date(2024, time.February, 29, 6, 30, 0),
			expected: time.Date(2024, time.February, 29, 6, 30, 0, 0, time.UTC).Unix(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := utc.Timestamp(tt.dt)
			require.NoError(t, err)
			assert.Equal(t, Timestamp(tt.expected), ts)
		})
	}

	t.Run("respects location", func(t *testing.T) {
		east := NewLocal(WithLocation(time.FixedZone("UTC+5", 5*3600)))
		ts, err := east.Timestamp(civil.Date(2030, time.January, 2, 12, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, Timestamp(time.Date(2030, time.January, 2, 7, 0, 0, 0, time.UTC).Unix()), ts)
	})

	t.Run("rejects invalid record", func(t *testing.T) {
		_, err := utc.Timestamp(civil.Date(2023, time.February, 29, 0, 0, 0))
		assert.ErrorIs(t, err, sentinel.ErrInvalidDateTime)
	})

	t.Run("rejects unencodable instant", func(t *testing.T) {
		_, err := utc.Timestamp(civil.Date(300_000_000_000, time.January, 1, 0, 0, 0))
		assert.ErrorIs(t, err, sentinel.ErrNotRepresentable)
	})

	t.Run("rejects unencodable past instant", func(t *testing.T) {
		_, err := utc.Timestamp(civil.Date(-300_000_000_000, time.January, 1, 0, 0, 0))
		assert.ErrorIs(t, err, sentinel.ErrNotRepresentable)
	})

	t.Run("accepts extreme representable year", func(t *testing.T) {
		ts, err := utc.Timestamp(civil.Date(292_000_000_000, time.January, 1, 0, 0, 0))
		require.NoError(t, err)
		dt, err := utc.UTC(ts)
		require.NoError(t, err)
		assert.Equal(t, 292_000_000_000, dt.Year)
	})
}

func TestLocalTimestampDSTHint(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	e := NewLocal(WithLocation(ny))

	// 2023-11-05 01:30 occurs twice in New York: once in EDT before the
	// fall-back transition and once in EST after it.
	ambiguous := civil.Date(2023, time.November, 5, 1, 30, 0)

	t.Run("active hint picks the daylight occurrence", func(t *testing.T) {
		dt := ambiguous
		dt.DST = civil.DSTActive
		ts, err := e.Timestamp(dt)
		require.NoError(t, err)
		assert.Equal(t, Timestamp(time.Date(2023, time.November, 5, 5, 30, 0, 0, time.UTC).Unix()), ts)
	})

	t.Run("inactive hint picks the standard occurrence", func(t *testing.T) {
		dt := ambiguous
		dt.DST = civil.DSTInactive
		ts, err := e.Timestamp(dt)
		require.NoError(t, err)
		assert.Equal(t, Timestamp(time.Date(2023, time.November, 5, 6, 30, 0, 0, time.UTC).Unix()), ts)
	})

	t.Run("hint cannot move an unambiguous time", func(t *testing.T) {
		dt := civil.Date(2023, time.July, 1, 12, 0, 0)
		dt.DST = civil.DSTInactive
		ts, err := e.Timestamp(dt)
		require.NoError(t, err)
		assert.Equal(t, Timestamp(time.Date(2023, time.July, 1, 16, 0, 0, 0, time.UTC).Unix()), ts)
	})
}

func TestLocalUTC(t *testing.T) {
	e := NewLocal(WithLocation(time.FixedZone("UTC+5", 5*3600)))

	t.Run("epoch", func(t *testing.T) {
		dt, err := e.UTC(0)
		require.NoError(t, err)
		assert.True(t, dt.Equal(civil.Date(1970, time.January, 1, 0, 0, 0)))
		assert.Equal(t, civil.DSTInactive, dt.DST)
	})

	t.Run("decomposes as utc regardless of engine location", func(t *testing.T) {
		ts := Timestamp(time.Date(2030, time.January, 2, 12, 0, 0, 0, time.UTC).Unix())
		dt, err := e.UTC(ts)
		require.NoError(t, err)
		assert.True(t, dt.Equal(civil.Date(2030, time.January, 2, 12, 0, 0)))
	})

	t.Run("negative timestamp", func(t *testing.T) {
		dt, err := e.UTC(-1)
		require.NoError(t, err)
		assert.True(t, dt.Equal(civil.Date(1969, time.December, 31, 23, 59, 59)))
	})
}

func TestLocalYearNumbering(t *testing.T) {
	e := NewLocal(WithLocation(time.UTC))

	// The civil calendar has no year zero; the platform does. Year -1
	// must land on the platform's year 0 and come back as -1.
	ts, err := e.Timestamp(civil.Date(-1, time.December, 31, 23, 59, 59))
	require.NoError(t, err)
	assert.Equal(t, Timestamp(time.Date(0, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()), ts)

	dt, err := e.UTC(ts)
	require.NoError(t, err)
	assert.True(t, dt.Equal(civil.Date(-1, time.December, 31, 23, 59, 59)))

	// One second later crosses the skip to year 1.
	dt.AddSeconds(1)
	assert.True(t, dt.Equal(civil.Date(1, time.January, 1, 0, 0, 0)))
}
