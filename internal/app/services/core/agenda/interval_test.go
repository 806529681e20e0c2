package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	t.Run("Symmetric", func(t *testing.T) {
		a := Interval{Start: 540, End: 600}
		b := Interval{Start: 570, End: 630}
		assert.True(t, Overlaps(a, b))
		assert.True(t, Overlaps(b, a))
	})

	t.Run("Self overlap when non empty", func(t *testing.T) {
		a := Interval{Start: 540, End: 600}
		assert.True(t, Overlaps(a, a))
	})

	t.Run("Touching boundary is not overlap", func(t *testing.T) {
		a := Interval{Start: 540, End: 600}
		b := Interval{Start: 600, End: 660}
		assert.False(t, Overlaps(a, b))
		assert.False(t, Overlaps(b, a))
	})

	t.Run("Disjoint", func(t *testing.T) {
		a := Interval{Start: 540, End: 600}
		b := Interval{Start: 720, End: 780}
		assert.False(t, Overlaps(a, b))
	})

	t.Run("Containment", func(t *testing.T) {
		outer := Interval{Start: 480, End: 720}
		inner := Interval{Start: 540, End: 600}
		assert.True(t, Overlaps(outer, inner))
		assert.True(t, Overlaps(inner, outer))
	})
}

func TestToMinutes(t *testing.T) {
	minutes, err := ToMinutes("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = ToMinutes("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = ToMinutes("9h30")
	assert.Error(t, err)

	_, err = ToMinutes("25:00")
	assert.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "09:30", FormatMinutes(570))
	assert.Equal(t, "00:05", FormatMinutes(5))
	assert.Equal(t, "23:59", FormatMinutes(1439))
}

func TestIntervalOf(t *testing.T) {
	interval, err := IntervalOf("09:00", "10:00")
	assert.NoError(t, err)
	assert.Equal(t, Interval{Start: 540, End: 600}, interval)

	_, err = IntervalOf("bad", "10:00")
	assert.Error(t, err)
}
