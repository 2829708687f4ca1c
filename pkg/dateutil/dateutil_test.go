package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from [3]int
		to   [3]int
		want int
	}{
		{"same day", [3]int{2000, 1, 1}, [3]int{2000, 1, 1}, 0},
		{"one day forward", [3]int{2000, 1, 1}, [3]int{2000, 1, 2}, 1},
		{"one day backward", [3]int{2000, 1, 2}, [3]int{2000, 1, 1}, -1},
		{"across leap day", [3]int{2000, 2, 28}, [3]int{2000, 3, 1}, 2},
		{"across non-leap February", [3]int{2001, 2, 28}, [3]int{2001, 3, 1}, 1},
		{"full decade", [3]int{1990, 1, 15}, [3]int{2000, 1, 1}, 3638},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := Date(tt.from[0], tt.from[1], tt.from[2])
			to := Date(tt.to[0], tt.to[1], tt.to[2])
			assert.Equal(t, tt.want, DaysBetween(from, to))
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000), "divisible by 400")
	assert.True(t, IsLeapYear(1996), "divisible by 4")
	assert.False(t, IsLeapYear(1900), "century not divisible by 400")
	assert.False(t, IsLeapYear(2001))
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2000))
	assert.Equal(t, 365, DaysInYear(1900))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate(2000, 2, 29))
	assert.False(t, IsValidDate(2001, 2, 29))
	assert.False(t, IsValidDate(1990, 13, 1))
	assert.False(t, IsValidDate(1990, 0, 1))
	assert.False(t, IsValidDate(1990, 4, 31))
	assert.True(t, IsValidDate(1990, 12, 31))
}
