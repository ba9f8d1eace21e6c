package openinghours

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_BasicWeek(t *testing.T) {
	schedule := Normalize([]string{
		"Monday: 8:00 AM – 8:00 PM",
		"Sunday: Closed",
	})

	assert.Equal(t, "08:00-20:00", schedule["monday"])
	assert.Equal(t, Closed, schedule["sunday"])

	// Отсутствующий день означает "неизвестно", а не "закрыто"
	_, present := schedule["tuesday"]
	assert.False(t, present)
}

func TestNormalize_HoursConversion(t *testing.T) {
	tests := []struct {
		name string
		line string
		day  string
		want string
	}{
		{"plain hyphen separator", "Tuesday: 9:30 AM - 6:15 PM", "tuesday", "09:30-18:15"},
		{"midnight edge case", "Friday: 12:00 AM – 11:30 PM", "friday", "00:00-23:30"},
		{"noon edge case", "Saturday: 12:00 PM – 5:00 PM", "saturday", "12:00-17:00"},
		{"hours without minutes", "Wednesday: 8 AM – 8 PM", "wednesday", "08:00-20:00"},
		{"lowercase meridiem", "Thursday: 7:00 am – 9:00 pm", "thursday", "07:00-21:00"},
		{"french closed marker", "Sunday: fermé", "sunday", Closed},
		{"closed case-insensitive", "Monday: CLOSED", "monday", Closed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := Normalize([]string{tt.line})
			assert.Equal(t, tt.want, schedule[tt.day])
		})
	}
}

func TestNormalize_UnknownDaySkipped(t *testing.T) {
	schedule := Normalize([]string{
		"Lundi: 8:00 AM – 8:00 PM", // не каноничное английское название
		"Monday: 8:00 AM – 8:00 PM",
	})

	assert.Len(t, schedule, 1)
	assert.Equal(t, "08:00-20:00", schedule["monday"])
}

func TestNormalize_UnparseableTextPreserved(t *testing.T) {
	// Нераспознанный текст сохраняется дословно — осознанная утечка схемы
	schedule := Normalize([]string{
		"Monday: 24 hours",
		"Tuesday: 8h00 - 20h00",
	})

	assert.Equal(t, "24 hours", schedule["monday"])
	assert.Equal(t, "8h00 - 20h00", schedule["tuesday"])
}

func TestNormalize_MalformedLines(t *testing.T) {
	schedule := Normalize([]string{
		"no separator here",
		"",
		"Monday:missing space",
	})

	assert.Empty(t, schedule)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]string{}))
}
