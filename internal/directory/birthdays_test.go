package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference is Monday, 10 June 2024.
var reference = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

// addWithBirthday adds a contact with the given birthday to the directory.
func addWithBirthday(t *testing.T, d *Directory, name string, birthday string) {
	record := newRecord(t, name)
	require.NoError(t, record.SetBirthday(birthday))
	d.Add(record)
}

// rendered converts the congratulations into "name: date" strings.
func rendered(congratulations []Congratulation) []string {
	result := make([]string, 0, len(congratulations))
	for _, c := range congratulations {
		result = append(result, c.Name+": "+c.String())
	}
	return result
}

// TestUpcomingBirthdaysWeekend checks the week starting on Monday 10.06.2024. A birthday on Friday
// stays, while birthdays on Saturday and Sunday move to the following Monday.
func TestUpcomingBirthdaysWeekend(t *testing.T) {
	d := New()
	addWithBirthday(t, d, "Friday", "14.06.1990")
	addWithBirthday(t, d, "Saturday", "15.06.1990")
	addWithBirthday(t, d, "Sunday", "16.06.1990")

	result := d.UpcomingBirthdays(reference, DefaultHorizonDays)
	assert.Equal(t, []string{
		"Friday: 14.06.2024",
		"Saturday: 17.06.2024",
		"Sunday: 17.06.2024",
	}, rendered(result))
	assert.Equal(t, time.Monday, result[1].Date.Weekday())
}

// TestUpcomingBirthdaysPassed expects that a birthday earlier in the year projects to the next
// year and is therefore outside the window.
func TestUpcomingBirthdaysPassed(t *testing.T) {
	d := New()
	addWithBirthday(t, d, "January", "01.01.1990")
	addWithBirthday(t, d, "Yesterday", "09.06.1985")

	assert.Empty(t, d.UpcomingBirthdays(reference, DefaultHorizonDays))
}

// TestUpcomingBirthdaysWindowBounds expects that both the reference date and the last day of the
// window are included, and the day after is not.
func TestUpcomingBirthdaysWindowBounds(t *testing.T) {
	d := New()
	addWithBirthday(t, d, "Today", "10.06.2000")
	addWithBirthday(t, d, "LastDay", "17.06.2000")
	addWithBirthday(t, d, "TooLate", "18.06.2000")

	assert.Equal(t, []string{"Today: 10.06.2024", "LastDay: 17.06.2024"},
		rendered(d.UpcomingBirthdays(reference, DefaultHorizonDays)))
}

// TestUpcomingBirthdaysWeekendAtWindowEnd expects that a birthday on the last day of the window
// that falls on a weekend is moved to Monday even though Monday is outside the window.
func TestUpcomingBirthdaysWeekendAtWindowEnd(t *testing.T) {
	d := New()
	addWithBirthday(t, d, "Saturday", "15.06.1990")

	friday := time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"Saturday: 17.06.2024"}, rendered(d.UpcomingBirthdays(friday, 1)))
}

// TestUpcomingBirthdaysYearEnd expects that a birthday early in January is found when the
// reference date is at the end of December.
func TestUpcomingBirthdaysYearEnd(t *testing.T) {
	d := New()
	addWithBirthday(t, d, "NewYear", "02.01.1980")

	newYearsEve := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"NewYear: 02.01.2025"}, rendered(d.UpcomingBirthdays(newYearsEve, 7)))
}

// TestUpcomingBirthdaysLeapDay expects that a 29 February birthday is congratulated on
// 28 February in a year that is not a leap year, moved to Monday if needed.
func TestUpcomingBirthdaysLeapDay(t *testing.T) {
	d := New()
	addWithBirthday(t, d, "Leap", "29.02.2000")

	// 28.02.2025 is a Friday.
	ref2025 := time.Date(2025, time.February, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"Leap: 28.02.2025"}, rendered(d.UpcomingBirthdays(ref2025, 7)))

	// 29.02.2024 is a Thursday.
	ref2024 := time.Date(2024, time.February, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"Leap: 29.02.2024"}, rendered(d.UpcomingBirthdays(ref2024, 7)))
}

// TestUpcomingBirthdaysOrder expects that the result follows the insertion order of the
// directory, not the date.
func TestUpcomingBirthdaysOrder(t *testing.T) {
	d := New()
	addWithBirthday(t, d, "Later", "14.06.1990")
	d.Add(newRecord(t, "NoBirthday", "1234567890"))
	addWithBirthday(t, d, "Sooner", "11.06.1990")

	assert.Equal(t, []string{"Later: 14.06.2024", "Sooner: 11.06.2024"},
		rendered(d.UpcomingBirthdays(reference, DefaultHorizonDays)))
}

// TestUpcomingBirthdaysTimeOfDay expects that only the calendar date of the reference matters.
func TestUpcomingBirthdaysTimeOfDay(t *testing.T) {
	d := New()
	addWithBirthday(t, d, "Today", "10.06.1990")

	local := time.FixedZone("UTC+3", 3*60*60)
	lateEvening := time.Date(2024, time.June, 10, 23, 59, 0, 0, local)
	assert.Equal(t, []string{"Today: 10.06.2024"}, rendered(d.UpcomingBirthdays(lateEvening, 0)))
}

// TestUpcomingBirthdaysHorizon checks a zero, a negative and a wider horizon.
func TestUpcomingBirthdaysHorizon(t *testing.T) {
	d := New()
	addWithBirthday(t, d, "Today", "10.06.1990")
	addWithBirthday(t, d, "Tomorrow", "11.06.1990")
	addWithBirthday(t, d, "InAMonth", "10.07.1990")

	assert.Equal(t, []string{"Today: 10.06.2024"}, rendered(d.UpcomingBirthdays(reference, 0)))
	assert.Equal(t, []string{"Today: 10.06.2024"}, rendered(d.UpcomingBirthdays(reference, -5)))
	assert.Len(t, d.UpcomingBirthdays(reference, 30), 3)
}

// TestUpcomingBirthdaysEmpty expects an empty, non-nil result for an empty directory.
func TestUpcomingBirthdaysEmpty(t *testing.T) {
	result := New().UpcomingBirthdays(reference, DefaultHorizonDays)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
