package directory

import (
	"time"

	"gitlab.com/dirk.krummacker/contact-book/internal/model"
)

// DefaultHorizonDays is the number of days after the reference date that UpcomingBirthdays looks
// ahead when the caller has no other preference.
const DefaultHorizonDays = 7

// Congratulation is the day on which a contact should be congratulated.
type Congratulation struct {
	Name string
	Date time.Time
}

// String renders the congratulation date in the DD.MM.YYYY format.
func (c Congratulation) String() string {
	return c.Date.Format(model.BirthdayLayout)
}

// UpcomingBirthdays returns the contacts whose next birthday lies within horizonDays days of the
// reference date, both ends included. Only the calendar date of reference matters. A birthday on
// a weekend is congratulated on the following Monday. The result follows the iteration order of
// the directory and is never nil.
func (d *Directory) UpcomingBirthdays(reference time.Time, horizonDays int) []Congratulation {
	if horizonDays < 0 {
		horizonDays = 0
	}
	today := calendarDate(reference)
	last := today.AddDate(0, 0, horizonDays)

	congratulations := []Congratulation{}
	d.Range(func(record *model.Record) bool {
		birthday, set := record.Birthday()
		if !set {
			return true
		}
		next := projectOnto(birthday.Date(), today.Year())
		if next.Before(today) {
			next = projectOnto(birthday.Date(), today.Year()+1)
		}
		if !next.After(last) {
			congratulations = append(congratulations, Congratulation{
				Name: record.Name().Render(),
				Date: nextWorkday(next),
			})
		}
		return true
	})
	return congratulations
}

// calendarDate strips the time of day and the location from t.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// projectOnto moves date into the given year. 29 February becomes 28 February in years that are
// not leap years.
func projectOnto(date time.Time, year int) time.Time {
	day := date.Day()
	if date.Month() == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, date.Month(), day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// nextWorkday moves a Saturday or a Sunday to the following Monday.
func nextWorkday(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}
