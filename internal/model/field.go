package model

import (
	"regexp"
	"strings"
	"time"
)

const (
	// PhoneLength is the exact number of digits of a phone number.
	PhoneLength = 10

	// BirthdayLayout is the time layout of the DD.MM.YYYY format.
	BirthdayLayout = "02.01.2006"

	phoneExpected    = "phone must be 10 digits like 1234567890"
	birthdayExpected = "use DD.MM.YYYY format (e.g. 15.03.1990)"
	nameExpected     = "name must not be empty"
)

// Name identifies a contact. It is the key of the directory.
type Name struct {
	value string
}

// NewName trims the raw name and rejects the empty string.
func NewName(raw string) (Name, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Name{}, &ValidationError{Kind: KindName, Value: raw, Expected: nameExpected}
	}
	return Name{value: value}, nil
}

func (n Name) Kind() Kind     { return KindName }
func (n Name) Render() string { return n.value }
func (n Name) String() string { return n.value }
func (n Name) field()         {}

// Phone is a phone number of exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, &ValidationError{Kind: KindPhone, Value: raw, Expected: phoneExpected}
	}
	return Phone{value: raw}, nil
}

// phonePattern matches exactly PhoneLength ASCII digits.
var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

func (p Phone) Kind() Kind     { return KindPhone }
func (p Phone) Render() string { return p.value }
func (p Phone) String() string { return p.value }
func (p Phone) field()         {}

// Birthday is a calendar date. It is stored as midnight UTC so that date arithmetic does not
// depend on the local timezone.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw in the DD.MM.YYYY format. Impossible dates such as 31.02.2024 and dates
// before year 1 are rejected.
func NewBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, strings.TrimSpace(raw))
	if err != nil || date.Year() < 1 {
		return Birthday{}, &ValidationError{Kind: KindBirthday, Value: raw, Expected: birthdayExpected}
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday as midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) Kind() Kind     { return KindBirthday }
func (b Birthday) Render() string { return b.date.Format(BirthdayLayout) }
func (b Birthday) String() string { return b.Render() }
func (b Birthday) field()         {}
