// Package model holds the validated contact fields and the contact record.
package model

// Kind identifies one of the field variants a contact is built from.
type Kind int

const (
	KindName Kind = iota + 1
	KindPhone
	KindBirthday
)

// String returns the lower case name of the field kind, as used in messages.
func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindPhone:
		return "phone"
	case KindBirthday:
		return "birthday"
	default:
		return "field"
	}
}

// Field is the closed set of validated values a contact consists of. Only Name, Phone and
// Birthday implement it.
type Field interface {
	Kind() Kind
	Render() string
	field()
}

var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Birthday{}
)
