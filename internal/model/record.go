package model

import (
	"fmt"
	"strings"
)

// Record is the data structure for a person that we know. The name is assigned at creation and
// never changes; phones keep their insertion order and the birthday is optional.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for the contact with the given name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the name of the contact.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone numbers in insertion order.
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// AddPhone validates raw and appends it to the phone numbers. A number that is already stored
// for this contact is rejected.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if r.indexOf(phone.value) >= 0 {
		return duplicatePhone(raw)
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes the first phone number equal to value. It returns false if there is no
// such number.
func (r *Record) RemovePhone(value string) bool {
	i := r.indexOf(value)
	if i < 0 {
		return false
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// EditPhone replaces the phone number oldValue with newValue. The new value is validated before
// anything is changed. Editing a number to itself succeeds without a change.
func (r *Record) EditPhone(oldValue string, newValue string) error {
	i := r.indexOf(oldValue)
	if i < 0 {
		return &NotFoundError{Kind: KindPhone, Key: oldValue}
	}
	phone, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	if j := r.indexOf(newValue); j >= 0 && j != i {
		return duplicatePhone(newValue)
	}
	r.phones[i] = phone
	return nil
}

// FindPhone returns the phone number equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// indexOf scans all phone numbers and returns the index of the first one equal to value, or -1.
func (r *Record) indexOf(value string) int {
	for i, phone := range r.phones {
		if phone.value == value {
			return i
		}
	}
	return -1
}

// SetBirthday validates raw and stores it, replacing any previous birthday.
func (r *Record) SetBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// Birthday returns the birthday of the contact, if one was set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders a one line summary of the contact. The phone and birthday parts are left out
// when they are empty.
func (r *Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact name: %s", r.name.Render())
	if len(r.phones) > 0 {
		values := make([]string, 0, len(r.phones))
		for _, phone := range r.phones {
			values = append(values, phone.Render())
		}
		fmt.Fprintf(&b, ", phones: %s", strings.Join(values, "; "))
	}
	if r.birthday != nil {
		fmt.Fprintf(&b, ", birthday: %s", r.birthday.Render())
	}
	return b.String()
}

func duplicatePhone(value string) error {
	return &ValidationError{Kind: KindPhone, Value: value, Expected: "phone already exists for this contact"}
}
