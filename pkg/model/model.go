// Package model contains the JSON documents exchanged with the contact book service.
package model

// Contact is the data structure for a person that we know. Birthdays use the DD.MM.YYYY format.
type Contact struct {
	Name     string   `json:"name" binding:"required"`
	Phones   []string `json:"phones,omitempty"`
	Birthday *string  `json:"birthday,omitempty"`
}

// PhoneRequest carries a phone number to be added or the new value of an edited one.
type PhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// BirthdayRequest carries the birthday to be set for a contact.
type BirthdayRequest struct {
	Birthday string `json:"birthday" binding:"required"`
}

// Congratulation is the day on which a contact should be congratulated.
type Congratulation struct {
	Name string `json:"name"`
	Date string `json:"date"`
}
