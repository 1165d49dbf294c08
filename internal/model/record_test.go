package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRecordWithPhones creates a record for John with the given phone numbers.
func newRecordWithPhones(t *testing.T, phones ...string) *Record {
	record, err := NewRecord("John")
	require.NoError(t, err)
	for _, phone := range phones {
		require.NoError(t, record.AddPhone(phone))
	}
	return record
}

// phoneValues returns the rendered phone numbers of a record.
func phoneValues(record *Record) []string {
	var values []string
	for _, phone := range record.Phones() {
		values = append(values, phone.Render())
	}
	return values
}

func TestNewRecordEmptyName(t *testing.T) {
	_, err := NewRecord("")
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

// TestAddPhone expects that phones are kept in insertion order.
func TestAddPhone(t *testing.T) {
	record := newRecordWithPhones(t, "1111111111", "3333333333", "2222222222")
	assert.Equal(t, []string{"1111111111", "3333333333", "2222222222"}, phoneValues(record))
}

// TestAddPhoneInvalid expects that an invalid phone is rejected and the record stays unchanged.
func TestAddPhoneInvalid(t *testing.T) {
	record := newRecordWithPhones(t, "1111111111")
	err := record.AddPhone("12345")
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"1111111111"}, phoneValues(record))
}

// TestAddPhoneDuplicate expects that adding a number twice to the same contact is rejected.
func TestAddPhoneDuplicate(t *testing.T) {
	record := newRecordWithPhones(t, "1111111111")
	err := record.AddPhone("1111111111")
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, []string{"1111111111"}, phoneValues(record))
}

func TestRemovePhone(t *testing.T) {
	record := newRecordWithPhones(t, "1111111111", "2222222222", "3333333333")
	assert.True(t, record.RemovePhone("2222222222"))
	assert.Equal(t, []string{"1111111111", "3333333333"}, phoneValues(record))
	assert.False(t, record.RemovePhone("2222222222"))
	assert.False(t, record.RemovePhone("not a phone"))
}

// TestEditPhone edits the second of two phones. It expects that the whole list is scanned and
// that the new number can be found afterwards at the same position.
func TestEditPhone(t *testing.T) {
	record := newRecordWithPhones(t, "1111111111", "2222222222")
	require.NoError(t, record.EditPhone("2222222222", "3333333333"))

	phone, found := record.FindPhone("3333333333")
	assert.True(t, found)
	assert.Equal(t, "3333333333", phone.Render())
	_, found = record.FindPhone("2222222222")
	assert.False(t, found)
	assert.Equal(t, []string{"1111111111", "3333333333"}, phoneValues(record))
}

// TestEditPhoneNotFound expects a not found error when the old number is missing.
func TestEditPhoneNotFound(t *testing.T) {
	record := newRecordWithPhones(t, "1111111111", "2222222222")
	err := record.EditPhone("9999999999", "3333333333")
	var notFoundErr *NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, KindPhone, notFoundErr.Kind)
	assert.Equal(t, "9999999999", notFoundErr.Key)
	assert.Equal(t, []string{"1111111111", "2222222222"}, phoneValues(record))
}

// TestEditPhoneInvalidNew expects that the new number is validated before anything changes.
func TestEditPhoneInvalidNew(t *testing.T) {
	record := newRecordWithPhones(t, "1111111111")
	err := record.EditPhone("1111111111", "abc")
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"1111111111"}, phoneValues(record))
}

// TestEditPhoneDuplicate expects that editing a number into another stored number is rejected,
// while editing a number into itself is a no-op.
func TestEditPhoneDuplicate(t *testing.T) {
	record := newRecordWithPhones(t, "1111111111", "2222222222")
	err := record.EditPhone("1111111111", "2222222222")
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))

	require.NoError(t, record.EditPhone("2222222222", "2222222222"))
	assert.Equal(t, []string{"1111111111", "2222222222"}, phoneValues(record))
}

func TestFindPhoneEmpty(t *testing.T) {
	record := newRecordWithPhones(t)
	_, found := record.FindPhone("1111111111")
	assert.False(t, found)
}

// TestPhonesIsCopy expects that modifying the returned slice does not modify the record.
func TestPhonesIsCopy(t *testing.T) {
	record := newRecordWithPhones(t, "1111111111")
	phones := record.Phones()
	phones[0] = Phone{value: "0000000000"}
	assert.Equal(t, []string{"1111111111"}, phoneValues(record))
}

// TestSetBirthday expects that a second birthday overwrites the first one.
func TestSetBirthday(t *testing.T) {
	record := newRecordWithPhones(t)
	_, set := record.Birthday()
	assert.False(t, set)

	require.NoError(t, record.SetBirthday("15.03.1990"))
	require.NoError(t, record.SetBirthday("16.04.1991"))
	birthday, set := record.Birthday()
	assert.True(t, set)
	assert.Equal(t, "16.04.1991", birthday.Render())

	err := record.SetBirthday("16-04-1991")
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	birthday, _ = record.Birthday()
	assert.Equal(t, "16.04.1991", birthday.Render())
}

// TestRecordString checks the summary line with and without phones and birthday.
func TestRecordString(t *testing.T) {
	record := newRecordWithPhones(t)
	assert.Equal(t, "Contact name: John", record.String())

	require.NoError(t, record.AddPhone("1234567890"))
	require.NoError(t, record.AddPhone("5555555555"))
	assert.Equal(t, "Contact name: John, phones: 1234567890; 5555555555", record.String())

	require.NoError(t, record.SetBirthday("15.03.1990"))
	assert.Equal(t, "Contact name: John, phones: 1234567890; 5555555555, birthday: 15.03.1990",
		record.String())

	record.RemovePhone("1234567890")
	record.RemovePhone("5555555555")
	assert.Equal(t, "Contact name: John, birthday: 15.03.1990", record.String())
}
