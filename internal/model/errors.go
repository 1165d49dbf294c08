package model

import "fmt"

// ValidationError reports input that does not satisfy the format of a field.
type ValidationError struct {
	Kind     Kind
	Value    string
	Expected string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Value, e.Expected)
}

// NotFoundError reports that an operation addressed a contact or a phone number that does not
// exist.
type NotFoundError struct {
	Kind Kind
	Key  string
}

func (e *NotFoundError) Error() string {
	if e.Kind == KindName {
		return fmt.Sprintf("contact %q not found", e.Key)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// ArgumentError reports that a command was given fewer arguments than it needs.
type ArgumentError struct {
	Command string
	Usage   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("not enough arguments for %s, usage: %s", e.Command, e.Usage)
}
