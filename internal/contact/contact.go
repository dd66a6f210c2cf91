// Package contact holds the contact record and the in-memory repository that owns it.
package contact

import "fmt"

// Contact is a name/phone/email triple. Name acts as the informal identity key;
// nothing about the type itself enforces uniqueness.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// New returns a Contact. No validation is performed; empty fields are accepted.
func New(name, phone, email string) *Contact {
	return &Contact{Name: name, Phone: phone, Email: email}
}

// String renders the contact as "<name> (<phone>, <email>)".
func (c *Contact) String() string {
	return fmt.Sprintf("%s (%s, %s)", c.Name, c.Phone, c.Email)
}
