package contact

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that no contact carries the requested name.
var ErrNotFound = errors.New("contact: not found")

// Repository owns an ordered sequence of contacts in insertion order.
// It is not safe for concurrent use.
type Repository struct {
	contacts []*Contact
}

// NewRepository returns an empty Repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Add appends c unconditionally. Duplicate names are allowed.
func (r *Repository) Add(c *Contact) {
	r.contacts = append(r.contacts, c)
}

// Update overwrites phone and email on the first contact named name and stops.
// Later contacts with the same name are left untouched.
// Returns ErrNotFound, with the sequence unchanged, when no contact matches.
func (r *Repository) Update(name, phone, email string) error {
	c := r.first(name)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	c.Phone = phone
	c.Email = email
	return nil
}

// Upsert updates the first contact named name, or appends a new contact when
// none exists. It reports whether a contact was created.
func (r *Repository) Upsert(name, phone, email string) (created bool) {
	if c := r.first(name); c != nil {
		c.Phone = phone
		c.Email = email
		return false
	}
	r.Add(New(name, phone, email))
	return true
}

// Delete removes every contact named name, preserving the order of the rest.
// Returns ErrNotFound when nothing was removed.
func (r *Repository) Delete(name string) error {
	kept := make([]*Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(r.contacts) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	r.contacts = kept
	return nil
}

// All returns the live sequence. Callers must not retain it across mutations
// if they need a stable snapshot.
func (r *Repository) All() []*Contact {
	return r.contacts
}

// Len returns the number of contacts.
func (r *Repository) Len() int {
	return len(r.contacts)
}

// first returns the first contact named name, or nil.
func (r *Repository) first(name string) *Contact {
	for _, c := range r.contacts {
		if c.Name == name {
			return c
		}
	}
	return nil
}
