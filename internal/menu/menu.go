// Package menu implements the contact manager's numbered menu: the choices, their
// prompts, the handler that applies them to a contact store, and a line-oriented
// loop that drives it over plain text streams.
package menu

import "github.com/smileynet/contacts/internal/contact"

// Choice is a menu selection as typed by the user.
type Choice string

const (
	ChoiceAdd    Choice = "1"
	ChoiceUpdate Choice = "2"
	ChoiceDelete Choice = "3"
	ChoiceList   Choice = "4"
	ChoiceExit   Choice = "5"
)

// Item is a single menu entry.
type Item struct {
	Choice Choice
	Label  string
}

// Items lists the menu entries in display order.
var Items = []Item{
	{ChoiceAdd, "Add a contact"},
	{ChoiceUpdate, "Update a contact"},
	{ChoiceDelete, "Delete a contact"},
	{ChoiceList, "List all contacts"},
	{ChoiceExit, "Exit"},
}

// User-facing text shared by every frontend.
const (
	Title         = "Welcome to the Contact Manager!"
	ChoicePrompt  = "Enter your choice: "
	InvalidChoice = "Invalid choice. Please try again."
	Goodbye       = "Goodbye!"

	MsgAdded    = "Contact added successfully!"
	MsgUpdated  = "Contact updated successfully!"
	MsgDeleted  = "Contact deleted successfully!"
	MsgEmpty    = "No contacts found."
	MsgListHead = "Contacts:"
)

// AddMode selects how the add choice treats an existing name.
type AddMode string

const (
	AddAppend AddMode = "append" // Always append, allowing duplicate names.
	AddUpsert AddMode = "upsert" // Update the first contact with the name, else append.
)

// ParseChoice maps raw input to a Choice. Only the exact strings "1" through "5"
// are accepted.
func ParseChoice(s string) (Choice, bool) {
	for _, it := range Items {
		if string(it.Choice) == s {
			return it.Choice, true
		}
	}
	return "", false
}

// Prompts returns the free-text prompts asked before the choice is applied.
func Prompts(c Choice) []string {
	switch c {
	case ChoiceAdd:
		return []string{"Enter name: ", "Enter phone: ", "Enter email: "}
	case ChoiceUpdate:
		return []string{"Enter name of contact to update: ", "Enter new phone: ", "Enter new email: "}
	case ChoiceDelete:
		return []string{"Enter name of contact to delete: "}
	default:
		return nil
	}
}

// Store is the contact collection the handler operates on.
// *contact.Repository satisfies it.
type Store interface {
	Add(c *contact.Contact)
	Update(name, phone, email string) error
	Upsert(name, phone, email string) bool
	Delete(name string) error
	All() []*contact.Contact
}

var _ Store = (*contact.Repository)(nil)
