package menu

import (
	"errors"
	"fmt"

	"github.com/smileynet/contacts/internal/contact"
)

// Handler applies menu choices to a Store and produces the lines to show the user.
type Handler struct {
	store         Store
	addMode       AddMode
	reportMissing bool
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAddMode sets how the add choice treats an existing name.
func WithAddMode(mode AddMode) HandlerOption {
	return func(h *Handler) {
		h.addMode = mode
	}
}

// WithReportMissing makes update and delete report names that match nothing
// instead of printing their usual confirmation.
func WithReportMissing(report bool) HandlerOption {
	return func(h *Handler) {
		h.reportMissing = report
	}
}

// NewHandler creates a Handler over store. Adds append by default and missing
// names are not reported.
func NewHandler(store Store, opts ...HandlerOption) *Handler {
	h := &Handler{store: store, addMode: AddAppend}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle applies choice using answers, given in the order of Prompts(choice).
// Missing answers are treated as empty strings. ChoiceExit and unknown choices
// produce no output.
func (h *Handler) Handle(choice Choice, answers []string) []string {
	switch choice {
	case ChoiceAdd:
		return h.add(answer(answers, 0), answer(answers, 1), answer(answers, 2))
	case ChoiceUpdate:
		name := answer(answers, 0)
		err := h.store.Update(name, answer(answers, 1), answer(answers, 2))
		return h.confirm(name, err, MsgUpdated)
	case ChoiceDelete:
		name := answer(answers, 0)
		err := h.store.Delete(name)
		return h.confirm(name, err, MsgDeleted)
	case ChoiceList:
		return h.list()
	default:
		return nil
	}
}

func (h *Handler) add(name, phone, email string) []string {
	if h.addMode == AddUpsert {
		if !h.store.Upsert(name, phone, email) {
			return []string{MsgUpdated}
		}
		return []string{MsgAdded}
	}
	h.store.Add(contact.New(name, phone, email))
	return []string{MsgAdded}
}

// confirm returns the success line, or a not-found line when reporting is on.
// Other store errors are always shown.
func (h *Handler) confirm(name string, err error, success string) []string {
	switch {
	case err == nil:
		return []string{success}
	case errors.Is(err, contact.ErrNotFound):
		if h.reportMissing {
			return []string{fmt.Sprintf("No contact named %q found.", name)}
		}
		return []string{success}
	default:
		return []string{fmt.Sprintf("error: %v", err)}
	}
}

func (h *Handler) list() []string {
	contacts := h.store.All()
	if len(contacts) == 0 {
		return []string{MsgEmpty}
	}
	lines := make([]string, 0, len(contacts)+1)
	lines = append(lines, MsgListHead)
	for _, c := range contacts {
		lines = append(lines, c.String())
	}
	return lines
}

func answer(answers []string, i int) string {
	if i < len(answers) {
		return answers[i]
	}
	return ""
}
