// Package todo defines the Todo entity, the only record type the service
// manages.
package todo

import "github.com/jsamuelsen11/todo-service/internal/domain"

// Column limits enforced by the storage schema. The service itself only
// checks that a title is present on create.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 200
)

// Todo is a single task record.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
}

// New builds a Todo ready to be persisted. Description and completed default
// to their zero values when omitted by the caller.
func New(title string, description *string, completed *bool) *Todo {
	t := &Todo{Title: title}
	if description != nil {
		t.Description = *description
	}
	if completed != nil {
		t.Completed = *completed
	}
	return t
}

// Validate checks the rules a new Todo must satisfy before it is created.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) or nil.
// A nil Todo fails validation.
func (t *Todo) Validate() error {
	if t == nil || t.Title == "" {
		return &domain.ValidationError{
			Fields: map[string]string{"title": domain.MsgRequired},
		}
	}
	return nil
}

// Patch holds a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// Apply overwrites the fields of t that are set in p. An included title is
// applied as-is, even when empty.
func (p Patch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
