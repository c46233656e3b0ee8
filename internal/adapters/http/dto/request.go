package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// CreateTodoRequest represents the JSON body for creating a todo.
// Description and Completed are optional and default to "" and false.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Validate checks that a title is present. Whitespace counts as present.
// Returns a *domain.ValidationError if the check fails.
func (r *CreateTodoRequest) Validate() error {
	if r.Title == "" {
		return &domain.ValidationError{
			Fields: map[string]string{"title": domain.MsgRequired},
		}
	}
	return nil
}

// ToDomain converts the request to a new domain Todo.
func (r *CreateTodoRequest) ToDomain() *todo.Todo {
	return todo.New(r.Title, r.Description, r.Completed)
}

// UpdateTodoRequest represents the JSON body for a partial update. Omitted
// fields leave the stored value unchanged. An empty title is accepted, a
// null title is reported by NullTitle, and a null description clears it.
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`

	nullTitle bool
}

// UnmarshalJSON tells an explicit null apart from an omitted field.
func (r *UpdateTodoRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateTodoRequest
	if err := json.Unmarshal(data, (*fields)(r)); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.nullTitle = isNull(raw["title"])
	if isNull(raw["description"]) {
		cleared := ""
		r.Description = &cleared
	}
	return nil
}

// NullTitle reports whether the body set title to null.
func (r *UpdateTodoRequest) NullTitle() bool {
	return r.nullTitle
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(v, []byte("null"))
}

// ToPatch converts the request to a domain Patch.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	return todo.Patch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}
