// Package dto provides HTTP request/response data transfer objects and the
// JSON envelope used for every todo response, success or failure.
package dto

import "github.com/jsamuelsen11/todo-service/internal/domain/todo"

// Envelope messages.
const (
	MsgListRetrieved = "Todos retrieved successfully"
	MsgEmptyList     = "No todos found"
	MsgRetrieved     = "Todo retrieved successfully"
	MsgCreated       = "Todo created successfully"
	MsgUpdated       = "Todo updated successfully"
	MsgDeleted       = "Todo deleted successfully"

	MsgNotFound         = "Todo not found"
	MsgMissingTitle     = "Title is required"
	MsgInvalidBody      = "Invalid request body"
	MsgServerError      = "Internal server error"
	MsgRouteNotFound    = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// Envelope is the body of every todo response. Data is null when absent.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success builds a successful envelope carrying data.
func Success(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Failure builds a failed envelope with null data.
func Failure(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

// ToTodoListResponse converts todos to response DTOs. The result is never
// nil, so an empty list encodes as [] rather than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// DeletedResponse is the data payload of a successful delete.
type DeletedResponse struct {
	ID int64 `json:"id"`
}
