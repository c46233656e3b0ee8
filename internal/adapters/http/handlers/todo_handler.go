package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// TodoHandler handles HTTP requests for todo CRUD operations. Every response
// is a dto.Envelope.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Home handles GET / by redirecting to the todo collection.
func (h *TodoHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/todos", http.StatusFound)
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.ListTodos(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	msg := dto.MsgListRetrieved
	if len(todos) == 0 {
		msg = dto.MsgEmptyList
	}
	writeJSON(w, r, http.StatusOK, dto.Success(msg, dto.ToTodoListResponse(todos)))
}

// GetTodo handles GET /todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.Success(dto.MsgRetrieved, dto.ToTodoResponse(t)))
}

// CreateTodo handles POST /todos. A missing or malformed body is treated the
// same as one without a title. A body whose title is usable but whose other
// fields have the wrong type is a server error.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		if field := mistypedField(err); field != "" && field != "title" {
			rejectBody(w, r, err)
			return
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"title": domain.MsgRequired},
		})
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.svc.CreateTodo(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.Success(dto.MsgCreated, dto.ToTodoResponse(created)))
}

var errNullTitle = errors.New("title must not be null")

// UpdateTodo handles PUT /todos/{id}. Only fields present in the body are
// changed. A missing todo is 404 whatever the body holds; an unusable body
// for an existing todo is a server error.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	bodyErr := decodeJSONBody(w, r, &req)
	if bodyErr == nil && req.NullTitle() {
		bodyErr = errNullTitle
	}
	if bodyErr != nil {
		if _, err := h.svc.GetTodo(r.Context(), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		rejectBody(w, r, bodyErr)
		return
	}

	updated, err := h.svc.UpdateTodo(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.Success(dto.MsgUpdated, dto.ToTodoResponse(updated)))
}

// DeleteTodo handles DELETE /todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.Success(dto.MsgDeleted, dto.DeletedResponse{ID: id}))
}
