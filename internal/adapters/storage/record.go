package storage

import "github.com/jsamuelsen11/todo-service/internal/domain/todo"

// todoRecord is the gorm model for the todos table. Description is nullable
// in the schema; a NULL column reads back as an empty string.
type todoRecord struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string  `gorm:"column:title;type:varchar(100);not null"`
	Description *string `gorm:"column:description;type:varchar(200)"`
	Completed   bool    `gorm:"column:completed;not null;default:false"`
}

// TableName pins the table name regardless of gorm's naming strategy.
func (todoRecord) TableName() string {
	return "todos"
}

// toDomainTodo converts a row to a domain Todo.
func toDomainTodo(rec *todoRecord) todo.Todo {
	t := todo.Todo{
		ID:        rec.ID,
		Title:     rec.Title,
		Completed: rec.Completed,
	}
	if rec.Description != nil {
		t.Description = *rec.Description
	}
	return t
}

// toDomainTodoList converts rows to a non-nil slice of domain Todos.
func toDomainTodoList(recs []todoRecord) []todo.Todo {
	todos := make([]todo.Todo, len(recs))
	for i := range recs {
		todos[i] = toDomainTodo(&recs[i])
	}
	return todos
}

// toRecord converts a domain Todo to a row. The description is always
// written, so new rows store "" rather than NULL.
func toRecord(t *todo.Todo) todoRecord {
	description := t.Description
	return todoRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: &description,
		Completed:   t.Completed,
	}
}
