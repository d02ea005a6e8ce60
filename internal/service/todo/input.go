package todo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// CreateInput holds the parameters for creating a todo.
type CreateInput struct {
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	errs := validateFields(i.Title, i.Description)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the full replacement state of a todo.
type UpdateInput struct {
	ID          uuid.UUID
	Title       string
	Description *string
	IsCompleted bool
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateFields(i.Title, i.Description)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput narrows the list of todos. A nil Completed returns all of them.
type ListInput struct {
	Completed *bool
}

func (i ListInput) filter() domain.TodoFilter {
	return domain.TodoFilter{Completed: i.Completed}
}

func validateFields(title string, description *string) []domain.FieldError {
	var errs []domain.FieldError

	title = strings.TrimSpace(title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("max %d characters", domain.MaxTitleLength),
		})
	}

	if description != nil {
		if utf8.RuneCountInString(strings.TrimSpace(*description)) > domain.MaxDescriptionLength {
			errs = append(errs, domain.FieldError{
				Field:   "description",
				Message: fmt.Sprintf("max %d characters", domain.MaxDescriptionLength),
			})
		}
	}

	return errs
}
