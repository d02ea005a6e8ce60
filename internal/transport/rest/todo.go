package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/service/todo"
)

// todoService defines the operations needed by TodoHandler.
type todoService interface {
	Create(ctx context.Context, ac auth.AuthContext, input todo.CreateInput) (*domain.Todo, error)
	List(ctx context.Context, ac auth.AuthContext, input todo.ListInput) ([]domain.Todo, error)
	Get(ctx context.Context, ac auth.AuthContext, id uuid.UUID) (*domain.Todo, error)
	Update(ctx context.Context, ac auth.AuthContext, input todo.UpdateInput) (*domain.Todo, error)
	Delete(ctx context.Context, ac auth.AuthContext, id uuid.UUID) error
}

// TodoHandler serves the /todos resource.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type createTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type updateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
}

type todoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

// Create handles POST /todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	ac, ok := h.authContext(w, r)
	if !ok {
		return
	}

	var req createTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), ac, todo.CreateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/todos/"+created.ID.String())
	writeJSON(w, http.StatusCreated, toTodoResponse(created))
}

// List handles GET /todos?completed={bool}.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	ac, ok := h.authContext(w, r)
	if !ok {
		return
	}

	var input todo.ListInput
	if raw := r.URL.Query().Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			writeFieldError(w, "completed", "must be true or false")
			return
		}
		input.Completed = &completed
	}

	todos, err := h.svc.List(r.Context(), ac, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]todoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, toTodoResponse(&todos[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	ac, ok := h.authContext(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.svc.Get(r.Context(), ac, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(t))
}

// Update handles PUT /todos/{id}. The body replaces title, description and
// completion.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	ac, ok := h.authContext(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), ac, todo.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(updated))
}

// Delete handles DELETE /todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ac, ok := h.authContext(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), ac, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoHandler) authContext(w http.ResponseWriter, r *http.Request) (auth.AuthContext, bool) {
	ac, err := auth.FromContext(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return auth.AuthContext{}, false
	}
	return ac, true
}

// pathID reads the {id} segment. A malformed or nil UUID names no todo, so
// it is answered like any other missing one.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil || id == uuid.Nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}
