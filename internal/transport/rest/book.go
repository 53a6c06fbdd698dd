package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/circulation-backend/internal/domain"
	"github.com/heartmarshall/circulation-backend/internal/service/catalog"
)

type catalogService interface {
	ListBooks(ctx context.Context, f domain.BookFilter) (*domain.BookPage, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
	CreateBook(ctx context.Context, input catalog.CreateBookInput) (*domain.Book, error)
}

// BookHandler serves the catalog endpoints.
type BookHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(svc catalogService, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, log: logger.With("handler", "book")}
}

type createBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Year   int    `json:"year"`
	Copies int    `json:"copies"`
}

type bookPageResponse struct {
	Books       []bookResponse `json:"books"`
	TotalCount  int            `json:"totalCount"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}

// List handles GET /api/books?title&author&isbn&year&pageNumber.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.BookFilter{
		Title:  q.Get("title"),
		Author: q.Get("author"),
		ISBN:   q.Get("isbn"),
	}

	var err error
	if f.Year, err = queryInt(r, "year"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if f.Page, err = queryInt(r, "pageNumber"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if q.Has("pageNumber") && f.Page < 1 {
		handleError(w, r, h.log, domain.NewValidationError("pageNumber", "Page number must be at least 1"))
		return
	}

	page, err := h.svc.ListBooks(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := bookPageResponse{
		Books:       make([]bookResponse, 0, len(page.Books)),
		TotalCount:  page.TotalCount,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}
	for _, b := range page.Books {
		resp.Books = append(resp.Books, toBookResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	book, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(*book))
}

// Create handles POST /api/books. Librarians only.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	book, err := h.svc.CreateBook(r.Context(), catalog.CreateBookInput{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
		Year:   req.Year,
		Copies: req.Copies,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookResponse(*book))
}
