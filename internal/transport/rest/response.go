package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeErrors(w http.ResponseWriter, status int, messages []string) {
	writeJSON(w, status, map[string][]string{"errors": messages})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "Invalid JSON body")
	}
	return nil
}

// handleError maps service errors onto status codes and the response bodies
// clients already rely on.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		msgs := make([]string, len(verr.Errors))
		for i, fe := range verr.Errors {
			msgs[i] = fe.Message
		}
		writeErrors(w, http.StatusBadRequest, msgs)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")

	case errors.Is(err, domain.ErrLoanForOtherUser):
		writeError(w, http.StatusForbidden, "Access denied - You can only create loans for yourself")
	case errors.Is(err, domain.ErrLoanForOtherLibrarian):
		writeError(w, http.StatusForbidden, "Access denied - Cannot create loans for other librarians")
	case errors.Is(err, domain.ErrLoanHistoryDenied):
		writeError(w, http.StatusForbidden, "Access denied - You can only view your own loans")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Access Denied")

	case errors.Is(err, domain.ErrBookNotFound):
		writeError(w, http.StatusNotFound, "Book not found")
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrLoanNotFound):
		writeError(w, http.StatusNotFound, "Loan not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")

	case errors.Is(err, domain.ErrLoanAlreadyReturned):
		writeError(w, http.StatusBadRequest, "Book already returned")
	case errors.Is(err, domain.ErrDuplicateISBN):
		writeErrors(w, http.StatusConflict, []string{"Book with this ISBN already exists"})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Conflict")

	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "This value should be of type int.")
	}
	return n, nil
}

func pathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "ID must be a positive integer")
	}
	return id, nil
}

// bookResponse is the wire form of domain.Book.
type bookResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publicationYear"`
	NumberOfCopies  int    `json:"numberOfCopies"`
}

func toBookResponse(b domain.Book) bookResponse {
	return bookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		NumberOfCopies:  b.NumberOfCopies,
	}
}

type loanResponse struct {
	ID         int64      `json:"id"`
	BookID     int64      `json:"bookId"`
	UserID     int64      `json:"userId"`
	LoanDate   time.Time  `json:"loanDate"`
	ReturnedAt *time.Time `json:"returnedAt"`
	Status     string     `json:"status"`
}

func toLoanResponse(l domain.Loan) loanResponse {
	return loanResponse{
		ID:         l.ID,
		BookID:     l.BookID,
		UserID:     l.UserID,
		LoanDate:   l.LoanDate,
		ReturnedAt: l.ReturnedAt,
		Status:     l.Status.String(),
	}
}
