package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/circulation-backend/internal/domain"
	"github.com/heartmarshall/circulation-backend/internal/service/circulation"
)

type circulationService interface {
	CreateLoan(ctx context.Context, input circulation.CreateLoanInput) (*domain.Loan, error)
	ReturnLoan(ctx context.Context, loanID int64) (*domain.Loan, error)
	LoanHistory(ctx context.Context, q domain.LoanHistoryQuery) (*domain.LoanPage, error)
}

// LoanHandler serves lending, returns and loan history.
type LoanHandler struct {
	svc circulationService
	log *slog.Logger
}

// NewLoanHandler creates a LoanHandler.
func NewLoanHandler(svc circulationService, logger *slog.Logger) *LoanHandler {
	return &LoanHandler{svc: svc, log: logger.With("handler", "loan")}
}

type createLoanRequest struct {
	BookID int64 `json:"bookId"`
	UserID int64 `json:"userId"`
}

type paginationResponse struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
	Limit       int `json:"limit"`
}

type loanHistoryResponse struct {
	Loans      []loanResponse     `json:"loans"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /api/loans.
func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	loan, err := h.svc.CreateLoan(r.Context(), circulation.CreateLoanInput{BookID: req.BookID, UserID: req.UserID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLoanResponse(*loan))
}

// Return handles PUT|PATCH /api/loans/{id}/return. Librarians only.
func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	loan, err := h.svc.ReturnLoan(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLoanResponse(*loan))
}

// History handles GET /api/users/{id}/loans?page&limit.
func (h *LoanHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := domain.LoanHistoryQuery{UserID: userID, Page: 1, Limit: domain.DefaultLoanHistoryLimit}
	if r.URL.Query().Has("page") {
		if q.Page, err = queryInt(r, "page"); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		if q.Page < 1 {
			handleError(w, r, h.log, domain.NewValidationError("page", "Page must be at least 1"))
			return
		}
	}
	if r.URL.Query().Has("limit") {
		if q.Limit, err = queryInt(r, "limit"); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		if q.Limit < 1 {
			handleError(w, r, h.log, domain.NewValidationError("limit", "Limit must be between 1 and 100"))
			return
		}
	}

	page, err := h.svc.LoanHistory(r.Context(), q)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := loanHistoryResponse{
		Loans: make([]loanResponse, 0, len(page.Loans)),
		Pagination: paginationResponse{
			CurrentPage: page.Pagination.CurrentPage,
			TotalPages:  page.Pagination.TotalPages,
			TotalCount:  page.Pagination.TotalCount,
			Limit:       page.Pagination.Limit,
		},
	}
	for _, l := range page.Loans {
		resp.Loans = append(resp.Loans, toLoanResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}
