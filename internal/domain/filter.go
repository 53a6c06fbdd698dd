package domain

// BooksPageSize is the fixed page size of the catalog listing.
const BooksPageSize = 10

// Loan history paging bounds.
const (
	DefaultLoanHistoryLimit = 10
	MaxLoanHistoryLimit     = 100
)

// BookFilter narrows the catalog listing. Zero values mean "not set";
// Page 0 is treated as page 1.
type BookFilter struct {
	Title  string
	Author string
	ISBN   string
	Year   int
	Page   int
}

// PageNumber returns the effective 1-based page.
func (f BookFilter) PageNumber() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

// Offset returns the row offset of the effective page.
func (f BookFilter) Offset() int {
	return (f.PageNumber() - 1) * BooksPageSize
}

// BookPage is one page of the catalog listing.
type BookPage struct {
	Books       []Book
	TotalCount  int
	CurrentPage int
	TotalPages  int
}

// LoanHistoryQuery selects one page of a user's loans, newest first.
type LoanHistoryQuery struct {
	UserID int64
	Page   int
	Limit  int
}

// Offset returns the row offset of the requested page.
func (q LoanHistoryQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination describes where a page sits in the full result.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int
	Limit       int
}

// LoanPage is one page of a user's loan history.
type LoanPage struct {
	Loans      []Loan
	Pagination Pagination
}

// TotalPages returns ceil(total/size), or 0 when size is not positive.
func TotalPages(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
