package cache

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// Anchor keys and tags of the catalog listing.
const (
	BooksListAllKey      = "books_list_all"
	BooksListFilteredKey = "books_list_filtered"
	BooksListTag         = "books_list"
)

// BookDetailKey is the key of one book's detail.
func BookDetailKey(id int64) string {
	return "book_detail_" + strconv.FormatInt(id, 10)
}

// UserLoansKey is the key of one page of a user's loan history.
func UserLoansKey(userID int64, page int) string {
	return "user_loans_" + strconv.FormatInt(userID, 10) + "_page_" + strconv.Itoa(page)
}

// BooksListKey derives the key of a catalog listing. With no filter field set
// it is BooksListAllKey. Otherwise the set fields are sorted by name, encoded
// as name=value pairs joined by '&', and md5-hashed, so field order never
// changes the key.
func BooksListKey(f domain.BookFilter) string {
	fields := make(map[string]string, 5)
	if f.Title != "" {
		fields["title"] = f.Title
	}
	if f.Author != "" {
		fields["author"] = f.Author
	}
	if f.ISBN != "" {
		fields["isbn"] = f.ISBN
	}
	if f.Year != 0 {
		fields["year"] = strconv.Itoa(f.Year)
	}
	if f.PageNumber() != 1 {
		fields["pageNumber"] = strconv.Itoa(f.PageNumber())
	}
	return booksListKey(fields)
}

func booksListKey(fields map[string]string) string {
	if len(fields) == 0 {
		return BooksListAllKey
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = name + "=" + fields[name]
	}

	sum := md5.Sum([]byte(strings.Join(pairs, "&")))
	return "books_list_" + hex.EncodeToString(sum[:])
}

// BookMutationKeys lists the keys purged when a book is created or changed.
// Keys tagged BooksListTag must be purged alongside.
func BookMutationKeys(bookID int64) []string {
	keys := []string{BooksListAllKey, BooksListFilteredKey}
	if bookID > 0 {
		keys = append(keys, BookDetailKey(bookID))
	}
	return keys
}

// LoanMutationKeys lists the keys purged when a loan is created or returned:
// the first pages of the borrower's history and the book's detail.
func LoanMutationKeys(userID, bookID int64, historyPages int) []string {
	keys := make([]string, 0, historyPages+1)
	for page := 1; page <= historyPages; page++ {
		keys = append(keys, UserLoansKey(userID, page))
	}
	return append(keys, BookDetailKey(bookID))
}
