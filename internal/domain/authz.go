package domain

// Principal is the authenticated caller of a circulation operation.
type Principal struct {
	UserID int64
	Role   UserRole
}

// CanCreateLoan decides whether requester may open a loan for target.
// Members borrow only for themselves. Librarians may borrow for themselves
// and for members, but never for another librarian.
func CanCreateLoan(requester Principal, target *User) error {
	if !requester.Role.IsLibrarian() {
		if requester.UserID != target.ID {
			return ErrLoanForOtherUser
		}
		return nil
	}
	if requester.UserID != target.ID && target.Role.IsLibrarian() {
		return ErrLoanForOtherLibrarian
	}
	return nil
}

// CanViewLoanHistory decides whether requester may read targetUserID's loans.
func CanViewLoanHistory(requester Principal, targetUserID int64) error {
	if requester.Role.IsLibrarian() || requester.UserID == targetUserID {
		return nil
	}
	return ErrLoanHistoryDenied
}

// CanReturnLoan decides whether requester may close a loan.
func CanReturnLoan(requester Principal) error {
	if requester.Role.IsLibrarian() {
		return nil
	}
	return ErrLibrarianOnly
}

// CanManageCatalog decides whether requester may add books.
func CanManageCatalog(requester Principal) error {
	if requester.Role.IsLibrarian() {
		return nil
	}
	return ErrLibrarianOnly
}
