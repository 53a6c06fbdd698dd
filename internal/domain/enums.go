package domain

// UserRole is the closed set of roles a user may hold.
type UserRole string

const (
	UserRoleLibrarian UserRole = "LIBRARIAN"
	UserRoleMember    UserRole = "MEMBER"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleLibrarian, UserRoleMember:
		return true
	}
	return false
}

// IsLibrarian reports whether the role grants catalog and circulation management.
func (r UserRole) IsLibrarian() bool { return r == UserRoleLibrarian }

// LoanStatus is the lifecycle state of a Loan.
type LoanStatus string

const (
	LoanStatusLent     LoanStatus = "LENT"
	LoanStatusReturned LoanStatus = "RETURNED"
	LoanStatusOverdue  LoanStatus = "OVERDUE"
	LoanStatusLost     LoanStatus = "LOST"
)

func (s LoanStatus) String() string { return string(s) }

func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanStatusLent, LoanStatusReturned, LoanStatusOverdue, LoanStatusLost:
		return true
	}
	return false
}
