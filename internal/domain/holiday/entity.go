package holiday

import "time"

type Type string

const (
	TypeNational Type = "national"
	TypeRegional Type = "regional"
	TypeCompany  Type = "company"
)

// ParseType rejects values outside the closed set.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeNational, TypeRegional, TypeCompany:
		return Type(s), true
	}
	return "", false
}

// Holiday is a calendar entry. Date is an ISO calendar date so range
// queries work with plain string comparison.
type Holiday struct {
	ID          string
	Name        string
	Date        string
	Type        Type
	Region      string
	IsOptional  bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
