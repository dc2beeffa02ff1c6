package holiday

import (
	"strings"

	"github.com/naxrita/hrms-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Region      string `json:"region"`
	IsOptional  bool   `json:"is_optional"`
	Description string `json:"description"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.Type == "" {
		r.Type = string(TypeCompany)
	} else if _, ok := ParseType(r.Type); !ok {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be national, regional, or company"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Region      string `json:"region"`
	IsOptional  bool   `json:"is_optional"`
	Description string `json:"description"`
}

func ToResponse(h *Holiday) Response {
	return Response{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date,
		Type:        string(h.Type),
		Region:      h.Region,
		IsOptional:  h.IsOptional,
		Description: h.Description,
	}
}

func ToResponseList(holidays []Holiday) []Response {
	out := make([]Response, 0, len(holidays))
	for i := range holidays {
		out = append(out, ToResponse(&holidays[i]))
	}
	return out
}
