package user

import "time"

// UserResponse is the wire shape for a user. Password hashes never leave
// the service layer.
type UserResponse struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ManagerEmail string `json:"managerEmail,omitempty"`
	Designation  string `json:"designation,omitempty"`
	Department   string `json:"department,omitempty"`
	Role         string `json:"role"`
	JoinedOn     string `json:"joinedOn,omitempty"`
}

func ToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ManagerEmail: u.ManagerEmail,
		Designation:  u.Designation,
		Department:   u.Department,
		Role:         string(u.Role),
	}
	if !u.JoinedOn.IsZero() {
		resp.JoinedOn = u.JoinedOn.Format(time.DateOnly)
	}
	return resp
}

func ToResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToResponse(u))
	}
	return responses
}
