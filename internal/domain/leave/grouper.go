package leave

import "github.com/naxrita/hrms-backend-go/internal/domain/user"

// ManagerGroup collects the pending leaves of everyone reporting to one
// manager. Manager may be a synthesized placeholder when no user record
// matches the manager email.
type ManagerGroup struct {
	Manager user.User
	Leaves  []LeaveRequest
}

// GroupByManager groups pending leave requests by the requesting
// employee's manager.
//
// Leaves whose employee cannot be resolved, or whose employee has no
// manager email, are skipped. A manager email with no matching user
// still forms a group, under a placeholder manager record. Group order
// follows first encounter of each manager email in the filtered leave
// sequence; it is stable, not sorted.
func GroupByManager(leaves []LeaveRequest, users []user.User) []ManagerGroup {
	byID := make(map[string]user.User, len(users))
	byEmail := make(map[string]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
		byEmail[u.Email] = u
	}

	groupIndex := make(map[string]int)
	var groups []ManagerGroup

	for _, lr := range leaves {
		if lr.Status != LeaveStatusPending {
			continue
		}

		employee, ok := byID[lr.EmployeeID]
		if !ok || employee.ManagerEmail == "" {
			continue
		}

		idx, ok := groupIndex[employee.ManagerEmail]
		if !ok {
			manager, found := byEmail[employee.ManagerEmail]
			if !found {
				manager = user.User{Name: "Unknown Manager", Email: employee.ManagerEmail}
			}
			idx = len(groups)
			groupIndex[employee.ManagerEmail] = idx
			groups = append(groups, ManagerGroup{Manager: manager})
		}

		enriched := lr
		enriched.EmployeeName = employee.Name
		enriched.EmployeeDesignation = employee.Designation
		enriched.EmployeeDepartment = employee.Department
		enriched.EmployeeEmail = employee.Email

		groups[idx].Leaves = append(groups[idx].Leaves, enriched)
	}

	return groups
}
