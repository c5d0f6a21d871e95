package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleTeamLead Role = "team_lead"
	RoleEmployee Role = "employee"
	RoleReviewer Role = "reviewer"
	RoleTester   Role = "tester"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeamLead, RoleEmployee, RoleReviewer, RoleTester:
		return true
	}
	return false
}

// Capability names a single privileged action. Workflow services check
// capabilities, never role names, so adding a role is a table change only.
type Capability string

const (
	CapManageUsers     Capability = "manage_users"
	CapManageProjects  Capability = "manage_projects"
	CapManageSprints   Capability = "manage_sprints"
	CapAssignTasks     Capability = "assign_tasks"
	CapAssignReviewers Capability = "assign_reviewers"
	CapUpdateAnyTask   Capability = "update_any_task"
	CapDeleteTasks     Capability = "delete_tasks"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapManageUsers:     true,
		CapManageProjects:  true,
		CapManageSprints:   true,
		CapAssignTasks:     true,
		CapAssignReviewers: true,
		CapUpdateAnyTask:   true,
		CapDeleteTasks:     true,
	},
	RoleTeamLead: {
		CapManageProjects:  true,
		CapManageSprints:   true,
		CapAssignTasks:     true,
		CapAssignReviewers: true,
		CapUpdateAnyTask:   true,
		CapDeleteTasks:     true,
	},
	RoleEmployee: {},
	RoleReviewer: {},
	RoleTester:   {},
}

func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func New(username, email string, role Role) User {
	return User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Role:      role,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
}
