package user

import (
	"context"

	"github.com/google/uuid"

	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, u domainuser.User) (domainuser.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainuser.User, error)
	List(ctx context.Context, role *domainuser.Role) ([]domainuser.User, error)
	// IDsByRoles backs notification fan-out to admins and team leads.
	IDsByRoles(ctx context.Context, roles ...domainuser.Role) ([]uuid.UUID, error)
	// Delete fails with a foreign-key restriction while the user is a
	// reporter or creator; assignee/reviewer/tester references become NULL.
	Delete(ctx context.Context, id uuid.UUID) error
}
