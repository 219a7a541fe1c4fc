package access

import (
	"context"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/pkg/ctxutil"
)

// ActorFromCtx builds the actor from the authenticated identity in ctx.
func ActorFromCtx(ctx context.Context) (domain.Actor, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if !role.IsValid() {
		role = domain.UserRoleUser
	}
	return domain.Actor{ID: id, Role: role}, nil
}

// RequireAdmin returns the actor when ctx carries an admin identity.
func RequireAdmin(ctx context.Context) (domain.Actor, error) {
	actor, err := ActorFromCtx(ctx)
	if err != nil {
		return domain.Actor{}, err
	}
	if !actor.IsAdmin() {
		return domain.Actor{}, domain.ErrForbidden
	}
	return actor, nil
}
