package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "manager-os-backend/internal/errors"
)

// actorContextKey is the gin context key the auth middleware stores the
// resolved actor under
const actorContextKey = "actor"

// Actor identifies the acting user for a single request: the authenticated
// user, the organization the user belongs to (nil when unaffiliated), and
// the directory Person linked to the user (nil when none). Actions receive
// the actor explicitly; there is no ambient current-user state.
type Actor struct {
	UserID         uuid.UUID
	Email          string
	OrganizationID *uuid.UUID
	PersonID       *uuid.UUID
}

// SetActor stores the actor on the request context. The auth middleware
// calls this after token verification; tests use it to bypass auth.
func SetActor(c *gin.Context, actor *Actor) {
	c.Set(actorContextKey, actor)
}

// ActorFromContext returns the actor resolved by the auth middleware
func ActorFromContext(c *gin.Context) (*Actor, error) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return nil, apperrors.ErrNoActor
	}
	actor, ok := value.(*Actor)
	if !ok {
		return nil, apperrors.ErrNoActor
	}
	return actor, nil
}
