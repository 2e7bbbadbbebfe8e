package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity is the key for storing the authenticated identity in the
	// request context.
	KeyIdentity ContextKey = "identity"
)

// Identity is the authenticated caller attached to a request by the auth
// middleware. Handlers read it instead of re-parsing the token.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// SetIdentity attaches the authenticated identity to the request.
func SetIdentity(c echo.Context, identity *Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the authenticated identity from the request.
// ok is false for anonymous requests.
func GetIdentity(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}

	return identity, true
}
