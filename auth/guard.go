package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/dentist-api/model"
)

var (
	ErrMissingHeader   = errors.New("authorization header is missing")
	ErrMalformedHeader = errors.New("authorization header must be of the form 'Bearer <token>'")
	ErrForbiddenRole   = errors.New("role is not allowed to perform this operation")
)

// ForbiddenRoleError reports a valid token whose role is outside the allowed set.
type ForbiddenRoleError struct {
	Role    model.Role
	Allowed model.RoleSet
}

func (e *ForbiddenRoleError) Error() string {
	return fmt.Sprintf("role %q is not one of [%s]", e.Role, e.Allowed)
}

// Is lets errors.Is match ErrForbiddenRole.
func (e *ForbiddenRoleError) Is(target error) bool {
	return target == ErrForbiddenRole
}

// Guard authorizes requests from their Authorization header.
type Guard struct {
	codec *Codec
}

// NewGuard returns a Guard decoding tokens with codec.
func NewGuard(codec *Codec) *Guard {
	return &Guard{codec: codec}
}

// Authorize decodes the bearer token in header and checks its role against allowed.
// An empty allowed set accepts any valid token.
func (g *Guard) Authorize(header string, allowed model.RoleSet) (*Claims, error) {
	raw, err := BearerToken(header)
	if err != nil {
		return nil, err
	}

	claims, err := g.codec.Decode(raw)
	if err != nil {
		return nil, err
	}

	if !allowed.Empty() && !allowed.Contains(claims.Role) {
		return claims, &ForbiddenRoleError{Role: claims.Role, Allowed: allowed}
	}
	return claims, nil
}

// BearerToken extracts the token from a "Bearer <token>" header value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingHeader
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMalformedHeader
	}
	return parts[1], nil
}
