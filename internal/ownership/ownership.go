// Package ownership decides whether a proof of ownership authorizes
// mutation of a thread or reply.
package ownership

import (
	"crypto/subtle"

	"github.com/anonboard-dev/anonboard/internal/domain"
	internal_errors "github.com/anonboard-dev/anonboard/internal/errors"
)

// Proof carries whatever the caller presented: an anonymous owner token
// from the X-Owner-Token header, an authenticated user from a bearer
// credential, or both absent.
type Proof struct {
	Token string
	User  *domain.User
}

// Authorize is a pure predicate: it succeeds iff the presented token is
// non-empty and equal byte-for-byte to the item's owner token. No
// normalization, no partial matches. Authenticated identity deliberately
// does not grant delete rights; owner tokens are populated at creation
// time regardless of identity, so the token is the single proof checked.
func Authorize(ownerToken string, proof Proof) error {
	if proof.Token == "" {
		return internal_errors.Forbidden("Owner token required")
	}
	if subtle.ConstantTimeCompare([]byte(proof.Token), []byte(ownerToken)) != 1 {
		return internal_errors.Forbidden("Owner token mismatch")
	}
	return nil
}
