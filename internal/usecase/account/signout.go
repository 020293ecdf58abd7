package account

import (
	"context"
	"time"

	"github.com/voicedoc/clinic-api/internal/audit"
	"github.com/voicedoc/clinic-api/internal/auth"
	domain "github.com/voicedoc/clinic-api/internal/domain/account"
	"github.com/voicedoc/clinic-api/internal/httperr"
)

// Revoker invalidates a token id until the token expires.
type Revoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}

type Signout struct {
	revoker Revoker
	audit   *audit.Dispatcher
}

// NewSignout builds the use case. Without a revoker signing out only
// succeeds; the token stays valid until it expires.
func NewSignout(revoker Revoker, audit *audit.Dispatcher) *Signout {
	return &Signout{revoker: revoker, audit: audit}
}

func (uc *Signout) Execute(ctx context.Context, id auth.Identity) error {
	if id.TokenID == "" {
		return httperr.ErrBusiness(domain.CodeInvalidSession)
	}

	if uc.revoker != nil {
		if err := uc.revoker.Revoke(ctx, id.TokenID, id.ExpiresAt); err != nil {
			return err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &id.UserID,
		Action: "user_signout",
		Entity: "user",
	})
	return nil
}
