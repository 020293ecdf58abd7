package account

import (
	"context"

	domain "github.com/voicedoc/clinic-api/internal/domain/account"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/validators"
)

// CheckEmail reports whether an address may be used for a new account.
type CheckEmail struct {
	repo        domain.Repository
	checkDomain bool
}

func NewCheckEmail(repo domain.Repository, checkDomain bool) *CheckEmail {
	return &CheckEmail{repo: repo, checkDomain: checkDomain}
}

func (uc *CheckEmail) Execute(ctx context.Context, raw string) error {
	if raw == "" {
		return httperr.ErrBusiness(domain.CodeMissingEmail)
	}

	email, err := checkEmail(raw, uc.checkDomain)
	if err != nil {
		return err
	}

	exists, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return httperr.ErrConflict(domain.CodeEmailTaken)
	}
	return nil
}

func CheckPassword(password string) error {
	if password == "" {
		return httperr.ErrBusiness(domain.CodeMissingPassword)
	}
	if !validators.IsPasswordValid(password) {
		return httperr.ErrBusiness(domain.CodeInvalidPassword)
	}
	return nil
}
