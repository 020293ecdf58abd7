package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/voicedoc/clinic-api/internal/audit"
	domain "github.com/voicedoc/clinic-api/internal/domain/account"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/models"
	"github.com/voicedoc/clinic-api/internal/validators"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(user *models.User) (string, time.Time, error)
}

type SigninInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	UserAgent string `json:"-"`
}

type SigninResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type Signin struct {
	repo   domain.Repository
	tokens TokenIssuer
	audit  *audit.Dispatcher
}

func NewSignin(repo domain.Repository, tokens TokenIssuer, audit *audit.Dispatcher) *Signin {
	return &Signin{repo: repo, tokens: tokens, audit: audit}
}

func (uc *Signin) Execute(ctx context.Context, in SigninInput) (*SigninResult, error) {
	user, err := uc.repo.FindUserByEmail(ctx, validators.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeBadCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, httperr.ErrBusiness(domain.CodeBadCredentials)
	}

	// Doctors work from the web console only.
	if user.IsDoctor() && !fromBrowser(in.UserAgent) {
		return nil, httperr.ErrForbidden(domain.CodeBrowserRequired)
	}

	token, exp, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_signin",
		Entity: "user",
	})

	return &SigninResult{User: user, Token: token, ExpiresAt: exp}, nil
}

func fromBrowser(userAgent string) bool {
	for _, b := range domain.DoctorBrowsers {
		if strings.Contains(userAgent, b) {
			return true
		}
	}
	return false
}
