package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/voicedoc/clinic-api/internal/audit"
	domain "github.com/voicedoc/clinic-api/internal/domain/account"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/models"
	"github.com/voicedoc/clinic-api/internal/validators"
)

// SignupInput keeps optional fields as pointers so that a missing field can
// be told apart from an empty one.
type SignupInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	IsDoctor *bool   `json:"is_doctor"`
	Password *string `json:"password"`
}

type Signup struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	checkDomain bool
}

func NewSignup(repo domain.Repository, audit *audit.Dispatcher, checkDomain bool) *Signup {
	return &Signup{repo: repo, audit: audit, checkDomain: checkDomain}
}

func (uc *Signup) Execute(ctx context.Context, in SignupInput) (*models.User, error) {

	// --------------------------------------------------
	// 1️⃣ Required fields
	// --------------------------------------------------
	switch {
	case in.Name == nil || strings.TrimSpace(*in.Name) == "":
		return nil, httperr.ErrBusiness(domain.CodeMissingName)
	case in.Email == nil || strings.TrimSpace(*in.Email) == "":
		return nil, httperr.ErrBusiness(domain.CodeMissingEmail)
	case in.IsDoctor == nil:
		return nil, httperr.ErrBusiness(domain.CodeMissingIsDoctor)
	case in.Password == nil || *in.Password == "":
		return nil, httperr.ErrBusiness(domain.CodeMissingPassword)
	}

	// --------------------------------------------------
	// 2️⃣ Formats
	// --------------------------------------------------
	email, err := checkEmail(*in.Email, uc.checkDomain)
	if err != nil {
		return nil, err
	}
	if !validators.IsPasswordValid(*in.Password) {
		return nil, httperr.ErrBusiness(domain.CodeInvalidPassword)
	}

	// --------------------------------------------------
	// 3️⃣ Create
	// --------------------------------------------------
	hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := models.RolePatient
	if *in.IsDoctor {
		role = models.RoleDoctor
	}

	user := &models.User{
		Name:         strings.TrimSpace(*in.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_signup",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": role},
	})

	return user, nil
}

func checkEmail(raw string, checkDomain bool) (string, error) {
	email := validators.NormalizeEmail(raw)
	if !validators.IsEmailFormatValid(email) {
		return "", httperr.ErrBusiness(domain.CodeInvalidEmail)
	}
	if checkDomain && !validators.IsEmailDomainValid(email) {
		return "", httperr.ErrBusiness(domain.CodeInvalidDomain)
	}
	return email, nil
}
