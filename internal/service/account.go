// internal/service/account.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/nextintern/internal/auth"
	"github.com/dangerclosesec/nextintern/internal/config"
	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/email/mailer"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/workflow"
	"github.com/google/uuid"
)

type AccountService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	mailer         mailer.Sender
	config         *config.Config
	now            func() time.Time
}

func NewAccountService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	sender mailer.Sender,
	config *config.Config,
) *AccountService {
	return &AccountService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		mailer:         sender,
		config:         config,
		now:            time.Now,
	}
}

type SignupInput struct {
	Email           string     `json:"email" validate:"required,email"`
	FirstName       string     `json:"first_name" validate:"required,max=100"`
	LastName        string     `json:"last_name" validate:"max=100"`
	Password        string     `json:"password" validate:"required,min=8"`
	ConfirmPassword string     `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            model.Role `json:"role" validate:"required,oneof=CANDIDATE INDUSTRY INSTITUTE"`
	CompanyName     string     `json:"company_name" validate:"required_if=Role INDUSTRY,max=200"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup creates the account and, for candidates and companies, the profile
// with its permanent anonymous id.
func (s *AccountService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := workflow.ValidateStruct(input); err != nil {
		return nil, err
	}
	if err := auth.CheckStrength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		Status:       model.StatusActive,
		PasswordHash: hashedPassword,
	}

	var (
		candidate   *model.Candidate
		company     *model.Company
		displayName string
	)
	switch input.Role {
	case model.RoleCandidate:
		candidate = &model.Candidate{
			AnonymousID: policy.NewAnonymousID(policy.KindCandidate),
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Email:       input.Email,
		}
		displayName, err = policy.DeriveDisplayName(policy.KindCandidate, candidate.AnonymousID, candidate.FullName(), false)
	case model.RoleIndustry:
		company = &model.Company{
			AnonymousID: policy.NewAnonymousID(policy.KindCompany),
			CompanyName: input.CompanyName,
			Email:       input.Email,
		}
		displayName, err = policy.DeriveDisplayName(policy.KindCompany, company.AnonymousID, company.CompanyName, false)
	case model.RoleInstitute:
		displayName = user.FirstName
	default:
		return nil, domain.ErrInvalidRole
	}
	if err != nil {
		return nil, fmt.Errorf("deriving display name: %w", err)
	}

	if err := s.repo.CreateWithProfile(ctx, user, candidate, company); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	if s.mailer != nil {
		err := mailer.SendWelcomeEmail(s.mailer, user.Email, mailer.WelcomeTemplateData{
			FirstName:    user.FirstName,
			RoleLabel:    roleLabel(user.Role),
			DisplayName:  displayName,
			DashboardURL: s.config.BaseURL + "/dashboard",
		})
		if err != nil {
			slog.WarnContext(ctx, "Failed to send welcome email", "error", err, "userID", user.ID)
		}
	}

	return &SignupOutput{
		User:  user,
		Token: token,
	}, nil
}

func roleLabel(r model.Role) string {
	switch r {
	case model.RoleCandidate:
		return "candidate"
	case model.RoleIndustry:
		return "company"
	case model.RoleInstitute:
		return "institute"
	case model.RoleAdmin:
		return "admin"
	}
	return "member"
}

func (s *AccountService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status == model.StatusSuspended {
		return nil, domain.ErrUnauthorized
	}

	if s.passwordHasher.NeedsRehash(user.PasswordHash) {
		if hashed, err := s.passwordHasher.Hash(input.Password); err == nil {
			user.PasswordHash = hashed
			if err := s.repo.Update(ctx, user); err != nil {
				slog.WarnContext(ctx, "Failed to upgrade password hash", "error", err, "userID", user.ID)
			}
		}
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{
		User:  user,
		Token: token,
	}, nil
}

// Me returns the caller's own account.
func (s *AccountService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}

type SubscribeInput struct {
	Months int `json:"months" validate:"omitempty,min=1,max=24"`
}

// Subscribe activates or extends premium and issues a token carrying the new
// tier. An unexpired subscription is extended from its current end.
func (s *AccountService) Subscribe(ctx context.Context, userID uuid.UUID, input SubscribeInput) (*LoginOutput, error) {
	if err := workflow.ValidateStruct(input); err != nil {
		return nil, err
	}
	months := input.Months
	if months == 0 {
		months = s.config.Premium.PeriodMonths
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := now
	if user.PremiumActive(now) && user.PremiumExpiresAt != nil {
		start = *user.PremiumExpiresAt
	}
	expires := start.AddDate(0, months, 0)
	user.IsPremium = true
	user.PremiumExpiresAt = &expires

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	slog.InfoContext(ctx, "Premium subscription activated", "userID", user.ID, "role", user.Role, "expiresAt", expires)
	return &LoginOutput{
		User:  user,
		Token: token,
	}, nil
}

type CreateAdminInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

// CreateAdmin provisions an ADMIN account. It is reachable from the CLI only.
func (s *AccountService) CreateAdmin(ctx context.Context, input CreateAdminInput) (*model.User, error) {
	if err := workflow.ValidateStruct(input); err != nil {
		return nil, err
	}
	if err := auth.CheckStrength(input.Password); err != nil {
		return nil, err
	}
	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user := &model.User{
		ID:           uuid.New(),
		Email:        input.Email,
		FirstName:    input.FirstName,
		Role:         model.RoleAdmin,
		Status:       model.StatusActive,
		PasswordHash: hashedPassword,
	}
	if err := s.repo.CreateWithProfile(ctx, user, nil, nil); err != nil {
		return nil, err
	}
	return user, nil
}

// ListAccounts pages through every account for admins.
func (s *AccountService) ListAccounts(ctx context.Context, offset, limit int) ([]*model.User, int64, error) {
	return s.repo.FindAllPaginated(ctx, offset, limit)
}
