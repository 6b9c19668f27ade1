package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dangerclosesec/nextintern/internal/auth"
	"github.com/dangerclosesec/nextintern/internal/config"
	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/email"
	"github.com/dangerclosesec/nextintern/internal/mocks"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type outbox struct {
	mu   sync.Mutex
	sent []email.EmailData
}

func (o *outbox) SendEmail(data email.EmailData) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, data)
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{BaseURL: "https://nextintern.test"}
	cfg.Premium.PeriodMonths = 1
	return cfg
}

func newAccountService(t *testing.T) (*service.AccountService, *mocks.MockUserRepositoryIface, *outbox, *auth.TokenManager) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryIface(ctrl)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	mail := &outbox{}
	return service.NewAccountService(repo, auth.NewPasswordHasher(), tokens, mail, testConfig()), repo, mail, tokens
}

func TestSignupCreatesProfile(t *testing.T) {
	t.Run("candidate", func(t *testing.T) {
		svc, repo, mail, tokens := newAccountService(t)
		repo.EXPECT().
			CreateWithProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, u *model.User, c *model.Candidate, _ *model.Company) error {
				require.NotNil(t, c)
				assert.Regexp(t, `^cand-`, c.AnonymousID)
				assert.Equal(t, "Priya", c.FirstName)
				assert.Equal(t, model.RoleCandidate, u.Role)
				assert.NotEqual(t, "Secret123", u.PasswordHash)
				return nil
			})

		out, err := svc.Signup(context.Background(), service.SignupInput{
			Email:           "priya@example.com",
			FirstName:       "Priya",
			LastName:        "Sharma",
			Password:        "Secret123",
			ConfirmPassword: "Secret123",
			Role:            model.RoleCandidate,
		})
		require.NoError(t, err)

		claims, err := tokens.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, model.RoleCandidate, claims.Role)
		assert.False(t, claims.Premium)

		require.Len(t, mail.sent, 1)
		assert.Equal(t, "welcome", mail.sent[0].TemplateName)
	})

	t.Run("company needs a name", func(t *testing.T) {
		svc, _, _, _ := newAccountService(t)
		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:           "hr@acme.test",
			FirstName:       "Hiring",
			Password:        "Secret123",
			ConfirmPassword: "Secret123",
			Role:            model.RoleIndustry,
		})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "company_name", ve.Field)
	})

	t.Run("admin cannot self register", func(t *testing.T) {
		svc, _, _, _ := newAccountService(t)
		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:           "root@example.com",
			FirstName:       "Root",
			Password:        "Secret123",
			ConfirmPassword: "Secret123",
			Role:            model.RoleAdmin,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("weak password", func(t *testing.T) {
		svc, _, _, _ := newAccountService(t)
		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:           "weak@example.com",
			FirstName:       "Weak",
			Password:        "password",
			ConfirmPassword: "password",
			Role:            model.RoleCandidate,
		})
		assert.ErrorIs(t, err, domain.ErrPasswordTooWeak)
	})
}

func TestLogin(t *testing.T) {
	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Email: "a@example.com", Role: model.RoleIndustry, Status: model.StatusActive, PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		svc, repo, _, tokens := newAccountService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		out, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "Secret123"})
		require.NoError(t, err)
		claims, err := tokens.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, _, _ := newAccountService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "Wrong1234"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, repo, _, _ := newAccountService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		_, err := svc.Login(context.Background(), service.LoginInput{Email: "nobody@example.com", Password: "Secret123"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestSubscribeExtendsActivePremium(t *testing.T) {
	svc, repo, _, tokens := newAccountService(t)
	expires := time.Now().Add(10 * 24 * time.Hour).Truncate(time.Second)
	user := &model.User{ID: uuid.New(), Role: model.RoleIndustry, IsPremium: true, PremiumExpiresAt: &expires}

	repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	repo.EXPECT().Update(gomock.Any(), user).Return(nil)

	out, err := svc.Subscribe(context.Background(), user.ID, service.SubscribeInput{Months: 2})
	require.NoError(t, err)
	require.NotNil(t, out.User.PremiumExpiresAt)
	assert.Equal(t, expires.AddDate(0, 2, 0), *out.User.PremiumExpiresAt)

	claims, err := tokens.Validate(out.Token)
	require.NoError(t, err)
	assert.True(t, claims.Premium)
	require.NotNil(t, claims.PremiumUntil())
	assert.True(t, claims.PremiumUntil().Equal(expires.AddDate(0, 2, 0)))
}

func TestSubscribeStartsFromNowWhenLapsed(t *testing.T) {
	svc, repo, _, _ := newAccountService(t)
	lapsed := time.Now().Add(-48 * time.Hour)
	user := &model.User{ID: uuid.New(), Role: model.RoleCandidate, IsPremium: true, PremiumExpiresAt: &lapsed}

	repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	repo.EXPECT().Update(gomock.Any(), user).Return(nil)

	before := time.Now()
	out, err := svc.Subscribe(context.Background(), user.ID, service.SubscribeInput{})
	require.NoError(t, err)
	assert.True(t, out.User.PremiumExpiresAt.After(before.AddDate(0, 1, 0).Add(-time.Second)))
	assert.True(t, out.User.PremiumActive(time.Now()))
}
