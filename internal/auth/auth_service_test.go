package auth_test

import (
	"context"
	"os"
	"testing"

	"go-payroll/internal/auth"
	autherrors "go-payroll/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	findByEmailFn func(ctx context.Context, email string) (*auth.User, error)
}

func (f *fakeAuthRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	_ = os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { _ = os.Unsetenv("JWT_SECRET") })

	employeeID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	assert.NoError(t, err)

	repo := &fakeAuthRepository{
		findByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			assert.Equal(t, "jamal@example.com", email)
			return &auth.User{
				ID:           uuid.New(),
				Email:        email,
				PasswordHash: string(hash),
				Role:         "manager",
				EmployeeID:   &employeeID,
			}, nil
		},
	}

	svc := auth.NewService(repo)
	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "jamal@example.com", Password: "s3cret!"})

	assert.NoError(t, err)
	assert.Equal(t, "manager", resp.Role)
	assert.Equal(t, int64(8*3600), resp.ExpiresIn)

	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	if assert.True(t, ok) {
		assert.Equal(t, employeeID.String(), claims["employee_id"])
		assert.Equal(t, "manager", claims["role"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	assert.NoError(t, err)

	repo := &fakeAuthRepository{
		findByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return &auth.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}, nil
		},
	}

	svc := auth.NewService(repo)
	_, err = svc.Login(ctx, auth.LoginRequest{Email: "jamal@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	svc := auth.NewService(&fakeAuthRepository{})
	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}
