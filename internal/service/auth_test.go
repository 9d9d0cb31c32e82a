package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/security"
	"rentkart-backend/internal/service"
)

const testJWTSecret = "test-secret-key-that-is-long-enough!"

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 1)

	t.Run("creates the user with a hashed password and a token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAuthService(userRepo, tokens, emailSvc)

		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(nil, domain.NewNotFound("user", "asha@example.com")).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			if u.Email != "asha@example.com" || u.PasswordHash == "secret123" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil).Once()
		emailSvc.On("SendWelcomeEmail", ctx, "asha@example.com", "Asha").Return(nil).Once()

		user, token, err := svc.Signup(ctx, "Asha", "Asha@Example.com", "9999999999", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int32(7), user.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), claims.UserID)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens, new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(&domain.User{ID: 7}, nil).Once()

		_, _, err := svc.Signup(ctx, "Asha", "asha@example.com", "", "secret123")
		assert.ErrorIs(t, err, domain.ErrConflict)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens, new(MockEmailService))

		_, _, err := svc.Signup(ctx, "Asha", "asha@example.com", "", "nope")
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 1)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &domain.User{ID: 7, Email: "asha@example.com", PasswordHash: string(hash)}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens, new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

		user, token, err := svc.Login(ctx, "asha@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password fails without revealing which part is wrong", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens, new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

		_, _, err := svc.Login(ctx, "asha@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email fails the same way", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens, new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.NewNotFound("user", "ghost@example.com")).Once()

		_, _, err := svc.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
