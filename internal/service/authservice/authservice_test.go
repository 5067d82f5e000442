package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/pkg/auth"
	"github.com/haruharu/groveback/pkg/validate"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		password      string
		nickname      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration",
			email:    "haru@example.com",
			password: "testpassword",
			nickname: "Haru",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "haru@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, "haru@example.com", user.Email)
						assert.Equal(t, "hashedpassword", user.PasswordHash)
						assert.Equal(t, "Haru", user.Nickname)
						assert.True(t, validate.IsLuna(user.MemberNumber))
						user.ID = uuid.New()
						return user, nil
					})
			},
			expectedError: nil,
		},
		{
			name:     "Email already registered",
			email:    "haru@example.com",
			password: "testpassword",
			nickname: "Haru",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "haru@example.com").
					Return(&domain.User{Email: "haru@example.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:     "Error finding user",
			email:    "haru@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "haru@example.com").
					Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			email:    "haru@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "haru@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Register(context.Background(), tt.email, tt.password, tt.nickname)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("Successful authentication updates last login", func(t *testing.T) {
		service, userRepo, passwordHasher, _ := NewMock(t)
		userRepo.EXPECT().FindByEmail(context.Background(), "haru@example.com").Return(&domain.User{
			ID: userID, Email: "haru@example.com", PasswordHash: "hashed",
		}, nil)
		passwordHasher.EXPECT().ComparePassword("hashed", "testpassword").Return(true)
		userRepo.EXPECT().UpdateLastLogin(context.Background(), userID).Return(nil)

		user, err := service.Authenticate(context.Background(), "haru@example.com", "testpassword")
		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("Unknown email", func(t *testing.T) {
		service, userRepo, _, _ := NewMock(t)
		userRepo.EXPECT().FindByEmail(context.Background(), "haru@example.com").Return(nil, nil)

		user, err := service.Authenticate(context.Background(), "haru@example.com", "testpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("Wrong password", func(t *testing.T) {
		service, userRepo, passwordHasher, _ := NewMock(t)
		userRepo.EXPECT().FindByEmail(context.Background(), "haru@example.com").Return(&domain.User{
			ID: userID, PasswordHash: "hashed",
		}, nil)
		passwordHasher.EXPECT().ComparePassword("hashed", "wrong").Return(false)

		user, err := service.Authenticate(context.Background(), "haru@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, user)
	})
}

func TestGenerateToken(t *testing.T) {
	userID := uuid.New()

	t.Run("Token issued", func(t *testing.T) {
		service, _, _, jwtService := NewMock(t)
		jwtService.EXPECT().GenerateJWT(userID, gomock.Any()).Return("token123", nil)

		token, err := service.GenerateToken(userID)
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("Issuing fails", func(t *testing.T) {
		service, _, _, jwtService := NewMock(t)
		jwtService.EXPECT().GenerateJWT(userID, gomock.Any()).Return("", errors.New("sign error"))

		token, err := service.GenerateToken(userID)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestGetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Profile found", func(t *testing.T) {
		service, userRepo, _, _ := NewMock(t)
		userRepo.EXPECT().FindByID(context.Background(), userID).Return(&domain.User{ID: userID}, nil)

		user, err := service.GetProfile(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("Unknown user", func(t *testing.T) {
		service, userRepo, _, _ := NewMock(t)
		userRepo.EXPECT().FindByID(context.Background(), userID).Return(nil, nil)

		user, err := service.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}
