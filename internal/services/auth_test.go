package services_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/models"
	"github.com/sbilibin2017/pawpals-api/internal/repositories"
	"github.com/sbilibin2017/pawpals-api/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader *services.MockUserReader
	writer *services.MockUserWriter
	jwt    *services.MockJWTGenerator
	tokens *services.MockResetTokenStore
	kafka  *services.MockKafkaWriter
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader: services.NewMockUserReader(ctrl),
		writer: services.NewMockUserWriter(ctrl),
		jwt:    services.NewMockJWTGenerator(ctrl),
		tokens: services.NewMockResetTokenStore(ctrl),
		kafka:  services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewAuthService(m.reader, m.writer, m.jwt, m.tokens, m.kafka, time.Hour)
	return svc, m
}

func ptr[T any](v T) *T { return &v }

func TestAuthService_Register(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		lat, lon *float64
		setup    func(m authMocks)
		wantErr  error
		anyErr   bool
	}{
		{
			name: "successful registration with location",
			lat:  ptr(52.5),
			lon:  ptr(13.4),
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) (*models.UserDB, error) {
						assert.Equal(t, "Alice", u.Name)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass123")))
						assert.Equal(t, 52.5, *u.LocationLatitude)
						assert.Equal(t, 13.4, *u.LocationLongitude)
						saved := *u
						saved.UserID = userID
						return &saved, nil
					})
				m.jwt.EXPECT().Generate(gomock.Any(), userID).Return("token", nil)
			},
		},
		{
			name: "half a location is dropped",
			lat:  ptr(52.5),
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) (*models.UserDB, error) {
						assert.Nil(t, u.LocationLatitude)
						assert.Nil(t, u.LocationLongitude)
						saved := *u
						saved.UserID = userID
						return &saved, nil
					})
				m.jwt.EXPECT().Generate(gomock.Any(), userID).Return("token", nil)
			},
		},
		{
			name: "user already exists",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(&models.UserDB{UserID: uuid.New()}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "concurrent registration hits unique index",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
					Return(nil, errors.Join(repositories.ErrUniqueViolation, errors.New("23505")))
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "reader error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			anyErr: true,
		},
		{
			name: "jwt error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&models.UserDB{UserID: userID}, nil)
				m.jwt.EXPECT().Generate(gomock.Any(), userID).Return("", errors.New("jwt error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			token, user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123", tt.lat, tt.lon)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "token", token)
				assert.Equal(t, userID, user.UserID)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.UserDB{UserID: uuid.New(), Email: "bob@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		password string
		setup    func(m authMocks)
		wantErr  error
	}{
		{
			name:     "success",
			password: "correct",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(user, nil)
				m.jwt.EXPECT().Generate(gomock.Any(), user.UserID).Return("token", nil)
			},
		},
		{
			name:     "wrong password",
			password: "wrong",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email gives the same error",
			password: "correct",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			token, got, err := svc.Login(context.Background(), "bob@example.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", token)
			assert.Equal(t, user.UserID, got.UserID)
		})
	}
}

func TestAuthService_Profile(t *testing.T) {
	userID := uuid.New()

	t.Run("get missing user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		_, err := svc.GetUser(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Name: "Alice", Email: "alice@example.com"}, nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.UserDB) (*models.UserDB, error) {
				return u, nil
			})

		updated, err := svc.UpdateProfile(context.Background(), userID, models.UserPatch{
			ProfileImageURL: ptr("https://img.example.com/a.png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice", updated.Name)
		assert.Equal(t, "https://img.example.com/a.png", *updated.ProfileImageURL)
	})

	t.Run("delete", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)
		m.writer.EXPECT().Delete(gomock.Any(), userID).Return(nil)

		assert.NoError(t, svc.DeleteUser(context.Background(), userID))
	})

	t.Run("delete missing user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		assert.ErrorIs(t, svc.DeleteUser(context.Background(), userID), services.ErrNotFound)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	user := &models.UserDB{UserID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	t.Run("unknown email is silent", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		assert.NoError(t, svc.ForgotPassword(context.Background(), "nobody@example.com"))
	})

	t.Run("token stored and mail request published", func(t *testing.T) {
		svc, m := newAuthService(t)
		var stored string
		m.reader.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		m.tokens.EXPECT().Set(gomock.Any(), gomock.Any(), user.UserID).
			DoAndReturn(func(_ context.Context, token string, _ uuid.UUID) error {
				stored = token
				return nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				var req models.PasswordResetRequest
				require.NoError(t, json.Unmarshal(msgs[0].Value, &req))
				assert.Equal(t, user.Email, req.Email)
				assert.Equal(t, stored, req.Token)
				assert.Equal(t, user.UserID.String(), string(msgs[0].Key))
				return nil
			})

		assert.NoError(t, svc.ForgotPassword(context.Background(), user.Email))
		assert.NotEmpty(t, stored)
	})

	t.Run("kafka failure does not fail the request", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		m.tokens.EXPECT().Set(gomock.Any(), gomock.Any(), user.UserID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NoError(t, svc.ForgotPassword(context.Background(), user.Email))
	})

	t.Run("mail request waits for commit", func(t *testing.T) {
		svc, m := newAuthService(t)
		var deferred []func(context.Context)
		svc.WithAfterCommit(func(_ context.Context, fn func(context.Context)) {
			deferred = append(deferred, fn)
		})
		m.reader.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		m.tokens.EXPECT().Set(gomock.Any(), gomock.Any(), user.UserID).Return(nil)

		require.NoError(t, svc.ForgotPassword(context.Background(), user.Email))
		require.Len(t, deferred, 1)

		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
		deferred[0](context.Background())
	})

	t.Run("nil kafka writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		tokens := services.NewMockResetTokenStore(ctrl)
		svc := services.NewAuthService(reader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), tokens, nil, time.Hour)

		reader.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		tokens.EXPECT().Set(gomock.Any(), gomock.Any(), user.UserID).Return(nil)

		assert.NoError(t, svc.ForgotPassword(context.Background(), user.Email))
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	userID := uuid.New()

	t.Run("unknown token", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Take(gomock.Any(), "bad").Return(uuid.Nil, false, nil)

		assert.ErrorIs(t, svc.ResetPassword(context.Background(), "bad", "newpass1"), services.ErrInvalidResetToken)
	})

	t.Run("success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Take(gomock.Any(), "good").Return(userID, true, nil)
		m.writer.EXPECT().UpdatePassword(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass1")))
				return nil
			})

		assert.NoError(t, svc.ResetPassword(context.Background(), "good", "newpass1"))
	})

	t.Run("user deleted after token was issued", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Take(gomock.Any(), "good").Return(userID, true, nil)
		m.writer.EXPECT().UpdatePassword(gomock.Any(), userID, gomock.Any()).Return(sql.ErrNoRows)

		assert.ErrorIs(t, svc.ResetPassword(context.Background(), "good", "newpass1"), services.ErrInvalidResetToken)
	})
	t.Run("database failure keeps the token usable", func(t *testing.T) {
		svc, m := newAuthService(t)
		dbErr := errors.New("connection reset")
		gomock.InOrder(
			m.tokens.EXPECT().Take(gomock.Any(), "good").Return(userID, true, nil),
			m.writer.EXPECT().UpdatePassword(gomock.Any(), userID, gomock.Any()).Return(dbErr),
			m.tokens.EXPECT().Set(gomock.Any(), "good", userID).Return(nil),
		)

		assert.ErrorIs(t, svc.ResetPassword(context.Background(), "good", "newpass1"), dbErr)
	})
}
