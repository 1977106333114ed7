package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/repositories"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"
	"github.com/Kermitroid/outterspace2/internal/services"
	"github.com/Kermitroid/outterspace2/internal/services/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type sessionDeps struct {
	auth     *mocks.MockAuthRepository
	profiles *mocks.MockProfileRepository
	tokens   *mocks.MockTokenIssuer
}

func newSessionService(t *testing.T) (*services.SessionService, sessionDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := sessionDeps{
		auth:     mocks.NewMockAuthRepository(ctrl),
		profiles: mocks.NewMockProfileRepository(ctrl),
		tokens:   mocks.NewMockTokenIssuer(ctrl),
	}
	deps.tokens.EXPECT().RefreshTTL().Return(30 * 24 * time.Hour).AnyTimes()
	deps.tokens.EXPECT().HashRefreshToken(gomock.Any()).DoAndReturn(func(token string) string {
		return "hash:" + token
	}).AnyTimes()
	svc := services.NewSessionService(deps.auth, deps.profiles, deps.tokens, fakeTxManager{}, discardLogger())
	return svc, deps
}

func (d sessionDeps) expectOpenSession(userID uuid.UUID) {
	d.tokens.EXPECT().NewRefreshToken().Return("refresh-1", "hash:refresh-1", nil)
	d.auth.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any(), userID, "hash:refresh-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, sessionID, uid uuid.UUID, hash string, expiresAt time.Time) (*po.AuthSession, error) {
			return &po.AuthSession{ID: sessionID, UserID: uid, RefreshTokenHash: hash, ExpiresAt: expiresAt}, nil
		})
	d.tokens.EXPECT().IssueAccessToken(userID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("access-1", time.Now().Add(time.Hour), nil)
}

func authUser(email, password string) *po.AuthUser {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return &po.AuthUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestSessionService_SignUp_Defaults(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)

	userID := uuid.New()
	deps.auth.EXPECT().CreateUser(gomock.Any(), gomock.Any(), "nova@example.com", gomock.Any(), po.UserMetadata{Name: "nova", Username: "nova"}).
		DoAndReturn(func(_ context.Context, _ any, email, hash string, meta po.UserMetadata) (*po.AuthUser, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
			return &po.AuthUser{ID: userID, Email: email, PasswordHash: hash, Metadata: meta}, nil
		})
	deps.profiles.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, input repositories.CreateProfileInput) (*po.Profile, error) {
			assert.Equal(t, userID, input.ID)
			assert.Equal(t, po.RoleUser, input.Role)
			assert.Equal(t, vo.DefaultAvatarURL("nova@example.com"), *input.AvatarURL)
			return &po.Profile{ID: input.ID, Username: input.Username, Name: input.Name, AvatarURL: input.AvatarURL, Role: input.Role}, nil
		})
	deps.expectOpenSession(userID)

	session, err := svc.SignUp(context.Background(), services.SignUpInput{Email: "  Nova@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	require.True(t, session.Authenticated())
	require.Equal(t, "nova", session.User.Name)
	require.Equal(t, "nova", session.User.Username)
	require.Equal(t, po.RoleUser, session.User.Role)
	require.Equal(t, "access-1", session.Token.AccessToken)
	require.Equal(t, "refresh-1", session.Token.RefreshToken)
	require.Equal(t, "Bearer", session.Token.TokenType)
}

func TestSessionService_SignUp_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newSessionService(t)

	cases := []struct {
		name  string
		input services.SignUpInput
	}{
		{name: "缺少邮箱", input: services.SignUpInput{Password: "secret1"}},
		{name: "邮箱格式错误", input: services.SignUpInput{Email: "not-an-email", Password: "secret1"}},
		{name: "密码过短", input: services.SignUpInput{Email: "a@b.io", Password: "12345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tc.input)
			require.True(t, services.IsValidation(err), "got %v", err)
		})
	}
}

func TestSessionService_SignUp_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)

	deps.auth.EXPECT().CreateUser(gomock.Any(), gomock.Any(), "taken@example.com", gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrEmailTaken)

	_, err := svc.SignUp(context.Background(), services.SignUpInput{Email: "taken@example.com", Password: "secret1"})
	require.True(t, services.IsValidation(err), "got %v", err)
}

func TestSessionService_SignIn(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)
	user := authUser("pilot@example.com", "hunter22")

	deps.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any(), "pilot@example.com").Return(user, nil).Times(2)
	deps.profiles.EXPECT().Get(gomock.Any(), gomock.Any(), user.ID).Return(&po.Profile{
		ID:   user.ID,
		Name: ptrString("Pilot"),
		Role: po.RoleAdmin,
	}, nil)
	deps.expectOpenSession(user.ID)

	session, err := svc.SignIn(context.Background(), "pilot@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "Pilot", session.User.Name)
	require.Equal(t, "pilot", session.User.Username)
	require.True(t, session.User.IsAdmin())
	require.Empty(t, session.Notice)

	_, err = svc.SignIn(context.Background(), "pilot@example.com", "wrong")
	require.True(t, services.IsAuthenticationRequired(err))
}

func TestSessionService_SignIn_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)

	deps.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any(), "ghost@example.com").Return(nil, repositories.ErrAuthUserNotFound)

	_, err := svc.SignIn(context.Background(), "ghost@example.com", "whatever")
	require.True(t, services.IsAuthenticationRequired(err))
}

func TestSessionService_SignIn_ProfileErrorKeepsDefaults(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)
	user := authUser("luna@example.com", "hunter22")

	deps.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any(), "luna@example.com").Return(user, nil)
	deps.profiles.EXPECT().Get(gomock.Any(), gomock.Any(), user.ID).Return(nil, errors.New("statement timeout"))
	deps.expectOpenSession(user.ID)

	session, err := svc.SignIn(context.Background(), "luna@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "luna", session.User.Name)
	require.Equal(t, vo.DefaultAvatarURL("luna@example.com"), session.User.AvatarURL)
	require.Equal(t, po.RoleUser, session.User.Role)
	require.NotEmpty(t, session.Notice)
}

func TestSessionService_Resume(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)
	ctx := context.Background()

	_, err := svc.Resume(ctx, services.Identity{})
	require.True(t, services.IsAuthenticationRequired(err))

	user := authUser("orbit@example.com", "hunter22")
	sessionID := uuid.New()
	deps.auth.EXPECT().GetSession(gomock.Any(), gomock.Any(), sessionID).Return(&po.AuthSession{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	deps.auth.EXPECT().GetUser(gomock.Any(), gomock.Any(), user.ID).Return(user, nil)
	deps.profiles.EXPECT().Get(gomock.Any(), gomock.Any(), user.ID).Return(nil, repositories.ErrProfileNotFound)

	session, err := svc.Resume(ctx, services.Identity{UserID: user.ID, SessionID: sessionID})
	require.NoError(t, err)
	require.Equal(t, sessionID, session.ID)
	require.Equal(t, "orbit", session.User.Name)
	require.Empty(t, session.Notice)
}

func TestSessionService_Resume_RevokedSession(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)

	userID, sessionID := uuid.New(), uuid.New()
	revoked := time.Now().Add(-time.Minute)
	deps.auth.EXPECT().GetSession(gomock.Any(), gomock.Any(), sessionID).Return(&po.AuthSession{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revoked,
	}, nil)

	_, err := svc.Resume(context.Background(), services.Identity{UserID: userID, SessionID: sessionID})
	require.True(t, services.IsAuthenticationRequired(err))
}

func TestSessionService_Refresh_Rotates(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)

	user := authUser("comet@example.com", "hunter22")
	sessionID := uuid.New()
	deps.auth.EXPECT().GetSessionByRefreshHash(gomock.Any(), gomock.Any(), "hash:old").Return(&po.AuthSession{
		ID:               sessionID,
		UserID:           user.ID,
		RefreshTokenHash: "hash:old",
		ExpiresAt:        time.Now().Add(time.Hour),
	}, nil)
	deps.auth.EXPECT().GetUser(gomock.Any(), gomock.Any(), user.ID).Return(user, nil)
	deps.profiles.EXPECT().Get(gomock.Any(), gomock.Any(), user.ID).Return(nil, repositories.ErrProfileNotFound)
	deps.tokens.EXPECT().NewRefreshToken().Return("new", "hash:new", nil)
	deps.auth.EXPECT().RotateSession(gomock.Any(), gomock.Any(), sessionID, "hash:old", "hash:new", gomock.Any()).
		Return(&po.AuthSession{ID: sessionID, UserID: user.ID}, nil)
	deps.tokens.EXPECT().IssueAccessToken(user.ID, sessionID, po.RoleUser, gomock.Any()).
		Return("access-2", time.Now().Add(time.Hour), nil)

	session, err := svc.Refresh(context.Background(), " old ")
	require.NoError(t, err)
	require.Equal(t, sessionID, session.ID)
	require.Equal(t, "access-2", session.Token.AccessToken)
	require.Equal(t, "new", session.Token.RefreshToken)
}

func TestSessionService_Refresh_ReusedToken(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)

	deps.auth.EXPECT().GetSessionByRefreshHash(gomock.Any(), gomock.Any(), "hash:stale").Return(nil, repositories.ErrAuthSessionNotFound)

	_, err := svc.Refresh(context.Background(), "stale")
	require.True(t, services.IsAuthenticationRequired(err))

	_, err = svc.Refresh(context.Background(), "  ")
	require.True(t, services.IsAuthenticationRequired(err))
}

func TestSessionService_SignOut_Idempotent(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)
	ctx := context.Background()

	require.NoError(t, svc.SignOut(ctx, uuid.Nil))

	sessionID := uuid.New()
	deps.auth.EXPECT().RevokeSession(gomock.Any(), gomock.Any(), sessionID).Return(nil)
	deps.auth.EXPECT().RevokeSession(gomock.Any(), gomock.Any(), sessionID).Return(repositories.ErrAuthSessionNotFound)
	require.NoError(t, svc.SignOut(ctx, sessionID))
	require.NoError(t, svc.SignOut(ctx, sessionID))

	deps.auth.EXPECT().RevokeSession(gomock.Any(), gomock.Any(), sessionID).Return(errors.New("conn refused"))
	require.True(t, services.IsStoreError(svc.SignOut(ctx, sessionID)))
}

func TestSessionService_UpdateProfile_AppliesOnlySetFields(t *testing.T) {
	t.Parallel()
	svc, deps := newSessionService(t)

	user := authUser("vega@example.com", "hunter22")
	updatedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	before := &po.Profile{
		ID:        user.ID,
		Username:  ptrString("vega"),
		Name:      ptrString("Vega"),
		AvatarURL: ptrString("https://img.example.com/vega.png"),
		Bio:       ptrString("old bio"),
		Role:      po.RoleUser,
	}
	deps.auth.EXPECT().GetUser(gomock.Any(), gomock.Any(), user.ID).Return(user, nil)
	deps.profiles.EXPECT().Get(gomock.Any(), gomock.Any(), user.ID).Return(before, nil)
	deps.profiles.EXPECT().Update(gomock.Any(), gomock.Any(), user.ID, mappers.ProfileFields{Bio: ptrString("new bio")}).
		Return(&po.Profile{ID: user.ID, Bio: ptrString("new bio"), UpdatedAt: updatedAt}, nil)

	session, err := svc.UpdateProfile(context.Background(), services.Identity{UserID: user.ID}, vo.ProfilePatch{Bio: ptrString("new bio")})
	require.NoError(t, err)
	require.Equal(t, "Vega", session.User.Name)
	require.Equal(t, "https://img.example.com/vega.png", session.User.AvatarURL)
	require.Equal(t, "new bio", *session.User.Bio)
	require.Equal(t, updatedAt, *session.User.UpdatedAt)
}

func TestSessionService_UpdateProfile_Guards(t *testing.T) {
	t.Parallel()
	svc, _ := newSessionService(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, services.Identity{}, vo.ProfilePatch{Name: ptrString("x")})
	require.True(t, services.IsAuthenticationRequired(err))

	_, err = svc.UpdateProfile(ctx, services.Identity{UserID: uuid.New()}, vo.ProfilePatch{Username: ptrString("  ")})
	require.True(t, services.IsValidation(err))
}
