package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/repositories"
	"github.com/Kermitroid/outterspace2/internal/repositories/mappers"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

// MinPasswordLength 是注册密码的最小长度。
const MinPasswordLength = 6

const profileUnavailableNotice = "profile could not be loaded; showing account defaults"

// AuthRepository 抽象认证用户与会话仓储。
type AuthRepository interface {
	CreateUser(ctx context.Context, sess txmanager.Session, email, passwordHash string, meta po.UserMetadata) (*po.AuthUser, error)
	GetUserByEmail(ctx context.Context, sess txmanager.Session, email string) (*po.AuthUser, error)
	GetUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) (*po.AuthUser, error)
	CreateSession(ctx context.Context, sess txmanager.Session, sessionID, userID uuid.UUID, refreshHash string, expiresAt time.Time) (*po.AuthSession, error)
	GetSession(ctx context.Context, sess txmanager.Session, sessionID uuid.UUID) (*po.AuthSession, error)
	GetSessionByRefreshHash(ctx context.Context, sess txmanager.Session, refreshHash string) (*po.AuthSession, error)
	RotateSession(ctx context.Context, sess txmanager.Session, sessionID uuid.UUID, oldHash, newHash string, expiresAt time.Time) (*po.AuthSession, error)
	RevokeSession(ctx context.Context, sess txmanager.Session, sessionID uuid.UUID) error
}

// ProfileRepository 抽象档案仓储。
type ProfileRepository interface {
	ProfileReader
	Create(ctx context.Context, sess txmanager.Session, input repositories.CreateProfileInput) (*po.Profile, error)
	Update(ctx context.Context, sess txmanager.Session, userID uuid.UUID, fields mappers.ProfileFields) (*po.Profile, error)
}

// TokenIssuer 签发访问令牌并生成刷新令牌。
type TokenIssuer interface {
	IssueAccessToken(userID, sessionID uuid.UUID, role po.Role, now time.Time) (token string, expiresAt time.Time, err error)
	NewRefreshToken() (token, hash string, err error)
	HashRefreshToken(token string) string
	RefreshTTL() time.Duration
}

// SignUpInput 描述注册参数，Name/Username 为空时取邮箱本地部分。
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Username string
}

// SessionService 维护登录状态：注册、登录、恢复、刷新、登出与档案更新。
type SessionService struct {
	auth      AuthRepository
	profiles  ProfileRepository
	tokens    TokenIssuer
	txManager txmanager.Manager
	log       *log.Helper
	now       func() time.Time
}

// NewSessionService 构造 SessionService。
func NewSessionService(auth AuthRepository, profiles ProfileRepository, tokens TokenIssuer, tx txmanager.Manager, logger log.Logger) *SessionService {
	return &SessionService{
		auth:      auth,
		profiles:  profiles,
		tokens:    tokens,
		txManager: tx,
		log:       log.NewHelper(logger),
		now:       time.Now,
	}
}

// SignUp 创建认证用户，并在同一事务内创建档案与会话。
func (s *SessionService) SignUp(ctx context.Context, input SignUpInput) (*vo.Session, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if len(input.Password) < MinPasswordLength {
		return nil, ValidationError("password must be at least %d characters", MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ValidationError("password cannot be used: %v", err)
	}

	local, _, _ := strings.Cut(email, "@")
	meta := po.UserMetadata{
		Name:     firstNonBlank(input.Name, local),
		Username: firstNonBlank(input.Username, local),
	}
	avatar := vo.DefaultAvatarURL(email)

	var session *vo.Session
	err = s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		user, err := s.auth.CreateUser(txCtx, sess, email, string(hash), meta)
		if err != nil {
			if errors.Is(err, repositories.ErrEmailTaken) {
				return ValidationError("email %s is already registered", email)
			}
			return err
		}
		profile, err := s.profiles.Create(txCtx, sess, repositories.CreateProfileInput{
			ID:        user.ID,
			Username:  &meta.Username,
			Name:      &meta.Name,
			AvatarURL: &avatar,
			Role:      po.RoleUser,
		})
		if err != nil {
			return err
		}
		session, err = s.openSession(txCtx, sess, vo.MergeProfile(user, profile))
		return err
	})
	if err != nil {
		s.log.WithContext(ctx).Warnf("sign up failed: email=%s err=%v", email, err)
		return nil, storeFailure("sign up", err)
	}
	s.log.WithContext(ctx).Infof("user signed up: user=%s", session.User.ID)
	return session, nil
}

// SignIn 校验邮箱与密码并开启新会话。
func (s *SessionService) SignIn(ctx context.Context, email, password string) (*vo.Session, error) {
	normalized, err := normalizeEmail(email)
	if err != nil || password == "" {
		return nil, AuthenticationRequired("invalid login credentials")
	}
	user, err := s.auth.GetUserByEmail(ctx, nil, normalized)
	if err != nil {
		if errors.Is(err, repositories.ErrAuthUserNotFound) {
			return nil, AuthenticationRequired("invalid login credentials")
		}
		return nil, storeFailure("sign in", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, AuthenticationRequired("invalid login credentials")
	}

	current, notice := s.currentUser(ctx, nil, user)
	session, err := s.openSession(ctx, nil, current)
	if err != nil {
		return nil, storeFailure("sign in", err)
	}
	session.Notice = notice
	return session, nil
}

// Resume 为已认证身份重新读取用户与档案并合并。
func (s *SessionService) Resume(ctx context.Context, identity Identity) (*vo.Session, error) {
	if identity.Anonymous() {
		return nil, AuthenticationRequired("not signed in")
	}
	if identity.SessionID != uuid.Nil {
		row, err := s.auth.GetSession(ctx, nil, identity.SessionID)
		if err != nil {
			if errors.Is(err, repositories.ErrAuthSessionNotFound) {
				return nil, AuthenticationRequired("session not found")
			}
			return nil, storeFailure("resume session", err)
		}
		if row.UserID != identity.UserID || !row.Active(s.now()) {
			return nil, AuthenticationRequired("session expired")
		}
	}
	user, err := s.loadUser(ctx, nil, identity.UserID)
	if err != nil {
		return nil, err
	}
	current, notice := s.currentUser(ctx, nil, user)
	return &vo.Session{ID: identity.SessionID, User: current, Notice: notice}, nil
}

// Refresh 轮换刷新令牌并签发新的访问令牌；旧刷新令牌随即失效。
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*vo.Session, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, AuthenticationRequired("refresh token is required")
	}
	oldHash := s.tokens.HashRefreshToken(refreshToken)
	row, err := s.auth.GetSessionByRefreshHash(ctx, nil, oldHash)
	if err != nil {
		if errors.Is(err, repositories.ErrAuthSessionNotFound) {
			return nil, AuthenticationRequired("invalid refresh token")
		}
		return nil, storeFailure("refresh session", err)
	}
	now := s.now()
	if !row.Active(now) {
		return nil, AuthenticationRequired("session expired")
	}

	user, err := s.loadUser(ctx, nil, row.UserID)
	if err != nil {
		return nil, err
	}
	current, notice := s.currentUser(ctx, nil, user)

	newToken, newHash, err := s.tokens.NewRefreshToken()
	if err != nil {
		return nil, storeFailure("refresh session", err)
	}
	if _, err := s.auth.RotateSession(ctx, nil, row.ID, oldHash, newHash, now.Add(s.tokens.RefreshTTL())); err != nil {
		if errors.Is(err, repositories.ErrAuthSessionNotFound) {
			return nil, AuthenticationRequired("refresh token already used")
		}
		return nil, storeFailure("refresh session", err)
	}
	access, expiresAt, err := s.tokens.IssueAccessToken(user.ID, row.ID, current.Role, now)
	if err != nil {
		return nil, storeFailure("issue access token", err)
	}
	return &vo.Session{
		ID:     row.ID,
		User:   current,
		Token:  bearerToken(access, newToken, expiresAt),
		Notice: notice,
	}, nil
}

// SignOut 吊销会话；会话不存在或已吊销时视为成功。
func (s *SessionService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return nil
	}
	if err := s.auth.RevokeSession(ctx, nil, sessionID); err != nil {
		if errors.Is(err, repositories.ErrAuthSessionNotFound) {
			return nil
		}
		s.log.WithContext(ctx).Errorf("sign out failed: session=%s err=%v", sessionID, err)
		return storeFailure("sign out", err)
	}
	return nil
}

// UpdateProfile 只写入 patch 中非 nil 的字段，返回的会话仅替换这些字段。
func (s *SessionService) UpdateProfile(ctx context.Context, identity Identity, patch vo.ProfilePatch) (*vo.Session, error) {
	if identity.Anonymous() {
		return nil, AuthenticationRequired("you must be logged in to update your profile")
	}
	if patch.Username != nil && strings.TrimSpace(*patch.Username) == "" {
		return nil, ValidationError("username cannot be empty")
	}
	if patch.Empty() {
		return s.Resume(ctx, identity)
	}

	var current *vo.CurrentUser
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		user, err := s.loadUser(txCtx, sess, identity.UserID)
		if err != nil {
			return err
		}
		before, notice := s.currentUser(txCtx, sess, user)
		if notice != "" {
			return StoreError("load profile", errors.New(notice))
		}
		updated, err := s.profiles.Update(txCtx, sess, identity.UserID, mappers.ProfileFields(patch))
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return NotFound("profile not found")
			}
			return err
		}
		current = before.ApplyPatch(patch, updated.UpdatedAt)
		return nil
	})
	if err != nil {
		s.log.WithContext(ctx).Errorf("update profile failed: user=%s err=%v", identity.UserID, err)
		return nil, storeFailure("update profile", err)
	}
	return &vo.Session{ID: identity.SessionID, User: current}, nil
}

func (s *SessionService) loadUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) (*po.AuthUser, error) {
	user, err := s.auth.GetUser(ctx, sess, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAuthUserNotFound) {
			return nil, AuthenticationRequired("account no longer exists")
		}
		return nil, storeFailure("load user", err)
	}
	return user, nil
}

// currentUser 合并认证用户与档案；档案缺失时静默使用默认值，其他读取错误记日志并返回提示。
func (s *SessionService) currentUser(ctx context.Context, sess txmanager.Session, user *po.AuthUser) (*vo.CurrentUser, string) {
	profile, err := s.profiles.Get(ctx, sess, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return vo.MergeProfile(user, nil), ""
		}
		s.log.WithContext(ctx).Errorf("load profile failed: user=%s err=%v", user.ID, err)
		return vo.MergeProfile(user, nil), profileUnavailableNotice
	}
	return vo.MergeProfile(user, profile), ""
}

func (s *SessionService) openSession(ctx context.Context, sess txmanager.Session, user *vo.CurrentUser) (*vo.Session, error) {
	refresh, hash, err := s.tokens.NewRefreshToken()
	if err != nil {
		return nil, err
	}
	now := s.now()
	sessionID := uuid.New()
	if _, err := s.auth.CreateSession(ctx, sess, sessionID, user.ID, hash, now.Add(s.tokens.RefreshTTL())); err != nil {
		return nil, err
	}
	access, expiresAt, err := s.tokens.IssueAccessToken(user.ID, sessionID, user.Role, now)
	if err != nil {
		return nil, err
	}
	return &vo.Session{
		ID:    sessionID,
		User:  user,
		Token: bearerToken(access, refresh, expiresAt),
	}, nil
}

func bearerToken(access, refresh string, expiresAt time.Time) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  access,
		TokenType:    "Bearer",
		RefreshToken: refresh,
		Expiry:       expiresAt,
	}
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ValidationError("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ValidationError("email %q is not valid", raw)
	}
	return email, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
