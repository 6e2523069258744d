package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/pkg/helpers"
)

func newAuthService(e *env) *AuthService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(e.users, e.tokens, jwt, testLogger())
}

func TestLoginMissingCredentials(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginInput{Password: "pw"})
	requireCode(t, err, CodeMissingCredentials)

	_, err = svc.Login(ctx, LoginInput{Username: "alice"})
	requireCode(t, err, CodeMissingCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)

	_, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "pw"})
	requireCode(t, err, CodeUserNotFound)
}

func TestLoginInactiveUser(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)
	ctx := context.Background()

	u := e.addUser(t, "bob", e.memberRole, "correct-pw")
	u.Status = entity.UserPendingApproval
	require.NoError(t, e.users.Update(ctx, u))

	// The status gate fires before the password check, so the correct and a
	// wrong password report the same failure.
	_, err := svc.Login(ctx, LoginInput{Username: "bob", Password: "correct-pw"})
	requireCode(t, err, CodeUserNotActive)

	_, err = svc.Login(ctx, LoginInput{Username: "bob", Password: "wrong"})
	requireCode(t, err, CodeUserNotActive)
}

func TestLoginWrongPassword(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)
	e.addUser(t, "carol", e.memberRole, "correct-pw")

	_, err := svc.Login(context.Background(), LoginInput{Username: "carol", Password: "wrong"})
	requireCode(t, err, CodeInvalidPassword)
}

func TestLoginSuccess(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)
	ctx := context.Background()
	u := e.addUser(t, "dave", e.memberRole, "pw123")

	res, err := svc.Login(ctx, LoginInput{Username: "dave", Password: "pw123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	assert.Equal(t, u.ID, res.User.ID)
	assert.NotNil(t, res.User.LastLogin)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	stored, err := e.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)

	rows := e.tokens.all()
	require.Len(t, rows, 1)
	assert.Equal(t, res.AccessToken, rows[0].Token)
}

func TestLoginByEmailWhenUsernameAbsent(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)
	e.addUser(t, "erin", e.memberRole, "pw123")

	res, err := svc.Login(context.Background(), LoginInput{Email: "erin@example.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "erin", res.User.Username)
}

func TestLoginPurgesOnlyExpiredTokens(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)
	ctx := context.Background()
	u := e.addUser(t, "frank", e.memberRole, "pw123")

	expired := &entity.UserToken{UserID: u.ID, Token: "stale", ExpiresAt: time.Now().Add(-time.Hour)}
	live := &entity.UserToken{UserID: u.ID, Token: "live", ExpiresAt: time.Now().Add(time.Hour)}
	e.tokens.seq++
	expired.ID = e.tokens.seq
	e.tokens.items[expired.ID] = expired
	e.tokens.seq++
	live.ID = e.tokens.seq
	e.tokens.items[live.ID] = live

	first, err := svc.Login(ctx, LoginInput{Username: "frank", Password: "pw123"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, LoginInput{Username: "frank", Password: "pw123"})
	require.NoError(t, err)

	// Concurrent sessions coexist; only the stale row is gone.
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	tokens := map[string]bool{}
	for _, row := range e.tokens.all() {
		tokens[row.Token] = true
	}
	assert.False(t, tokens["stale"])
	assert.True(t, tokens["live"])
	assert.True(t, tokens[first.AccessToken])
	assert.True(t, tokens[second.AccessToken])
}

func TestLogoutTwice(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)
	ctx := context.Background()
	u := e.addUser(t, "grace", e.memberRole, "pw123")

	res, err := svc.Login(ctx, LoginInput{Username: "grace", Password: "pw123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, u, res.AccessToken))
	err = svc.Logout(ctx, u, res.AccessToken)
	requireCode(t, err, CodeTokenNotFound)
}

func TestResolvePrincipal(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)
	ctx := context.Background()
	u := e.addUser(t, "heidi", e.memberRole, "pw123")

	res, err := svc.Login(ctx, LoginInput{Username: "heidi", Password: "pw123"})
	require.NoError(t, err)

	principal, err := svc.ResolvePrincipal(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, principal.ID)

	_, err = svc.ResolvePrincipal(ctx, "not-a-jwt")
	requireCode(t, err, CodeInvalidToken)
}

func TestResolvePrincipalExpiredToken(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, "ivan", e.memberRole, "")
	expiredJWT := helpers.NewJWTManager("test-secret", -time.Minute)
	token, _, err := expiredJWT.Generate(1, "ivan", "ivan@example.com")
	require.NoError(t, err)

	svc := newAuthService(e)
	_, err = svc.ResolvePrincipal(context.Background(), token)
	requireCode(t, err, CodeInvalidToken)
}

func TestResolvePrincipalMissingUser(t *testing.T) {
	e := newEnv(t)
	svc := newAuthService(e)

	token, _, err := svc.JWT.Generate(999, "ghost", "ghost@example.com")
	require.NoError(t, err)

	_, err = svc.ResolvePrincipal(context.Background(), token)
	requireCode(t, err, CodeUserNotFound)
}
