package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/pkg/helpers"
)

func newUserService(e *env) *UserService {
	// No search index or object storage wired in unit tests; both degrade to
	// no-ops.
	return NewUserService(e.users, e.roles, e.authz, nil, nil, "", testLogger())
}

func TestCreateUserAdminOnly(t *testing.T) {
	e := newEnv(t)
	svc := newUserService(e)
	member := e.addUser(t, "member", e.memberRole, "")

	_, err := svc.Create(context.Background(), member, CreateUserInput{
		Username: "newbie", Password: "pw", Email: "newbie@example.com", RoleID: e.memberRole.ID,
	})
	requireCode(t, err, CodeForbidden)
}

func TestCreateUserDefaultsAndValidation(t *testing.T) {
	e := newEnv(t)
	svc := newUserService(e)
	ctx := context.Background()
	admin := e.addUser(t, "admin", e.adminRole, "")

	u, err := svc.Create(ctx, admin, CreateUserInput{
		Username: "newbie", Password: "pw", Email: "newbie@example.com", FullName: "New Bie", RoleID: e.memberRole.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UserActive, u.Status)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "pw"))

	_, err = svc.Create(ctx, admin, CreateUserInput{
		Username: "newbie", Password: "pw", Email: "other@example.com", RoleID: e.memberRole.ID,
	})
	requireCode(t, err, CodeUsernameExists)

	_, err = svc.Create(ctx, admin, CreateUserInput{
		Username: "other", Password: "pw", Email: "newbie@example.com", RoleID: e.memberRole.ID,
	})
	requireCode(t, err, CodeEmailExists)

	_, err = svc.Create(ctx, admin, CreateUserInput{
		Username: "other", Password: "pw", Email: "other@example.com", RoleID: 999,
	})
	requireCode(t, err, CodeRoleNotFound)

	_, err = svc.Create(ctx, admin, CreateUserInput{
		Username: "other", Password: "pw", Email: "other@example.com", RoleID: e.memberRole.ID, Status: "frozen",
	})
	requireCode(t, err, CodeInvalidStatus)
}

func TestUpdateUserSelfOrAdmin(t *testing.T) {
	e := newEnv(t)
	svc := newUserService(e)
	ctx := context.Background()
	alice := e.addUser(t, "alice", e.memberRole, "")
	bob := e.addUser(t, "bob", e.memberRole, "")

	_, err := svc.Update(ctx, alice, bob.ID, UserPatch{FullName: strPtr("Hacked")})
	requireCode(t, err, CodeForbidden)

	out, err := svc.Update(ctx, alice, alice.ID, UserPatch{FullName: strPtr("Alice Prime")})
	require.NoError(t, err)
	assert.Equal(t, "Alice Prime", out.FullName)
}

func TestUpdateUserDropsPrivilegedFieldsForNonAdmin(t *testing.T) {
	e := newEnv(t)
	svc := newUserService(e)
	ctx := context.Background()
	alice := e.addUser(t, "alice", e.memberRole, "")

	banned := string(entity.UserBanned)
	out, err := svc.Update(ctx, alice, alice.ID, UserPatch{
		RoleID:   &e.adminRole.ID,
		Status:   &banned,
		FullName: strPtr("Still Alice"),
	})
	require.NoError(t, err)

	// Role and status requests from non-admins vanish without an error.
	assert.Equal(t, e.memberRole.ID, out.RoleID)
	assert.Equal(t, entity.UserActive, out.Status)
	assert.Equal(t, "Still Alice", out.FullName)
}

func TestUpdateUserAdminChangesRoleAndStatus(t *testing.T) {
	e := newEnv(t)
	svc := newUserService(e)
	ctx := context.Background()
	admin := e.addUser(t, "admin", e.adminRole, "")
	alice := e.addUser(t, "alice", e.memberRole, "")

	banned := string(entity.UserBanned)
	out, err := svc.Update(ctx, admin, alice.ID, UserPatch{RoleID: &e.adminRole.ID, Status: &banned})
	require.NoError(t, err)
	assert.Equal(t, e.adminRole.ID, out.RoleID)
	assert.Equal(t, entity.UserBanned, out.Status)

	_, err = svc.Update(ctx, admin, alice.ID, UserPatch{RoleID: int64Ptr(999)})
	requireCode(t, err, CodeRoleNotFound)
}

func TestUpdateUserUniqueness(t *testing.T) {
	e := newEnv(t)
	svc := newUserService(e)
	ctx := context.Background()
	alice := e.addUser(t, "alice", e.memberRole, "")
	e.addUser(t, "bob", e.memberRole, "")

	_, err := svc.Update(ctx, alice, alice.ID, UserPatch{Username: strPtr("bob")})
	requireCode(t, err, CodeUsernameExists)

	_, err = svc.Update(ctx, alice, alice.ID, UserPatch{Email: strPtr("bob@example.com")})
	requireCode(t, err, CodeEmailExists)

	// Re-submitting the current values is not a conflict.
	out, err := svc.Update(ctx, alice, alice.ID, UserPatch{Username: strPtr("alice"), Email: strPtr("alice@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	e := newEnv(t)
	svc := newUserService(e)
	ctx := context.Background()
	alice := e.addUser(t, "alice", e.memberRole, "old-pw")

	out, err := svc.Update(ctx, alice, alice.ID, UserPatch{Password: strPtr("new-pw")})
	require.NoError(t, err)
	assert.True(t, helpers.CompareHashAndPassword(out.Password, "new-pw"))
	assert.False(t, helpers.CompareHashAndPassword(out.Password, "old-pw"))
}

func TestDeleteUserDeactivates(t *testing.T) {
	e := newEnv(t)
	svc := newUserService(e)
	ctx := context.Background()
	admin := e.addUser(t, "admin", e.adminRole, "")
	alice := e.addUser(t, "alice", e.memberRole, "")

	err := svc.Delete(ctx, alice, alice.ID)
	requireCode(t, err, CodeForbidden)

	require.NoError(t, svc.Delete(ctx, admin, alice.ID))

	// The row survives as inactive; nothing is removed.
	stored, err := e.users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserInactive, stored.Status)

	err = svc.Delete(ctx, admin, 999)
	requireCode(t, err, CodeUserNotFound)
}
