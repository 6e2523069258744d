package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
)

type commentFixture struct {
	svc      *CommentService
	admin    *entity.User
	author   *entity.User
	peer     *entity.User
	outsider *entity.User
	task     *entity.Task
}

func newCommentFixture(t *testing.T, e *env) *commentFixture {
	t.Helper()
	f := &commentFixture{svc: NewCommentService(e.comments, e.tasks, e.authz)}
	f.admin = e.addUser(t, "admin", e.adminRole, "")
	manager := e.addUser(t, "mgr", e.memberRole, "")
	f.author = e.addUser(t, "author", e.memberRole, "")
	f.peer = e.addUser(t, "peer", e.memberRole, "")
	f.outsider = e.addUser(t, "outsider", e.memberRole, "")
	p := e.addProject(t, "apollo", manager, entity.ProjectInProgress)
	e.addMember(t, p, f.author)
	e.addMember(t, p, f.peer)
	f.task = e.addTask(t, p, manager)
	return f
}

func TestCreateCommentMembership(t *testing.T) {
	e := newEnv(t)
	f := newCommentFixture(t, e)
	ctx := context.Background()

	c, err := f.svc.Create(ctx, f.author, f.task.ID, "looks good")
	require.NoError(t, err)
	require.NotNil(t, c.UserID)
	assert.Equal(t, f.author.ID, *c.UserID)

	_, err = f.svc.Create(ctx, f.outsider, f.task.ID, "drive-by")
	requireCode(t, err, CodeForbidden)

	_, err = f.svc.Create(ctx, f.author, 999, "lost")
	requireCode(t, err, CodeTaskNotFound)
}

func TestCreateCommentBlankContent(t *testing.T) {
	e := newEnv(t)
	f := newCommentFixture(t, e)

	_, err := f.svc.Create(context.Background(), f.author, f.task.ID, "   \n\t ")
	requireCode(t, err, CodeInvalidContent)
}

func TestListCommentsMembership(t *testing.T) {
	e := newEnv(t)
	f := newCommentFixture(t, e)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.author, f.task.ID, "first")
	require.NoError(t, err)

	list, err := f.svc.ListByTask(ctx, f.peer, f.task.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.svc.ListByTask(ctx, f.outsider, f.task.ID)
	requireCode(t, err, CodeForbidden)
}

func TestUpdateCommentAuthorOrAdmin(t *testing.T) {
	e := newEnv(t)
	f := newCommentFixture(t, e)
	ctx := context.Background()

	c, err := f.svc.Create(ctx, f.author, f.task.ID, "draft")
	require.NoError(t, err)

	// A fellow project member is still not the author.
	_, err = f.svc.Update(ctx, f.peer, c.ID, "hijacked")
	requireCode(t, err, CodeForbidden)

	out, err := f.svc.Update(ctx, f.author, c.ID, "final")
	require.NoError(t, err)
	assert.Equal(t, "final", out.Content)

	out, err = f.svc.Update(ctx, f.admin, c.ID, "moderated")
	require.NoError(t, err)
	assert.Equal(t, "moderated", out.Content)

	_, err = f.svc.Update(ctx, f.author, c.ID, "  ")
	requireCode(t, err, CodeInvalidContent)
}

func TestDeleteCommentAuthorOrAdmin(t *testing.T) {
	e := newEnv(t)
	f := newCommentFixture(t, e)
	ctx := context.Background()

	c, err := f.svc.Create(ctx, f.author, f.task.ID, "temp")
	require.NoError(t, err)

	err = f.svc.Delete(ctx, f.peer, c.ID)
	requireCode(t, err, CodeForbidden)

	require.NoError(t, f.svc.Delete(ctx, f.author, c.ID))
	err = f.svc.Delete(ctx, f.author, c.ID)
	requireCode(t, err, CodeCommentNotFound)
}

func TestGetCommentMembership(t *testing.T) {
	e := newEnv(t)
	f := newCommentFixture(t, e)
	ctx := context.Background()

	c, err := f.svc.Create(ctx, f.author, f.task.ID, "visible")
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, f.peer, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = f.svc.Get(ctx, f.outsider, c.ID)
	requireCode(t, err, CodeForbidden)

	_, err = f.svc.Get(ctx, f.admin, 999)
	requireCode(t, err, CodeCommentNotFound)
}
