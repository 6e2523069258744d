package application

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/pkg/helpers"
)

// env wires the in-memory fakes into one fixture with the two seed roles.
type env struct {
	users    *memUsers
	roles    *memRoles
	tokens   *memTokens
	resets   *memResets
	projects *memProjects
	teams    *memTeams
	tasks    *memTasks
	comments *memComments
	authz    *Evaluator

	adminRole  *entity.Role
	memberRole *entity.Role
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		users:    newMemUsers(),
		roles:    newMemRoles(),
		projects: newMemProjects(),
		teams:    newMemTeams(),
		tasks:    newMemTasks(),
		comments: newMemComments(),
	}
	e.tokens = newMemTokens(e.users)
	e.resets = newMemResets(e.users)
	e.authz = NewEvaluator(e.roles, e.projects, e.tasks)

	e.adminRole = &entity.Role{Name: "admin"}
	require.NoError(t, e.roles.Create(context.Background(), e.adminRole))
	e.memberRole = &entity.Role{Name: "member"}
	require.NoError(t, e.roles.Create(context.Background(), e.memberRole))
	return e
}

// addUser seeds an active user; password is stored hashed only when given.
func (e *env) addUser(t *testing.T, username string, role *entity.Role, password string) *entity.User {
	t.Helper()
	u := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test " + username,
		RoleID:   role.ID,
		Status:   entity.UserActive,
	}
	if password != "" {
		hash, err := helpers.HashPassword(password)
		require.NoError(t, err)
		u.Password = hash
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

// addProject seeds a project managed by the given user.
func (e *env) addProject(t *testing.T, name string, manager *entity.User, status entity.ProjectStatus) *entity.Project {
	t.Helper()
	p := &entity.Project{
		Name:      name,
		Status:    status,
		StartDate: mustDate(t, "2026-01-01"),
		EndDate:   mustDate(t, "2026-12-31"),
		Priority:  entity.PriorityMedium,
	}
	if manager != nil {
		id := manager.ID
		p.ManagerID = &id
	}
	require.NoError(t, e.projects.Create(context.Background(), p))
	return p
}

// addMember attaches the user to a project directly at the store level.
func (e *env) addMember(t *testing.T, p *entity.Project, u *entity.User) {
	t.Helper()
	m := &entity.ProjectMember{ProjectID: p.ID, UserID: u.ID, Role: "developer"}
	require.NoError(t, e.projects.AddMember(context.Background(), m))
}

// addTask seeds a task in the project with the given creator.
func (e *env) addTask(t *testing.T, p *entity.Project, creator *entity.User) *entity.Task {
	t.Helper()
	tk := &entity.Task{
		ProjectID: p.ID,
		Name:      "task-" + p.Name,
		Status:    entity.TaskTodo,
		Priority:  entity.PriorityMedium,
		DueDate:   mustDate(t, "2026-06-30"),
		CreatedBy: creator.ID,
	}
	require.NoError(t, e.tasks.Create(context.Background(), tk))
	return tk
}

// assign attaches an assignment row directly at the store level.
func (e *env) assign(t *testing.T, tk *entity.Task, u *entity.User) {
	t.Helper()
	a := &entity.TaskAssignment{TaskID: tk.ID, UserID: u.ID}
	require.NoError(t, e.tasks.AddAssignment(context.Background(), a))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// requireCode asserts err carries the given envelope code.
func requireCode(t *testing.T, err error, code string) *CodedError {
	t.Helper()
	require.Error(t, err)
	ce, ok := AsCoded(err)
	require.True(t, ok, "expected coded error, got %v", err)
	require.Equal(t, code, ce.Code)
	return ce
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}
