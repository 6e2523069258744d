package application

import (
	"context"
	"time"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

// In-memory repository fakes. They mirror the store contracts: lookups
// return repository.ErrNotFound, unique pairs return repository.ErrDuplicate.

type memUsers struct {
	seq   int64
	items map[int64]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{items: map[int64]*entity.User{}}
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	for _, e := range m.items {
		if e.Username == u.Username || e.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	m.seq++
	u.ID = m.seq
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.items[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(m.items))
	for _, u := range m.items {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	if _, ok := m.items[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	m.items[u.ID] = &cp
	return nil
}

type memRoles struct {
	seq   int64
	items map[int64]*entity.Role
}

func newMemRoles() *memRoles {
	return &memRoles{items: map[int64]*entity.Role{}}
}

func (m *memRoles) Create(_ context.Context, r *entity.Role) error {
	for _, e := range m.items {
		if e.Name == r.Name {
			return repository.ErrDuplicate
		}
	}
	m.seq++
	r.ID = m.seq
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *memRoles) GetByID(_ context.Context, id int64) (*entity.Role, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memRoles) List(_ context.Context) ([]entity.Role, error) {
	out := make([]entity.Role, 0, len(m.items))
	for _, r := range m.items {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRoles) Update(_ context.Context, r *entity.Role) error {
	if _, ok := m.items[r.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *memRoles) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memTokens struct {
	seq   int64
	users *memUsers
	items map[int64]*entity.UserToken
}

func newMemTokens(users *memUsers) *memTokens {
	return &memTokens{users: users, items: map[int64]*entity.UserToken{}}
}

func (m *memTokens) CompleteLogin(_ context.Context, t *entity.UserToken) error {
	now := time.Now()
	for id, e := range m.items {
		if e.UserID == t.UserID && !e.ExpiresAt.After(now) {
			delete(m.items, id)
		}
	}
	m.seq++
	t.ID = m.seq
	t.CreatedAt = now
	cp := *t
	m.items[t.ID] = &cp
	if u, ok := m.users.items[t.UserID]; ok {
		u.LastLogin = &now
	}
	return nil
}

func (m *memTokens) Delete(_ context.Context, userID int64, token string) error {
	for id, e := range m.items {
		if e.UserID == userID && e.Token == token {
			delete(m.items, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memTokens) all() []entity.UserToken {
	out := make([]entity.UserToken, 0, len(m.items))
	for _, t := range m.items {
		out = append(out, *t)
	}
	return out
}

type memResets struct {
	seq   int64
	users *memUsers
	items map[int64]*entity.PasswordResetRequest
}

func newMemResets(users *memUsers) *memResets {
	return &memResets{users: users, items: map[int64]*entity.PasswordResetRequest{}}
}

func (m *memResets) Create(_ context.Context, r *entity.PasswordResetRequest) error {
	m.seq++
	r.ID = m.seq
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *memResets) GetByID(_ context.Context, id int64) (*entity.PasswordResetRequest, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memResets) List(_ context.Context) ([]entity.PasswordResetRequest, error) {
	out := make([]entity.PasswordResetRequest, 0, len(m.items))
	for _, r := range m.items {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memResets) Approve(_ context.Context, r *entity.PasswordResetRequest) error {
	stored, ok := m.items[r.ID]
	if !ok {
		return repository.ErrNotFound
	}
	u, ok := m.users.items[stored.UserID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Status = entity.ResetApproved
	u.Password = stored.NewPassword
	r.Status = entity.ResetApproved
	return nil
}

func (m *memResets) Reject(_ context.Context, r *entity.PasswordResetRequest) error {
	stored, ok := m.items[r.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Status = entity.ResetDenied
	r.Status = entity.ResetDenied
	return nil
}

type memProjects struct {
	seq     int64
	items   map[int64]*entity.Project
	mseq    int64
	members map[int64]*entity.ProjectMember
}

func newMemProjects() *memProjects {
	return &memProjects{items: map[int64]*entity.Project{}, members: map[int64]*entity.ProjectMember{}}
}

func (m *memProjects) Create(_ context.Context, p *entity.Project) error {
	m.seq++
	p.ID = m.seq
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProjects) GetByID(_ context.Context, id int64) (*entity.Project, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProjects) List(_ context.Context) ([]entity.Project, error) {
	out := make([]entity.Project, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProjects) Update(_ context.Context, p *entity.Project) error {
	if _, ok := m.items[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProjects) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memProjects) ListMembers(_ context.Context, projectID int64) ([]entity.ProjectMember, error) {
	var out []entity.ProjectMember
	for _, pm := range m.members {
		if pm.ProjectID == projectID {
			out = append(out, *pm)
		}
	}
	return out, nil
}

func (m *memProjects) GetMember(_ context.Context, projectID, userID int64) (*entity.ProjectMember, error) {
	for _, pm := range m.members {
		if pm.ProjectID == projectID && pm.UserID == userID {
			cp := *pm
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProjects) AddMember(_ context.Context, pm *entity.ProjectMember) error {
	for _, e := range m.members {
		if e.ProjectID == pm.ProjectID && e.UserID == pm.UserID {
			return repository.ErrDuplicate
		}
	}
	m.mseq++
	pm.ID = m.mseq
	pm.JoinedAt = time.Now()
	cp := *pm
	m.members[pm.ID] = &cp
	return nil
}

func (m *memProjects) RemoveMember(_ context.Context, projectID, userID int64) error {
	for id, e := range m.members {
		if e.ProjectID == projectID && e.UserID == userID {
			delete(m.members, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memTeams struct {
	seq     int64
	items   map[int64]*entity.Team
	mseq    int64
	members map[int64]*entity.TeamMember
}

func newMemTeams() *memTeams {
	return &memTeams{items: map[int64]*entity.Team{}, members: map[int64]*entity.TeamMember{}}
}

func (m *memTeams) Create(_ context.Context, t *entity.Team) error {
	m.seq++
	t.ID = m.seq
	cp := *t
	m.items[t.ID] = &cp
	return nil
}

func (m *memTeams) GetByID(_ context.Context, id int64) (*entity.Team, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memTeams) List(_ context.Context) ([]entity.Team, error) {
	out := make([]entity.Team, 0, len(m.items))
	for _, t := range m.items {
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTeams) Update(_ context.Context, t *entity.Team) error {
	if _, ok := m.items[t.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *t
	m.items[t.ID] = &cp
	return nil
}

func (m *memTeams) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memTeams) ListMembers(_ context.Context, teamID int64) ([]entity.TeamMember, error) {
	var out []entity.TeamMember
	for _, tm := range m.members {
		if tm.TeamID == teamID {
			out = append(out, *tm)
		}
	}
	return out, nil
}

func (m *memTeams) GetMember(_ context.Context, teamID, userID int64) (*entity.TeamMember, error) {
	for _, tm := range m.members {
		if tm.TeamID == teamID && tm.UserID == userID {
			cp := *tm
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memTeams) AddMember(_ context.Context, tm *entity.TeamMember) error {
	for _, e := range m.members {
		if e.TeamID == tm.TeamID && e.UserID == tm.UserID {
			return repository.ErrDuplicate
		}
	}
	m.mseq++
	tm.ID = m.mseq
	cp := *tm
	m.members[tm.ID] = &cp
	return nil
}

func (m *memTeams) RemoveMember(_ context.Context, teamID, userID int64) error {
	for id, e := range m.members {
		if e.TeamID == teamID && e.UserID == userID {
			delete(m.members, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memTasks struct {
	seq         int64
	items       map[int64]*entity.Task
	aseq        int64
	assignments map[int64]*entity.TaskAssignment
}

func newMemTasks() *memTasks {
	return &memTasks{items: map[int64]*entity.Task{}, assignments: map[int64]*entity.TaskAssignment{}}
}

func (m *memTasks) Create(_ context.Context, t *entity.Task) error {
	m.seq++
	t.ID = m.seq
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	m.items[t.ID] = &cp
	return nil
}

func (m *memTasks) GetByID(_ context.Context, id int64) (*entity.Task, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memTasks) List(_ context.Context, f repository.TaskFilter) ([]entity.Task, error) {
	var out []entity.Task
	for _, t := range m.items {
		if f.ProjectID != nil && t.ProjectID != *f.ProjectID {
			continue
		}
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTasks) Update(_ context.Context, t *entity.Task) error {
	if _, ok := m.items[t.ID]; !ok {
		return repository.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	cp := *t
	m.items[t.ID] = &cp
	return nil
}

func (m *memTasks) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memTasks) ListAssignees(_ context.Context, taskID int64) ([]entity.TaskAssignment, error) {
	var out []entity.TaskAssignment
	for _, a := range m.assignments {
		if a.TaskID == taskID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memTasks) GetAssignment(_ context.Context, taskID, userID int64) (*entity.TaskAssignment, error) {
	for _, a := range m.assignments {
		if a.TaskID == taskID && a.UserID == userID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memTasks) AddAssignment(_ context.Context, a *entity.TaskAssignment) error {
	for _, e := range m.assignments {
		if e.TaskID == a.TaskID && e.UserID == a.UserID {
			return repository.ErrDuplicate
		}
	}
	m.aseq++
	a.ID = m.aseq
	a.AssignedAt = time.Now()
	cp := *a
	m.assignments[a.ID] = &cp
	return nil
}

func (m *memTasks) RemoveAssignment(_ context.Context, taskID, userID int64) error {
	for id, e := range m.assignments {
		if e.TaskID == taskID && e.UserID == userID {
			delete(m.assignments, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memComments struct {
	seq   int64
	items map[int64]*entity.Comment
}

func newMemComments() *memComments {
	return &memComments{items: map[int64]*entity.Comment{}}
}

func (m *memComments) Create(_ context.Context, c *entity.Comment) error {
	m.seq++
	c.ID = m.seq
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memComments) GetByID(_ context.Context, id int64) (*entity.Comment, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memComments) ListByTask(_ context.Context, taskID int64) ([]entity.Comment, error) {
	var out []entity.Comment
	for _, c := range m.items {
		if c.TaskID == taskID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memComments) Update(_ context.Context, c *entity.Comment) error {
	if _, ok := m.items[c.ID]; !ok {
		return repository.ErrNotFound
	}
	c.UpdatedAt = time.Now()
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memComments) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

var (
	_ repository.UserRepository    = (*memUsers)(nil)
	_ repository.RoleRepository    = (*memRoles)(nil)
	_ repository.TokenRepository   = (*memTokens)(nil)
	_ repository.ResetRepository   = (*memResets)(nil)
	_ repository.ProjectRepository = (*memProjects)(nil)
	_ repository.TeamRepository    = (*memTeams)(nil)
	_ repository.TaskRepository    = (*memTasks)(nil)
	_ repository.CommentRepository = (*memComments)(nil)
)
