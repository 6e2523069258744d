package repository

import (
	"context"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
)

// ProjectRepository defines the interface for projects and their membership
// join rows.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	List(ctx context.Context) ([]entity.Project, error)
	Update(ctx context.Context, p *entity.Project) error
	Delete(ctx context.Context, id int64) error

	ListMembers(ctx context.Context, projectID int64) ([]entity.ProjectMember, error)
	GetMember(ctx context.Context, projectID, userID int64) (*entity.ProjectMember, error)
	AddMember(ctx context.Context, m *entity.ProjectMember) error
	RemoveMember(ctx context.Context, projectID, userID int64) error
}

// TeamRepository defines the interface for teams and their membership rows.
type TeamRepository interface {
	Create(ctx context.Context, t *entity.Team) error
	GetByID(ctx context.Context, id int64) (*entity.Team, error)
	List(ctx context.Context) ([]entity.Team, error)
	Update(ctx context.Context, t *entity.Team) error
	Delete(ctx context.Context, id int64) error

	ListMembers(ctx context.Context, teamID int64) ([]entity.TeamMember, error)
	GetMember(ctx context.Context, teamID, userID int64) (*entity.TeamMember, error)
	AddMember(ctx context.Context, m *entity.TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID int64) error
}
