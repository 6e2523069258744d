package application

import (
	"context"
	"errors"
	"time"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

type ProjectService struct {
	Projects repository.ProjectRepository
	Users    repository.UserRepository
	Authz    *Evaluator
}

func NewProjectService(projects repository.ProjectRepository, users repository.UserRepository, authz *Evaluator) *ProjectService {
	return &ProjectService{Projects: projects, Users: users, Authz: authz}
}

type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Budget      int64
	Priority    string
}

// ProjectPatch is a partial update. Status carries a transition keyword
// (approve, reject, cancel, on_hold, completed), not a raw state value.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *string
	StartDate   *time.Time
	EndDate     *time.Time
	ManagerID   *int64
	Budget      *int64
	Priority    *string
}

func (s *ProjectService) List(ctx context.Context) ([]entity.Project, error) {
	return s.Projects.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*entity.Project, error) {
	p, err := s.Projects.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, Coded(CodeProjectNotFound, "Project not found.", "")
	}
	return p, err
}

// Create makes the principal the manager and forces the project into
// pending_approval; only the transition table moves it out of there.
func (s *ProjectService) Create(ctx context.Context, principal *entity.User, in CreateProjectInput) (*entity.Project, error) {
	if !in.EndDate.After(in.StartDate) {
		return nil, Coded(CodeValidation, "end_date must be after start_date.", "")
	}
	priority := entity.PriorityMedium
	if in.Priority != "" {
		priority = entity.Priority(in.Priority)
		if !priority.IsValid() {
			return nil, Coded(CodeInvalidPriority, "Invalid priority: "+in.Priority, "")
		}
	}
	if in.Budget < 0 {
		return nil, Coded(CodeValidation, "Budget must not be negative.", "")
	}

	managerID := principal.ID
	p := &entity.Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      entity.ProjectPendingApproval,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		ManagerID:   &managerID,
		Budget:      in.Budget,
		Priority:    priority,
	}
	if err := s.Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update routes status changes through the transition table; a manager who
// is not admin silently loses manager_id, priority and budget from the patch
// before the rest is applied.
func (s *ProjectService) Update(ctx context.Context, principal *entity.User, id int64, patch ProjectPatch) (*entity.Project, error) {
	p, err := s.Projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeProjectNotFound, "Project not found.", "")
		}
		return nil, err
	}

	isAdmin := s.Authz.IsAdmin(ctx, principal)
	isManager := s.Authz.IsManagerOf(principal, p)

	// The transition keyword is resolved before the general permission gate,
	// so an unknown keyword reports INVALID_STATUS no matter who asks.
	if patch.Status != nil {
		to, auth, ok := entity.LookupProjectTransition(p.Status, entity.ProjectAction(*patch.Status))
		if !ok {
			return nil, Coded(CodeInvalidStatus, "Invalid status transition: "+*patch.Status, "")
		}
		switch auth {
		case entity.AuthAdmin:
			if !isAdmin {
				return nil, Coded(CodeForbidden, "Only admins can perform this transition.", "")
			}
		case entity.AuthAdminOrManager:
			if !isAdmin && !isManager {
				return nil, Coded(CodeForbidden, "Only the project manager or an admin can perform this transition.", "")
			}
		}
		p.Status = to
	}

	if !isAdmin && !isManager {
		return nil, Coded(CodeForbidden, "Only the project manager or an admin can update this project.", "")
	}

	if !isAdmin {
		patch.ManagerID = nil
		patch.Priority = nil
		patch.Budget = nil
	}

	if patch.ManagerID != nil {
		if _, err := s.Users.GetByID(ctx, *patch.ManagerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, Coded(CodeUserNotFound, "Manager user not found.", "")
			}
			return nil, err
		}
		p.ManagerID = patch.ManagerID
	}
	if patch.Priority != nil {
		pr := entity.Priority(*patch.Priority)
		if !pr.IsValid() {
			return nil, Coded(CodeInvalidPriority, "Invalid priority: "+*patch.Priority, "")
		}
		p.Priority = pr
	}
	if patch.Budget != nil {
		if *patch.Budget < 0 {
			return nil, Coded(CodeValidation, "Budget must not be negative.", "")
		}
		p.Budget = *patch.Budget
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if !p.EndDate.After(p.StartDate) {
		return nil, Coded(CodeValidation, "end_date must be after start_date.", "")
	}

	if err := s.Projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, principal *entity.User, id int64) error {
	if !s.Authz.IsAdmin(ctx, principal) {
		return Coded(CodeForbidden, "Only admins can delete projects.", "")
	}
	err := s.Projects.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return Coded(CodeProjectNotFound, "Project not found.", "")
	}
	return err
}

func (s *ProjectService) ListMembers(ctx context.Context, projectID int64) ([]entity.ProjectMember, error) {
	if _, err := s.Projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeProjectNotFound, "Project not found.", "")
		}
		return nil, err
	}
	return s.Projects.ListMembers(ctx, projectID)
}

func (s *ProjectService) AddMember(ctx context.Context, principal *entity.User, projectID, userID int64, roleLabel string) (*entity.ProjectMember, error) {
	p, err := s.Projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeProjectNotFound, "Project not found.", "")
		}
		return nil, err
	}
	if !s.Authz.IsAdmin(ctx, principal) && !s.Authz.IsManagerOf(principal, p) {
		return nil, Coded(CodeForbidden, "Only the project manager or an admin can manage members.", "")
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeUserNotFound, "User not found.", "")
		}
		return nil, err
	}
	if _, err := s.Projects.GetMember(ctx, projectID, userID); err == nil {
		return nil, Coded(CodeAlreadyMember, "User is already a member of this project.", "")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	m := &entity.ProjectMember{ProjectID: projectID, UserID: userID, Role: roleLabel}
	if err := s.Projects.AddMember(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Coded(CodeAlreadyMember, "User is already a member of this project.", "")
		}
		return nil, err
	}
	return m, nil
}

// RemoveMember refuses to drop the current manager from their own project.
func (s *ProjectService) RemoveMember(ctx context.Context, principal *entity.User, projectID, userID int64) error {
	p, err := s.Projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Coded(CodeProjectNotFound, "Project not found.", "")
		}
		return err
	}
	if !s.Authz.IsAdmin(ctx, principal) && !s.Authz.IsManagerOf(principal, p) {
		return Coded(CodeForbidden, "Only the project manager or an admin can manage members.", "")
	}
	if p.ManagerID != nil && *p.ManagerID == userID {
		return Coded(CodeCannotRemoveManager, "The project manager cannot be removed from their own project.", "")
	}
	err = s.Projects.RemoveMember(ctx, projectID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return Coded(CodeMemberNotFound, "User is not a member of this project.", "")
	}
	return err
}
