package application

import (
	"context"
	"errors"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
)

type TeamService struct {
	Teams repository.TeamRepository
	Users repository.UserRepository
	Authz *Evaluator
}

func NewTeamService(teams repository.TeamRepository, users repository.UserRepository, authz *Evaluator) *TeamService {
	return &TeamService{Teams: teams, Users: users, Authz: authz}
}

type TeamPatch struct {
	Name        *string
	Description *string
	LeaderID    *int64
}

func (s *TeamService) List(ctx context.Context) ([]entity.Team, error) {
	return s.Teams.List(ctx)
}

func (s *TeamService) Get(ctx context.Context, id int64) (*entity.Team, error) {
	t, err := s.Teams.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, Coded(CodeTeamNotFound, "Team not found.", "")
	}
	return t, err
}

func (s *TeamService) Create(ctx context.Context, principal *entity.User, name, description string, leaderID *int64) (*entity.Team, error) {
	if !s.Authz.IsAdmin(ctx, principal) {
		return nil, Coded(CodeForbidden, "Only admins can create teams.", "")
	}
	if leaderID != nil {
		if _, err := s.Users.GetByID(ctx, *leaderID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, Coded(CodeUserNotFound, "Leader user not found.", "")
			}
			return nil, err
		}
	}
	t := &entity.Team{Name: name, Description: description, LeaderID: leaderID}
	if err := s.Teams.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeamService) Update(ctx context.Context, principal *entity.User, id int64, patch TeamPatch) (*entity.Team, error) {
	if !s.Authz.IsAdmin(ctx, principal) {
		return nil, Coded(CodeForbidden, "Only admins can update teams.", "")
	}
	t, err := s.Teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeTeamNotFound, "Team not found.", "")
		}
		return nil, err
	}
	if patch.LeaderID != nil {
		if _, err := s.Users.GetByID(ctx, *patch.LeaderID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, Coded(CodeUserNotFound, "Leader user not found.", "")
			}
			return nil, err
		}
		t.LeaderID = patch.LeaderID
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if err := s.Teams.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeamService) Delete(ctx context.Context, principal *entity.User, id int64) error {
	if !s.Authz.IsAdmin(ctx, principal) {
		return Coded(CodeForbidden, "Only admins can delete teams.", "")
	}
	err := s.Teams.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return Coded(CodeTeamNotFound, "Team not found.", "")
	}
	return err
}

func (s *TeamService) ListMembers(ctx context.Context, teamID int64) ([]entity.TeamMember, error) {
	if _, err := s.Teams.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeTeamNotFound, "Team not found.", "")
		}
		return nil, err
	}
	return s.Teams.ListMembers(ctx, teamID)
}

// AddMember is idempotence-guarded: an existing (team, user) pair reports
// ALREADY_MEMBER and writes nothing.
func (s *TeamService) AddMember(ctx context.Context, principal *entity.User, teamID, userID int64, roleLabel string) (*entity.TeamMember, error) {
	if !s.Authz.IsAdmin(ctx, principal) {
		return nil, Coded(CodeForbidden, "Only admins can manage team members.", "")
	}
	if _, err := s.Teams.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeTeamNotFound, "Team not found.", "")
		}
		return nil, err
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeUserNotFound, "User not found.", "")
		}
		return nil, err
	}
	if _, err := s.Teams.GetMember(ctx, teamID, userID); err == nil {
		return nil, Coded(CodeAlreadyMember, "User is already a member of this team.", "")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	m := &entity.TeamMember{TeamID: teamID, UserID: userID, Role: roleLabel}
	if err := s.Teams.AddMember(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Coded(CodeAlreadyMember, "User is already a member of this team.", "")
		}
		return nil, err
	}
	return m, nil
}

func (s *TeamService) RemoveMember(ctx context.Context, principal *entity.User, teamID, userID int64) error {
	if !s.Authz.IsAdmin(ctx, principal) {
		return Coded(CodeForbidden, "Only admins can manage team members.", "")
	}
	if _, err := s.Teams.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Coded(CodeTeamNotFound, "Team not found.", "")
		}
		return err
	}
	err := s.Teams.RemoveMember(ctx, teamID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return Coded(CodeMemberNotFound, "User is not a member of this team.", "")
	}
	return err
}
