package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
	"github.com/lmhoang06/waiedu-task-management/pkg/helpers"
	"github.com/lmhoang06/waiedu-task-management/pkg/notify"
)

// ResetService runs the two-phase forgot-password workflow: an anonymous
// submission parks a pre-hashed candidate password, and an admin later
// approves or rejects it. The live password is only touched at approval.
type ResetService struct {
	Resets    repository.ResetRepository
	Users     repository.UserRepository
	Publisher *helpers.RabbitPublisher
	Logger    *logrus.Logger
}

func NewResetService(resets repository.ResetRepository, users repository.UserRepository, publisher *helpers.RabbitPublisher, logger *logrus.Logger) *ResetService {
	return &ResetService{Resets: resets, Users: users, Publisher: publisher, Logger: logger}
}

type SubmitResetInput struct {
	Username    string
	Email       string
	FullName    string
	NewPassword string
}

// Submit locates the user by identifier plus full-name match, hashes the
// candidate password right away and parks a pending request. A full-name
// mismatch is indistinguishable from a missing user on purpose.
func (s *ResetService) Submit(ctx context.Context, in SubmitResetInput) (*entity.PasswordResetRequest, error) {
	if in.Username == "" && in.Email == "" {
		return nil, Coded(CodeMissingCredentials, "Username or email is required.", "")
	}

	var (
		u   *entity.User
		err error
	)
	if in.Username != "" {
		u, err = s.Users.GetByUsername(ctx, in.Username)
	} else {
		u, err = s.Users.GetByEmail(ctx, in.Email)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeUserNotFound, "No matching user found.", "")
		}
		return nil, err
	}
	if u.FullName != in.FullName {
		return nil, Coded(CodeUserNotFound, "No matching user found.", "")
	}

	hash, err := helpers.HashPassword(in.NewPassword)
	if err != nil {
		return nil, err
	}

	req := &entity.PasswordResetRequest{
		UserID:      u.ID,
		NewPassword: hash,
		Status:      entity.ResetPendingApproval,
	}
	if err := s.Resets.Create(ctx, req); err != nil {
		return nil, err
	}

	s.publishAlert(ctx, u, req)
	return req, nil
}

// publishAlert drops a job on the admin-alert queue. Failures are logged
// only; the submission already succeeded.
func (s *ResetService) publishAlert(ctx context.Context, u *entity.User, req *entity.PasswordResetRequest) {
	if s.Publisher == nil {
		return
	}
	job := notify.Job{
		Type:    notify.TypePasswordResetRequested,
		Subject: "Password reset request pending review",
		Text:    fmt.Sprintf("User %s (%s) requested a password reset. Request id: %d.", u.Username, u.Email, req.ID),
		Metadata: map[string]any{
			"request_id": req.ID,
			"user_id":    u.ID,
			"username":   u.Username,
		},
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("request_id", req.ID).Warn("publish admin alert failed")
	}
}

func (s *ResetService) List(ctx context.Context) ([]entity.PasswordResetRequest, error) {
	return s.Resets.List(ctx)
}

func (s *ResetService) Get(ctx context.Context, id int64) (*entity.PasswordResetRequest, error) {
	req, err := s.Resets.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, Coded(CodeRequestNotFound, "Password reset request not found.", "")
	}
	return req, err
}

// Approve copies the parked hash onto the user row; request resolution and
// the password write commit together. Resolved requests cannot be
// reprocessed.
func (s *ResetService) Approve(ctx context.Context, id int64) (*entity.PasswordResetRequest, error) {
	req, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != entity.ResetPendingApproval {
		return nil, Coded(CodeInvalidState, fmt.Sprintf("Request is already %s.", req.Status), "")
	}
	if err := s.Resets.Approve(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *ResetService) Reject(ctx context.Context, id int64) (*entity.PasswordResetRequest, error) {
	req, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != entity.ResetPendingApproval {
		return nil, Coded(CodeInvalidState, fmt.Sprintf("Request is already %s.", req.Status), "")
	}
	if err := s.Resets.Reject(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
