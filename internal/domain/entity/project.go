package entity

import "time"

// Project always has end_date > start_date and budget >= 0, enforced by the
// store as well as at the service boundary.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	ManagerID   *int64        `json:"manager_id,omitempty"`
	Budget      int64         `json:"budget"`
	Priority    Priority      `json:"priority"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ProjectMember is a unique (project, user) pair with a free-text role label.
type ProjectMember struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

// ProjectAction is a status-transition keyword submitted by a client.
type ProjectAction string

const (
	ProjectActionApprove  ProjectAction = "approve"
	ProjectActionReject   ProjectAction = "reject"
	ProjectActionCancel   ProjectAction = "cancel"
	ProjectActionOnHold   ProjectAction = "on_hold"
	ProjectActionComplete ProjectAction = "completed"
)

// TransitionAuth tags who may perform a transition.
type TransitionAuth int

const (
	// AuthAdmin: only a user whose role is "admin".
	AuthAdmin TransitionAuth = iota
	// AuthAdminOrManager: admin, or the manager of the affected project.
	AuthAdminOrManager
)

type transitionKey struct {
	From   ProjectStatus
	Action ProjectAction
}

// projectTransitions is the explicit transition table. Approval-style
// keywords apply to pending projects only; completion is handled separately
// in LookupProjectTransition because it is legal from every state.
var projectTransitions = map[transitionKey]struct {
	To   ProjectStatus
	Auth TransitionAuth
}{
	{ProjectPendingApproval, ProjectActionApprove}: {ProjectInProgress, AuthAdmin},
	{ProjectPendingApproval, ProjectActionReject}:  {ProjectRejected, AuthAdmin},
	{ProjectPendingApproval, ProjectActionCancel}:  {ProjectCancelled, AuthAdmin},
	{ProjectPendingApproval, ProjectActionOnHold}:  {ProjectOnHold, AuthAdmin},
}

// LookupProjectTransition resolves a requested action against the current
// status. ok is false for anything absent from the table; such requests are
// invalid regardless of who asks.
func LookupProjectTransition(from ProjectStatus, action ProjectAction) (to ProjectStatus, auth TransitionAuth, ok bool) {
	if action == ProjectActionComplete {
		return ProjectCompleted, AuthAdminOrManager, true
	}
	t, ok := projectTransitions[transitionKey{from, action}]
	if !ok {
		return "", 0, false
	}
	return t.To, t.Auth, true
}
