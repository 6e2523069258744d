package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupProjectTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   ProjectStatus
		action ProjectAction
		to     ProjectStatus
		auth   TransitionAuth
		ok     bool
	}{
		{"approve pending", ProjectPendingApproval, ProjectActionApprove, ProjectInProgress, AuthAdmin, true},
		{"reject pending", ProjectPendingApproval, ProjectActionReject, ProjectRejected, AuthAdmin, true},
		{"cancel pending", ProjectPendingApproval, ProjectActionCancel, ProjectCancelled, AuthAdmin, true},
		{"hold pending", ProjectPendingApproval, ProjectActionOnHold, ProjectOnHold, AuthAdmin, true},

		{"complete from pending", ProjectPendingApproval, ProjectActionComplete, ProjectCompleted, AuthAdminOrManager, true},
		{"complete from in_progress", ProjectInProgress, ProjectActionComplete, ProjectCompleted, AuthAdminOrManager, true},
		{"complete from on_hold", ProjectOnHold, ProjectActionComplete, ProjectCompleted, AuthAdminOrManager, true},
		{"complete from cancelled", ProjectCancelled, ProjectActionComplete, ProjectCompleted, AuthAdminOrManager, true},

		{"approve in_progress", ProjectInProgress, ProjectActionApprove, "", 0, false},
		{"reject completed", ProjectCompleted, ProjectActionReject, "", 0, false},
		{"cancel on_hold", ProjectOnHold, ProjectActionCancel, "", 0, false},
		{"unknown action", ProjectInProgress, ProjectAction("archive"), "", 0, false},
		{"raw state as action", ProjectPendingApproval, ProjectAction("in_progress"), "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			to, auth, ok := LookupProjectTransition(tt.from, tt.action)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.to, to)
				assert.Equal(t, tt.auth, auth)
			}
		})
	}
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, UserActive.IsValid())
	assert.True(t, UserPendingApproval.IsValid())
	assert.False(t, UserStatus("frozen").IsValid())

	assert.True(t, ProjectOnHold.IsValid())
	assert.False(t, ProjectStatus("archived").IsValid())

	assert.True(t, TaskCancelled.IsValid())
	assert.False(t, TaskStatus("paused").IsValid())

	assert.True(t, PriorityVeryLow.IsValid())
	assert.True(t, PriorityCritical.IsValid())
	assert.False(t, Priority("urgent").IsValid())

	assert.True(t, ResetDenied.IsValid())
	assert.False(t, ResetStatus("expired").IsValid())
}

func TestIsAdminRole(t *testing.T) {
	assert.True(t, IsAdminRole("admin"))
	assert.True(t, IsAdminRole("Admin"))
	assert.True(t, IsAdminRole("ADMIN"))
	assert.False(t, IsAdminRole("administrator"))
	assert.False(t, IsAdminRole(""))
}
