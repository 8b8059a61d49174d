package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleCollege.Valid())
	assert.True(t, RoleRecruiter.Valid())

	assert.False(t, RoleType("").Valid())
	assert.False(t, RoleType("student").Valid())
	assert.False(t, RoleType("Admin").Valid())
}

func TestJobStatusTransitions(t *testing.T) {
	assert.True(t, JobStatusPending.CanTransitionTo(JobStatusApproved))
	assert.True(t, JobStatusPending.CanTransitionTo(JobStatusRejected))

	// Decisions are final.
	assert.False(t, JobStatusApproved.CanTransitionTo(JobStatusRejected))
	assert.False(t, JobStatusApproved.CanTransitionTo(JobStatusPending))
	assert.False(t, JobStatusRejected.CanTransitionTo(JobStatusApproved))
	assert.False(t, JobStatusRejected.CanTransitionTo(JobStatusPending))
	assert.False(t, JobStatusPending.CanTransitionTo(JobStatusPending))
}

func TestApplicationStatusTransitions(t *testing.T) {
	// The pipeline only moves forward.
	assert.True(t, ApplicationStatusApplied.CanTransitionTo(ApplicationStatusShortlisted))
	assert.True(t, ApplicationStatusApplied.CanTransitionTo(ApplicationStatusRejected))
	assert.True(t, ApplicationStatusShortlisted.CanTransitionTo(ApplicationStatusInterview))
	assert.True(t, ApplicationStatusShortlisted.CanTransitionTo(ApplicationStatusOffered))
	assert.True(t, ApplicationStatusInterview.CanTransitionTo(ApplicationStatusOffered))
	assert.True(t, ApplicationStatusInterview.CanTransitionTo(ApplicationStatusRejected))

	// Nothing moves back to Applied.
	assert.False(t, ApplicationStatusShortlisted.CanTransitionTo(ApplicationStatusApplied))
	assert.False(t, ApplicationStatusInterview.CanTransitionTo(ApplicationStatusShortlisted))

	// Terminal states stay put.
	assert.False(t, ApplicationStatusRejected.CanTransitionTo(ApplicationStatusShortlisted))
	assert.False(t, ApplicationStatusRejected.CanTransitionTo(ApplicationStatusOffered))
	assert.False(t, ApplicationStatusOffered.CanTransitionTo(ApplicationStatusRejected))

	assert.True(t, ApplicationStatusRejected.Terminal())
	assert.True(t, ApplicationStatusOffered.Terminal())
	assert.False(t, ApplicationStatusApplied.Terminal())
}
