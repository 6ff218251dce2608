package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalyst-hr/internal/domain"
)

func TestUserService_List(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	_, err := deps.users.Create(ctx, adminActor, &domain.User{
		Email: "a@x.com", DisplayName: "A", Role: domain.RoleCandidate,
	})
	require.NoError(t, err)

	users, total, err := deps.users.List(ctx, adminActor, domain.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, users, 1)

	var denied *domain.AccessDeniedError
	_, _, err = deps.users.List(ctx, recruiterActor, domain.PageRequest{})
	require.ErrorAs(t, err, &denied)
}

func TestUserService_Get(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	_, err := deps.users.Create(ctx, adminActor, &domain.User{
		Email: "candidate@x.com", DisplayName: "C", Role: domain.RoleCandidate,
	})
	require.NoError(t, err)

	// Self-view is allowed.
	u, err := deps.users.Get(ctx, candidateActor, "candidate@x.com")
	require.NoError(t, err)
	assert.Equal(t, "C", u.DisplayName)

	// Admins see everyone.
	_, err = deps.users.Get(ctx, adminActor, "candidate@x.com")
	require.NoError(t, err)

	// Others do not.
	var denied *domain.AccessDeniedError
	_, err = deps.users.Get(ctx, recruiterActor, "candidate@x.com")
	require.ErrorAs(t, err, &denied)
}

func TestUserService_CreateValidation(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	var verr *domain.ValidationError
	_, err := deps.users.Create(ctx, adminActor, &domain.User{DisplayName: "no email"})
	require.ErrorAs(t, err, &verr)

	_, err = deps.users.Create(ctx, adminActor, &domain.User{Email: "a@x.com", Role: domain.Role("wizard")})
	require.ErrorAs(t, err, &verr)

	var denied *domain.AccessDeniedError
	_, err = deps.users.Create(ctx, candidateActor, &domain.User{Email: "b@x.com", Role: domain.RoleUser})
	require.ErrorAs(t, err, &denied)
}

func TestUserService_Delete(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	u, err := deps.users.Create(ctx, adminActor, &domain.User{
		Email: "gone@x.com", DisplayName: "G", Role: domain.RoleUser,
	})
	require.NoError(t, err)

	var denied *domain.AccessDeniedError
	require.ErrorAs(t, deps.users.Delete(ctx, recruiterActor, u.ID), &denied)

	require.NoError(t, deps.users.Delete(ctx, adminActor, u.ID))
	var notFound *domain.NotFoundError
	_, err = deps.users.Get(ctx, adminActor, "gone@x.com")
	require.ErrorAs(t, err, &notFound)
}
