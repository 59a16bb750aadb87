package service_test

import (
	"context"
	"testing"

	"zenflow/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestAdminService_ListUsersRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.identity.EnsureUser(ctx, domain.RegisterInput{Email: "admin@system.com", Username: "admin_sys", Password: "pw"}, domain.RoleAdmin)
	require.NoError(t, err)
	alice := f.register(t, "a@x.com", "alice", "pw1")
	admin, err := f.users.FindByEmail(ctx, "admin@system.com")
	require.NoError(t, err)

	_, err = f.adminSvc.ListUsers(ctx, alice.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.adminSvc.ListUsers(ctx, "ghost")
	require.ErrorIs(t, err, domain.ErrForbidden)

	users, err := f.adminSvc.ListUsers(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		require.Empty(t, user.PasswordHash)
	}
}

func TestAdminService_GlobalStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	stats, err := f.adminSvc.GlobalStats(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.GlobalStats{}, stats)

	alice := f.register(t, "a@x.com", "alice", "pw1")
	bob := f.register(t, "b@x.com", "bob", "pw2")
	done, err := f.taskSvc.CreateTask(ctx, domain.CreateTaskInput{UserID: alice.ID, Title: "a"})
	require.NoError(t, err)
	_, err = f.taskSvc.CreateTask(ctx, domain.CreateTaskInput{UserID: alice.ID, Title: "b"})
	require.NoError(t, err)
	_, err = f.taskSvc.CreateTask(ctx, domain.CreateTaskInput{UserID: bob.ID, Title: "c"})
	require.NoError(t, err)
	_, err = f.taskSvc.SetTaskCompleted(ctx, alice.ID, done.ID, true)
	require.NoError(t, err)

	stats, err = f.adminSvc.GlobalStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalUsers)
	require.Equal(t, 3, stats.TotalTasks)
	require.Equal(t, 1, stats.CompletedTasks)
	require.Equal(t, 33, stats.CompletionRate())
}
