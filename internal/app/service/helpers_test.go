package service_test

import (
	"context"
	"testing"
	"time"

	"zenflow/internal/adapter/repository"
	"zenflow/internal/adapter/store"
	"zenflow/internal/adapter/token"
	"zenflow/internal/app/service"
	"zenflow/internal/core/domain"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store    *store.MemoryStore
	users    *repository.UserRepository
	tasks    *repository.TaskRepository
	sessions *repository.SessionCache
	identity *service.IdentityService
	taskSvc  *service.TaskService
	adminSvc *service.AdminService
	focusSvc *service.FocusService
}

func newFixture() *fixture {
	s := store.NewMemoryStore()
	users := repository.NewUserRepository(s)
	tasks := repository.NewTaskRepository(s)
	sessions := repository.NewSessionCache(s)

	return &fixture{
		store:    s,
		users:    users,
		tasks:    tasks,
		sessions: sessions,
		identity: service.NewIdentityService(users, sessions, token.NewJWTIssuer("test-secret", time.Hour), bcrypt.MinCost),
		taskSvc:  service.NewTaskService(tasks, users),
		adminSvc: service.NewAdminService(users, tasks),
		focusSvc: service.NewFocusService(tasks),
	}
}

func (f *fixture) register(t *testing.T, email, username, password string) domain.User {
	t.Helper()
	user, err := f.identity.Register(context.Background(), domain.RegisterInput{Email: email, Username: username, Password: password})
	require.NoError(t, err)
	return user
}

func effortPtr(effort domain.MentalEffort) *domain.MentalEffort {
	return &effort
}

func intPtr(value int) *int {
	return &value
}
