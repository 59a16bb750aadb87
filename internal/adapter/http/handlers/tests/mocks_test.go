package tests

import (
	"context"

	"zenflow/internal/adapter/http/middleware"
	"zenflow/internal/core/domain"
	"zenflow/internal/core/focus"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID string) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

type identityServiceMock struct {
	mock.Mock
}

func (m *identityServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *identityServiceMock) Login(ctx context.Context, email, password string) (domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *identityServiceMock) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *identityServiceMock) CurrentSession(ctx context.Context, userID string) (domain.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *identityServiceMock) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

type focusServiceMock struct {
	mock.Mock
}

func (m *focusServiceMock) Suggest(ctx context.Context, userID string, energy domain.MentalEffort, budget int) (focus.Suggestion, error) {
	args := m.Called(ctx, userID, energy, budget)
	return args.Get(0).(focus.Suggestion), args.Error(1)
}

func (m *focusServiceMock) Complete(ctx context.Context, userID, taskID string) (focus.Suggestion, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(focus.Suggestion), args.Error(1)
}

func (m *focusServiceMock) TakeBreak(ctx context.Context, userID, taskID string) (focus.Suggestion, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(focus.Suggestion), args.Error(1)
}

type adminServiceMock struct {
	mock.Mock
}

func (m *adminServiceMock) ListUsers(ctx context.Context, callerID string) ([]domain.User, error) {
	args := m.Called(ctx, callerID)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *adminServiceMock) GlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.GlobalStats), args.Error(1)
}

// asUser stands in for the bearer middleware in handler tests.
func asUser(user domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func chain(user domain.User, handler gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{middleware.LanguageMiddleware(), asUser(user), handler}
}
