package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"zenflow/internal/adapter/http/dto"
	"zenflow/internal/adapter/http/handlers"
	"zenflow/internal/core/domain"
	"zenflow/internal/core/focus"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFocusRouter(focusMock *focusServiceMock) *gin.Engine {
	handler := handlers.NewFocusHandler(focusMock)

	router := gin.New()
	router.POST("/api/focus/select", chain(owner, handler.Select)...)
	router.POST("/api/focus/:id/complete", chain(owner, handler.Complete)...)
	router.POST("/api/focus/:id/break", chain(owner, handler.TakeBreak)...)
	return router
}

func TestFocusHandler_Select_Focus(t *testing.T) {
	task := domain.Task{ID: taskID, UserID: owner.ID, Title: "Inbox", MentalEffort: domain.MentalEffortLow, EstimatedMinutes: 10}

	focusMock := new(focusServiceMock)
	focusMock.On("Suggest", mock.Anything, owner.ID, domain.MentalEffortLow, 15).Return(
		focus.Suggestion{Stage: focus.StageFocus, Task: &task}, nil,
	).Once()

	rec := serve(newFocusRouter(focusMock), http.MethodPost, "/api/focus/select", `{"energy":"LOW","minutes":15}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.FocusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "focus", got.Stage)
	require.NotNil(t, got.Task)
	require.Equal(t, "Inbox", got.Task.Title)
	focusMock.AssertExpectations(t)
}

func TestFocusHandler_Select_AnyTimeWhenMinutesMissing(t *testing.T) {
	focusMock := new(focusServiceMock)
	focusMock.On("Suggest", mock.Anything, owner.ID, domain.MentalEffortHigh, focus.AnyTime).Return(
		focus.Suggestion{Stage: focus.StageEmpty}, nil,
	).Once()

	rec := serve(newFocusRouter(focusMock), http.MethodPost, "/api/focus/select", `{"energy":"HIGH"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"stage":"empty"}`, rec.Body.String())
	focusMock.AssertExpectations(t)
}

func TestFocusHandler_Select_InvalidPayload(t *testing.T) {
	for name, body := range map[string]string{
		"missing energy": `{"minutes":10}`,
		"bad energy":     `{"energy":"TIRED"}`,
		"zero minutes":   `{"energy":"LOW","minutes":0}`,
		"negative":       `{"energy":"LOW","minutes":-5}`,
	} {
		t.Run(name, func(t *testing.T) {
			focusMock := new(focusServiceMock)

			rec := serve(newFocusRouter(focusMock), http.MethodPost, "/api/focus/select", body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "Invalid focus check-in", decodeError(t, rec).ErrDetails.Message)
			focusMock.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestFocusHandler_Select_Error(t *testing.T) {
	focusMock := new(focusServiceMock)
	focusMock.On("Suggest", mock.Anything, owner.ID, domain.MentalEffortMedium, 30).Return(
		focus.Suggestion{}, errors.New("boom"),
	).Once()

	rec := serve(newFocusRouter(focusMock), http.MethodPost, "/api/focus/select", `{"energy":"MEDIUM","minutes":30}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "failed to select a task", decodeError(t, rec).ErrDetails.Message)
}

func TestFocusHandler_Complete(t *testing.T) {
	task := domain.Task{ID: taskID, UserID: owner.ID, Title: "Inbox", Completed: true}

	focusMock := new(focusServiceMock)
	focusMock.On("Complete", mock.Anything, owner.ID, taskID).Return(
		focus.Suggestion{Stage: focus.StageBreak, Task: &task}, nil,
	).Once()

	rec := serve(newFocusRouter(focusMock), http.MethodPost, "/api/focus/"+taskID+"/complete", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.FocusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "break", got.Stage)
	require.NotNil(t, got.Task)
	require.True(t, got.Task.Completed)
	focusMock.AssertExpectations(t)
}

func TestFocusHandler_Complete_Errors(t *testing.T) {
	cases := map[string]struct {
		err     error
		status  int
		message string
	}{
		"not found":     {err: domain.ErrTaskNotFound, status: http.StatusNotFound, message: "Task not found"},
		"already done":  {err: focus.ErrInvalidTransition, status: http.StatusConflict, message: "Task is already completed"},
		"store failure": {err: errors.New("boom"), status: http.StatusInternalServerError, message: "failed to update the focus session"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			focusMock := new(focusServiceMock)
			focusMock.On("Complete", mock.Anything, owner.ID, taskID).Return(focus.Suggestion{}, tc.err).Once()

			rec := serve(newFocusRouter(focusMock), http.MethodPost, "/api/focus/"+taskID+"/complete", "")

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, tc.message, decodeError(t, rec).ErrDetails.Message)
		})
	}
}

func TestFocusHandler_TakeBreak(t *testing.T) {
	task := domain.Task{ID: taskID, UserID: owner.ID, Title: "Inbox"}

	focusMock := new(focusServiceMock)
	focusMock.On("TakeBreak", mock.Anything, owner.ID, taskID).Return(
		focus.Suggestion{Stage: focus.StageBreak, Task: &task}, nil,
	).Once()

	rec := serve(newFocusRouter(focusMock), http.MethodPost, "/api/focus/"+taskID+"/break", "")

	require.Equal(t, http.StatusOK, rec.Code)
	focusMock.AssertExpectations(t)
}

func TestFocusHandler_Complete_InvalidID(t *testing.T) {
	focusMock := new(focusServiceMock)

	rec := serve(newFocusRouter(focusMock), http.MethodPost, "/api/focus/not-a-uuid/complete", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	focusMock.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}
