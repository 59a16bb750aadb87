package focus

import (
	"errors"
	"fmt"

	"zenflow/internal/core/domain"
)

type Stage string

const (
	StageCheckIn Stage = "checkin"
	StageFocus   Stage = "focus"
	StageEmpty   Stage = "empty"
	StageBreak   Stage = "break"
	StageExited  Stage = "exited"
)

var ErrInvalidTransition = errors.New("invalid focus transition")

// Suggestion is the outcome of a check-in: StageFocus with a task, or StageEmpty.
type Suggestion struct {
	Stage Stage
	Task  *domain.Task
}

// Flow is the focus-session state machine. Every transition is driven by an
// explicit call; nothing advances on a timer.
type Flow struct {
	stage  Stage
	active *domain.Task
}

func NewFlow() *Flow {
	return &Flow{stage: StageCheckIn}
}

// Resume rebuilds the flow for a task the caller is already focused on. A
// completed task resumes at StageBreak, so completing it again is rejected.
func Resume(task domain.Task) *Flow {
	if task.Completed {
		return &Flow{stage: StageBreak}
	}
	return &Flow{stage: StageFocus, active: &task}
}

func (f *Flow) Stage() Stage {
	return f.stage
}

func (f *Flow) Active() (domain.Task, bool) {
	if f.active == nil {
		return domain.Task{}, false
	}
	return *f.active, true
}

// CheckIn runs the selection over tasks and moves to StageFocus or StageEmpty.
func (f *Flow) CheckIn(tasks []domain.Task, energy domain.MentalEffort, budget int) (Suggestion, error) {
	if err := f.expect(StageCheckIn); err != nil {
		return Suggestion{}, err
	}

	task, ok := Select(tasks, energy, budget)
	if !ok {
		f.stage = StageEmpty
		return Suggestion{Stage: StageEmpty}, nil
	}

	f.stage = StageFocus
	f.active = &task
	return Suggestion{Stage: StageFocus, Task: &task}, nil
}

// Complete finishes the active task and moves to StageBreak. The caller
// persists the completion.
func (f *Flow) Complete() (domain.Task, error) {
	if err := f.expect(StageFocus); err != nil {
		return domain.Task{}, err
	}
	task := *f.active
	task.Completed = true
	f.active = nil
	f.stage = StageBreak
	return task, nil
}

func (f *Flow) TakeBreak() error {
	if err := f.expect(StageFocus); err != nil {
		return err
	}
	f.active = nil
	f.stage = StageBreak
	return nil
}

func (f *Flow) Restart() error {
	if err := f.expect(StageBreak, StageEmpty); err != nil {
		return err
	}
	f.stage = StageCheckIn
	return nil
}

func (f *Flow) Exit() error {
	if err := f.expect(StageBreak, StageEmpty); err != nil {
		return err
	}
	f.stage = StageExited
	return nil
}

func (f *Flow) expect(stages ...Stage) error {
	for _, stage := range stages {
		if f.stage == stage {
			return nil
		}
	}
	return fmt.Errorf("%w: from %s", ErrInvalidTransition, f.stage)
}
