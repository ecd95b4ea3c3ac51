package ui

import (
	"context"
	"time"
)

// Step is one status line of the simulated test run
type Step struct {
	Delay   time.Duration `json:"-"`
	Status  string        `json:"status"` // running | passed | done
	Message string        `json:"message"`
}

// RunTestsSequence is the scripted output displayed by the "run tests" demo button
// nothing is executed, the messages are replayed as is
var RunTestsSequence = []Step{
	{Delay: 0, Status: "running", Message: "Initializing test runner..."},
	{Delay: 600 * time.Millisecond, Status: "running", Message: "Loading feature files and step definitions..."},
	{Delay: 800 * time.Millisecond, Status: "running", Message: "Validating API schemas..."},
	{Delay: 1000 * time.Millisecond, Status: "running", Message: "Executing 24 scenarios in parallel..."},
	{Delay: 1200 * time.Millisecond, Status: "passed", Message: "24 passed, 0 failed"},
	{Delay: 600 * time.Millisecond, Status: "done", Message: "Allure report generated"},
}

// Play emits every step after waiting for its delay
// it stops early with the context error when ctx is done
func Play(ctx context.Context, steps []Step, emit func(Step)) error {
	for _, step := range steps {
		if step.Delay > 0 {
			timer := time.NewTimer(step.Delay)

			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		emit(step)
	}

	return nil
}

// WithoutDelays returns a copy of the steps with every delay removed
func WithoutDelays(steps []Step) []Step {
	result := make([]Step, len(steps))

	for i, s := range steps {
		s.Delay = 0
		result[i] = s
	}

	return result
}
