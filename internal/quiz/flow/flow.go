// Package flow models the quiz screen progression as an explicit state value
// with pure transitions, replacing the widget's old module-level mutable
// step/answers/closed variables. The presentation layer renders from a Flow
// and feeds user actions back through the transition methods.
package flow

import "bikematch-service/internal/quiz/model"

type State int

const (
	StateIntro State = iota
	StateQuestion
	StateResults
	StateClosed
)

// QuestionCount covers use case, terrain, range, equipped and budget.
const QuestionCount = 5

// Flow is an immutable quiz position. Transition methods return the next
// Flow, leaving the receiver untouched.
type Flow struct {
	State    State
	Question int // 0-based, meaningful only in StateQuestion
	Answers  model.Answers
}

func Start() Flow { return Flow{State: StateIntro} }

// Begin moves from the intro screen to the first question.
func (f Flow) Begin() Flow {
	if f.State != StateIntro {
		return f
	}
	return Flow{State: StateQuestion, Question: 0, Answers: f.Answers}
}

// Advance records nothing itself (answers are set by the caller on the copy)
// and steps to the next question, or to the results screen after the last.
func (f Flow) Advance(a model.Answers) Flow {
	if f.State != StateQuestion {
		return f
	}
	next := Flow{State: StateQuestion, Question: f.Question + 1, Answers: a}
	if next.Question >= QuestionCount {
		return Flow{State: StateResults, Answers: a}
	}
	return next
}

// Back returns to the previous question; from the first question it returns
// to the intro, from results to the last question.
func (f Flow) Back() Flow {
	switch f.State {
	case StateQuestion:
		if f.Question == 0 {
			return Flow{State: StateIntro, Answers: f.Answers}
		}
		return Flow{State: StateQuestion, Question: f.Question - 1, Answers: f.Answers}
	case StateResults:
		return Flow{State: StateQuestion, Question: QuestionCount - 1, Answers: f.Answers}
	default:
		return f
	}
}

// Close is terminal from every state.
func (f Flow) Close() Flow { return Flow{State: StateClosed, Answers: f.Answers} }
