package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/attempt"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
)

type State string

// minuteUnit est raccourci par les tests d'échéance du minuteur.
var minuteUnit = time.Minute

const (
	StateReady        State = "READY"
	StateInProgress   State = "IN_PROGRESS"
	StateSubmitting   State = "SUBMITTING"
	StateFinished     State = "FINISHED"
	StateAccessDenied State = "ACCESS_DENIED"
	StateError        State = "ERROR"
)

// Session est l'état d'un passage de quiz pour un utilisateur. Chaque
// session possède son propre verrou; le minuteur optionnel appartient à
// la session et n'a qu'un seul chemin de libération (stopTimer), emprunté
// aussi bien à la soumission qu'à la fermeture anticipée.
type Session struct {
	mu sync.Mutex

	ID      uuid.UUID
	UserID  uuid.UUID
	Quiz    *quiz.Quiz
	State   State
	Current int

	answers  map[int][]string
	deadline *time.Time
	timer    *time.Timer

	submitting bool
	Attempt    *attempt.QuizAttempt
	PersistErr error
}

func newSession(userID uuid.UUID, qz *quiz.Quiz, state State) *Session {
	return &Session{
		ID:      uuid.New(),
		UserID:  userID,
		Quiz:    qz,
		State:   state,
		answers: make(map[int][]string),
	}
}

// begin passe la session en cours et arme le minuteur si le quiz est
// chronométré. expire est rappelé à l'échéance, hors verrou.
func (s *Session) begin(expire func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateReady {
		return ErrNotInProgress
	}
	s.State = StateInProgress

	if s.Quiz.DurationMinutes > 0 {
		d := time.Duration(s.Quiz.DurationMinutes) * minuteUnit
		deadline := time.Now().Add(d)
		s.deadline = &deadline
		s.timer = time.AfterFunc(d, expire)
	}
	return nil
}

// toggleOption bascule l'appartenance du texte de l'option à l'ensemble
// de réponses de la question courante (sélection multiple).
func (s *Session) toggleOption(option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateInProgress {
		return ErrNotInProgress
	}

	question := s.Quiz.Questions[s.Current]
	known := false
	for _, o := range question.Options {
		if o == option {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownOption
	}

	selected := s.answers[s.Current]
	for i, v := range selected {
		if v == option {
			s.answers[s.Current] = append(selected[:i], selected[i+1:]...)
			return nil
		}
	}
	s.answers[s.Current] = append(selected, option)
	return nil
}

func (s *Session) next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateInProgress {
		return ErrNotInProgress
	}
	if len(s.answers[s.Current]) == 0 {
		return ErrUnanswered
	}
	if s.Current < len(s.Quiz.Questions)-1 {
		s.Current++
	}
	return nil
}

func (s *Session) previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateInProgress {
		return ErrNotInProgress
	}
	if s.Current > 0 {
		s.Current--
	}
	return nil
}

// beginSubmission fait entrer la session dans l'état de soumission et
// coupe le minuteur en premier. Le drapeau submitting rend la soumission
// idempotente face au double déclenchement (clic + échéance du minuteur).
// force court-circuite l'exigence de réponse sur la question courante
// (échéance du minuteur).
func (s *Session) beginSubmission(force bool) (map[int][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting || s.State == StateFinished {
		return nil, ErrAlreadySubmitted
	}
	if s.State != StateInProgress {
		return nil, ErrNotInProgress
	}
	if !force && len(s.answers[s.Current]) == 0 {
		return nil, ErrUnanswered
	}

	s.submitting = true
	s.stopTimerLocked()
	s.State = StateSubmitting

	answers := make(map[int][]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = append([]string(nil), v...)
	}
	return answers, nil
}

func (s *Session) finish(a *attempt.QuizAttempt, persistErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attempt = a
	s.PersistErr = persistErr
	s.State = StateFinished
}

// close libère le minuteur lors d'une navigation ailleurs.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.deadline = nil
}

// RemainingSeconds retourne le temps restant du compte à rebours, ou -1
// pour une session non chronométrée.
func (s *Session) RemainingSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deadline == nil {
		return -1
	}
	remaining := int(time.Until(*s.deadline).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// View est la projection de la session exposée au client: elle ne
// révèle jamais les bonnes réponses d'un quiz en cours.
type View struct {
	ID               uuid.UUID            `json:"id"`
	State            State                `json:"state"`
	QuizID           uuid.UUID            `json:"quiz_id"`
	QuizTitle        string               `json:"quiz_title"`
	CurrentIndex     int                  `json:"current_index"`
	TotalQuestions   int                  `json:"total_questions"`
	QuestionText     string               `json:"question_text,omitempty"`
	Options          []string             `json:"options,omitempty"`
	Selected         []string             `json:"selected,omitempty"`
	RemainingSeconds int                  `json:"remaining_seconds"`
	Attempt          *attempt.QuizAttempt `json:"attempt,omitempty"`
	PersistFailed    bool                 `json:"persist_failed,omitempty"`
}

func (s *Session) view() *View {
	remaining := s.RemainingSeconds()

	s.mu.Lock()
	defer s.mu.Unlock()

	v := &View{
		ID:               s.ID,
		State:            s.State,
		QuizID:           s.Quiz.ID,
		QuizTitle:        s.Quiz.Title,
		CurrentIndex:     s.Current,
		TotalQuestions:   len(s.Quiz.Questions),
		RemainingSeconds: remaining,
		Attempt:          s.Attempt,
		PersistFailed:    s.PersistErr != nil,
	}

	if s.State == StateInProgress && s.Current < len(s.Quiz.Questions) {
		question := s.Quiz.Questions[s.Current]
		v.QuestionText = question.Text
		v.Options = question.Options
		v.Selected = append([]string(nil), s.answers[s.Current]...)
	}
	return v
}
