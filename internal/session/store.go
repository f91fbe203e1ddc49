package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/attempt"
	"github.com/kabore-dev/prepa-concours/internal/config"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
	"github.com/kabore-dev/prepa-concours/internal/user"
)

// Store possède les sessions actives de prise de quiz. Chaque session
// appartient à un utilisateur; aucune ressource n'est partagée entre
// sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	quizzes  quiz.QuizRepository
	users    user.UserRepository
	attempts attempt.AttemptService
}

func NewStore(quizzes quiz.QuizRepository, users user.UserRepository, attempts attempt.AttemptService) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		quizzes:  quizzes,
		users:    users,
		attempts: attempts,
	}
}

// Start charge le quiz et applique le contrôle d'accès. Un quiz premium
// demandé par un profil non premium aboutit à une session ACCESS_DENIED,
// que le quiz ait été chargé avec succès ou non — jamais à READY.
func (st *Store) Start(ctx context.Context, userID uuid.UUID, quizID string) (*Session, error) {
	log := config.WithContext(ctx)

	qz, err := st.quizzes.GetByID(quizID)
	if err != nil {
		log.WithError(err).Error("Échec du chargement du quiz")
		return nil, err
	}
	if qz == nil {
		return nil, ErrQuizNotFound
	}

	if qz.AccessType == quiz.AccessPremium {
		profile, err := st.users.GetByID(userID.String())
		if err != nil {
			log.WithError(err).Error("Échec du chargement du profil")
			return nil, err
		}
		if profile == nil || !profile.IsPremium() {
			log.Warn("Accès refusé à un quiz premium", "quiz_id", quizID)
			s := newSession(userID, qz, StateAccessDenied)
			st.put(s)
			return s, ErrAccessDenied
		}
	}

	if qz.ScheduledAt != nil && time.Now().Before(*qz.ScheduledAt) {
		return nil, ErrNotStarted
	}

	s := newSession(userID, qz, StateReady)
	st.put(s)
	log.Info("Session de quiz créée", "session_id", s.ID.String())
	return s, nil
}

func (st *Store) Begin(ctx context.Context, id uuid.UUID) (*View, error) {
	s, err := st.get(id)
	if err != nil {
		return nil, err
	}

	if err := s.begin(func() { st.expire(s.ID) }); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (st *Store) ToggleOption(ctx context.Context, id uuid.UUID, option string) (*View, error) {
	s, err := st.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.toggleOption(option); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (st *Store) Next(ctx context.Context, id uuid.UUID) (*View, error) {
	s, err := st.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.next(); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (st *Store) Previous(ctx context.Context, id uuid.UUID) (*View, error) {
	s, err := st.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.previous(); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// Submit note la session et la fait passer à FINISHED. L'échec de la
// persistance de la tentative est journalisé et signalé dans la vue,
// mais ne bloque jamais l'affichage du score, calculable localement.
func (st *Store) Submit(ctx context.Context, id uuid.UUID) (*View, error) {
	s, err := st.get(id)
	if err != nil {
		return nil, err
	}
	return st.submit(ctx, s, false)
}

func (st *Store) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return st.get(id)
}

// Close libère le minuteur de la session et la retire du magasin
// (navigation ailleurs).
func (st *Store) Close(ctx context.Context, id uuid.UUID) error {
	s, err := st.get(id)
	if err != nil {
		return err
	}
	s.close()

	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
	return nil
}

func (st *Store) submit(ctx context.Context, s *Session, force bool) (*View, error) {
	answers, err := s.beginSubmission(force)
	if err != nil {
		return nil, err
	}

	a, persistErr := st.attempts.Submit(ctx, s.UserID, s.Quiz, answers)
	s.finish(a, persistErr)
	return s.view(), nil
}

// expire est le rappel d'échéance du minuteur: soumission automatique,
// comme si l'utilisateur avait terminé, sans exiger de réponse sur la
// question courante.
func (st *Store) expire(id uuid.UUID) {
	s, err := st.get(id)
	if err != nil {
		return
	}

	ctx := context.Background()
	if _, err := st.submit(ctx, s, true); err != nil {
		config.WithContext(ctx).WithError(err).Debug("Échéance du minuteur sur une session déjà soumise")
	}
}

func (st *Store) put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *Store) get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
