package attempt

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/auth"
)

type stubAttemptRepo struct {
	attempts []*QuizAttempt
}

func (s *stubAttemptRepo) Create(a *QuizAttempt) error               { return nil }
func (s *stubAttemptRepo) GetByID(string) (*QuizAttempt, error)      { return nil, nil }
func (s *stubAttemptRepo) ListByUser(string) ([]*QuizAttempt, error) { return s.attempts, nil }

func TestListMyAttempts(t *testing.T) {
	h := NewHandler(NewService(&stubAttemptRepo{}))

	t.Run("NonUUIDSubject", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(auth.WithClaims(req.Context(), &auth.UserClaims{UserID: "pas-un-uuid"}))
		rec := httptest.NewRecorder()

		h.ListMyAttempts(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("statut 401 attendu pour un sujet non UUID, reçu %d", rec.Code)
		}
	})

	t.Run("MissingClaims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		h.ListMyAttempts(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("statut 401 attendu sans claims, reçu %d", rec.Code)
		}
	})

	t.Run("ValidSubject", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(auth.WithClaims(req.Context(), &auth.UserClaims{UserID: uuid.NewString()}))
		rec := httptest.NewRecorder()

		h.ListMyAttempts(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("statut 200 attendu, reçu %d", rec.Code)
		}
	})
}
