package aiquiz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kabore-dev/prepa-concours/internal/quiz"
)

func TestFetchQuestionsMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("difficulty"); got != "easy" {
			t.Errorf("difficulté amont incorrecte: %q", got)
		}
		if got := r.URL.Query().Get("amount"); got != "5" {
			t.Errorf("quantité amont incorrecte: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"response_code": 0,
			"results": [
				{
					"category": "Geography",
					"question": "Quelle est la capitale du Burkina Faso&nbsp;?",
					"correct_answer": "Ouagadougou",
					"incorrect_answers": ["Bamako", "Niamey", "Lom&eacute;"]
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewTriviaClientWithBase(server.URL, 42)
	questions, err := client.FetchQuestions(context.Background(), "", quiz.DifficultyFacile, 5)
	if err != nil {
		t.Fatalf("FetchQuestions a échoué: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("attendu 1 question, reçu %d", len(questions))
	}

	q := questions[0]
	if len(q.Options) != quiz.OptionCount {
		t.Fatalf("attendu %d options, reçu %d", quiz.OptionCount, len(q.Options))
	}

	// les quatre textes d'origine sont présents, l'ordre peut différer
	for _, want := range []string{"Ouagadougou", "Bamako", "Niamey", "Lomé"} {
		found := false
		for _, o := range q.Options {
			if o == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("option %q absente des options mélangées %v", want, q.Options)
		}
	}

	if len(q.CorrectAnswers) != 1 || q.CorrectAnswers[0] != "Ouagadougou" {
		t.Errorf("bonnes réponses incorrectes: %v", q.CorrectAnswers)
	}
	if q.Explanation == "" {
		t.Error("une explication synthétique était attendue")
	}
}

func TestFetchQuestionsCategoryTranslation(t *testing.T) {
	body := `{"response_code":0,"results":[{"category":"g","question":"Q","correct_answer":"C","incorrect_answers":["I1","I2","I3"]}]}`

	cases := []struct {
		name  string
		topic string
		want  string
	}{
		{"KnownTopic", "Histoire", "23"},
		{"NumericPassthrough", "18", "18"},
		{"UnknownTopicOmitsParameter", "droit constitutionnel", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("category"); got != c.want {
					t.Errorf("catégorie amont attendue %q, reçu %q", c.want, got)
				}
				if c.want == "" && r.URL.Query().Has("category") {
					t.Error("aucun paramètre category ne devrait être envoyé pour un thème inconnu")
				}
				w.Write([]byte(body))
			}))
			defer server.Close()

			_, err := NewTriviaClientWithBase(server.URL, 1).
				FetchQuestions(context.Background(), c.topic, quiz.DifficultyFacile, 4)
			if err != nil {
				t.Fatalf("FetchQuestions a échoué: %v", err)
			}
		})
	}
}

func TestFetchQuestionsShuffleDeterministicWithSeed(t *testing.T) {
	body := `{"response_code":0,"results":[{"category":"g","question":"Q","correct_answer":"C","incorrect_answers":["I1","I2","I3"]}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	first, err := NewTriviaClientWithBase(server.URL, 7).FetchQuestions(context.Background(), "", quiz.DifficultyMoyen, 1)
	if err != nil {
		t.Fatalf("FetchQuestions a échoué: %v", err)
	}
	second, err := NewTriviaClientWithBase(server.URL, 7).FetchQuestions(context.Background(), "", quiz.DifficultyMoyen, 1)
	if err != nil {
		t.Fatalf("FetchQuestions a échoué: %v", err)
	}

	for i := range first[0].Options {
		if first[0].Options[i] != second[0].Options[i] {
			t.Fatalf("le mélange devrait être identique à graine égale: %v vs %v",
				first[0].Options, second[0].Options)
		}
	}
}

func TestFetchQuestionsUpstreamFailure(t *testing.T) {
	t.Run("Non2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := NewTriviaClientWithBase(server.URL, 1).FetchQuestions(context.Background(), "", quiz.DifficultyFacile, 4)
		assertUpstreamError(t, err)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := NewTriviaClientWithBase(server.URL, 1).FetchQuestions(context.Background(), "", quiz.DifficultyFacile, 4)
		assertUpstreamError(t, err)
	})
}

func assertUpstreamError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("une UpstreamError était attendue")
	}
	if _, ok := err.(*UpstreamError); !ok {
		t.Fatalf("erreur inattendue (pas une UpstreamError): %v", err)
	}
}
