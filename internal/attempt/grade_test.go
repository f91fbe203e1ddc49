package attempt

import (
	"reflect"
	"testing"

	"github.com/kabore-dev/prepa-concours/internal/quiz"
	"gorm.io/datatypes"
)

func question(text string, correct ...string) quiz.Question {
	return quiz.Question{
		Text:           text,
		Options:        datatypes.JSONSlice[string]{"A", "B", "C", "D"},
		CorrectAnswers: datatypes.JSONSlice[string](correct),
		Explanation:    "explication de " + text,
	}
}

func TestGradeSetEquality(t *testing.T) {
	questions := []quiz.Question{question("Q1", "A", "B")}

	t.Run("OrderIndependent", func(t *testing.T) {
		result := Grade(questions, map[int][]string{0: {"B", "A"}})
		if result.CorrectCount != 1 {
			t.Errorf("{B,A} contre {A,B} devrait être juste: %+v", result)
		}
	})

	t.Run("SubsetIsWrong", func(t *testing.T) {
		result := Grade(questions, map[int][]string{0: {"A"}})
		if result.CorrectCount != 0 {
			t.Error("un sous-ensemble des bonnes réponses ne donne aucun crédit partiel")
		}
	})

	t.Run("SupersetIsWrong", func(t *testing.T) {
		result := Grade(questions, map[int][]string{0: {"A", "B", "C"}})
		if result.CorrectCount != 0 {
			t.Error("un sur-ensemble des bonnes réponses ne donne aucun crédit partiel")
		}
	})

	t.Run("EmptySelectionIsWrong", func(t *testing.T) {
		result := Grade(questions, map[int][]string{})
		if result.CorrectCount != 0 {
			t.Error("une question sans réponse compte fausse")
		}
		if detail, ok := result.Details["0"]; !ok || len(detail.Selected) != 0 {
			t.Errorf("le rapport devrait porter une sélection vide: %+v", result.Details)
		}
	})
}

func TestGradeScoreRounding(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		correct int
		want    int
	}{
		{"ThreeOutOfFour", 4, 3, 75},
		{"OneOutOfThree", 3, 1, 33},
		{"TwoOutOfThree", 3, 2, 67},
		{"AllCorrect", 5, 5, 100},
		{"NoneCorrect", 5, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var questions []quiz.Question
			answers := make(map[int][]string)
			for i := 0; i < c.total; i++ {
				questions = append(questions, question("Q", "A"))
				if i < c.correct {
					answers[i] = []string{"A"}
				} else {
					answers[i] = []string{"B"}
				}
			}

			result := Grade(questions, answers)
			if result.CorrectCount != c.correct {
				t.Fatalf("correct attendu %d, reçu %d", c.correct, result.CorrectCount)
			}
			if result.Score != c.want {
				t.Errorf("score attendu %d, reçu %d", c.want, result.Score)
			}
		})
	}
}

func TestGradeIdempotent(t *testing.T) {
	questions := []quiz.Question{
		question("Q1", "A"),
		question("Q2", "B", "C"),
		question("Q3", "D"),
	}
	answers := map[int][]string{
		0: {"A"},
		1: {"C", "B"},
		2: {"A"},
	}

	first := Grade(questions, answers)
	second := Grade(questions, answers)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Grade n'est pas idempotent:\n%+v\n%+v", first, second)
	}
	if first.CorrectCount != 2 || first.Score != 67 {
		t.Errorf("résultat inattendu: %+v", first)
	}
}

func TestGradeDetailReport(t *testing.T) {
	questions := []quiz.Question{
		question("Capitale ?", "A"),
		{
			Text:           "Sans explication",
			Options:        datatypes.JSONSlice[string]{"A", "B", "C", "D"},
			CorrectAnswers: datatypes.JSONSlice[string]{"B"},
		},
	}
	answers := map[int][]string{0: {"A"}}

	result := Grade(questions, answers)
	if result.TotalQuestions != 2 {
		t.Fatalf("total attendu 2, reçu %d", result.TotalQuestions)
	}

	d0 := result.Details["0"]
	if d0.Question != "Capitale ?" || !reflect.DeepEqual(d0.Selected, []string{"A"}) {
		t.Errorf("détail 0 incorrect: %+v", d0)
	}
	if !reflect.DeepEqual(d0.Correct, []string{"A"}) {
		t.Errorf("ensemble correct du détail 0 incorrect: %+v", d0)
	}

	d1 := result.Details["1"]
	if d1.Explanation != "" {
		t.Errorf("explication vide attendue pour le détail 1: %+v", d1)
	}
	if len(d1.Selected) != 0 {
		t.Errorf("sélection vide attendue pour le détail 1: %+v", d1)
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	result := Grade(nil, nil)
	if result.Score != 0 || result.TotalQuestions != 0 {
		t.Errorf("un quiz vide donne un score nul: %+v", result)
	}
}
