package attempt

import (
	"math"
	"strconv"

	"github.com/kabore-dev/prepa-concours/internal/quiz"
)

// AnswerDetail est le rapport par question d'une tentative.
type AnswerDetail struct {
	Question    string   `json:"question"`
	Selected    []string `json:"selected"`
	Correct     []string `json:"correct"`
	Explanation string   `json:"explanation"`
}

type Result struct {
	TotalQuestions int                     `json:"total_questions"`
	CorrectCount   int                     `json:"correct_count"`
	Score          int                     `json:"score"`
	Details        map[string]AnswerDetail `json:"details"`
}

// Grade compare les réponses de l'utilisateur aux bonnes réponses de
// chaque question par égalité d'ensembles: l'ordre est indifférent, la
// correspondance doit être exacte, aucun crédit partiel. Une question
// sans sélection (minuteur écoulé) n'égale jamais un ensemble non vide
// et compte donc fausse. Le score est arrondi, pas tronqué.
//
// Calcul pur, sans entrée-sortie; la persistance de la tentative est
// une étape séparée et explicitement faillible.
func Grade(questions []quiz.Question, answers map[int][]string) Result {
	result := Result{
		TotalQuestions: len(questions),
		Details:        make(map[string]AnswerDetail, len(questions)),
	}

	for i, question := range questions {
		selected := answers[i]
		if setEqual(selected, question.CorrectAnswers) {
			result.CorrectCount++
		}

		detail := AnswerDetail{
			Question:    question.Text,
			Selected:    selected,
			Correct:     question.CorrectAnswers,
			Explanation: question.Explanation,
		}
		if detail.Selected == nil {
			detail.Selected = []string{}
		}
		result.Details[strconv.Itoa(i)] = detail
	}

	if result.TotalQuestions > 0 {
		result.Score = int(math.Round(100 * float64(result.CorrectCount) / float64(result.TotalQuestions)))
	}
	return result
}

func setEqual(a, b []string) bool {
	setA := make(map[string]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for v := range setA {
		if _, ok := setB[v]; !ok {
			return false
		}
	}
	return true
}
