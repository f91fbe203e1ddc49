package aiquiz

import "github.com/kabore-dev/prepa-concours/internal/quiz"

type Source string

const (
	// SourceModel passe par le service génératif externe.
	SourceModel Source = "model"
	// SourceBank interroge la banque publique de questions.
	SourceBank Source = "bank"
)

type GenerateRequest struct {
	Topic             string          `json:"topic"`
	NumberOfQuestions int             `json:"numberOfQuestions"`
	Difficulty        quiz.Difficulty `json:"difficulty"`
	Source            Source          `json:"source"`
}

// GeneratedQuiz est la forme structurée que le modèle doit retourner,
// conformément au schéma embarqué dans le prompt.
type GeneratedQuiz struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Questions   []GeneratedQuestion `json:"questions"`
}

type GeneratedQuestion struct {
	Text           string   `json:"text"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correct_answers"`
	Explanation    string   `json:"explanation"`
}
