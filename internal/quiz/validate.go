package quiz

import "fmt"

const (
	// OptionCount est le nombre d'options garanti après normalisation.
	OptionCount = 4

	MinGeneratedQuestions = 4
	MaxGeneratedQuestions = 15
)

// ValidationError signale un quiz qui viole le contrat de schéma.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quiz invalide: %s: %s", e.Field, e.Reason)
}

// Validate vérifie le contrat de schéma commun à tous les chemins de
// création (formulaire manuel et génération) avant toute persistance.
func Validate(q *Quiz) error {
	if q.Title == "" {
		return &ValidationError{Field: "title", Reason: "titre requis"}
	}
	if !q.Difficulty.IsValid() {
		return &ValidationError{Field: "difficulty", Reason: fmt.Sprintf("valeur inconnue %q", q.Difficulty)}
	}
	if !q.AccessType.IsValid() {
		return &ValidationError{Field: "access_type", Reason: fmt.Sprintf("valeur inconnue %q", q.AccessType)}
	}
	if q.DurationMinutes < 0 {
		return &ValidationError{Field: "duration_minutes", Reason: "doit être un entier positif"}
	}
	if len(q.Questions) == 0 {
		return &ValidationError{Field: "questions", Reason: "au moins une question requise"}
	}
	if q.TotalQuestions != len(q.Questions) {
		return &ValidationError{Field: "total_questions", Reason: "incohérent avec le nombre de questions"}
	}

	for i, question := range q.Questions {
		if err := validateQuestion(i, question); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGenerated applique en plus les bornes du chemin de génération.
func ValidateGenerated(q *Quiz) error {
	if len(q.Questions) < MinGeneratedQuestions || len(q.Questions) > MaxGeneratedQuestions {
		return &ValidationError{
			Field:  "questions",
			Reason: fmt.Sprintf("un quiz généré doit contenir entre %d et %d questions", MinGeneratedQuestions, MaxGeneratedQuestions),
		}
	}
	return Validate(q)
}

// ValidateQuestion applique le contrat d'une question isolée (chemin
// d'ajout manuel et régénération d'une seule question).
func ValidateQuestion(q Question) error {
	return validateQuestion(0, q)
}

func validateQuestion(index int, q Question) error {
	field := fmt.Sprintf("questions[%d]", index)

	if q.Text == "" {
		return &ValidationError{Field: field, Reason: "énoncé requis"}
	}
	if len(q.Options) < OptionCount {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("au moins %d options requises", OptionCount)}
	}
	if len(q.CorrectAnswers) == 0 {
		return &ValidationError{Field: field, Reason: "au moins une bonne réponse requise"}
	}
	for _, answer := range q.CorrectAnswers {
		if !containsOption(q.Options, answer) {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("la bonne réponse %q ne figure pas parmi les options", answer)}
		}
	}
	return nil
}

func containsOption(options []string, text string) bool {
	for _, o := range options {
		if o == text {
			return true
		}
	}
	return false
}
