package quiz

// NormalizeQuestion garantit qu'une question, quelle que soit son
// origine (modèle génératif, banque publique, formulaire), porte
// exactement quatre options et un sous-ensemble de bonnes réponses
// cohérent avec les options survivantes.
//
// La troncature conserve les quatre premières options dans leur ordre
// d'origine, sauf si cela éliminerait toutes les bonnes réponses: dans
// ce cas la première bonne réponse prend la dernière place conservée,
// pour qu'une question ne puisse jamais se normaliser sans réponse.
func NormalizeQuestion(q Question) Question {
	options := make([]string, len(q.Options))
	copy(options, q.Options)

	for len(options) < OptionCount {
		options = append(options, "")
	}

	if len(options) > OptionCount {
		kept := options[:OptionCount:OptionCount]
		if !anyCorrect(kept, q.CorrectAnswers) {
			for _, o := range options[OptionCount:] {
				if containsOption(q.CorrectAnswers, o) {
					kept[OptionCount-1] = o
					break
				}
			}
		}
		options = kept
	}

	var correct []string
	for _, answer := range q.CorrectAnswers {
		if containsOption(options, answer) {
			correct = append(correct, answer)
		}
	}

	q.Options = options
	q.CorrectAnswers = correct
	return q
}

func anyCorrect(options []string, correct []string) bool {
	for _, o := range options {
		if containsOption(correct, o) {
			return true
		}
	}
	return false
}
