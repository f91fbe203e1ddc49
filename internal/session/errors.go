package session

import "errors"

var (
	// ErrAccessDenied signale un quiz premium demandé par un profil qui
	// n'a pas d'abonnement valide — à distinguer d'une panne.
	ErrAccessDenied = errors.New("accès réservé aux abonnés premium")

	// ErrNotStarted signale un quiz programmé dont l'heure de début
	// n'est pas encore atteinte.
	ErrNotStarted = errors.New("ce quiz n'a pas encore commencé")

	ErrQuizNotFound    = errors.New("quiz introuvable")
	ErrSessionNotFound = errors.New("session introuvable")

	// ErrUnanswered bloque l'avancement et la soumission manuelle tant
	// que la question courante n'a aucune option sélectionnée.
	ErrUnanswered = errors.New("la question courante doit avoir au moins une réponse")

	ErrAlreadySubmitted = errors.New("session déjà soumise")
	ErrNotInProgress    = errors.New("la session n'est pas en cours")
	ErrUnknownOption    = errors.New("option inconnue pour la question courante")
)
