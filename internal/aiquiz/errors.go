package aiquiz

import (
	"errors"
	"fmt"
)

// ErrNoContent signale que le service génératif n'a produit aucune
// sortie structurée exploitable.
var ErrNoContent = errors.New("le modèle n'a retourné aucun contenu exploitable")

// UpstreamError signale un échec de la banque publique de questions
// (réseau ou statut non-2xx).
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("banque de questions inaccessible: %v", e.Err)
	}
	return fmt.Sprintf("banque de questions: statut HTTP %d", e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
