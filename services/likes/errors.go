package likes

import (
	"errors"
	"fmt"
)

// Classes d'erreur du toggle. Les handlers font errors.Is sur ces sentinelles
// au lieu d'analyser des chaînes.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrModelNotFound = errors.New("model not found")
	ErrForbidden     = errors.New("forbidden by model service")

	ErrRemoteUnavailable = errors.New("model service unavailable")

	// ErrLocalPersistFailed: l'écriture distante a réussi mais la sauvegarde
	// locale a échoué. ErrCompensationFailed s'y ajoute quand l'appel de
	// rollback a lui aussi échoué: les deux magasins sont alors divergents.
	ErrLocalPersistFailed = errors.New("local persist failed after remote update")
	ErrCompensationFailed = errors.New("compensating call failed, stores divergent")
)

// RemoteError enveloppe une RemoteOutcome non-succès pour que le handler
// puisse distinguer timeout / connexion / 5xx distant lors du mapping HTTP.
type RemoteError struct {
	Outcome RemoteOutcome
}

func (e *RemoteError) Error() string {
	o := e.Outcome
	if o.Err != nil {
		return fmt.Sprintf("model service unreachable (%s): %v", o.TransportKind, o.Err)
	}
	return fmt.Sprintf("model service error: status=%d, body=%s", o.StatusCode, o.Body)
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}
