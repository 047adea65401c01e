package likes

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ToggleResult est la réponse d'un toggle complet
type ToggleResult struct {
	Action           LikeState `json:"action"`
	ModelID          string    `json:"model_id"`
	TotalLikedModels int       `json:"total_liked_models"`
}

// Coordinator exécute le toggle de like sur les deux magasins: le service de
// modèles distant (compteur faisant autorité) et le document utilisateur local
// (appartenance faisant autorité). Aucune transaction ne couvre les deux; en
// cas d'échec local après succès distant, un unique appel de compensation
// tente de restaurer l'état distant d'origine.
type Coordinator struct {
	store  UserStore
	remote ModelServiceClient
	log    logrus.FieldLogger
}

func NewCoordinator(store UserStore, remote ModelServiceClient, log logrus.FieldLogger) *Coordinator {
	return &Coordinator{store: store, remote: remote, log: log}
}

// ToggleLike pilote un basculement d'état pour (userID, modelID).
//
// La direction est décidée par l'appartenance locale: présence dans
// liked_models => dislike, absence => like. L'action rapportée est toujours la
// direction demandée, jamais l'écho du service distant (les deux peuvent
// différer si les magasins ont déjà divergé).
//
// L'annulation de l'appelant n'est honorée qu'avant l'appel distant; une fois
// celui-ci émis, la saga court jusqu'au bout pour ne pas laisser l'état
// distant sans contrepartie locale.
//
// Deux toggles concurrents pour la même paire peuvent lire la même
// appartenance et décider la même direction: risque accepté, pas de verrou
// par (user, model).
func (co *Coordinator) ToggleLike(ctx context.Context, userID uint, modelID string, credential string) (*ToggleResult, error) {
	user, err := co.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	target := StateLike
	if user.HasLiked(modelID) {
		target = StateDislike
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Dernier point d'abandon: au-delà, la requête se détache du contexte de
	// l'appelant (le timeout borné reste porté par le client HTTP)
	detached := context.WithoutCancel(ctx)

	outcome := co.remote.SetLikeState(detached, modelID, target, credential)
	switch outcome.Kind {
	case OutcomeSuccess:
	case OutcomeNotFound:
		return nil, fmt.Errorf("%w: model %s", ErrModelNotFound, modelID)
	case OutcomeForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrForbidden, outcome.StatusCode)
	default:
		co.log.WithFields(logrus.Fields{
			"model_id": modelID,
			"state":    target,
			"kind":     outcome.TransportKind,
			"status":   outcome.StatusCode,
		}).Error("remote like update failed")
		return nil, &RemoteError{Outcome: outcome}
	}

	if target == StateLike {
		user.AddLikedModel(modelID)
	} else {
		user.RemoveLikedModel(modelID)
	}

	if saveErr := co.store.SaveLikedModels(detached, user); saveErr != nil {
		comp := co.remote.SetLikeState(detached, modelID, target.Inverse(), credential)
		if comp.Kind != OutcomeSuccess {
			co.log.WithFields(logrus.Fields{
				"user_id":  userID,
				"model_id": modelID,
				"state":    target,
			}).Error("compensating call failed, manual reconciliation required")
			return nil, errors.Join(
				fmt.Errorf("%w: %v", ErrLocalPersistFailed, saveErr),
				ErrCompensationFailed,
			)
		}
		co.log.WithFields(logrus.Fields{
			"user_id":  userID,
			"model_id": modelID,
			"state":    target,
		}).Error("local persist failed, remote state rolled back")
		return nil, fmt.Errorf("%w: %v", ErrLocalPersistFailed, saveErr)
	}

	return &ToggleResult{
		Action:           target,
		ModelID:          modelID,
		TotalLikedModels: len(user.LikedModels),
	}, nil
}
