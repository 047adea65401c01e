package likes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"
)

// LikeState est l'état demandé au service de modèles pour (user, model)
type LikeState string

const (
	StateLike    LikeState = "like"
	StateDislike LikeState = "dislike"
)

// Inverse retourne l'état opposé, utilisé par l'appel de compensation
func (s LikeState) Inverse() LikeState {
	if s == StateLike {
		return StateDislike
	}
	return StateLike
}

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeNotFound
	OutcomeForbidden
	OutcomeTransportFailure
	OutcomeServerError
)

// RemoteOutcome est la classification normalisée de la réponse du service de
// modèles. Une seule des paires (Err, TransportKind) / (StatusCode, Body) est
// renseignée selon le Kind.
type RemoteOutcome struct {
	Kind          OutcomeKind
	StatusCode    int
	Body          string
	TransportKind string
	Err           error
}

// ModelServiceClient pousse un état de like vers le service de modèles et
// rapporte son verdict. Aucun retry automatique: la seule répétition admise
// est l'unique appel de compensation décidé par le Coordinator.
type ModelServiceClient interface {
	SetLikeState(ctx context.Context, modelID string, state LikeState, credential string) RemoteOutcome
}

const defaultRemoteTimeout = 10 * time.Second

type HTTPModelService struct {
	baseURL string
	client  *http.Client
}

func NewHTTPModelService() *HTTPModelService {
	timeout := defaultRemoteTimeout
	if v := os.Getenv("MODEL_SERVICE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	baseURL := os.Getenv("MODEL_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	return &HTTPModelService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type setStateRequest struct {
	State LikeState `json:"state"`
}

func (s *HTTPModelService) SetLikeState(ctx context.Context, modelID string, state LikeState, credential string) RemoteOutcome {
	payload, err := json.Marshal(setStateRequest{State: state})
	if err != nil {
		return RemoteOutcome{Kind: OutcomeTransportFailure, TransportKind: "encode", Err: err}
	}

	url := fmt.Sprintf("%s/models/%s/like-state", s.baseURL, modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return RemoteOutcome{Kind: OutcomeTransportFailure, TransportKind: "request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := s.client.Do(req)
	if err != nil {
		return RemoteOutcome{Kind: OutcomeTransportFailure, TransportKind: transportKind(err), Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return RemoteOutcome{Kind: OutcomeSuccess, StatusCode: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return RemoteOutcome{Kind: OutcomeNotFound, StatusCode: resp.StatusCode}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return RemoteOutcome{Kind: OutcomeForbidden, StatusCode: resp.StatusCode}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return RemoteOutcome{Kind: OutcomeServerError, StatusCode: resp.StatusCode, Body: string(body)}
	}
}

func transportKind(err error) string {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "connection"
}
