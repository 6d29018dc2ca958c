package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuralink-ai/site-backend/internal/domain"
	"github.com/neuralink-ai/site-backend/internal/events"
	"github.com/neuralink-ai/site-backend/internal/repository"
	apperrors "github.com/neuralink-ai/site-backend/pkg/util"
)

func seedCatalog() []domain.Service {
	return []domain.Service{
		{ID: 1, Title: "AI Strategy Consulting", Description: "Roadmaps", Icon: "🎯", Features: []string{"ROI Analysis"}, Price: "Starting at $15,000"},
		{ID: 2, Title: "Machine Learning Development", Description: "Models", Icon: "🤖", Features: []string{"Data Pipeline Design"}, Price: "Starting at $25,000"},
	}
}

func seedTeam() []domain.TeamMember {
	return []domain.TeamMember{
		{ID: 1, Name: "Dr. Sarah Chen", Expertise: []string{"Machine Learning", "AI Strategy", "Deep Learning"}},
		{ID: 2, Name: "Michael Rodriguez", Expertise: []string{"Computer Vision", "Deep Learning", "MLOps"}},
		{ID: 5, Name: "Lisa Wang", Expertise: []string{"NLP", "Conversational AI", "Language Models"}},
	}
}

func requireDomainError(t *testing.T, err error, status int) *apperrors.DomainError {
	t.Helper()
	require.Error(t, err)
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de), "expected DomainError, got %T", err)
	require.Equal(t, status, de.HTTPStatus)
	return de
}

func requireNotFound(t *testing.T, err error) *apperrors.DomainError {
	t.Helper()
	return requireDomainError(t, err, http.StatusNotFound)
}

type recordingDispatcher struct {
	events []events.Event
}

func (r *recordingDispatcher) Publish(_ context.Context, e events.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newMemoryCatalogRepo() repository.ServiceRepository {
	return repository.NewMemoryServiceRepository(seedCatalog())
}
