package httpserver

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"

	"github.com/enrico07/feddit-api/internal/domain"
	"github.com/enrico07/feddit-api/internal/platform/config"
)

// --- Mock implementations ---

type mockAppService struct {
	getCommentsFn func(ctx context.Context, filter domain.CommentFilter) ([]domain.EnrichedComment, error)

	calls      int
	lastFilter domain.CommentFilter
}

func (m *mockAppService) GetComments(ctx context.Context, filter domain.CommentFilter) ([]domain.EnrichedComment, error) {
	m.calls++
	m.lastFilter = filter
	if m.getCommentsFn != nil {
		return m.getCommentsFn(ctx, filter)
	}
	return nil, errors.New("not implemented")
}

func newTestServer(app appService, healthChecks []HealthCheck) *Server {
	cfg := &config.Config{AppEnv: "test", Port: "8080"}
	return NewServer(cfg, app, healthChecks, clockwork.NewFakeClock())
}
