package analytics

import (
	"context"
	"fmt"

	"github.com/festivio/committee-dashboard/go-api-server/internal/member"
	"github.com/festivio/committee-dashboard/go-api-server/internal/model"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/logger"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/metrics"
	"gorm.io/gorm"
)

// AnalyticsService adapts the member store to the pure engine: every call
// re-fetches the full member snapshot and re-aggregates. No caching; the
// fetch cap bounds the work.
type AnalyticsService struct {
	db               *gorm.DB
	memberRepository member.Repository
	engine           *Engine
}

func NewAnalyticsService(db *gorm.DB, memberRepository member.Repository, engine *Engine) *AnalyticsService {
	return &AnalyticsService{
		db:               db,
		memberRepository: memberRepository,
		engine:           engine,
	}
}

func (s *AnalyticsService) Overview(ctx context.Context) (*OverviewMetrics, error) {
	members, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	metrics.RecordAnalyticsComputation("overview")
	result := s.engine.Overview(members)
	return &result, nil
}

func (s *AnalyticsService) Tasks(ctx context.Context) (*TaskAnalytics, error) {
	members, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	metrics.RecordAnalyticsComputation("tasks")
	result := s.engine.Tasks(members)
	return &result, nil
}

func (s *AnalyticsService) Registrations(ctx context.Context) (*RegistrationAnalytics, error) {
	members, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	metrics.RecordAnalyticsComputation("registrations")
	result := s.engine.Registrations(members)
	return &result, nil
}

// snapshot fetches the member set with derived totals recomputed. The
// engine owns this copy for the duration of one aggregation.
func (s *AnalyticsService) snapshot(ctx context.Context) ([]model.CommitteeMember, error) {
	members, err := s.memberRepository.FindAll(ctx, s.db)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to fetch members for analytics", "error", err)
		return nil, fmt.Errorf("fetch members for analytics: %w", err)
	}

	for i := range members {
		members[i].ComputeTotalTasks()
	}
	return members, nil
}
