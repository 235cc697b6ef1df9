package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/festivio/committee-dashboard/go-api-server/internal/model"
	"gorm.io/gorm"
)

// Seed inserts the demo committee roster when the member table is empty.
// A non-empty table is left untouched, so restarts are harmless.
func Seed(ctx context.Context, db *gorm.DB) error {
	repository := NewMemberRepository()

	count, err := repository.Count(ctx, db)
	if err != nil {
		return fmt.Errorf("count members before seeding: %w", err)
	}
	if count > 0 {
		slog.Info("Skipping sample data seed, member table is not empty", "count", count)
		return nil
	}

	for _, member := range sampleMembers() {
		if err := repository.Insert(ctx, db, member); err != nil {
			return fmt.Errorf("seed member %s: %w", member.Name, err)
		}
	}

	slog.Info("Sample committee members seeded", "count", len(sampleMembers()))
	return nil
}

func sampleMembers() []*model.CommitteeMember {
	createdAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	members := []*model.CommitteeMember{
		{
			ID:                   "1",
			Name:                 "Sarah Johnson",
			Role:                 "Team Lead",
			Contact:              "sarah.johnson@email.com",
			Phone:                "+1 (555) 123-4567",
			TasksCompleted:       15,
			TasksPending:         3,
			Efficiency:           85,
			RegistrationsBrought: 12,
			PerformanceHistory: model.PerformanceHistory{
				{Month: "Jan", Score: 78},
				{Month: "Feb", Score: 82},
				{Month: "Mar", Score: 85},
			},
		},
		{
			ID:                   "2",
			Name:                 "Michael Chen",
			Role:                 "Marketing Coordinator",
			Contact:              "michael.chen@email.com",
			Phone:                "+1 (555) 234-5678",
			TasksCompleted:       22,
			TasksPending:         5,
			Efficiency:           92,
			RegistrationsBrought: 18,
			PerformanceHistory: model.PerformanceHistory{
				{Month: "Jan", Score: 88},
				{Month: "Feb", Score: 90},
				{Month: "Mar", Score: 92},
			},
		},
		{
			ID:                   "3",
			Name:                 "Emily Rodriguez",
			Role:                 "Event Coordinator",
			Contact:              "emily.rodriguez@email.com",
			Phone:                "+1 (555) 345-6789",
			TasksCompleted:       11,
			TasksPending:         7,
			Efficiency:           72,
			RegistrationsBrought: 8,
			PerformanceHistory: model.PerformanceHistory{
				{Month: "Jan", Score: 75},
				{Month: "Feb", Score: 70},
				{Month: "Mar", Score: 72},
			},
		},
		{
			ID:                   "4",
			Name:                 "David Kim",
			Role:                 "Outreach Specialist",
			Contact:              "david.kim@email.com",
			Phone:                "+1 (555) 456-7890",
			TasksCompleted:       19,
			TasksPending:         2,
			Efficiency:           88,
			RegistrationsBrought: 15,
			PerformanceHistory: model.PerformanceHistory{
				{Month: "Jan", Score: 85},
				{Month: "Feb", Score: 87},
				{Month: "Mar", Score: 88},
			},
		},
		{
			ID:                   "5",
			Name:                 "Lisa Thompson",
			Role:                 "Communications Manager",
			Contact:              "lisa.thompson@email.com",
			Phone:                "+1 (555) 567-8901",
			TasksCompleted:       13,
			TasksPending:         4,
			Efficiency:           79,
			RegistrationsBrought: 10,
			PerformanceHistory: model.PerformanceHistory{
				{Month: "Jan", Score: 76},
				{Month: "Feb", Score: 78},
				{Month: "Mar", Score: 79},
			},
		},
	}

	for _, member := range members {
		member.ComputeTotalTasks()
		member.CreatedAt = createdAt
		member.UpdatedAt = updatedAt
	}
	return members
}
