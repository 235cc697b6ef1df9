package analytics_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/festivio/committee-dashboard/go-api-server/internal/analytics"
	"github.com/festivio/committee-dashboard/go-api-server/internal/member"
	"github.com/festivio/committee-dashboard/go-api-server/internal/model"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for analytics handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB, member.Repository) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	analyticsService := analytics.NewAnalyticsService(db, memberRepo, analytics.NewEngine(analytics.DefaultTierScheme))
	analyticsHandler := analytics.NewAnalyticsHandler(analyticsService)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/analytics/overview", analyticsHandler.Overview)
	router.GET("/api/v1/analytics/tasks", analyticsHandler.Tasks)
	router.GET("/api/v1/analytics/registrations", analyticsHandler.Registrations)

	return router, db, memberRepo
}

func seedRoster(t *testing.T, db *gorm.DB, repo member.Repository) {
	t.Helper()

	roster := []*model.CommitteeMember{
		model.NewCommitteeMember("Sarah Johnson", "Team Lead", "sarah@example.com", "", 15, 3, 85, 12, nil),
		model.NewCommitteeMember("Michael Chen", "Marketing Coordinator", "michael@example.com", "", 22, 5, 92, 18, nil),
		model.NewCommitteeMember("Emily Rodriguez", "Event Coordinator", "emily@example.com", "", 11, 7, 72, 8, nil),
		model.NewCommitteeMember("David Kim", "Outreach Specialist", "david@example.com", "", 19, 2, 88, 15, nil),
		model.NewCommitteeMember("Lisa Thompson", "Communications Manager", "lisa@example.com", "", 13, 4, 79, 10, nil),
	}
	for _, m := range roster {
		require.NoError(t, repo.Insert(context.Background(), db, m))
	}
}

func TestOverviewEndpoint(t *testing.T) {
	// Given: the seeded roster
	router, db, repo := setupTestEnvironment(t)
	seedRoster(t, db, repo)

	// When: fetching the overview report
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/analytics/overview",
	})

	// Then: totals and the top performer match the roster
	assert.Equal(t, http.StatusOK, recorder.Code)

	var metrics analytics.OverviewMetrics
	testutil.ParseResponse(t, recorder, &metrics)
	assert.Equal(t, 5, metrics.TotalMembers)
	assert.Equal(t, 80, metrics.TotalTasksCompleted)
	assert.Equal(t, 21, metrics.TotalTasksPending)
	assert.Equal(t, 63, metrics.TotalRegistrations)
	assert.Equal(t, 83, metrics.AvgEfficiency)
	require.NotNil(t, metrics.TopPerformer)
	assert.Equal(t, "Michael Chen", metrics.TopPerformer.Name)
}

func TestOverviewEndpoint_EmptyStore(t *testing.T) {
	// Given: no members at all
	router, _, _ := setupTestEnvironment(t)

	// When: fetching the overview report
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/analytics/overview",
	})

	// Then: all counters are zero and topPerformer is null
	assert.Equal(t, http.StatusOK, recorder.Code)

	var metrics analytics.OverviewMetrics
	testutil.ParseResponse(t, recorder, &metrics)
	assert.Equal(t, 0, metrics.TotalMembers)
	assert.Nil(t, metrics.TopPerformer)
}

func TestTasksEndpoint(t *testing.T) {
	// Given: the seeded roster
	router, db, repo := setupTestEnvironment(t)
	seedRoster(t, db, repo)

	// When: fetching the task report
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/analytics/tasks",
	})

	// Then: totals, rate and the full ranking come back
	assert.Equal(t, http.StatusOK, recorder.Code)

	var report analytics.TaskAnalytics
	testutil.ParseResponse(t, recorder, &report)
	assert.Equal(t, 101, report.TotalTasks)
	assert.Equal(t, 80, report.CompletedTasks)
	assert.Equal(t, 21, report.PendingTasks)
	assert.Equal(t, 79, report.CompletionRate) // round(80/101*100)
	require.Len(t, report.RankedMembers, 5)
	assert.Equal(t, "Michael Chen", report.RankedMembers[0].Name)
	assert.Equal(t, 1, report.RankedMembers[0].Rank)
	assert.Equal(t, 5, report.RankedMembers[4].Rank)
}

func TestRegistrationsEndpoint(t *testing.T) {
	// Given: the seeded roster
	router, db, repo := setupTestEnvironment(t)
	seedRoster(t, db, repo)

	// When: fetching the registration report
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/analytics/registrations",
	})

	// Then: totals, tiering and the monthly series match
	assert.Equal(t, http.StatusOK, recorder.Code)

	var report analytics.RegistrationAnalytics
	testutil.ParseResponse(t, recorder, &report)
	assert.Equal(t, 63, report.TotalRegistrations)
	assert.Equal(t, 13, report.AvgRegistrationsPerMember)
	require.NotNil(t, report.TopPerformer)
	assert.Equal(t, "Michael Chen", report.TopPerformer.Name)
	assert.Equal(t, 18, report.TopPerformer.RegistrationsBrought)

	require.Len(t, report.RegistrationTiers, 5)
	assert.Equal(t, "Platinum", report.RegistrationTiers[0].Tier) // 18
	assert.Equal(t, "Platinum", report.RegistrationTiers[1].Tier) // 15
	assert.Equal(t, "Gold", report.RegistrationTiers[2].Tier)     // 12
	assert.Equal(t, "Silver", report.RegistrationTiers[3].Tier)   // 10
	assert.Equal(t, "Silver", report.RegistrationTiers[4].Tier)   // 8

	require.Len(t, report.MonthlyData, 3)
	assert.Equal(t, 63, report.MonthlyData[2].Registrations) // live "Mar" point
}
