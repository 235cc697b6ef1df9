package member_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/festivio/committee-dashboard/go-api-server/internal/member"
	"github.com/festivio/committee-dashboard/go-api-server/internal/model"
	sharedError "github.com/festivio/committee-dashboard/go-api-server/internal/shared/error"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for member handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB, member.Repository) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	memberService := member.NewMemberService(db, memberRepo)
	memberHandler := member.NewMemberHandler(memberService)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/members", memberHandler.List)
	router.POST("/api/v1/members", memberHandler.Create)
	router.GET("/api/v1/members/:id", memberHandler.Get)
	router.PUT("/api/v1/members/:id", memberHandler.Update)
	router.DELETE("/api/v1/members/:id", memberHandler.Delete)

	return router, db, memberRepo
}

func insertMember(t *testing.T, db *gorm.DB, repo member.Repository, m *model.CommitteeMember) {
	t.Helper()
	m.ComputeTotalTasks()
	require.NoError(t, repo.Insert(context.Background(), db, m))
}

func TestCreateMember_Success(t *testing.T) {
	// Given: Setup test environment
	router, _, _ := setupTestEnvironment(t)

	// Given: Valid create request
	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body: member.CreateMemberRequest{
			Name:                 "Sarah Johnson",
			Role:                 "Team Lead",
			Contact:              "sarah.johnson@email.com",
			Phone:                "+1 (555) 123-4567",
			TasksCompleted:       15,
			TasksPending:         3,
			Efficiency:           85,
			RegistrationsBrought: 12,
			PerformanceHistory: []member.PerformanceEntryInput{
				{Month: "Jan", Score: 78},
				{Month: "Feb", Score: 82},
			},
		},
	}

	// When: Execute create request
	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: Verify response carries the generated id and derived total
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var created model.CommitteeMember
	testutil.ParseResponse(t, recorder, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Sarah Johnson", created.Name)
	assert.Equal(t, 18, created.TotalTasks) // 15 completed + 3 pending
	assert.Len(t, created.PerformanceHistory, 2)
}

func TestCreateMember_ValidationErrors(t *testing.T) {
	// Given: Setup test environment
	router, _, _ := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		requestBody map[string]interface{}
		description string
	}{
		{
			name: "Missing name",
			requestBody: map[string]interface{}{
				"role":    "Team Lead",
				"contact": "test@example.com",
			},
			description: "Should fail when name is missing",
		},
		{
			name: "Name over 100 characters",
			requestBody: map[string]interface{}{
				"name":    strings.Repeat("x", 101),
				"role":    "Team Lead",
				"contact": "test@example.com",
			},
			description: "Should fail when name exceeds the limit",
		},
		{
			name: "Invalid contact email",
			requestBody: map[string]interface{}{
				"name":    "Test Member",
				"role":    "Team Lead",
				"contact": "not-an-email",
			},
			description: "Should fail when contact is not an email",
		},
		{
			name: "Efficiency over 100",
			requestBody: map[string]interface{}{
				"name":       "Test Member",
				"role":       "Team Lead",
				"contact":    "test@example.com",
				"efficiency": 101,
			},
			description: "Should fail when efficiency is out of range",
		},
		{
			name: "Negative tasksCompleted",
			requestBody: map[string]interface{}{
				"name":           "Test Member",
				"role":           "Team Lead",
				"contact":        "test@example.com",
				"tasksCompleted": -1,
			},
			description: "Should fail when a count is negative",
		},
		{
			name: "Unknown performance month label",
			requestBody: map[string]interface{}{
				"name":    "Test Member",
				"role":    "Team Lead",
				"contact": "test@example.com",
				"performanceHistory": []map[string]interface{}{
					{"month": "January", "score": 80},
				},
			},
			description: "Should fail when a month label is not an abbreviation",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When: Execute request with the invalid payload
			request := testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/members",
				Body:   tc.requestBody,
			}

			recorder := testutil.ExecuteRequest(t, router, request)

			// Then: Verify validation error
			assert.Equal(t, http.StatusBadRequest, recorder.Code, tc.description)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Message, tc.description)
			assert.Equal(t, "ERROR-001", errorResponse.Code, tc.description)
		})
	}
}

func TestGetMember_NotFound(t *testing.T) {
	// Given: Setup test environment with no data
	router, _, _ := setupTestEnvironment(t)

	// When: Fetch an unknown id
	request := testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/does-not-exist",
	}
	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: Verify 404 with the member error code
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestUpdateMember_EfficiencyOnlyLeavesTasksUntouched(t *testing.T) {
	// Given: A stored member with known counters and an old timestamp
	router, db, repo := setupTestEnvironment(t)

	staleTime := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	existing := &model.CommitteeMember{
		ID:             "member-1",
		Name:           "Emily Rodriguez",
		Role:           "Event Coordinator",
		Contact:        "emily.rodriguez@email.com",
		TasksCompleted: 11,
		TasksPending:   7,
		Efficiency:     72,
	}
	existing.CreatedAt = staleTime
	existing.UpdatedAt = staleTime
	insertMember(t, db, repo, existing)

	// When: Update only the efficiency
	efficiency := 80
	request := testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/member-1",
		Body:   member.UpdateMemberRequest{Efficiency: &efficiency},
	}
	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: Task counters and the derived total are unchanged, efficiency
	// is applied, and updatedAt moved forward
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated model.CommitteeMember
	testutil.ParseResponse(t, recorder, &updated)
	assert.Equal(t, 80, updated.Efficiency)
	assert.Equal(t, 11, updated.TasksCompleted)
	assert.Equal(t, 7, updated.TasksPending)
	assert.Equal(t, 18, updated.TotalTasks)
	assert.True(t, updated.UpdatedAt.After(staleTime))
}

func TestUpdateMember_RecomputesTotalTasks(t *testing.T) {
	// Given: A stored member
	router, db, repo := setupTestEnvironment(t)

	existing := &model.CommitteeMember{
		ID:             "member-2",
		Name:           "David Kim",
		Role:           "Outreach Specialist",
		Contact:        "david.kim@email.com",
		TasksCompleted: 19,
		TasksPending:   2,
	}
	insertMember(t, db, repo, existing)

	// When: Update only tasksPending
	pending := 6
	request := testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/member-2",
		Body:   member.UpdateMemberRequest{TasksPending: &pending},
	}
	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: The derived total uses the new pending value and the stored
	// completed value
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated model.CommitteeMember
	testutil.ParseResponse(t, recorder, &updated)
	assert.Equal(t, 19, updated.TasksCompleted)
	assert.Equal(t, 6, updated.TasksPending)
	assert.Equal(t, 25, updated.TotalTasks)
}

func TestUpdateMember_NotFound(t *testing.T) {
	// Given: Setup test environment with no data
	router, _, _ := setupTestEnvironment(t)

	// When: Update an unknown id
	name := "Nobody"
	request := testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/missing",
		Body:   member.UpdateMemberRequest{Name: &name},
	}
	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: 404 before any write is attempted
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestDeleteMember(t *testing.T) {
	// Given: A stored member
	router, db, repo := setupTestEnvironment(t)

	existing := &model.CommitteeMember{
		ID:      "member-3",
		Name:    "Lisa Thompson",
		Role:    "Communications Manager",
		Contact: "lisa.thompson@email.com",
	}
	insertMember(t, db, repo, existing)

	// When: Delete it
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/member-3",
	})

	// Then: 204 and a subsequent fetch is a 404
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/member-3",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteMember_NotFound(t *testing.T) {
	// Given: Setup test environment with no data
	router, _, _ := setupTestEnvironment(t)

	// When: Delete an unknown id
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/missing",
	})

	// Then: 404 with the member error code
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestListMembers_RecomputesDerivedTotals(t *testing.T) {
	// Given: A stored member whose persisted total drifted from its inputs
	router, db, repo := setupTestEnvironment(t)

	existing := &model.CommitteeMember{
		ID:             "member-4",
		Name:           "Michael Chen",
		Role:           "Marketing Coordinator",
		Contact:        "michael.chen@email.com",
		TasksCompleted: 22,
		TasksPending:   5,
	}
	require.NoError(t, repo.Insert(context.Background(), db, existing))

	// Corrupt the stored total directly
	require.NoError(t, db.Model(&model.CommitteeMember{}).
		Where("id = ?", "member-4").
		Update("total_tasks", 999).Error)

	// When: List members
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
	})

	// Then: The derived total is recomputed on read
	assert.Equal(t, http.StatusOK, recorder.Code)

	var members []model.CommitteeMember
	testutil.ParseResponse(t, recorder, &members)
	require.Len(t, members, 1)
	assert.Equal(t, 27, members[0].TotalTasks)
}
