package member_test

import (
	"context"
	"testing"

	"github.com/festivio/committee-dashboard/go-api-server/internal/member"
	"github.com/festivio/committee-dashboard/go-api-server/internal/model"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_PopulatesEmptyStore(t *testing.T) {
	// Given: an empty database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// When: seeding
	require.NoError(t, member.Seed(context.Background(), db))

	// Then: the demo roster is present with consistent derived totals
	var members []model.CommitteeMember
	require.NoError(t, db.Find(&members).Error)
	require.Len(t, members, 5)
	for _, m := range members {
		assert.Equal(t, m.TasksCompleted+m.TasksPending, m.TotalTasks, "member %s", m.Name)
		assert.NotEmpty(t, m.PerformanceHistory, "member %s", m.Name)
	}
}

func TestSeed_LeavesNonEmptyStoreUntouched(t *testing.T) {
	// Given: a database that already has a member
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	existing := model.NewCommitteeMember("Only Member", "Chair", "chair@example.com", "", 1, 1, 50, 0, nil)
	require.NoError(t, db.Create(existing).Error)

	// When: seeding twice
	require.NoError(t, member.Seed(context.Background(), db))
	require.NoError(t, member.Seed(context.Background(), db))

	// Then: nothing was added
	var count int64
	require.NoError(t, db.Model(&model.CommitteeMember{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
