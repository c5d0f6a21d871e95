//go:build integration

package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgproject "github.com/alanyang/sprintboard/internal/adapter/postgres/project"
	pgsprint "github.com/alanyang/sprintboard/internal/adapter/postgres/sprint"
	pgtask "github.com/alanyang/sprintboard/internal/adapter/postgres/task"
	pguser "github.com/alanyang/sprintboard/internal/adapter/postgres/user"
	domainproject "github.com/alanyang/sprintboard/internal/domain/project"
	domainsprint "github.com/alanyang/sprintboard/internal/domain/sprint"
	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
	"github.com/alanyang/sprintboard/internal/testutil"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func makeUser(t *testing.T, ctx context.Context, r *pguser.Repository, role domainuser.Role) domainuser.User {
	t.Helper()
	name := "u-" + uuid.New().String()[:8]
	u, err := r.Create(ctx, domainuser.New(name, name+"@example.com", role))
	require.NoError(t, err)
	return u
}

func makeProject(t *testing.T, ctx context.Context, r *pgproject.Repository, createdBy uuid.UUID) domainproject.Project {
	t.Helper()
	key := "T" + uuid.New().String()[:7]
	p, err := r.Create(ctx, domainproject.New(key, "proj "+key, "", createdBy))
	require.NoError(t, err)
	return p
}

func makeTask(t *testing.T, ctx context.Context, r *pgtask.Repository, projID, reporterID uuid.UUID) domaintask.Task {
	t.Helper()
	task, err := r.Create(ctx, domaintask.New(projID, domaintask.TypeTask, "t-"+uuid.New().String()[:8], "", domaintask.PriorityMedium, reporterID))
	require.NoError(t, err)
	return task
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestTaskRepo_CreateGetList(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	userRepo := pguser.New(pool)
	projRepo := pgproject.New(pool)
	taskRepo := pgtask.New(pool)

	lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
	proj := makeProject(t, ctx, projRepo, lead.ID)

	task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)
	assert.Equal(t, domaintask.StatusTodo, task.Status)
	assert.Equal(t, domaintask.CodeReviewPending, task.CodeReviewStatus)

	got, err := taskRepo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	list, err := taskRepo.List(ctx, domaintask.ListFilters{ProjectID: &proj.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	status := domaintask.StatusDone
	list, err = taskRepo.List(ctx, domaintask.ListFilters{ProjectID: &proj.ID, Status: &status})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	taskRepo := pgtask.New(pool)

	_, err := taskRepo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domaintask.ErrNotFound)
}

func TestTaskRepo_UpdateStatus(t *testing.T) {
	t.Run("CAS succeeds on matching from-status and stamps started_at", func(t *testing.T) {
		pool := testutil.SetupTestDB(t)
		ctx := context.Background()
		userRepo := pguser.New(pool)
		projRepo := pgproject.New(pool)
		taskRepo := pgtask.New(pool)
		lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
		proj := makeProject(t, ctx, projRepo, lead.ID)
		task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

		require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusTodo, domaintask.StatusInProgress))

		got, err := taskRepo.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domaintask.StatusInProgress, got.Status)
		require.NotNil(t, got.StartedAt)
		first := *got.StartedAt

		// Leaving and re-entering in_progress keeps the original started_at.
		require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusInProgress, domaintask.StatusBlocked))
		require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusBlocked, domaintask.StatusInProgress))
		got, err = taskRepo.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, first, *got.StartedAt)
	})

	t.Run("CAS fails when current status does not match from", func(t *testing.T) {
		pool := testutil.SetupTestDB(t)
		ctx := context.Background()
		userRepo := pguser.New(pool)
		projRepo := pgproject.New(pool)
		taskRepo := pgtask.New(pool)
		lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
		proj := makeProject(t, ctx, projRepo, lead.ID)
		task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

		require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusTodo, domaintask.StatusInProgress))

		err := taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusTodo, domaintask.StatusInProgress)
		require.ErrorIs(t, err, domaintask.ErrStatusConflict)
	})

	t.Run("entering done stamps completed_at", func(t *testing.T) {
		pool := testutil.SetupTestDB(t)
		ctx := context.Background()
		userRepo := pguser.New(pool)
		projRepo := pgproject.New(pool)
		taskRepo := pgtask.New(pool)
		lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
		proj := makeProject(t, ctx, projRepo, lead.ID)
		task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

		for _, tr := range [][2]domaintask.Status{
			{domaintask.StatusTodo, domaintask.StatusInProgress},
			{domaintask.StatusInProgress, domaintask.StatusSubmitted},
			{domaintask.StatusSubmitted, domaintask.StatusCodeReview},
			{domaintask.StatusCodeReview, domaintask.StatusTesting},
			{domaintask.StatusTesting, domaintask.StatusDone},
		} {
			require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, tr[0], tr[1]))
		}

		got, err := taskRepo.GetByID(ctx, task.ID)
		require.NoError(t, err)
		require.NotNil(t, got.CompletedAt)
	})
}

func TestTaskRepo_ReviewGates(t *testing.T) {
	t.Run("full review round trip re-arms the testing gate", func(t *testing.T) {
		pool := testutil.SetupTestDB(t)
		ctx := context.Background()
		userRepo := pguser.New(pool)
		projRepo := pgproject.New(pool)
		taskRepo := pgtask.New(pool)
		lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
		reviewer := makeUser(t, ctx, userRepo, domainuser.RoleReviewer)
		tester := makeUser(t, ctx, userRepo, domainuser.RoleTester)
		proj := makeProject(t, ctx, projRepo, lead.ID)
		task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

		require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusTodo, domaintask.StatusInProgress))
		require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusInProgress, domaintask.StatusSubmitted))
		require.NoError(t, taskRepo.OpenCodeReview(ctx, task.ID, reviewer.ID, domaintask.StatusSubmitted))

		got, err := taskRepo.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domaintask.StatusCodeReview, got.Status)
		assert.Equal(t, domaintask.CodeReviewInReview, got.CodeReviewStatus)
		require.NotNil(t, got.CodeReviewerID)
		assert.Equal(t, reviewer.ID, *got.CodeReviewerID)

		now := time.Now().UTC()
		require.NoError(t, taskRepo.SetCodeReviewOutcome(ctx, task.ID,
			domaintask.CodeReviewApproved, "lgtm", domaintask.StatusTesting, now))
		require.NoError(t, taskRepo.SetTester(ctx, task.ID, tester.ID))
		require.NoError(t, taskRepo.SetTestingOutcome(ctx, task.ID,
			domaintask.TestingFailed, "flaky login flow", domaintask.StatusInProgress, now))

		got, err = taskRepo.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domaintask.StatusInProgress, got.Status)
		assert.Equal(t, domaintask.TestingFailed, got.TestingStatus)

		// Second round: approval must hand the task over with a fresh testing
		// gate, not last round's failed verdict.
		require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusInProgress, domaintask.StatusSubmitted))
		require.NoError(t, taskRepo.OpenCodeReview(ctx, task.ID, reviewer.ID, domaintask.StatusSubmitted))
		require.NoError(t, taskRepo.SetCodeReviewOutcome(ctx, task.ID,
			domaintask.CodeReviewApproved, "second pass lgtm", domaintask.StatusTesting, time.Now().UTC()))

		got, err = taskRepo.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domaintask.StatusTesting, got.Status)
		assert.Equal(t, domaintask.TestingPending, got.TestingStatus)
		assert.Nil(t, got.TesterID)
	})

	t.Run("gate updates refuse tasks outside the guarded status", func(t *testing.T) {
		pool := testutil.SetupTestDB(t)
		ctx := context.Background()
		userRepo := pguser.New(pool)
		projRepo := pgproject.New(pool)
		taskRepo := pgtask.New(pool)
		lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
		reviewer := makeUser(t, ctx, userRepo, domainuser.RoleReviewer)
		proj := makeProject(t, ctx, projRepo, lead.ID)
		task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

		err := taskRepo.OpenCodeReview(ctx, task.ID, reviewer.ID, domaintask.StatusSubmitted)
		require.ErrorIs(t, err, domaintask.ErrStatusConflict)

		err = taskRepo.SetCodeReviewOutcome(ctx, task.ID,
			domaintask.CodeReviewApproved, "", domaintask.StatusTesting, time.Now().UTC())
		require.ErrorIs(t, err, domaintask.ErrStatusConflict)

		err = taskRepo.SetTestingOutcome(ctx, task.ID,
			domaintask.TestingPassed, "", domaintask.StatusDone, time.Now().UTC())
		require.ErrorIs(t, err, domaintask.ErrStatusConflict)
	})

	t.Run("passing testing routes to done and stamps completed_at", func(t *testing.T) {
		pool := testutil.SetupTestDB(t)
		ctx := context.Background()
		userRepo := pguser.New(pool)
		projRepo := pgproject.New(pool)
		taskRepo := pgtask.New(pool)
		lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
		reviewer := makeUser(t, ctx, userRepo, domainuser.RoleReviewer)
		tester := makeUser(t, ctx, userRepo, domainuser.RoleTester)
		proj := makeProject(t, ctx, projRepo, lead.ID)
		task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

		require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusTodo, domaintask.StatusInProgress))
		require.NoError(t, taskRepo.UpdateStatus(ctx, task.ID, domaintask.StatusInProgress, domaintask.StatusSubmitted))
		require.NoError(t, taskRepo.OpenCodeReview(ctx, task.ID, reviewer.ID, domaintask.StatusSubmitted))
		require.NoError(t, taskRepo.SetCodeReviewOutcome(ctx, task.ID,
			domaintask.CodeReviewApproved, "lgtm", domaintask.StatusTesting, time.Now().UTC()))
		require.NoError(t, taskRepo.SetTester(ctx, task.ID, tester.ID))
		require.NoError(t, taskRepo.SetTestingOutcome(ctx, task.ID,
			domaintask.TestingPassed, "all green", domaintask.StatusDone, time.Now().UTC()))

		got, err := taskRepo.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domaintask.StatusDone, got.Status)
		assert.Equal(t, domaintask.TestingPassed, got.TestingStatus)
		require.NotNil(t, got.CompletedAt)
	})
}

func TestTaskRepo_Dependencies(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	userRepo := pguser.New(pool)
	projRepo := pgproject.New(pool)
	taskRepo := pgtask.New(pool)
	lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
	proj := makeProject(t, ctx, projRepo, lead.ID)

	task1 := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)
	task2 := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

	dep := domaintask.Dependency{
		TaskID:      task1.ID,
		DependsOnID: task2.ID,
		Type:        domaintask.DepFinishToStart,
		CreatedAt:   task1.CreatedAt,
	}
	require.NoError(t, taskRepo.AddDependency(ctx, dep))
	// Duplicate edge is a no-op, not an error.
	require.NoError(t, taskRepo.AddDependency(ctx, dep))

	ids, err := taskRepo.DependencyIDs(ctx, task1.ID)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, task2.ID, ids[0])

	deps, err := taskRepo.GetDependencies(ctx, task1.ID)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, task2.ID, deps[0].ID)

	n, err := taskRepo.CountDependencies(ctx, task1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, taskRepo.RemoveDependency(ctx, task1.ID, task2.ID))
	deps, err = taskRepo.GetDependencies(ctx, task1.ID)
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestTaskRepo_Counts(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	userRepo := pguser.New(pool)
	projRepo := pgproject.New(pool)
	taskRepo := pgtask.New(pool)
	lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
	proj := makeProject(t, ctx, projRepo, lead.ID)

	done := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)
	for _, tr := range [][2]domaintask.Status{
		{domaintask.StatusTodo, domaintask.StatusInProgress},
		{domaintask.StatusInProgress, domaintask.StatusSubmitted},
		{domaintask.StatusSubmitted, domaintask.StatusCodeReview},
		{domaintask.StatusCodeReview, domaintask.StatusTesting},
		{domaintask.StatusTesting, domaintask.StatusDone},
	} {
		require.NoError(t, taskRepo.UpdateStatus(ctx, done.ID, tr[0], tr[1]))
	}
	makeTask(t, ctx, taskRepo, proj.ID, lead.ID)
	makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

	total, doneCount, err := taskRepo.CountByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, doneCount)

	counts, err := taskRepo.StatusCounts(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domaintask.StatusTodo])
	assert.Equal(t, 1, counts[domaintask.StatusDone])
}

func TestTaskRepo_AddActualHours(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	userRepo := pguser.New(pool)
	projRepo := pgproject.New(pool)
	taskRepo := pgtask.New(pool)
	lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
	proj := makeProject(t, ctx, projRepo, lead.ID)
	task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

	require.NoError(t, taskRepo.AddActualHours(ctx, task.ID, 2.5))
	require.NoError(t, taskRepo.AddActualHours(ctx, task.ID, 1.5))

	got, err := taskRepo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.ActualHours, 0.001)
}

func TestTaskRepo_SprintDeleteDetachesTasks(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	userRepo := pguser.New(pool)
	projRepo := pgproject.New(pool)
	sprintRepo := pgsprint.New(pool)
	taskRepo := pgtask.New(pool)
	lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
	proj := makeProject(t, ctx, projRepo, lead.ID)

	sprint, err := sprintRepo.Create(ctx, domainsprint.New(proj.ID, "s1", "", &lead.ID, 40, lead.ID))
	require.NoError(t, err)

	task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)
	task.SprintID = &sprint.ID
	require.NoError(t, taskRepo.Update(ctx, task))

	require.NoError(t, sprintRepo.Delete(ctx, sprint.ID))

	got, err := taskRepo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SprintID, "task must survive its sprint with sprint_id cleared")
}

func TestTaskRepo_ProjectDeleteCascades(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	userRepo := pguser.New(pool)
	projRepo := pgproject.New(pool)
	taskRepo := pgtask.New(pool)
	lead := makeUser(t, ctx, userRepo, domainuser.RoleTeamLead)
	proj := makeProject(t, ctx, projRepo, lead.ID)
	task := makeTask(t, ctx, taskRepo, proj.ID, lead.ID)

	require.NoError(t, projRepo.Delete(ctx, proj.ID))

	_, err := taskRepo.GetByID(ctx, task.ID)
	require.ErrorIs(t, err, domaintask.ErrNotFound)
}
