package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
)

const taskColumns = `id, project_id, sprint_id, epic_id, parent_id, type, title, description,
	status, priority, assignee_id, reporter_id,
	code_reviewer_id, code_review_status, tester_id, testing_status,
	estimated_hours, actual_hours, labels, due_date,
	created_at, updated_at, started_at, completed_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, t domaintask.Task) (domaintask.Task, error) {
	query := `
		INSERT INTO tasks (id, project_id, sprint_id, epic_id, parent_id, type, title, description,
			status, priority, assignee_id, reporter_id,
			code_reviewer_id, code_review_status, tester_id, testing_status,
			estimated_hours, actual_hours, labels, due_date,
			created_at, updated_at, started_at, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
		RETURNING ` + taskColumns

	var created domaintask.Task
	err := r.pool.QueryRow(ctx, query,
		t.ID, t.ProjectID, t.SprintID, t.EpicID, t.ParentID, t.Type, t.Title, t.Description,
		t.Status, t.Priority, t.AssigneeID, t.ReporterID,
		t.CodeReviewerID, t.CodeReviewStatus, t.TesterID, t.TestingStatus,
		t.EstimatedHours, t.ActualHours, t.Labels, t.DueDate,
		t.CreatedAt, t.UpdatedAt, t.StartedAt, t.CompletedAt,
	).Scan(scanTargets(&created)...)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("inserting task: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domaintask.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var t domaintask.Task
	err := r.pool.QueryRow(ctx, query, id).Scan(scanTargets(&t)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domaintask.Task{}, fmt.Errorf("task %s: %w", id, domaintask.ErrNotFound)
		}
		return domaintask.Task{}, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

func (r *Repository) List(ctx context.Context, filters domaintask.ListFilters) ([]domaintask.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)
		args = append(args, *filters.ProjectID)
		argIdx++
	}
	if filters.SprintID != nil {
		query += fmt.Sprintf(" AND sprint_id = $%d", argIdx)
		args = append(args, *filters.SprintID)
		argIdx++
	}
	if filters.EpicID != nil {
		query += fmt.Sprintf(" AND epic_id = $%d", argIdx)
		args = append(args, *filters.EpicID)
		argIdx++
	}
	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filters.Status))
		argIdx++
	}
	if filters.Priority != nil {
		query += fmt.Sprintf(" AND priority = $%d", argIdx)
		args = append(args, string(*filters.Priority))
		argIdx++
	}
	if filters.AssigneeID != nil {
		query += fmt.Sprintf(" AND assignee_id = $%d", argIdx)
		args = append(args, *filters.AssigneeID)
		argIdx++
	}
	if filters.OverdueOnly {
		query += " AND due_date < NOW() AND status NOT IN ('done','cancelled')"
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *Repository) Update(ctx context.Context, t domaintask.Task) error {
	query := `
		UPDATE tasks SET
			sprint_id = $2, epic_id = $3, parent_id = $4, type = $5, title = $6,
			description = $7, priority = $8, estimated_hours = $9, labels = $10,
			due_date = $11, updated_at = $12
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		t.ID, t.SprintID, t.EpicID, t.ParentID, t.Type, t.Title,
		t.Description, t.Priority, t.EstimatedHours, t.Labels,
		t.DueDate, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", t.ID, domaintask.ErrNotFound)
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domaintask.Status) error {
	now := time.Now().UTC()
	var query string

	switch to {
	case domaintask.StatusInProgress:
		// started_at is stamped once, on first entry.
		query = `UPDATE tasks SET status = $1, updated_at = $2, started_at = COALESCE(started_at, $2) WHERE id = $3 AND status = $4`
	case domaintask.StatusDone:
		query = `UPDATE tasks SET status = $1, updated_at = $2, completed_at = $2 WHERE id = $3 AND status = $4`
	default:
		query = `UPDATE tasks SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	}

	tag, err := r.pool.Exec(ctx, query, string(to), now, id, string(from))
	if err != nil {
		return fmt.Errorf("updating task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: expected status %s: %w", id, from, domaintask.ErrStatusConflict)
	}
	return nil
}

func (r *Repository) Assign(ctx context.Context, taskID, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE tasks SET assignee_id = $1, updated_at = NOW() WHERE id = $2`, userID, taskID)
	if err != nil {
		return fmt.Errorf("assigning task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domaintask.ErrNotFound)
	}
	return nil
}

func (r *Repository) OpenCodeReview(ctx context.Context, taskID, reviewerID uuid.UUID, from domaintask.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks SET status = 'code_review', code_reviewer_id = $1, code_review_status = 'in_review', updated_at = NOW()
		WHERE id = $2 AND status = $3`, reviewerID, taskID, string(from))
	if err != nil {
		return fmt.Errorf("opening code review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: expected status %s: %w", taskID, from, domaintask.ErrStatusConflict)
	}
	return nil
}

func (r *Repository) SetCodeReviewOutcome(ctx context.Context, taskID uuid.UUID, status domaintask.CodeReviewStatus, notes string, next domaintask.Status, completedAt time.Time) error {
	query := `
		UPDATE tasks SET code_review_status = $1, code_review_notes = $2, code_review_completed_at = $3,
			status = $4, updated_at = $3
		WHERE id = $5 AND status = 'code_review'`
	if status == domaintask.CodeReviewApproved {
		// Approval re-arms the testing gate so a re-reviewed task never
		// carries a verdict from an earlier testing round.
		query = `
		UPDATE tasks SET code_review_status = $1, code_review_notes = $2, code_review_completed_at = $3,
			status = $4, updated_at = $3,
			testing_status = 'pending', tester_id = NULL, testing_notes = NULL, testing_completed_at = NULL
		WHERE id = $5 AND status = 'code_review'`
	}

	tag, err := r.pool.Exec(ctx, query, string(status), nilIfEmpty(notes), completedAt, string(next), taskID)
	if err != nil {
		return fmt.Errorf("setting code review outcome: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: expected status code_review: %w", taskID, domaintask.ErrStatusConflict)
	}
	return nil
}

func (r *Repository) SetTester(ctx context.Context, taskID, testerID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks SET tester_id = $1, testing_status = 'in_testing', updated_at = NOW()
		WHERE id = $2`, testerID, taskID)
	if err != nil {
		return fmt.Errorf("setting tester: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domaintask.ErrNotFound)
	}
	return nil
}

func (r *Repository) SetTestingOutcome(ctx context.Context, taskID uuid.UUID, status domaintask.TestingStatus, notes string, next domaintask.Status, completedAt time.Time) error {
	query := `
		UPDATE tasks SET testing_status = $1, testing_notes = $2, testing_completed_at = $3,
			status = $4, updated_at = $3
		WHERE id = $5 AND status = 'testing' AND testing_status = 'in_testing'`
	if next == domaintask.StatusDone {
		query = `
		UPDATE tasks SET testing_status = $1, testing_notes = $2, testing_completed_at = $3,
			status = $4, updated_at = $3, completed_at = $3
		WHERE id = $5 AND status = 'testing' AND testing_status = 'in_testing'`
	}

	tag, err := r.pool.Exec(ctx, query, string(status), nilIfEmpty(notes), completedAt, string(next), taskID)
	if err != nil {
		return fmt.Errorf("setting testing outcome: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: expected open testing gate: %w", taskID, domaintask.ErrStatusConflict)
	}
	return nil
}

func (r *Repository) AddDependency(ctx context.Context, dep domaintask.Dependency) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO task_dependencies (task_id, depends_on_id, type, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING`, dep.TaskID, dep.DependsOnID, string(dep.Type), dep.CreatedAt)
	if err != nil {
		return fmt.Errorf("adding dependency: %w", err)
	}
	return nil
}

func (r *Repository) RemoveDependency(ctx context.Context, taskID, dependsOnID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM task_dependencies WHERE task_id = $1 AND depends_on_id = $2`, taskID, dependsOnID)
	if err != nil {
		return fmt.Errorf("removing dependency: %w", err)
	}
	return nil
}

func (r *Repository) DependencyIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT depends_on_id FROM task_dependencies WHERE task_id = $1`, taskID)
	if err != nil {
		return nil, fmt.Errorf("querying dependency ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning dependency id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependency ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) GetDependencies(ctx context.Context, taskID uuid.UUID) ([]domaintask.Task, error) {
	query := `
		SELECT t.id, t.project_id, t.sprint_id, t.epic_id, t.parent_id, t.type, t.title, t.description,
			t.status, t.priority, t.assignee_id, t.reporter_id,
			t.code_reviewer_id, t.code_review_status, t.tester_id, t.testing_status,
			t.estimated_hours, t.actual_hours, t.labels, t.due_date,
			t.created_at, t.updated_at, t.started_at, t.completed_at
		FROM tasks t
		JOIN task_dependencies td ON td.depends_on_id = t.id
		WHERE td.task_id = $1
		ORDER BY t.created_at`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("getting dependencies: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *Repository) CountDependencies(ctx context.Context, taskID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM task_dependencies WHERE task_id = $1`, taskID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting dependencies: %w", err)
	}
	return n, nil
}

func (r *Repository) CountByProject(ctx context.Context, projectID uuid.UUID) (total, done int, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'done')
		FROM tasks WHERE project_id = $1`, projectID).Scan(&total, &done)
	if err != nil {
		return 0, 0, fmt.Errorf("counting project tasks: %w", err)
	}
	return total, done, nil
}

func (r *Repository) SumEstimatedDoneBySprint(ctx context.Context, sprintID uuid.UUID) (int, error) {
	var sum int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(estimated_hours), 0)
		FROM tasks WHERE sprint_id = $1 AND status = 'done'`, sprintID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("summing sprint estimates: %w", err)
	}
	return sum, nil
}

func (r *Repository) AssigneeIDsBySprint(ctx context.Context, sprintID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT assignee_id FROM tasks
		WHERE sprint_id = $1 AND assignee_id IS NOT NULL`, sprintID)
	if err != nil {
		return nil, fmt.Errorf("querying sprint assignees: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning assignee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignee ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) AddActualHours(ctx context.Context, taskID uuid.UUID, hours float64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks SET actual_hours = actual_hours + $1, updated_at = NOW() WHERE id = $2`, hours, taskID)
	if err != nil {
		return fmt.Errorf("adding actual hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domaintask.ErrNotFound)
	}
	return nil
}

func (r *Repository) StatusCounts(ctx context.Context, projectID uuid.UUID) (map[domaintask.Status]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*) FROM tasks WHERE project_id = $1 GROUP BY status`, projectID)
	if err != nil {
		return nil, fmt.Errorf("counting task statuses: %w", err)
	}
	defer rows.Close()

	counts := make(map[domaintask.Status]int)
	for rows.Next() {
		var status domaintask.Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status counts: %w", err)
	}
	return counts, nil
}

func scanTargets(t *domaintask.Task) []interface{} {
	return []interface{}{
		&t.ID, &t.ProjectID, &t.SprintID, &t.EpicID, &t.ParentID, &t.Type, &t.Title, &t.Description,
		&t.Status, &t.Priority, &t.AssigneeID, &t.ReporterID,
		&t.CodeReviewerID, &t.CodeReviewStatus, &t.TesterID, &t.TestingStatus,
		&t.EstimatedHours, &t.ActualHours, &t.Labels, &t.DueDate,
		&t.CreatedAt, &t.UpdatedAt, &t.StartedAt, &t.CompletedAt,
	}
}

func scanTasks(rows pgx.Rows) ([]domaintask.Task, error) {
	var tasks []domaintask.Task
	for rows.Next() {
		var t domaintask.Task
		if err := rows.Scan(scanTargets(&t)...); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
