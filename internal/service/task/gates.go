package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alanyang/sprintboard/internal/domain/activity"
	"github.com/alanyang/sprintboard/internal/domain/event"
	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	domainreview "github.com/alanyang/sprintboard/internal/domain/review"
	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
)

// AssignReviewer opens the code-review gate on a submitted task: the task
// moves to code_review, the gate to in_review, and a review record is opened.
func (s *Service) AssignReviewer(ctx context.Context, taskID, reviewerID, actorID uuid.UUID) (domaintask.Task, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapAssignReviewers) {
		return domaintask.Task{}, fmt.Errorf("assign reviewer: %w", domainuser.ErrPermissionDenied)
	}
	t, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get task: %w", err)
	}
	if _, err := s.users.GetByID(ctx, reviewerID); err != nil {
		return domaintask.Task{}, fmt.Errorf("get reviewer: %w", err)
	}
	if !t.Status.CanTransitionTo(domaintask.StatusCodeReview) {
		return domaintask.Task{}, fmt.Errorf("assign reviewer: task %s is %s: %w", taskID, t.Status, domaintask.ErrInvalidTransition)
	}

	if err := s.repo.OpenCodeReview(ctx, taskID, reviewerID, t.Status); err != nil {
		return domaintask.Task{}, fmt.Errorf("open code review: %w", err)
	}

	submittedBy := t.ReporterID
	if t.AssigneeID != nil {
		submittedBy = *t.AssigneeID
	}
	if _, err := s.reviews.Create(ctx, domainreview.New(taskID, submittedBy, reviewerID)); err != nil {
		return domaintask.Task{}, fmt.Errorf("open review record: %w", err)
	}

	s.logActivity(ctx, taskID, actorID, activity.ActionAssigned, "code_reviewer", "", reviewerID.String())
	s.notifier.Notify(ctx, []uuid.UUID{reviewerID}, actorID, //nolint:errcheck
		domainnotification.TypeCodeReviewAssigned,
		fmt.Sprintf("You have been assigned to review task %q", t.Title),
		domainnotification.Ref{TaskID: &t.ID})
	s.bus.Publish(ctx, event.New(event.TypeReviewAssigned, taskID)) //nolint:errcheck

	updated, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("fetch task after reviewer assignment: %w", err)
	}
	return updated, nil
}

// CompleteCodeReview closes the code-review gate. Approval routes the task to
// testing with a fresh (pending) testing gate; rejection sends it back to
// in_progress. Only the assigned reviewer may complete the review.
func (s *Service) CompleteCodeReview(ctx context.Context, taskID uuid.UUID, approved bool, notes string, actorID uuid.UUID) (domaintask.Task, error) {
	t, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get task: %w", err)
	}
	if t.CodeReviewerID == nil || *t.CodeReviewerID != actorID {
		return domaintask.Task{}, fmt.Errorf("complete code review: %w", domaintask.ErrNotReviewer)
	}
	if t.Status != domaintask.StatusCodeReview {
		return domaintask.Task{}, fmt.Errorf("complete code review: task %s is %s: %w", taskID, t.Status, domaintask.ErrInvalidTransition)
	}

	now := time.Now().UTC()
	outcome := domaintask.CodeReviewRejected
	reviewOutcome := domainreview.StatusRejected
	next := domaintask.StatusInProgress
	if approved {
		outcome = domaintask.CodeReviewApproved
		reviewOutcome = domainreview.StatusApproved
		next = domaintask.StatusTesting
	}

	if err := s.repo.SetCodeReviewOutcome(ctx, taskID, outcome, notes, next, now); err != nil {
		return domaintask.Task{}, fmt.Errorf("record code review outcome: %w", err)
	}
	if err := s.reviews.CompleteLatest(ctx, taskID, reviewOutcome, notes, now); err != nil {
		return domaintask.Task{}, fmt.Errorf("close review record: %w", err)
	}

	s.logActivity(ctx, taskID, actorID, activity.ActionReviewed, "code_review_status",
		string(domaintask.CodeReviewInReview), string(outcome))

	recipients, err := s.users.IDsByRoles(ctx, domainuser.RoleAdmin, domainuser.RoleTeamLead)
	if err != nil {
		recipients = nil // fan-out stays best-effort
	}
	if t.AssigneeID != nil {
		recipients = append(recipients, *t.AssigneeID)
	}
	verdict := "rejected"
	if approved {
		verdict = "approved"
	}
	s.notifier.Notify(ctx, recipients, actorID, //nolint:errcheck
		domainnotification.TypeCodeReviewCompleted,
		fmt.Sprintf("Code review for task %q was %s", t.Title, verdict),
		domainnotification.Ref{TaskID: &t.ID})
	s.bus.Publish(ctx, event.New(event.TypeReviewCompleted, taskID)) //nolint:errcheck
	s.bus.Publish(ctx, event.New(event.TypeTaskUpdated, taskID))    //nolint:errcheck

	updated, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("fetch task after code review: %w", err)
	}
	return updated, nil
}

// AssignTester opens the testing gate. Testing may not begin until the
// code-review gate is approved.
func (s *Service) AssignTester(ctx context.Context, taskID, testerID, actorID uuid.UUID) (domaintask.Task, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get actor: %w", err)
	}
	if !actor.Role.Can(domainuser.CapAssignReviewers) {
		return domaintask.Task{}, fmt.Errorf("assign tester: %w", domainuser.ErrPermissionDenied)
	}
	t, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get task: %w", err)
	}
	if _, err := s.users.GetByID(ctx, testerID); err != nil {
		return domaintask.Task{}, fmt.Errorf("get tester: %w", err)
	}
	if t.CodeReviewStatus != domaintask.CodeReviewApproved {
		return domaintask.Task{}, fmt.Errorf("assign tester: %w", domaintask.ErrReviewGateClosed)
	}
	if t.Status != domaintask.StatusTesting {
		return domaintask.Task{}, fmt.Errorf("assign tester: task %s is %s: %w", taskID, t.Status, domaintask.ErrInvalidTransition)
	}

	if err := s.repo.SetTester(ctx, taskID, testerID); err != nil {
		return domaintask.Task{}, fmt.Errorf("set tester: %w", err)
	}

	s.logActivity(ctx, taskID, actorID, activity.ActionAssigned, "tester", "", testerID.String())
	s.notifier.Notify(ctx, []uuid.UUID{testerID}, actorID, //nolint:errcheck
		domainnotification.TypeTestingAssigned,
		fmt.Sprintf("You have been assigned to test task %q", t.Title),
		domainnotification.Ref{TaskID: &t.ID})
	s.bus.Publish(ctx, event.New(event.TypeTestingAssigned, taskID)) //nolint:errcheck

	updated, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("fetch task after tester assignment: %w", err)
	}
	return updated, nil
}

// CompleteTesting closes the testing gate. A pass moves the task to done
// (completing it, with the usual completion side effects); a failure returns
// it to in_progress. Only the assigned tester may complete testing.
func (s *Service) CompleteTesting(ctx context.Context, taskID uuid.UUID, passed bool, notes string, actorID uuid.UUID) (domaintask.Task, error) {
	t, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get task: %w", err)
	}
	if t.TesterID == nil || *t.TesterID != actorID {
		return domaintask.Task{}, fmt.Errorf("complete testing: %w", domaintask.ErrNotTester)
	}
	if t.Status != domaintask.StatusTesting || t.TestingStatus != domaintask.TestingInTesting {
		return domaintask.Task{}, fmt.Errorf("complete testing: task %s is %s/%s: %w",
			taskID, t.Status, t.TestingStatus, domaintask.ErrInvalidTransition)
	}

	now := time.Now().UTC()
	outcome := domaintask.TestingFailed
	next := domaintask.StatusInProgress
	if passed {
		outcome = domaintask.TestingPassed
		next = domaintask.StatusDone
	}

	if err := s.repo.SetTestingOutcome(ctx, taskID, outcome, notes, next, now); err != nil {
		return domaintask.Task{}, fmt.Errorf("record testing outcome: %w", err)
	}

	s.logActivity(ctx, taskID, actorID, activity.ActionReviewed, "testing_status",
		string(domaintask.TestingInTesting), string(outcome))
	s.refreshProgress(ctx, t.ProjectID)

	verdict := "failed"
	if passed {
		verdict = "passed"
	}
	recipients, err := s.users.IDsByRoles(ctx, domainuser.RoleAdmin, domainuser.RoleTeamLead)
	if err != nil {
		recipients = nil // fan-out stays best-effort
	}
	if t.AssigneeID != nil {
		recipients = append(recipients, *t.AssigneeID)
	}
	s.notifier.Notify(ctx, recipients, actorID, //nolint:errcheck
		domainnotification.TypeTestingCompleted,
		fmt.Sprintf("Testing for task %q %s", t.Title, verdict),
		domainnotification.Ref{TaskID: &t.ID})
	s.bus.Publish(ctx, event.New(event.TypeTestingCompleted, taskID)) //nolint:errcheck
	if passed {
		s.bus.Publish(ctx, event.New(event.TypeTaskCompleted, taskID)) //nolint:errcheck
	}

	updated, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("fetch task after testing: %w", err)
	}
	return updated, nil
}
