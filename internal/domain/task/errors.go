package task

import "errors"

var (
	ErrNotFound           = errors.New("task not found")
	ErrInvalidInput       = errors.New("invalid task input")
	ErrInvalidStatus      = errors.New("unknown status value")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrStatusConflict     = errors.New("task status changed concurrently")
	ErrSelfDependency     = errors.New("a task cannot depend on itself")
	ErrCircularDependency = errors.New("dependency would create a circular reference")
	// ErrReviewGateClosed guards the testing gate: testing may not begin
	// until code review is approved.
	ErrReviewGateClosed  = errors.New("testing requires an approved code review")
	ErrTestingGateClosed = errors.New("completion requires passed testing")
	ErrNotReviewer       = errors.New("actor is not the assigned code reviewer")
	ErrNotTester         = errors.New("actor is not the assigned tester")
)
