package notifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alanyang/sprintboard/internal/domain/event"
	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	"github.com/alanyang/sprintboard/internal/mocks"
	"github.com/alanyang/sprintboard/internal/service/notifier"
)

func newNotifier(t *testing.T) (*notifier.Service, *mocks.MockNotificationRepository, *mocks.MockEventBus) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepository(ctrl)
	bus := mocks.NewMockEventBus(ctrl)
	return notifier.NewService(repo, bus), repo, bus
}

func TestNotifyFanOut(t *testing.T) {
	svc, repo, bus := newNotifier(t)
	actorID := uuid.New()
	r1, r2 := uuid.New(), uuid.New()

	var stored []uuid.UUID
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domainnotification.Notification) (domainnotification.Notification, error) {
			stored = append(stored, n.RecipientID)
			assert.Equal(t, domainnotification.TypeTaskAssigned, n.Type)
			require.NotNil(t, n.SenderID)
			assert.Equal(t, actorID, *n.SenderID)
			return n, nil
		}).Times(2)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.Event) error {
			assert.Equal(t, event.TypeNotificationSent, e.Type)
			return nil
		}).Times(2)

	err := svc.Notify(context.Background(), []uuid.UUID{r1, r2}, actorID,
		domainnotification.TypeTaskAssigned, "you are up", domainnotification.Ref{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{r1, r2}, stored)
}

func TestNotifyExcludesActor(t *testing.T) {
	svc, repo, bus := newNotifier(t)
	actorID := uuid.New()
	other := uuid.New()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domainnotification.Notification) (domainnotification.Notification, error) {
			assert.Equal(t, other, n.RecipientID)
			return n, nil
		})
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Notify(context.Background(), []uuid.UUID{actorID, other}, actorID,
		domainnotification.TypeCommentAdded, "new comment", domainnotification.Ref{})
	require.NoError(t, err)
}

func TestNotifyDeduplicatesRecipients(t *testing.T) {
	svc, repo, bus := newNotifier(t)
	recipient := uuid.New()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domainnotification.Notification) (domainnotification.Notification, error) {
			return n, nil
		}).Times(1)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Notify(context.Background(), []uuid.UUID{recipient, recipient, recipient}, uuid.New(),
		domainnotification.TypeSprintStarted, "sprint started", domainnotification.Ref{})
	require.NoError(t, err)
}

func TestNotifyPartialFailureContinues(t *testing.T) {
	svc, repo, bus := newNotifier(t)
	r1, r2 := uuid.New(), uuid.New()
	dbErr := errors.New("insert failed")

	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domainnotification.Notification{}, dbErr),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n domainnotification.Notification) (domainnotification.Notification, error) {
				assert.Equal(t, r2, n.RecipientID)
				return n, nil
			}),
	)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Notify(context.Background(), []uuid.UUID{r1, r2}, uuid.New(),
		domainnotification.TypeTestingCompleted, "testing done", domainnotification.Ref{})
	require.ErrorIs(t, err, dbErr)
}

func TestNotifyNoRecipients(t *testing.T) {
	svc, _, _ := newNotifier(t)

	err := svc.Notify(context.Background(), nil, uuid.New(),
		domainnotification.TypeTaskCompleted, "done", domainnotification.Ref{})
	require.NoError(t, err)
}
