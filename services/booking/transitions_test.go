package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "bookify/database/repository/booking"
	"bookify/models"
	"bookify/utils"
)

func TestAccept(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")

	updated, err := env.svc.Accept(ctx, "prov-1", bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	// The confirmation notification is written with the transition and
	// pushed to the customer.
	require.Len(t, env.repo.notifs, 1)
	assert.Equal(t, models.SubtypeConfirmation, env.repo.notifs[0].Subtype)
	assert.Equal(t, "user-1", env.repo.notifs[0].UserID)
	assert.Equal(t, bk.ID, env.repo.notifs[0].RelatedID)
	require.Len(t, env.sink.payloads, 1)
	assert.Equal(t, "user-1", env.sink.payloads[0].RecipientID)
}

func TestAcceptGuards(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")

	_, err := env.svc.Accept(ctx, "prov-2", bk.ID)
	assert.Equal(t, utils.KindForbidden, utils.ErrorKind(err))

	_, err = env.svc.Accept(ctx, "prov-1", "bk-404")
	assert.Equal(t, utils.KindNotFound, utils.ErrorKind(err))
}

func TestRejectThenAccept(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")

	rejected, err := env.svc.Reject(ctx, "prov-1", bk.ID, "fully_booked", "Try another day.")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRejected, rejected.Status)
	assert.Equal(t, "fully_booked", rejected.RejectReason)
	assert.Equal(t, "Try another day.", rejected.RejectMessage)
	assert.Equal(t, []string{models.SubtypeRejection}, env.repo.notifSubtypes())

	// A terminal booking admits no further transitions.
	_, err = env.svc.Accept(ctx, "prov-1", bk.ID)
	assert.Equal(t, utils.KindInvalidState, utils.ErrorKind(err))
	assert.Len(t, env.repo.notifs, 1)
	assert.Len(t, env.sink.payloads, 1)
}

func TestCancelByUserNotifiesProvider(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")

	updated, err := env.svc.Cancel(ctx, "user-1", models.RoleUser, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCanceled, updated.Status)
	require.Len(t, env.repo.notifs, 1)
	assert.Equal(t, models.SubtypeCancellation, env.repo.notifs[0].Subtype)
	assert.Equal(t, "prov-1", env.repo.notifs[0].UserID)
}

func TestCancelByProviderNotifiesUser(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")
	_, err := env.svc.Accept(ctx, "prov-1", bk.ID)
	require.NoError(t, err)

	_, err = env.svc.Cancel(ctx, "prov-1", models.RoleProvider, bk.ID)
	require.NoError(t, err)
	require.Len(t, env.repo.notifs, 2)
	assert.Equal(t, models.SubtypeCancellation, env.repo.notifs[1].Subtype)
	assert.Equal(t, "user-1", env.repo.notifs[1].UserID)
}

func TestCancelTerminal(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")
	_, err := env.svc.Cancel(ctx, "user-1", models.RoleUser, bk.ID)
	require.NoError(t, err)

	_, err = env.svc.Cancel(ctx, "user-1", models.RoleUser, bk.ID)
	assert.Equal(t, utils.KindInvalidState, utils.ErrorKind(err))
}

func TestCompleteByProvider(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")
	_, err := env.svc.Accept(ctx, "prov-1", bk.ID)
	require.NoError(t, err)

	updated, err := env.svc.UpdateStatus(ctx, "prov-1", models.RoleProvider, bk.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, updated.Status)
	assert.True(t, updated.ReviewNeeded)
	assert.Equal(t, []string{models.SubtypeConfirmation, models.SubtypeCompletion}, env.repo.notifSubtypes())
}

func TestCompleteByUserIsSilent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")
	_, err := env.svc.Accept(ctx, "prov-1", bk.ID)
	require.NoError(t, err)

	updated, err := env.svc.UpdateStatus(ctx, "user-1", models.RoleUser, bk.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.True(t, updated.ReviewNeeded)
	// Only the accept notification exists; user-initiated completion
	// emits nothing.
	assert.Equal(t, []string{models.SubtypeConfirmation}, env.repo.notifSubtypes())
	assert.Len(t, env.sink.payloads, 1)
}

func TestCompletePending(t *testing.T) {
	env := newTestEnv()
	bk := env.mustCreate(t, "user-1")

	_, err := env.svc.UpdateStatus(context.Background(), "user-1", models.RoleUser, bk.ID, models.BookingStatusCompleted)
	assert.Equal(t, utils.KindInvalidState, utils.ErrorKind(err))
}

func TestUpdateStatusRoleGuards(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")

	_, err := env.svc.UpdateStatus(ctx, "user-1", models.RoleUser, bk.ID, models.BookingStatusConfirmed)
	assert.Equal(t, utils.KindForbidden, utils.ErrorKind(err))

	_, err = env.svc.UpdateStatus(ctx, "user-1", models.RoleUser, bk.ID, models.BookingStatusRejected)
	assert.Equal(t, utils.KindForbidden, utils.ErrorKind(err))

	_, err = env.svc.UpdateStatus(ctx, "user-1", models.RoleUser, bk.ID, "archived")
	assert.Equal(t, utils.KindValidation, utils.ErrorKind(err))
}

func TestPromoteNoShow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")
	_, err := env.svc.Accept(ctx, "prov-1", bk.ID)
	require.NoError(t, err)

	updated, err := env.svc.PromoteNoShow(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusNoShow, updated.Status)
	assert.Equal(t, []string{models.SubtypeConfirmation, models.SubtypeNoShow}, env.repo.notifSubtypes())

	_, err = env.svc.PromoteNoShow(ctx, bk.ID)
	assert.Equal(t, utils.KindInvalidState, utils.ErrorKind(err))
}

func TestPromoteNoShowPending(t *testing.T) {
	env := newTestEnv()
	bk := env.mustCreate(t, "user-1")

	_, err := env.svc.PromoteNoShow(context.Background(), bk.ID)
	assert.Equal(t, utils.KindInvalidState, utils.ErrorKind(err))
}

func TestLostTransitionRace(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")

	// The status moves between the load and the CAS.
	_, err := env.repo.TransitionTx(ctx, bk.ID, []string{models.BookingStatusPending},
		map[string]interface{}{"status": models.BookingStatusCanceled}, nil)
	require.NoError(t, err)

	_, err = env.repo.TransitionTx(ctx, bk.ID, []string{models.BookingStatusPending},
		map[string]interface{}{"status": models.BookingStatusConfirmed}, nil)
	assert.Equal(t, bookingRepo.ErrStatusChanged, err)
}

func TestPermanentDelete(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	bk := env.mustCreate(t, "user-1")
	_, err := env.svc.Accept(ctx, "prov-1", bk.ID)
	require.NoError(t, err)

	// Not yet completed.
	err = env.svc.PermanentDelete(ctx, "user-1", models.RoleUser, bk.ID)
	assert.Equal(t, utils.KindInvalidState, utils.ErrorKind(err))

	_, err = env.svc.UpdateStatus(ctx, "user-1", models.RoleUser, bk.ID, models.BookingStatusCompleted)
	require.NoError(t, err)

	err = env.svc.PermanentDelete(ctx, "user-2", models.RoleUser, bk.ID)
	assert.Equal(t, utils.KindForbidden, utils.ErrorKind(err))

	require.NoError(t, env.svc.PermanentDelete(ctx, "user-1", models.RoleUser, bk.ID))
	_, err = env.svc.GetByID(ctx, "user-1", models.RoleUser, bk.ID)
	assert.Equal(t, utils.KindNotFound, utils.ErrorKind(err))
}
