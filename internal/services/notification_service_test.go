package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	userID := uuid.New()

	first, err := svc.Create(userID, "Order placed", "Your order is on its way")
	require.NoError(t, err)
	_, err = svc.Create(userID, "Sale", "Everything 20% off")
	require.NoError(t, err)

	count, err := svc.UnseenCount(userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	list, err := svc.List(userID, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	limited, err := svc.List(userID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	// Owner scoping on single-row updates.
	assert.ErrorIs(t, svc.MarkSeen(uuid.New(), first.ID), ErrNotificationNotFound)

	require.NoError(t, svc.MarkSeen(userID, first.ID))
	count, err = svc.UnseenCount(userID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.MarkAllSeen(userID))
	count, err = svc.UnseenCount(userID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	assert.ErrorIs(t, svc.Delete(uuid.New(), first.ID), ErrNotificationNotFound)
	require.NoError(t, svc.Delete(userID, first.ID))

	list, err = svc.List(userID, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
