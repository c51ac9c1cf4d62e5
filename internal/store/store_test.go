package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-dashboard/internal/types"
)

type brokenBackend struct{}

func (brokenBackend) Load(_ context.Context) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}

func (brokenBackend) Save(_ context.Context, _ []byte) error {
	return errors.New("storage unavailable")
}

func TestNotificationCap(t *testing.T) {

	s := NewStore(NewMemoryBackend())

	for i := 1; i <= 12; i++ {
		s.AddNotification(types.Notification{
			ID:      fmt.Sprintf("n%d", i),
			Type:    types.InfoNotification,
			Message: fmt.Sprintf("message %d", i),
		})
	}

	notifications := s.Notifications()
	assert.Len(t, notifications, 10)
	// Oldest two evicted, order preserved.
	assert.Equal(t, "n3", notifications[0].ID)
	assert.Equal(t, "n12", notifications[9].ID)
}

func TestRemoveNotification(t *testing.T) {

	s := NewStore(NewMemoryBackend())

	s.AddNotification(types.Notification{ID: "n1"})
	s.AddNotification(types.Notification{ID: "n2"})

	s.RemoveNotification("n1")
	notifications := s.Notifications()
	assert.Len(t, notifications, 1)
	assert.Equal(t, "n2", notifications[0].ID)

	// Absent id is a no-op.
	s.RemoveNotification("missing")
	assert.Len(t, s.Notifications(), 1)

	s.ClearNotifications()
	assert.Len(t, s.Notifications(), 0)
}

func TestRestaurantSwitchResetsBaseline(t *testing.T) {

	s := NewStore(NewMemoryBackend())

	s.SetCurrentRestaurant(&types.Restaurant{ID: "r1", Name: "Pizza Place"})
	s.SetLatestOrderID("A1")

	// Same restaurant keeps the baseline.
	s.SetCurrentRestaurant(&types.Restaurant{ID: "r1", Name: "Pizza Place Renamed"})
	assert.Equal(t, "A1", s.LatestOrderID())

	// A different restaurant invalidates it.
	s.SetCurrentRestaurant(&types.Restaurant{ID: "r2", Name: "Burger Place"})
	assert.Equal(t, "", s.LatestOrderID())
}

func TestPersistenceRoundTrip(t *testing.T) {

	backend := NewMemoryBackend()

	s := NewStore(backend)
	s.SetCurrentUser(&types.User{Username: "manager", Token: "t1"})
	s.SetCurrentRestaurant(&types.Restaurant{ID: "r1"})
	s.SetLatestOrderID("A1")
	s.SetNewOrderAlert(true)
	s.AddNotification(types.Notification{ID: "n1", Type: types.InfoNotification})

	// A second store over the same backend sees the persisted state.
	restored := NewStore(backend)
	user := restored.CurrentUser()
	assert.NotNil(t, user)
	assert.Equal(t, "manager", user.Username)
	assert.Equal(t, "t1", user.Token)
	assert.Equal(t, "A1", restored.LatestOrderID())
	assert.True(t, restored.NewOrderAlert())
	assert.Len(t, restored.Notifications(), 1)

	restored.Reset()
	again := NewStore(backend)
	assert.Nil(t, again.CurrentUser())
	assert.Equal(t, "", again.LatestOrderID())
}

func TestMalformedStateStartsEmpty(t *testing.T) {

	backend := NewMemoryBackend()
	err := backend.Save(context.Background(), []byte("{not json"))
	assert.NoError(t, err)

	s := NewStore(backend)
	assert.Nil(t, s.CurrentUser())
	assert.Nil(t, s.CurrentRestaurant())
	assert.False(t, s.NewOrderAlert())
	assert.Len(t, s.Notifications(), 0)
}

func TestBrokenBackendDoesNotCrash(t *testing.T) {

	s := NewStore(brokenBackend{})

	// Reads fall back to defaults, writes are best effort.
	assert.Nil(t, s.CurrentUser())
	s.SetLatestOrderID("A1")
	assert.Equal(t, "A1", s.LatestOrderID())
	s.AddNotification(types.Notification{ID: "n1"})
	assert.Len(t, s.Notifications(), 1)
}
