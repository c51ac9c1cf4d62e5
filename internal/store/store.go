package store

import (
	"context"
	"encoding/json"
	"sync"

	logger "github.com/sirupsen/logrus"

	"restaurant-dashboard/internal/types"
)

const maxNotifications = 10

// Backend persists the session state blob between restarts. Failures are
// tolerated on both directions: a broken read behaves like an empty session,
// a broken write is logged and ignored.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

type sessionState struct {
	User          *types.User          `json:"user"`
	Restaurant    *types.Restaurant    `json:"restaurant"`
	Notifications []types.Notification `json:"notifications"`
	NewOrderAlert bool                 `json:"newOrderAlert"`
	LatestOrderID string               `json:"latestOrderId"`
}

// Store is the single owner of shared dashboard state. All mutators hold the
// lock for the whole read-modify-write, so concurrent writers (poller and
// manual views) cannot interleave partial updates.
type Store struct {
	mu      sync.Mutex
	state   sessionState
	backend Backend
}

func NewStore(backend Backend) *Store {
	s := &Store{backend: backend}

	data, err := backend.Load(context.Background())
	if err != nil {
		logger.Warningf("Could not load session state: %s", err.Error())
		return s
	}
	if len(data) == 0 {
		return s
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		logger.Warningf("Malformed session state, starting empty: %s", err.Error())
		s.state = sessionState{}
	}
	return s
}

func (s *Store) persistLocked() {
	data, err := json.Marshal(s.state)
	if err != nil {
		logger.Warningf("Could not serialize session state: %s", err.Error())
		return
	}
	if err := s.backend.Save(context.Background(), data); err != nil {
		logger.Warningf("Could not persist session state: %s", err.Error())
	}
}

func (s *Store) CurrentUser() *types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	user := *s.state.User
	return &user
}

func (s *Store) SetCurrentUser(user *types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = user
	s.persistLocked()
}

func (s *Store) CurrentRestaurant() *types.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Restaurant == nil {
		return nil
	}
	restaurant := *s.state.Restaurant
	return &restaurant
}

// SetCurrentRestaurant switches the active restaurant. Moving to a different
// restaurant invalidates the novelty baseline: an order id from restaurant A
// must never be compared against restaurant B's stream.
func (s *Store) SetCurrentRestaurant(restaurant *types.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.state.Restaurant
	if restaurant == nil || previous == nil || previous.ID != restaurant.ID {
		s.state.LatestOrderID = ""
	}
	s.state.Restaurant = restaurant
	s.persistLocked()
}

func (s *Store) Notifications() []types.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]types.Notification, len(s.state.Notifications))
	copy(notifications, s.state.Notifications)
	return notifications
}

// AddNotification appends and evicts the oldest entries beyond the cap.
func (s *Store) AddNotification(n types.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Notifications = append(s.state.Notifications, n)
	if len(s.state.Notifications) > maxNotifications {
		s.state.Notifications = s.state.Notifications[len(s.state.Notifications)-maxNotifications:]
	}
	s.persistLocked()
}

// RemoveNotification deletes by id, no-op when absent.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.state.Notifications {
		if n.ID == id {
			s.state.Notifications = append(s.state.Notifications[:i], s.state.Notifications[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notifications = nil
	s.persistLocked()
}

func (s *Store) NewOrderAlert() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.NewOrderAlert
}

func (s *Store) SetNewOrderAlert(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.NewOrderAlert = on
	s.persistLocked()
}

func (s *Store) LatestOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LatestOrderID
}

func (s *Store) SetLatestOrderID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LatestOrderID = id
	s.persistLocked()
}

// Reset drops the whole session on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionState{}
	s.persistLocked()
}
