package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restaurant-dashboard/internal/notify"
	"restaurant-dashboard/internal/poller/mocks"
	"restaurant-dashboard/internal/store"
	"restaurant-dashboard/internal/types"
)

type recordingPlayer struct {
	mu    sync.Mutex
	plays int
}

func (p *recordingPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plays++
	return nil
}

func (p *recordingPlayer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plays
}

func newTestPoller(t *testing.T, minFetchGap, alertClearDelay time.Duration) (*Poller, *store.Store, *mocks.OrderFetcher, *recordingPlayer) {

	st := store.NewStore(store.NewMemoryBackend())
	st.SetCurrentUser(&types.User{Username: "manager", Token: "tok"})
	st.SetCurrentRestaurant(&types.Restaurant{ID: "r1", Name: "Pizza Place"})

	client := mocks.NewOrderFetcher(t)
	player := &recordingPlayer{}
	sink := notify.NewSink(st, player)

	p := NewPollerWithTiming(st, client, sink, time.Hour, minFetchGap, alertClearDelay)
	return p, st, client, player
}

func notificationsOfType(st *store.Store, kind types.NotificationType) []types.Notification {
	var result []types.Notification
	for _, n := range st.Notifications() {
		if n.Type == kind {
			result = append(result, n)
		}
	}
	return result
}

func TestNoveltyDetection(t *testing.T) {

	p, st, client, player := newTestPoller(t, 0, time.Hour)
	st.SetLatestOrderID("A1")

	ctx := context.Background()

	// Top order unchanged, no side effects.
	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{
		{OrderID: "A1", OrderCode: "0001", OrderStatus: types.PendingStatus},
	}, nil).Once()
	p.Poll(ctx)

	assert.Equal(t, "A1", st.LatestOrderID())
	assert.False(t, st.NewOrderAlert())
	assert.Len(t, st.Notifications(), 0)
	assert.Equal(t, 0, player.count())

	// A new pending order outranks the known cooked one.
	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{
		{OrderID: "B2", OrderCode: "0002", OrderStatus: types.PendingStatus},
		{OrderID: "A1", OrderCode: "0001", OrderStatus: types.CookedStatus},
	}, nil).Once()
	p.Poll(ctx)

	assert.Equal(t, "B2", st.LatestOrderID())
	assert.True(t, st.NewOrderAlert())
	assert.Equal(t, 1, player.count())

	infos := notificationsOfType(st, types.InfoNotification)
	assert.Len(t, infos, 1)
	assert.Contains(t, infos[0].Message, "0002")

	// Repeated poll with the same top order stays quiet.
	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{
		{OrderID: "B2", OrderCode: "0002", OrderStatus: types.PendingStatus},
	}, nil).Once()
	p.Poll(ctx)

	assert.Len(t, notificationsOfType(st, types.InfoNotification), 1)
	assert.Equal(t, 1, player.count())
}

func TestFirstObservationIsNovel(t *testing.T) {

	p, st, client, player := newTestPoller(t, 0, time.Hour)

	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{
		{OrderID: "A1", OrderCode: "0001", OrderStatus: types.PendingStatus},
	}, nil).Once()
	p.Poll(context.Background())

	assert.Equal(t, "A1", st.LatestOrderID())
	assert.True(t, st.NewOrderAlert())
	assert.Equal(t, 1, player.count())
}

func TestEmptyResultNoAction(t *testing.T) {

	p, st, client, player := newTestPoller(t, 0, time.Hour)

	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{}, nil).Once()
	p.Poll(context.Background())

	assert.Equal(t, "", st.LatestOrderID())
	assert.False(t, st.NewOrderAlert())
	assert.Len(t, st.Notifications(), 0)
	assert.Equal(t, 0, player.count())
}

func TestThrottle(t *testing.T) {

	p, _, client, _ := newTestPoller(t, 3*time.Second, time.Hour)

	// Two triggers in quick succession, exactly one network call.
	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{}, nil).Once()

	ctx := context.Background()
	p.Poll(ctx)
	p.Poll(ctx)
}

func TestFetchErrorKeepsRunning(t *testing.T) {

	p, st, client, _ := newTestPoller(t, 0, time.Hour)
	st.SetLatestOrderID("A1")

	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").
		Return(nil, errors.New("connection refused")).Once()

	p.Start()
	assert.True(t, p.Running())

	assert.Eventually(t, func() bool {
		return len(notificationsOfType(st, types.ErrorNotification)) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "A1", st.LatestOrderID())
	assert.True(t, p.Running())

	// The next trigger fetches again as if nothing happened.
	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{}, nil).Once()
	p.Poll(context.Background())

	p.Stop()
}

func TestStopIdempotent(t *testing.T) {

	p, _, client, _ := newTestPoller(t, 0, time.Hour)

	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{}, nil).Maybe()

	p.Start()
	assert.True(t, p.Running())

	p.Stop()
	assert.False(t, p.Running())

	p.Stop()
	assert.False(t, p.Running())
}

func TestStartGuards(t *testing.T) {

	t.Run("no restaurant", func(t *testing.T) {
		st := store.NewStore(store.NewMemoryBackend())
		st.SetCurrentUser(&types.User{Username: "manager", Token: "tok"})

		client := mocks.NewOrderFetcher(t)
		p := NewPollerWithTiming(st, client, notify.NewSink(st, notify.NopPlayer{}), time.Hour, 0, time.Hour)

		p.Start()
		assert.False(t, p.Running())
	})

	t.Run("already running", func(t *testing.T) {
		p, _, client, _ := newTestPoller(t, 0, time.Hour)
		client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{}, nil).Maybe()

		p.Start()
		p.Start()
		assert.True(t, p.Running())
		p.Stop()
	})
}

func TestMissingTokenStopsPolling(t *testing.T) {

	p, st, client, _ := newTestPoller(t, 0, time.Hour)

	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{}, nil).Maybe()
	p.Start()
	assert.True(t, p.Running())

	// Logout drops the user, the next cycle shuts the scheduler down.
	st.SetCurrentUser(nil)
	p.Poll(context.Background())

	assert.False(t, p.Running())
}

func TestMissingRestaurantSkipsCycle(t *testing.T) {

	st := store.NewStore(store.NewMemoryBackend())
	st.SetCurrentUser(&types.User{Username: "manager", Token: "tok"})

	client := mocks.NewOrderFetcher(t)
	p := NewPollerWithTiming(st, client, notify.NewSink(st, notify.NopPlayer{}), time.Hour, 0, time.Hour)

	// No fetch expected and no stop, the restaurant may appear shortly.
	p.Poll(context.Background())
	assert.Len(t, st.Notifications(), 0)
}

func TestAlertAutoClear(t *testing.T) {

	p, st, client, _ := newTestPoller(t, 0, 50*time.Millisecond)

	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{
		{OrderID: "A1", OrderCode: "0001", OrderStatus: types.PendingStatus},
	}, nil).Once()
	p.Poll(context.Background())

	assert.True(t, st.NewOrderAlert())

	assert.Eventually(t, func() bool {
		return !st.NewOrderAlert()
	}, time.Second, 10*time.Millisecond)

	// And it stays down without further novelty.
	time.Sleep(100 * time.Millisecond)
	assert.False(t, st.NewOrderAlert())
}

func TestRestaurantChangeResetsBaseline(t *testing.T) {

	p, st, client, _ := newTestPoller(t, 0, time.Hour)
	ctx := context.Background()

	client.EXPECT().FetchOrders(mock.Anything, "r1", "tok").Return([]types.Order{
		{OrderID: "A1", OrderCode: "0001", OrderStatus: types.PendingStatus},
	}, nil).Once()
	p.Poll(ctx)
	assert.Equal(t, "A1", st.LatestOrderID())

	// Reassignment to another restaurant, with a stale baseline smuggled in.
	st.SetCurrentRestaurant(&types.Restaurant{ID: "r2", Name: "Burger Place"})
	st.SetLatestOrderID("A1")

	client.EXPECT().FetchOrders(mock.Anything, "r2", "tok").Return([]types.Order{
		{OrderID: "A1", OrderCode: "0042", OrderStatus: types.PendingStatus},
	}, nil).Once()
	p.Poll(ctx)

	// Same id, different restaurant: treated as a fresh observation.
	assert.Equal(t, "A1", st.LatestOrderID())
	assert.Len(t, notificationsOfType(st, types.InfoNotification), 2)
}
