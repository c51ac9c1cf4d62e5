package poller

import (
	"context"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"

	"restaurant-dashboard/internal/orders"
	"restaurant-dashboard/internal/store"
	"restaurant-dashboard/internal/types"
)

const (
	DefaultPollInterval    = 10 * time.Second
	DefaultMinFetchGap     = 3 * time.Second
	DefaultAlertClearDelay = 5 * time.Second
)

type OrderFetcher interface {
	FetchOrders(ctx context.Context, restaurantID string, token string) ([]types.Order, error)
}

type Notifier interface {
	Notify(kind types.NotificationType, title string, message string)
	NotifyNewOrder(orderCode string)
}

// Poller watches the active restaurant's order stream. It is a two state
// machine, Stopped and Running, with idempotent transitions. While Running it
// fetches on a fixed interval, detects new orders by identity and dispatches
// the alerting side effects exactly once per detected order.
type Poller struct {
	store  *store.Store
	client OrderFetcher
	sink   Notifier

	pollInterval    time.Duration
	minFetchGap     time.Duration
	alertClearDelay time.Duration

	mu               sync.Mutex
	running          bool
	cancel           context.CancelFunc
	lastFetchTime    time.Time
	lastRestaurantID string
	alertTimer       *time.Timer
}

func NewPoller(st *store.Store, client OrderFetcher, sink Notifier) *Poller {
	return NewPollerWithTiming(st, client, sink,
		DefaultPollInterval, DefaultMinFetchGap, DefaultAlertClearDelay)
}

func NewPollerWithTiming(st *store.Store, client OrderFetcher, sink Notifier,
	pollInterval, minFetchGap, alertClearDelay time.Duration) *Poller {
	return &Poller{
		store:           st,
		client:          client,
		sink:            sink,
		pollInterval:    pollInterval,
		minFetchGap:     minFetchGap,
		alertClearDelay: alertClearDelay,
	}
}

// Start transitions to Running: one immediate cycle, then a recurring ticker.
// No-op when already Running or when no restaurant context is resolvable yet.
func (p *Poller) Start() {
	restaurant := p.store.CurrentRestaurant()
	if restaurant == nil || restaurant.ID == "" {
		logger.Info("No restaurant context, polling not started")
		return
	}

	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.running = true
	p.cancel = cancel
	p.mu.Unlock()

	logger.Infof("Starting order polling for restaurant %s", restaurant.ID)
	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	p.Poll(ctx)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Order polling stopped")
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Stop cancels the recurring timer. Idempotent. An in-flight fetch is not
// interrupted and any armed alert-clear timer may still fire, which only
// lowers a flag.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	p.running = false
	p.cancel()
	p.cancel = nil
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// passThrottle atomically checks and stamps the last fetch time, so two
// near-simultaneous triggers (timer tick plus manual refresh) cannot both
// pass the gate.
func (p *Poller) passThrottle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if now.Sub(p.lastFetchTime) < p.minFetchGap {
		return false
	}
	p.lastFetchTime = now
	return true
}

// resetBaselineIfMoved clears the novelty baseline when the resolved
// restaurant changed between cycles. An order id observed for one restaurant
// means nothing against another restaurant's stream.
func (p *Poller) resetBaselineIfMoved(restaurantID string) {
	p.mu.Lock()
	moved := p.lastRestaurantID != "" && p.lastRestaurantID != restaurantID
	p.lastRestaurantID = restaurantID
	p.mu.Unlock()

	if moved {
		logger.Infof("Active restaurant changed, resetting order baseline")
		p.store.SetLatestOrderID("")
	}
}

// Poll runs one throttled fetch-and-detect cycle. Failures are contained
// within the cycle, the next tick simply tries again.
func (p *Poller) Poll(ctx context.Context) {
	if !p.passThrottle() {
		return
	}

	user := p.store.CurrentUser()
	if user == nil || user.Token == "" {
		logger.Info("No auth token, stopping order polling")
		p.Stop()
		return
	}

	restaurant := p.store.CurrentRestaurant()
	if restaurant == nil || restaurant.ID == "" {
		// The restaurant may still be loading, skip this cycle only.
		return
	}
	p.resetBaselineIfMoved(restaurant.ID)

	fetched, err := p.client.FetchOrders(ctx, restaurant.ID, user.Token)
	if err != nil {
		logger.Errorf("Could not fetch orders: %s", err.Error())
		p.sink.Notify(types.ErrorNotification, "Connection problem", "Could not fetch orders, will retry")
		return
	}
	if len(fetched) == 0 {
		return
	}

	sorted := orders.SortOrders(fetched)
	candidate := sorted[0]

	if !orders.IsNovel(p.store.LatestOrderID(), candidate.OrderID) {
		return
	}

	logger.Infof("New order detected: %s", candidate.OrderCode)
	p.store.SetLatestOrderID(candidate.OrderID)
	p.store.SetNewOrderAlert(true)
	p.sink.NotifyNewOrder(candidate.OrderCode)
	p.armAlertClear()
}

// armAlertClear schedules the alert flag to drop after the fixed delay.
// A later novelty event restarts the delay.
func (p *Poller) armAlertClear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.alertTimer != nil {
		p.alertTimer.Stop()
	}
	p.alertTimer = time.AfterFunc(p.alertClearDelay, func() {
		p.store.SetNewOrderAlert(false)
	})
}
