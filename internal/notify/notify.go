package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"restaurant-dashboard/internal/types"
)

type NotificationStore interface {
	AddNotification(n types.Notification)
}

// Player plays the short alert cue. Implementations may fail (no audio
// device, blocked playback), the sink never lets that escape.
type Player interface {
	Play() error
}

type Sink struct {
	store  NotificationStore
	player Player
}

func NewSink(store NotificationStore, player Player) *Sink {
	return &Sink{store: store, player: player}
}

// Notify appends an entry to the rolling notification log.
func (s *Sink) Notify(kind types.NotificationType, title string, message string) {
	s.store.AddNotification(types.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// NotifyNewOrder records an order arrival and plays the audio cue. Playback
// errors degrade to a warning, they must never interrupt the polling cycle.
func (s *Sink) NotifyNewOrder(orderCode string) {
	s.Notify(types.InfoNotification, "New order", fmt.Sprintf("Order %s has arrived", orderCode))

	if err := s.player.Play(); err != nil {
		logger.Warningf("Could not play alert sound: %s", err.Error())
	}
}
