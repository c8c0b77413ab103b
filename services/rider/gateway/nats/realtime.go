package gateway_nats

import (
	"encoding/json"
	"fmt"

	"github.com/delivermi/rider-app/internal/pkg/constants"
	"github.com/delivermi/rider-app/internal/pkg/logger"
	"github.com/delivermi/rider-app/internal/pkg/models"
	natspkg "github.com/delivermi/rider-app/internal/pkg/nats"
	"github.com/delivermi/rider-app/services/rider"
	"github.com/nats-io/nats.go"
)

// RealtimeGateway implements rider.RealtimeGW on the NATS-backed realtime
// document store. Each document stream is one subject per entity.
type RealtimeGateway struct {
	client *natspkg.Client
}

// NewRealtimeGateway creates a new realtime gateway
func NewRealtimeGateway(client *natspkg.Client) *RealtimeGateway {
	return &RealtimeGateway{client: client}
}

// subscription adapts a NATS subscription to the rider.Subscription handle
type subscription struct {
	sub *nats.Subscription
}

func (s *subscription) Unsubscribe() error {
	if s.sub == nil {
		return nil
	}
	return s.sub.Unsubscribe()
}

// SubscribeRideDoc opens the push stream for one ride document. Malformed
// envelopes are logged and dropped; they never reach the reconciler.
func (g *RealtimeGateway) SubscribeRideDoc(rideID string, handler func(models.RideDocEvent)) (rider.Subscription, error) {
	subject := constants.SubjectRideDocPrefix + rideID

	sub, err := g.client.Subscribe(subject, func(msg *nats.Msg) {
		var event models.RideDocEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Dropping malformed ride document event",
				logger.String("subject", subject),
				logger.Err(err))
			return
		}
		handler(event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to ride document: %w", err)
	}

	return &subscription{sub: sub}, nil
}

// SubscribeRiderLocation opens the push stream for one rider's GPS updates
func (g *RealtimeGateway) SubscribeRiderLocation(riderID string, handler func(models.RiderLocationEvent)) (rider.Subscription, error) {
	subject := constants.SubjectRiderLocationPrefix + riderID

	sub, err := g.client.Subscribe(subject, func(msg *nats.Msg) {
		var event models.RiderLocationEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Dropping malformed rider location event",
				logger.String("subject", subject),
				logger.Err(err))
			return
		}
		handler(event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to rider location: %w", err)
	}

	return &subscription{sub: sub}, nil
}

// SubscribeMessages opens the push stream for one ride's chat thread
func (g *RealtimeGateway) SubscribeMessages(rideID string, handler func(models.ChatEvent)) (rider.Subscription, error) {
	subject := constants.SubjectRideMessagesPrefix + rideID

	sub, err := g.client.Subscribe(subject, func(msg *nats.Msg) {
		var event models.ChatEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Dropping malformed chat event",
				logger.String("subject", subject),
				logger.Err(err))
			return
		}
		handler(event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to ride messages: %w", err)
	}

	return &subscription{sub: sub}, nil
}
