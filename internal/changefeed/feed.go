package changefeed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/model"
)

const (
	ExchangeName = "portal-events"

	// Delivery queue topology for the out-of-band delivery worker.
	DeliveryQueueName   = "portal-delivery"
	RetryQueueName      = "portal-delivery-retry"
	DLQName             = "portal-dlq"
	deliveryBindingKey  = "notifications.*"
	deliveryConsumerTag = "portal-delivery-worker"

	// Per-subscription queues expire server-side once abandoned.
	subscriptionQueueTTL = int32(60000)
)

type EventKind string

const (
	EventInsert EventKind = "insert"
	EventUpdate EventKind = "update"
)

// Event is one change-feed message: a notification was inserted or
// updated in the store. Delivery is best-effort, at most once.
type Event struct {
	Kind         EventKind          `json:"kind"`
	Notification model.Notification `json:"record"`
}

// Subscription is a cancellable handle on a per-user event stream.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops delivery into the subscriber's channel, cancels the
// broker consumer and deletes the subscription queue. No events are
// forwarded after Cancel returns; late broker deliveries are dropped.
func (s *Subscription) Cancel() {
	s.cancel()
	<-s.done
}

// Feed publishes notification change events to the portal exchange and
// opens per-user subscriptions on it.
type Feed struct {
	ch        *rabbitmq.Channel
	publisher *rabbitmq.Publisher
	strategy  retry.Strategy
}

// New declares the exchange and the delivery worker topology on the
// given channel.
func New(ch *rabbitmq.Channel, strategy retry.Strategy) (*Feed, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "topic")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DeliveryQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	deliveryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	deliveryQ, err := qm.DeclareQueue(DeliveryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    deliveryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare delivery queue: %w", err)
	}

	if err := ch.QueueBind(deliveryQ.Name, deliveryBindingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the delivery queue: %w", err)
	}

	return &Feed{
		ch:        ch,
		publisher: rabbitmq.NewPublisher(ch, exchange.Name()),
		strategy:  strategy,
	}, nil
}

// RoutingKey returns the per-user routing key events for userID are
// published under.
func RoutingKey(userID uuid.UUID) string {
	return "notifications." + userID.String()
}

// Publish sends one event to the exchange, routed to the owning user.
func (f *Feed) Publish(ev Event, strategy retry.Strategy) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return f.publisher.PublishWithRetry(body, RoutingKey(ev.Notification.UserID), "application/json", strategy)
}

// Subscribe opens a stream of events for one user. Decoded events are
// sent to out until the returned subscription is cancelled or ctx is
// done. Each call gets its own broker queue, so concurrent subscribers
// for the same user each see every event.
func (f *Feed) Subscribe(ctx context.Context, userID uuid.UUID, out chan<- Event) (*Subscription, error) {
	queueName := fmt.Sprintf("portal.notifications.%s.%s", userID, uuid.NewString()[:8])

	qm := rabbitmq.NewQueueManager(f.ch)
	q, err := qm.DeclareQueue(queueName, rabbitmq.QueueConfig{
		Args: map[string]interface{}{"x-expires": subscriptionQueueTTL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare subscription queue: %w", err)
	}

	if err := f.ch.QueueBind(q.Name, RoutingKey(userID), ExchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind subscription queue: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	// The queue name doubles as the consumer tag so the broker consumer
	// can be cancelled per subscription on the shared channel.
	cfg := rabbitmq.NewConsumerConfig(q.Name)
	cfg.Consumer = q.Name

	msgChan := make(chan []byte, 16)
	consumer := rabbitmq.NewConsumer(f.ch, cfg)

	go func() {
		if err := consumer.ConsumeWithRetry(msgChan, f.strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("queue", q.Name).Msg("subscription consumer stopped")
		}
		close(msgChan)
	}()

	stop := func() {
		if err := f.ch.Cancel(cfg.Consumer, false); err != nil {
			zlog.Logger.Error().Err(err).Str("queue", q.Name).Msg("failed to cancel subscription consumer")
		}
	}

	cleanup := func() {
		if err := f.ch.QueueUnbind(q.Name, RoutingKey(userID), ExchangeName, nil); err != nil {
			zlog.Logger.Error().Err(err).Str("queue", q.Name).Msg("failed to unbind subscription queue")
			return
		}

		if _, err := f.ch.QueueDelete(q.Name, false, false, false); err != nil {
			zlog.Logger.Error().Err(err).Str("queue", q.Name).Msg("failed to delete subscription queue")
		}
	}

	go func() {
		defer close(done)
		forward(subCtx, msgChan, out, stop, cleanup)
	}()

	return &Subscription{cancel: cancel, done: done}, nil
}

// forward decodes broker deliveries into out until ctx is done or the
// consumer closes msgChan. On cancellation it stops the broker consumer
// and drains in-flight deliveries first: the consume loop blocks on an
// undrained msgChan and would otherwise never exit, and a consumer left
// attached keeps the queue's x-expires from ever firing.
func forward(ctx context.Context, msgChan <-chan []byte, out chan<- Event, stop, cleanup func()) {
	defer cleanup()

	for {
		select {
		case <-ctx.Done():
			stopAndDrain(msgChan, stop)
			return
		case m, ok := <-msgChan:
			if !ok {
				return
			}

			var ev Event
			if err := json.Unmarshal(m, &ev); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal event")
				continue
			}

			select {
			case out <- ev:
			case <-ctx.Done():
				stopAndDrain(msgChan, stop)
				return
			}
		}
	}
}

// stopAndDrain cancels the broker consumer and discards deliveries
// until the consume goroutine closes msgChan.
func stopAndDrain(msgChan <-chan []byte, stop func()) {
	stop()

	for range msgChan {
	}
}

// ConsumeDelivery streams every published event from the shared
// delivery queue into out until ctx is done. The delivery worker is the
// only consumer; messages that fail to decode are logged and skipped.
func (f *Feed) ConsumeDelivery(ctx context.Context, out chan<- Event, strategy retry.Strategy) error {
	cfg := rabbitmq.NewConsumerConfig(DeliveryQueueName)
	cfg.Consumer = deliveryConsumerTag

	msgChan := make(chan []byte, cap(out))
	consumer := rabbitmq.NewConsumer(f.ch, cfg)

	go func() {
		if err := consumer.ConsumeWithRetry(msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("queue", DeliveryQueueName).Msg("delivery consumer stopped")
		}
		close(msgChan)
	}()

	stop := func() {
		if err := f.ch.Cancel(cfg.Consumer, false); err != nil {
			zlog.Logger.Error().Err(err).Str("queue", DeliveryQueueName).Msg("failed to cancel delivery consumer")
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopAndDrain(msgChan, stop)
			return nil
		case m, ok := <-msgChan:
			if !ok {
				return nil
			}

			var ev Event
			if err := json.Unmarshal(m, &ev); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal event")
				continue
			}

			select {
			case out <- ev:
			case <-ctx.Done():
				stopAndDrain(msgChan, stop)
				return nil
			}
		}
	}
}
