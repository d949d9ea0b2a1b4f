package worker

import (
	"context"
	"fmt"
	"html"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/changefeed"
	"github.com/coopstead/portal/internal/model"
)

//go:generate mockgen -source=delivery.go -destination=../mocks/worker/mock.go -package=mocks

type eventSource interface {
	ConsumeDelivery(ctx context.Context, out chan<- changefeed.Event, strategy retry.Strategy) error
}

type userDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

type emailSender interface {
	Send(to, subject, msg string) error
}

type telegramSender interface {
	SendHTML(chatID, msg string) error
}

// Delivery pushes urgent announcements out of band: members with a
// linked telegram chat get a bot message, everyone else gets an email.
// In-portal notifications are already stored by the time an event
// reaches this worker, so failures here never lose data.
type Delivery struct {
	source   eventSource
	users    userDirectory
	email    emailSender
	telegram telegramSender
}

func NewDelivery(source eventSource, users userDirectory, email emailSender, telegram telegramSender) *Delivery {
	return &Delivery{
		source:   source,
		users:    users,
		email:    email,
		telegram: telegram,
	}
}

func (d *Delivery) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	events := make(chan changefeed.Event, workerCount*10)

	go func() {
		if err := d.source.ConsumeDelivery(ctx, events, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume delivery events")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("delivery worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("delivery worker-%d shutting down", id)
					return
				case ev, ok := <-events:
					if !ok {
						zlog.Logger.Printf("delivery worker-%d channel closed, shutting down", id)
						return
					}

					if !wantsDelivery(ev) {
						continue
					}

					d.deliver(ctx, ev.Notification, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("delivery worker stopped")
}

// wantsDelivery filters the feed down to events worth an out-of-band
// push: newly inserted urgent announcements. Updates are read-state
// echoes and never leave the portal.
func wantsDelivery(ev changefeed.Event) bool {
	if ev.Kind != changefeed.EventInsert {
		return false
	}

	n := ev.Notification

	return n.Type == "announcement" && n.Metadata["priority"] == model.PriorityUrgent
}

func (d *Delivery) deliver(ctx context.Context, n model.Notification, strategy retry.Strategy) {
	u, err := d.users.GetByID(ctx, n.UserID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", n.UserID.String()).Msg("failed to resolve recipient")
		return
	}

	if u.TelegramChatID != "" {
		msg := fmt.Sprintf("<b>%s</b>\n\n%s", html.EscapeString(n.Title), html.EscapeString(n.Content))
		err = retry.Do(func() error {
			return d.telegram.SendHTML(u.TelegramChatID, msg)
		}, strategy)
	} else {
		err = retry.Do(func() error {
			return d.email.Send(u.Email, n.Title, n.Content)
		}, strategy)
	}

	if err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("user_id", u.ID.String()).
			Str("notification_id", n.ID.String()).
			Msg("failed to deliver urgent announcement")
	}
}
