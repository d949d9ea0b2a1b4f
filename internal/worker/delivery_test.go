package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/coopstead/portal/internal/changefeed"
	mocks "github.com/coopstead/portal/internal/mocks/worker"
	"github.com/coopstead/portal/internal/model"
)

var testStrategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

func urgentAnnouncement(userID uuid.UUID) changefeed.Event {
	return changefeed.Event{
		Kind: changefeed.EventInsert,
		Notification: model.Notification{
			ID:       uuid.New(),
			UserID:   userID,
			Type:     "announcement",
			Title:    "Water shutoff",
			Content:  "Mains repair on Thursday morning.",
			Metadata: map[string]string{"priority": model.PriorityUrgent},
		},
	}
}

func runDelivery(t *testing.T, d *Delivery, source *mocks.MockeventSource, events []changefeed.Event) (cancel func()) {
	t.Helper()

	ctx, stop := context.WithCancel(context.Background())

	source.EXPECT().
		ConsumeDelivery(gomock.Any(), gomock.Any(), testStrategy).
		DoAndReturn(func(ctx context.Context, out chan<- changefeed.Event, _ retry.Strategy) error {
			for _, ev := range events {
				out <- ev
			}
			<-ctx.Done()
			return nil
		})

	done := make(chan struct{})
	go func() {
		d.Run(ctx, testStrategy, 1)
		close(done)
	}()

	return func() {
		stop()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("delivery worker did not stop")
		}
	}
}

func TestDelivery_UrgentAnnouncementGoesToTelegram(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockeventSource(ctrl)
	users := mocks.NewMockuserDirectory(ctrl)
	email := mocks.NewMockemailSender(ctrl)
	telegram := mocks.NewMocktelegramSender(ctrl)

	userID := uuid.New()
	users.EXPECT().GetByID(gomock.Any(), userID).Return(model.User{
		ID:             userID,
		Email:          "resident@coop.test",
		TelegramChatID: "42",
	}, nil)

	sent := make(chan string, 1)
	telegram.EXPECT().SendHTML("42", gomock.Any()).DoAndReturn(func(_, msg string) error {
		sent <- msg
		return nil
	})

	d := NewDelivery(source, users, email, telegram)
	stop := runDelivery(t, d, source, []changefeed.Event{urgentAnnouncement(userID)})
	defer stop()

	select {
	case msg := <-sent:
		require.Contains(t, msg, "<b>Water shutoff</b>")
		require.Contains(t, msg, "Mains repair on Thursday morning.")
	case <-time.After(time.Second):
		t.Fatal("telegram message was not sent")
	}
}

func TestDelivery_FallsBackToEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockeventSource(ctrl)
	users := mocks.NewMockuserDirectory(ctrl)
	email := mocks.NewMockemailSender(ctrl)
	telegram := mocks.NewMocktelegramSender(ctrl)

	userID := uuid.New()
	users.EXPECT().GetByID(gomock.Any(), userID).Return(model.User{
		ID:    userID,
		Email: "resident@coop.test",
	}, nil)

	sent := make(chan struct{}, 1)
	email.EXPECT().Send("resident@coop.test", "Water shutoff", gomock.Any()).DoAndReturn(func(_, _, _ string) error {
		sent <- struct{}{}
		return nil
	})

	d := NewDelivery(source, users, email, telegram)
	stop := runDelivery(t, d, source, []changefeed.Event{urgentAnnouncement(userID)})
	defer stop()

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("email was not sent")
	}
}

func TestDelivery_IgnoresNonUrgentAndUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockeventSource(ctrl)
	users := mocks.NewMockuserDirectory(ctrl)
	email := mocks.NewMockemailSender(ctrl)
	telegram := mocks.NewMocktelegramSender(ctrl)

	userID := uuid.New()

	lowPriority := urgentAnnouncement(userID)
	lowPriority.Notification.Metadata["priority"] = model.PriorityLow

	readEcho := urgentAnnouncement(userID)
	readEcho.Kind = changefeed.EventUpdate

	taskNotice := urgentAnnouncement(userID)
	taskNotice.Notification.Type = "task"

	// The trailing urgent event proves the earlier ones were already
	// processed and skipped, not still queued.
	urgent := urgentAnnouncement(userID)

	users.EXPECT().GetByID(gomock.Any(), userID).Return(model.User{
		ID:             userID,
		TelegramChatID: "42",
	}, nil)

	sent := make(chan struct{}, 1)
	telegram.EXPECT().SendHTML("42", gomock.Any()).DoAndReturn(func(_, _ string) error {
		sent <- struct{}{}
		return nil
	})

	d := NewDelivery(source, users, email, telegram)
	stop := runDelivery(t, d, source, []changefeed.Event{lowPriority, readEcho, taskNotice, urgent})
	defer stop()

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("urgent announcement was not delivered")
	}
}
