package forum

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/coopstead/portal/internal/mocks/service/forum"
	"github.com/coopstead/portal/internal/model"
)

func TestService_GetTopic_CountsView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockforumRepository(ctrl)
	svc := NewService(repoMock, nil)

	topicID := uuid.New()
	topic := model.ForumTopic{ID: topicID, Title: "Roof repairs"}
	replies := []model.ForumReply{{ID: uuid.New(), TopicID: topicID}}
	attachments := []model.ForumAttachment{{ID: uuid.New(), TopicID: &topicID}}

	repoMock.EXPECT().GetTopic(gomock.Any(), topicID).Return(topic, nil)
	repoMock.EXPECT().IncrementViews(gomock.Any(), topicID).Return(nil)
	repoMock.EXPECT().ListReplies(gomock.Any(), topicID).Return(replies, nil)
	repoMock.EXPECT().ListAttachments(gomock.Any(), topicID).Return(attachments, nil)

	view, err := svc.GetTopic(context.Background(), topicID)
	require.NoError(t, err)
	assert.Equal(t, topic, view.Topic)
	assert.Equal(t, replies, view.Replies)
	assert.Equal(t, attachments, view.Attachments)
}

func TestService_GetTopic_ViewBumpFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockforumRepository(ctrl)
	svc := NewService(repoMock, nil)

	topicID := uuid.New()

	repoMock.EXPECT().GetTopic(gomock.Any(), topicID).Return(model.ForumTopic{ID: topicID}, nil)
	repoMock.EXPECT().IncrementViews(gomock.Any(), topicID).Return(errors.New("db down"))
	repoMock.EXPECT().ListReplies(gomock.Any(), topicID).Return(nil, nil)
	repoMock.EXPECT().ListAttachments(gomock.Any(), topicID).Return(nil, nil)

	_, err := svc.GetTopic(context.Background(), topicID)
	assert.NoError(t, err)
}

func TestService_CreateTopic_AttachesFilesToTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockforumRepository(ctrl)
	svc := NewService(repoMock, nil)

	author := uuid.New()
	topicID := uuid.New()
	topic := model.ForumTopic{Title: "Heating schedule", CreatedBy: author}

	repoMock.EXPECT().CreateTopic(gomock.Any(), topic).Return(topicID, nil)
	repoMock.EXPECT().CreateAttachments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, attachments []model.ForumAttachment) error {
			require.Len(t, attachments, 1)
			require.NotNil(t, attachments[0].TopicID)
			assert.Equal(t, topicID, *attachments[0].TopicID)
			assert.Equal(t, author, attachments[0].CreatedBy)
			return nil
		})

	id, err := svc.CreateTopic(context.Background(), topic, []model.ForumAttachment{{URL: "http://x/plan.pdf", Name: "plan.pdf"}})
	require.NoError(t, err)
	assert.Equal(t, topicID, id)
}

func TestService_CreateReply_NotifiesTopicAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockforumRepository(ctrl)
	notifierMock := mocks.NewMocknotifier(ctrl)
	svc := NewService(repoMock, notifierMock)

	author := uuid.New()
	replier := uuid.New()
	topicID := uuid.New()
	replyID := uuid.New()

	topic := model.ForumTopic{ID: topicID, Title: "Garden committee", CreatedBy: author}
	reply := model.ForumReply{TopicID: topicID, Content: "Count me in", CreatedBy: replier}

	repoMock.EXPECT().GetTopic(gomock.Any(), topicID).Return(topic, nil)
	repoMock.EXPECT().CreateReply(gomock.Any(), reply).Return(replyID, nil)
	repoMock.EXPECT().CreateAttachments(gomock.Any(), gomock.Len(0)).Return(nil)
	notifierMock.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n model.Notification) (model.Notification, error) {
			assert.Equal(t, author, n.UserID)
			assert.Equal(t, model.NotificationTypeForum, n.Type)
			assert.Equal(t, "/forum/topics/"+topicID.String(), n.Link)
			return n, nil
		})

	id, err := svc.CreateReply(context.Background(), reply, nil)
	require.NoError(t, err)
	assert.Equal(t, replyID, id)
}

func TestService_CreateReply_OwnTopicIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockforumRepository(ctrl)
	notifierMock := mocks.NewMocknotifier(ctrl)
	svc := NewService(repoMock, notifierMock)

	author := uuid.New()
	topicID := uuid.New()

	repoMock.EXPECT().GetTopic(gomock.Any(), topicID).Return(model.ForumTopic{ID: topicID, CreatedBy: author}, nil)
	repoMock.EXPECT().CreateReply(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	repoMock.EXPECT().CreateAttachments(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.CreateReply(context.Background(), model.ForumReply{TopicID: topicID, CreatedBy: author}, nil)
	assert.NoError(t, err)
}

func TestService_CreateReply_NotificationFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockforumRepository(ctrl)
	notifierMock := mocks.NewMocknotifier(ctrl)
	svc := NewService(repoMock, notifierMock)

	topicID := uuid.New()

	repoMock.EXPECT().GetTopic(gomock.Any(), topicID).Return(model.ForumTopic{ID: topicID, CreatedBy: uuid.New()}, nil)
	repoMock.EXPECT().CreateReply(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	repoMock.EXPECT().CreateAttachments(gomock.Any(), gomock.Any()).Return(nil)
	notifierMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Notification{}, errors.New("db down"))

	_, err := svc.CreateReply(context.Background(), model.ForumReply{TopicID: topicID, CreatedBy: uuid.New()}, nil)
	assert.NoError(t, err)
}

func TestService_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockforumRepository(ctrl)
	svc := NewService(repoMock, nil)

	reportID := uuid.New()
	report := model.ForumReport{ContentType: "reply", ContentID: uuid.New(), Reason: "spam", ReportedBy: uuid.New()}

	repoMock.EXPECT().CreateReport(gomock.Any(), report).Return(reportID, nil)

	id, err := svc.Report(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, reportID, id)
}
