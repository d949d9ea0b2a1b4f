package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/coopstead/portal/internal/mocks/service/meeting"
	"github.com/coopstead/portal/internal/model"
)

func TestService_Create_BoardMeetingNotifiesBoard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockmeetingRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	notifierMock := mocks.NewMocknotifier(ctrl)
	svc := NewService(repoMock, usersMock, notifierMock)

	creator := uuid.New()
	meetingID := uuid.New()
	m := model.Meeting{
		Title:     "Quarterly budget review",
		Type:      model.MeetingTypeBoard,
		Date:      time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "18:30",
		Location:  "Community room",
		CreatedBy: creator,
	}

	repoMock.EXPECT().CreateMeeting(gomock.Any(), m).Return(meetingID, nil)
	usersMock.EXPECT().ListByRoles(gomock.Any(), []string{model.RoleBoard, model.RoleAdmin}).Return([]model.User{
		{ID: creator},
		{ID: uuid.New()},
	}, nil)
	notifierMock.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n model.Notification) (model.Notification, error) {
			assert.Equal(t, model.NotificationTypeMeeting, n.Type)
			assert.Equal(t, "Quarterly budget review", n.Title)
			assert.Contains(t, n.Content, "2025-10-02")
			assert.Contains(t, n.Content, "18:30")
			return n, nil
		})

	id, err := svc.Create(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, meetingID, id)
}

func TestService_Create_GeneralAssemblyAddressesEveryone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockmeetingRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	notifierMock := mocks.NewMocknotifier(ctrl)
	svc := NewService(repoMock, usersMock, notifierMock)

	m := model.Meeting{Title: "AG 2025", Type: model.MeetingTypeGeneralAssembly, CreatedBy: uuid.New()}

	repoMock.EXPECT().CreateMeeting(gomock.Any(), m).Return(uuid.New(), nil)
	usersMock.EXPECT().ListByRoles(gomock.Any(), gomock.Nil()).Return([]model.User{{ID: uuid.New()}}, nil)
	notifierMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Notification{}, nil)

	_, err := svc.Create(context.Background(), m)
	assert.NoError(t, err)
}

func TestService_Create_AudienceLookupFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockmeetingRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	svc := NewService(repoMock, usersMock, nil)

	meetingID := uuid.New()
	repoMock.EXPECT().CreateMeeting(gomock.Any(), gomock.Any()).Return(meetingID, nil)
	usersMock.EXPECT().ListByRoles(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	id, err := svc.Create(context.Background(), model.Meeting{Type: model.MeetingTypeBoard, CreatedBy: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, meetingID, id)
}

func TestService_RSVPAndResolutions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockmeetingRepository(ctrl)
	svc := NewService(repoMock, nil, nil)

	meetingID := uuid.New()
	rsvp := model.RSVP{MeetingID: meetingID, UserID: uuid.New(), Attending: true}
	repoMock.EXPECT().SaveRSVP(gomock.Any(), rsvp).Return(nil)
	assert.NoError(t, svc.RSVP(context.Background(), rsvp))

	res := model.Resolution{MeetingID: meetingID, Title: "Adopt new house rules"}
	resID := uuid.New()
	repoMock.EXPECT().CreateResolution(gomock.Any(), res).Return(resID, nil)
	id, err := svc.CreateResolution(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, resID, id)

	repoMock.EXPECT().RecordVote(gomock.Any(), resID, "for").Return(nil)
	assert.NoError(t, svc.Vote(context.Background(), resID, "for"))
}
