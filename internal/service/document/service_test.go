package document

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/coopstead/portal/internal/mocks/service/document"
	"github.com/coopstead/portal/internal/model"
)

func TestService_Create_NotifiesSigners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockdocumentRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	notifierMock := mocks.NewMocknotifier(ctrl)

	svc := NewService(repoMock, usersMock, notifierMock)

	creator := uuid.New()
	member := uuid.New()
	docID := uuid.New()
	doc := model.Document{
		Title:             "House Rules 2025",
		Category:          "regulations",
		RequiresSignature: true,
		CreatedBy:         creator,
	}

	repoMock.EXPECT().CreateDocument(gomock.Any(), doc).Return(docID, nil)
	usersMock.EXPECT().ListByRoles(gomock.Any(), nil).Return([]model.User{
		{ID: creator},
		{ID: member},
	}, nil)
	notifierMock.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n model.Notification) (model.Notification, error) {
			assert.Equal(t, member, n.UserID)
			assert.Equal(t, model.NotificationTypeDocument, n.Type)
			assert.Equal(t, "/documents/"+docID.String(), n.Link)
			assert.Contains(t, n.Content, doc.Title)
			return n, nil
		},
	)

	id, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, docID, id)
}

func TestService_Create_NoSignatureNoFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockdocumentRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	notifierMock := mocks.NewMocknotifier(ctrl)

	svc := NewService(repoMock, usersMock, notifierMock)

	docID := uuid.New()
	doc := model.Document{Title: "Meeting minutes", Category: "minutes"}

	repoMock.EXPECT().CreateDocument(gomock.Any(), doc).Return(docID, nil)

	id, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, docID, id)
}

func TestService_Create_RecipientLookupFailureStillCreates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockdocumentRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	notifierMock := mocks.NewMocknotifier(ctrl)

	svc := NewService(repoMock, usersMock, notifierMock)

	docID := uuid.New()
	doc := model.Document{Title: "Budget", Category: "financial", RequiresSignature: true}

	repoMock.EXPECT().CreateDocument(gomock.Any(), doc).Return(docID, nil)
	usersMock.EXPECT().ListByRoles(gomock.Any(), nil).Return(nil, errors.New("db down"))

	id, err := svc.Create(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, docID, id)
}

func TestService_Create_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockdocumentRepository(ctrl)

	svc := NewService(repoMock, nil, nil)

	repoMock.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("insert failed"))

	_, err := svc.Create(context.Background(), model.Document{Title: "Charter"})
	assert.Error(t, err)
}
