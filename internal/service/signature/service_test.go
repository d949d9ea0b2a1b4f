package signature

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/coopstead/portal/internal/mocks/service/signature"
	"github.com/coopstead/portal/internal/model"
	"github.com/coopstead/portal/internal/storage"
)

func pngDataURL(payload string) string {
	return dataURLPrefix + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestService_Sign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docsMock := mocks.NewMockdocumentRepository(ctrl)
	storeMock := mocks.NewMockobjectStore(ctrl)

	svc := NewService(docsMock, storeMock)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	docID := uuid.New()
	userID := uuid.New()
	wantPath := fmt.Sprintf("signatures/%s/%s_%d.png", docID, userID, now.UnixMilli())
	wantURL := "http://localhost:8080/files/documents/" + wantPath

	docsMock.EXPECT().GetByID(gomock.Any(), docID).Return(model.Document{ID: docID, RequiresSignature: true}, nil)
	storeMock.EXPECT().Upload(storage.BucketDocuments, wantPath, "image/png", gomock.Any()).Return(wantURL, nil)
	docsMock.EXPECT().StampSignature(gomock.Any(), docID, model.SignatureMetadata{
		SignedBy:     userID,
		SignedAt:     now,
		SignatureURL: wantURL,
	}).Return(nil)

	meta, err := svc.Sign(context.Background(), docID, userID, pngDataURL("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, userID, meta.SignedBy)
	assert.Equal(t, wantURL, meta.SignatureURL)
}

func TestService_Sign_RejectsNonDataURL(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.Sign(context.Background(), uuid.New(), uuid.New(), "not-a-data-url")
	assert.ErrorIs(t, err, ErrInvalidSignatureData)

	_, err = svc.Sign(context.Background(), uuid.New(), uuid.New(), dataURLPrefix+"%%%")
	assert.ErrorIs(t, err, ErrInvalidSignatureData)

	_, err = svc.Sign(context.Background(), uuid.New(), uuid.New(), dataURLPrefix)
	assert.ErrorIs(t, err, ErrInvalidSignatureData)
}

func TestService_Sign_RejectsAlreadySigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docsMock := mocks.NewMockdocumentRepository(ctrl)
	svc := NewService(docsMock, nil)

	docID := uuid.New()
	signer := uuid.New()

	docsMock.EXPECT().GetByID(gomock.Any(), docID).Return(model.Document{
		ID:                docID,
		RequiresSignature: true,
		SignedBy:          &signer,
	}, nil)

	_, err := svc.Sign(context.Background(), docID, uuid.New(), pngDataURL("x"))
	assert.ErrorIs(t, err, ErrAlreadySigned)
}

func TestService_Sign_RejectsSignatureNotRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docsMock := mocks.NewMockdocumentRepository(ctrl)
	svc := NewService(docsMock, nil)

	docID := uuid.New()
	docsMock.EXPECT().GetByID(gomock.Any(), docID).Return(model.Document{ID: docID}, nil)

	_, err := svc.Sign(context.Background(), docID, uuid.New(), pngDataURL("x"))
	assert.ErrorIs(t, err, ErrSignatureNotRequired)
}

func TestService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docsMock := mocks.NewMockdocumentRepository(ctrl)
	svc := NewService(docsMock, nil)

	docID := uuid.New()
	want := &model.SignatureMetadata{SignedBy: uuid.New(), SignedAt: time.Now(), SignatureURL: "http://x/sig.png"}

	docsMock.EXPECT().GetSignature(gomock.Any(), docID).Return(want, nil)

	meta, err := svc.Verify(context.Background(), docID)
	require.NoError(t, err)
	assert.Equal(t, want, meta)
}

func TestService_Verify_Unsigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docsMock := mocks.NewMockdocumentRepository(ctrl)
	svc := NewService(docsMock, nil)

	docID := uuid.New()
	docsMock.EXPECT().GetSignature(gomock.Any(), docID).Return(nil, nil)

	meta, err := svc.Verify(context.Background(), docID)
	require.NoError(t, err)
	assert.Nil(t, meta)
}
