package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *Upload) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockRepository) ListByTraineeID(ctx context.Context, traineeID int64) ([]Upload, error) {
	args := m.Called(ctx, traineeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Upload), args.Error(1)
}

func (m *MockRepository) ListFilePaths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	return m.Called(ctx, name, r, size, contentType).Error(0)
}

func (m *MockStore) Delete(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) Serve(c *gin.Context, name string) {
	m.Called(c, name)
}

// fileHeader builds a real *multipart.FileHeader by parsing a form.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, _ = fw.Write(content)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestService_Upload_NamesAndRecords(t *testing.T) {
	repo, store := new(MockRepository), new(MockStore)
	svc := NewService(repo, store, "/uploads/", 0)
	ts := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	svc.now = fixedClock(ts)

	var savedName string
	store.On("Save", mock.Anything, mock.Anything, mock.Anything, int64(len(pngBytes)), "image/png").
		Run(func(args mock.Arguments) { savedName = args.String(1) }).
		Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Upload(context.Background(), 4, KindAfter, fileHeader(t, "selfie.png", pngBytes))
	require.NoError(t, err)

	assert.Regexp(t, fmt.Sprintf(`^%d-[0-9a-f-]{36}\.png$`, ts.UnixMilli()), savedName)
	assert.Equal(t, "/uploads/"+savedName, u.FilePath)
	assert.Equal(t, int64(4), u.TraineeID)
	assert.Equal(t, KindAfter, u.Type)
	assert.Equal(t, ts, u.UploadedAt)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Upload_NilHeader(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockStore), "", 0)
	_, err := svc.Upload(context.Background(), 1, KindBefore, nil)
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestService_Upload_RollsBackBlobOnDBError(t *testing.T) {
	repo, store := new(MockRepository), new(MockStore)
	svc := NewService(repo, store, "", 0)

	store.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("Delete", mock.Anything, mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	_, err := svc.Upload(context.Background(), 1, KindBefore, fileHeader(t, "a.png", pngBytes))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStorage)
	store.AssertNumberOfCalls(t, "Delete", 1)
}

func TestService_Upload_StorageFailure(t *testing.T) {
	repo, store := new(MockRepository), new(MockStore)
	svc := NewService(repo, store, "", 0)

	store.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.Upload(context.Background(), 1, KindBefore, fileHeader(t, "a.png", pngBytes))
	assert.ErrorIs(t, err, ErrStorage)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Sweep(t *testing.T) {
	repo, store := new(MockRepository), new(MockStore)
	svc := NewService(repo, store, "/uploads", 0)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	old := now.Add(-48 * time.Hour).UnixMilli()
	fresh := now.Add(-10 * time.Minute).UnixMilli()
	kept := fmt.Sprintf("%d-kept.png", old)
	orphan := fmt.Sprintf("%d-orphan.png", old)
	young := fmt.Sprintf("%d-young.png", fresh)

	repo.On("ListFilePaths", mock.Anything).Return([]string{"/uploads/" + kept}, nil)
	store.On("List", mock.Anything).Return([]string{kept, orphan, young, "README.txt"}, nil)
	store.On("Delete", mock.Anything, orphan).Return(nil)

	removed, err := svc.Sweep(context.Background(), time.Hour, true)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan}, removed)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	removed, err = svc.Sweep(context.Background(), time.Hour, false)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan}, removed)
	store.AssertCalled(t, "Delete", mock.Anything, orphan)
	store.AssertNumberOfCalls(t, "Delete", 1)
}
