package services_test

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Kermitroid/outterspace2/internal/services"
	"github.com/Kermitroid/outterspace2/internal/services/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorageService(t *testing.T) (*services.StorageService, *mocks.MockObjectStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockObjectStore(ctrl)
	store.EXPECT().PublicURL(gomock.Any(), gomock.Any()).DoAndReturn(func(bucket, key string) string {
		return "http://localhost:8000/storage/v1/object/public/" + bucket + "/" + key
	}).AnyTimes()
	cfg := services.StorageConfig{Buckets: []string{"videos", "thumbnails"}}
	return services.NewStorageService(store, cfg, discardLogger()), store
}

func TestStorageService_Upload_GeneratedPath(t *testing.T) {
	t.Parallel()
	svc, store := newStorageService(t)
	userID := uuid.New()
	start := time.Now().UnixMilli()

	store.EXPECT().Put(gomock.Any(), "videos", gomock.Any(), gomock.Any(), "video/mp4").
		DoAndReturn(func(_ context.Context, _, key string, body io.Reader, _ string) (int64, error) {
			assert.True(t, strings.HasPrefix(key, userID.String()+"/"), key)
			assert.True(t, strings.HasSuffix(key, "_launch.mp4"), key)
			n, err := io.Copy(io.Discard, body)
			return n, err
		})

	obj, err := svc.Upload(context.Background(), userID, services.UploadInput{
		Bucket:      "videos",
		FileName:    `C:\clips\launch.mp4`,
		ContentType: "video/mp4",
		Body:        strings.NewReader("0123456789"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), obj.Size)
	require.Equal(t, "videos", obj.Bucket)
	require.Contains(t, obj.PublicURL, "/storage/v1/object/public/videos/"+obj.Path)

	stamp, _, _ := strings.Cut(strings.TrimPrefix(obj.Path, userID.String()+"/"), "_")
	millis, err := strconv.ParseInt(stamp, 10, 64)
	require.NoError(t, err)
	require.GreaterOrEqual(t, millis, start)
}

func TestStorageService_Upload_Rejects(t *testing.T) {
	t.Parallel()
	svc, _ := newStorageService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Upload(ctx, uuid.Nil, services.UploadInput{Bucket: "videos", Path: "a.mp4", Body: strings.NewReader("x")})
	require.True(t, services.IsAuthenticationRequired(err))

	_, err = svc.Upload(ctx, userID, services.UploadInput{Bucket: "secrets", Path: "a.mp4", Body: strings.NewReader("x")})
	require.True(t, services.IsValidation(err))

	_, err = svc.Upload(ctx, userID, services.UploadInput{Bucket: "videos", Path: "a.mp4"})
	require.True(t, services.IsValidation(err))

	_, err = svc.Upload(ctx, userID, services.UploadInput{Bucket: "videos", Path: "../other/a.mp4", Body: strings.NewReader("x")})
	require.True(t, services.IsValidation(err))

	// 其他用户的目录、bucket 根目录与仅前缀相似的目录都不可写，Put 没有 EXPECT。
	victim := uuid.New()
	for _, p := range []string{
		victim.String() + "/avatar.png",
		"/" + victim.String() + "//avatar.png",
		"clip.mp4",
		userID.String() + "-evil/clip.mp4",
		userID.String(),
	} {
		_, err = svc.Upload(ctx, userID, services.UploadInput{Bucket: "videos", Path: p, Body: strings.NewReader("x")})
		require.True(t, services.IsPermissionDenied(err), "path %q: got %v", p, err)
	}
}

func TestStorageService_Upload_OwnPath(t *testing.T) {
	t.Parallel()
	svc, store := newStorageService(t)
	userID := uuid.New()
	want := userID.String() + "/trips/clip.mp4"

	store.EXPECT().Put(gomock.Any(), "videos", want, gomock.Any(), gomock.Any()).Return(int64(1), nil)

	obj, err := svc.Upload(context.Background(), userID, services.UploadInput{
		Bucket: "videos",
		Path:   "/" + userID.String() + "/./trips/clip.mp4",
		Body:   strings.NewReader("x"),
	})
	require.NoError(t, err)
	require.Equal(t, want, obj.Path)
}

func TestStorageService_Upload_StoreFailure(t *testing.T) {
	t.Parallel()
	svc, store := newStorageService(t)

	userID := uuid.New()
	store.EXPECT().Put(gomock.Any(), "thumbnails", userID.String()+"/thumb.jpg", gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full"))

	_, err := svc.Upload(context.Background(), userID, services.UploadInput{
		Bucket: "thumbnails",
		Path:   "/" + userID.String() + "/thumb.jpg",
		Body:   strings.NewReader("x"),
	})
	require.True(t, services.IsStoreError(err))
}

func TestStorageService_PublicURL(t *testing.T) {
	t.Parallel()
	svc, _ := newStorageService(t)

	require.Empty(t, svc.PublicURL("", "a.mp4"))
	require.Empty(t, svc.PublicURL("videos", " "))
	require.Equal(t, "http://localhost:8000/storage/v1/object/public/videos/u/a.mp4", svc.PublicURL("videos", "/u/a.mp4"))
}

func TestCleanObjectPath(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "普通路径", raw: "user/clip.mp4", want: "user/clip.mp4"},
		{name: "前导斜杠", raw: "/user/clip.mp4", want: "user/clip.mp4"},
		{name: "重复斜杠", raw: "user//./clip.mp4", want: "user/clip.mp4"},
		{name: "反斜杠", raw: `user\clip.mp4`, want: "user/clip.mp4"},
		{name: "上级目录", raw: "user/../../etc/passwd", wantErr: true},
		{name: "空路径", raw: "  ", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := services.CleanObjectPath(tc.raw)
			if tc.wantErr {
				require.True(t, services.IsValidation(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
