package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// ObjectStore 抽象对象存储后端，Put 覆盖同名对象。
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) (int64, error)
	PublicURL(bucket, key string) string
}

// StorageConfig 限定可写入的 bucket 集合。
type StorageConfig struct {
	Buckets []string
}

// UploadInput 描述一次上传；Path 为空时按 <user>/<毫秒时间戳>_<文件名> 生成，
// 指定 Path 时必须位于调用者自己的 <user>/ 前缀下。
type UploadInput struct {
	Bucket      string
	Path        string
	FileName    string
	ContentType string
	Body        io.Reader
}

// StoredObject 描述已写入的对象。
type StoredObject struct {
	Bucket    string `json:"bucket"`
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
	Size      int64  `json:"size"`
}

// StorageService 处理视频与缩略图文件的上传。
type StorageService struct {
	store   ObjectStore
	buckets map[string]struct{}
	log     *log.Helper
	now     func() time.Time
}

// NewStorageService 构造 StorageService。
func NewStorageService(store ObjectStore, cfg StorageConfig, logger log.Logger) *StorageService {
	buckets := make(map[string]struct{}, len(cfg.Buckets))
	for _, b := range cfg.Buckets {
		if b = strings.TrimSpace(b); b != "" {
			buckets[b] = struct{}{}
		}
	}
	return &StorageService{
		store:   store,
		buckets: buckets,
		log:     log.NewHelper(logger),
		now:     time.Now,
	}
}

// Upload 写入对象并返回其公开地址。
func (s *StorageService) Upload(ctx context.Context, userID uuid.UUID, input UploadInput) (*StoredObject, error) {
	if userID == uuid.Nil {
		return nil, AuthenticationRequired("you must be logged in to upload files")
	}
	bucket := strings.TrimSpace(input.Bucket)
	if _, ok := s.buckets[bucket]; !ok {
		return nil, ValidationError("bucket %q is not writable", input.Bucket)
	}
	if input.Body == nil {
		return nil, ValidationError("file is required")
	}
	objectPath := input.Path
	if strings.TrimSpace(objectPath) == "" {
		name := path.Base(strings.ReplaceAll(strings.TrimSpace(input.FileName), "\\", "/"))
		if name == "" || name == "." || name == "/" {
			return nil, ValidationError("file name is required")
		}
		objectPath = fmt.Sprintf("%s/%d_%s", userID, s.now().UnixMilli(), name)
	}
	key, err := CleanObjectPath(objectPath)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(key, userID.String()+"/") {
		return nil, PermissionDenied("object path %q is outside your upload folder", key)
	}

	size, err := s.store.Put(ctx, bucket, key, input.Body, input.ContentType)
	if err != nil {
		s.log.WithContext(ctx).Errorf("upload object failed: bucket=%s path=%s err=%v", bucket, key, err)
		return nil, storeFailure("upload object", err)
	}
	return &StoredObject{
		Bucket:    bucket,
		Path:      key,
		PublicURL: s.store.PublicURL(bucket, key),
		Size:      size,
	}, nil
}

// PublicURL 返回对象公开地址，bucket 或 path 为空时返回空串。
func (s *StorageService) PublicURL(bucket, objectPath string) string {
	if strings.TrimSpace(bucket) == "" || strings.TrimSpace(objectPath) == "" {
		return ""
	}
	return s.store.PublicURL(bucket, strings.TrimPrefix(objectPath, "/"))
}

// CleanObjectPath 规整对象路径，拒绝空路径与逃出 bucket 的 ".." 段。
func CleanObjectPath(raw string) (string, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "\\", "/")
	for _, seg := range strings.Split(raw, "/") {
		if seg == ".." {
			return "", ValidationError("object path %q escapes the bucket", raw)
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+raw), "/")
	if cleaned == "" {
		return "", ValidationError("object path is required")
	}
	return cleaned, nil
}
