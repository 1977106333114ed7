// Package objectstore 提供本地文件系统对象存储，并通过 chi 路由公开读取。
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
)

// PublicPathPrefix 是公开对象读取路由前缀。
const PublicPathPrefix = "/storage/v1/object/public/"

// ErrInvalidKey 表示 bucket 或对象路径非法。
var ErrInvalidKey = errors.New("objectstore: invalid bucket or key")

// Config 描述存储根目录与公开地址。
type Config struct {
	Root          string
	PublicBaseURL string
	MaxUploadSize int64
}

// Store 以 <root>/<bucket>/<key> 布局保存对象。
type Store struct {
	root    string
	baseURL string
	maxSize int64
	log     *log.Helper
}

// NewStore 创建根目录并返回 Store。
func NewStore(cfg Config, logger log.Logger) (*Store, error) {
	root := strings.TrimSpace(cfg.Root)
	if root == "" {
		return nil, fmt.Errorf("objectstore: root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("objectstore: create root: %w", err)
	}
	return &Store{
		root:    root,
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
		maxSize: cfg.MaxUploadSize,
		log:     log.NewHelper(log.With(logger, "module", "infra.objectstore")),
	}, nil
}

// MaxUploadSize 返回单个对象允许的最大字节数，0 表示不限。
func (s *Store) MaxUploadSize() int64 { return s.maxSize }

// Put 写入对象，已存在时覆盖。先写临时文件再 rename，读者不会看到半截对象。
func (s *Store) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) (int64, error) {
	full, err := s.resolve(bucket, key)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return 0, fmt.Errorf("objectstore: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("objectstore: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	reader := body
	if s.maxSize > 0 {
		reader = io.LimitReader(body, s.maxSize+1)
	}
	size, err := io.Copy(tmp, reader)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("objectstore: write %s/%s: %w", bucket, key, err)
	}
	if s.maxSize > 0 && size > s.maxSize {
		return 0, fmt.Errorf("objectstore: object exceeds %d bytes", s.maxSize)
	}
	if err := os.Rename(tmpName, full); err != nil {
		return 0, fmt.Errorf("objectstore: commit %s/%s: %w", bucket, key, err)
	}
	tmpName = ""

	s.log.WithContext(ctx).Debugf("object stored: bucket=%s key=%s size=%d content_type=%s", bucket, key, size, contentType)
	return size, nil
}

// Open 打开对象用于读取。
func (s *Store) Open(bucket, key string) (*os.File, error) {
	full, err := s.resolve(bucket, key)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// PublicURL 返回对象公开地址，bucket 或 key 为空时返回空串。
func (s *Store) PublicURL(bucket, key string) string {
	bucket = strings.TrimSpace(bucket)
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if bucket == "" || key == "" {
		return ""
	}
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + PublicPathPrefix + url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}

func (s *Store) resolve(bucket, key string) (string, error) {
	if bucket == "" || strings.ContainsAny(bucket, `/\`) || bucket == "." || bucket == ".." {
		return "", ErrInvalidKey
	}
	key = strings.ReplaceAll(key, "\\", "/")
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return "", ErrInvalidKey
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.root, bucket, filepath.FromSlash(cleaned)), nil
}
