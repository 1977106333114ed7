package controllers

import (
	"context"
	"net/http"

	"github.com/Kermitroid/outterspace2/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// OperationUpload 是上传路由的 operation。
const OperationUpload = "/outterspace.v1.StorageService/Upload"

const multipartMemory = 32 << 20

// StorageHandler 处理 multipart 文件上传。
type StorageHandler struct {
	*BaseHandler
	storage services.StorageServiceInterface
}

// NewStorageHandler 构造 StorageHandler。
func NewStorageHandler(storage services.StorageServiceInterface, base *BaseHandler) *StorageHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &StorageHandler{BaseHandler: base, storage: storage}
}

// Register 挂载路由。
func (h *StorageHandler) Register(r *khttp.Router) {
	if h == nil {
		return
	}
	r.POST("/storage/{bucket}", h.Upload)
}

// Upload 读取表单字段 file 与可选的 path 并写入 bucket。
func (h *StorageHandler) Upload(ctx khttp.Context) error {
	req := ctx.Request()
	if err := req.ParseMultipartForm(multipartMemory); err != nil {
		return services.ValidationError("invalid multipart form: %v", err)
	}
	file, header, err := req.FormFile("file")
	if err != nil {
		return services.ValidationError("file is required")
	}
	defer file.Close()

	input := services.UploadInput{
		Bucket:      ctx.Vars().Get("bucket"),
		Path:        req.FormValue("path"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}
	return h.invoke(ctx, OperationUpload, HandlerTypeCommand, http.StatusCreated, &input, func(c context.Context, _ any) (any, error) {
		return h.storage.Upload(c, IdentityFromContext(c).UserID, input)
	})
}
