package objectstore

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router 暴露公开对象读取：GET /storage/v1/object/public/{bucket}/*。
func (s *Store) Router() http.Handler {
	r := chi.NewRouter()
	r.Get(PublicPathPrefix+"{bucket}/*", s.servePublic)
	r.Head(PublicPathPrefix+"{bucket}/*", s.servePublic)
	return r
}

func (s *Store) servePublic(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	key := chi.URLParam(r, "*")

	file, err := s.Open(bucket, key)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidKey):
			http.Error(w, "invalid object path", http.StatusBadRequest)
		case errors.Is(err, fs.ErrNotExist):
			http.NotFound(w, r)
		default:
			s.log.WithContext(r.Context()).Errorf("open object failed: bucket=%s key=%s err=%v", bucket, key, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "max-age=3600")
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
