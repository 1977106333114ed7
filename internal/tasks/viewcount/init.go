package viewcount

import (
	"github.com/Kermitroid/outterspace2/internal/repositories"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProvideRunner 以视频仓储作为计数存储构造 Runner。
func ProvideRunner(notifier *Notifier, repo *repositories.VideoRepository, cfg Config, logger log.Logger) (*Runner, error) {
	return NewRunner(notifier, repo, cfg, logger)
}

// ProviderSet 提供播放量通知队列与后台 Runner。
var ProviderSet = wire.NewSet(NewNotifier, ProvideRunner)
