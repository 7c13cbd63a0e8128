package job

import (
	"Microblog/internal/service"
	"context"
	log "log/slog"
	"time"
)

const mediaCleanupTimeout = 10 * time.Minute

// MediaCleanupJob 清理超过 ttl 仍未挂载到推文的图片
type MediaCleanupJob struct {
	mediaSvc service.MediaService
	ttl      time.Duration
}

func NewMediaCleanupJob(mediaSvc service.MediaService, ttl time.Duration) *MediaCleanupJob {
	return &MediaCleanupJob{mediaSvc: mediaSvc, ttl: ttl}
}

func (s *MediaCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), mediaCleanupTimeout)
	defer cancel()
	log.Info("start media cleanup job")

	count, err := s.mediaSvc.CleanupOrphans(ctx, time.Now().Add(-s.ttl))
	if err != nil {
		log.Error("media cleanup job failed", "cleaned_count", count, "err", err)
		return
	}

	if count > 0 {
		log.Info("media cleanup job finished", "cleaned_count", count)
	}
}
