package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	mediaCleanupJob  cron.Job
	mediaCleanupSpec string
	running          bool
}

// NewCronManager spec 支持 6 段（含秒）表达式和 @hourly 等描述符，为空时不注册
func NewCronManager(mediaCleanupSpec string, mediaCleanupJob cron.Job) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		mediaCleanupJob:  mediaCleanupJob,
		mediaCleanupSpec: mediaCleanupSpec,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if s.mediaCleanupSpec == "" {
		log.Info("media cleanup job disabled")
		return nil
	}
	if _, err := s.engine.AddJob(s.mediaCleanupSpec, s.mediaCleanupJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Running() bool {
	return s.running
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
	s.running = true
}

// Stop 未启动时直接返回，已启动时等待正在执行的任务结束
func (s *Manager) Stop() {
	if !s.running {
		return
	}
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
	s.running = false
}
