package cron

import log "log/slog"

// InitCron 注册任务并启动引擎，没有任何任务时不启动
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	if mgr.Entries() == 0 {
		log.Info("Cron Jobs skipped, nothing registered")
		return nil
	}
	log.Info("Cron Jobs starting...", "entries", mgr.Entries())
	mgr.Start()
	return nil
}
