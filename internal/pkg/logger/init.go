package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer = os.Stdout

// InitLogger 以 JSON 格式输出到 stdout，并注入 trace_id
func InitLogger() {
	InitLoggerWithWriter(os.Stdout, log.LevelInfo)
}

func InitLoggerWithWriter(w io.Writer, level log.Level) {
	LogWriter = w
	h := log.NewJSONHandler(w, &log.HandlerOptions{Level: level})
	log.SetDefault(log.New(&ContextHandler{h}))
}
