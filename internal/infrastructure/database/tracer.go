package database

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// zerologAdapter chuyển pgx tracelog events sang zerolog
type zerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter tạo tracelog.Logger ghi qua zerolog
func NewZerologAdapter(logger zerolog.Logger) tracelog.Logger {
	return &zerologAdapter{logger: logger.With().Str("component", "pgx").Logger()}
}

func (a *zerologAdapter) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelTrace:
		event = a.logger.Trace()
	case tracelog.LogLevelDebug:
		event = a.logger.Debug()
	case tracelog.LogLevelInfo:
		event = a.logger.Info()
	case tracelog.LogLevelWarn:
		event = a.logger.Warn()
	case tracelog.LogLevelError:
		event = a.logger.Error()
	default:
		return
	}

	if err, ok := data["err"].(error); ok {
		event = event.Err(err)
		delete(data, "err")
	}
	// args có thể chứa dữ liệu của client, không log
	delete(data, "args")

	event.Fields(data).Msg(msg)
}
