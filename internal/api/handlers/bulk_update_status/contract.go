package bulk_update_status

import "context"

type BookingService interface {
	ConfirmAll(ctx context.Context, ids []int64) (int64, error)
	CancelAll(ctx context.Context, ids []int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
