package initializers

import (
	"context"
	"time"

	"feedback360-backend/config"
	"feedback360-backend/fiberlog"
	"feedback360-backend/lib/approval"
	"feedback360-backend/lib/cycle"
	"feedback360-backend/lib/deadline"
	sweepworker "feedback360-backend/lib/deadline/sweep-worker"
	"feedback360-backend/lib/employee"
	"feedback360-backend/lib/external"
	xlsexport "feedback360-backend/lib/export/xls"
	"feedback360-backend/lib/feedback"
	filestorage "feedback360-backend/lib/file-storage"
	"feedback360-backend/lib/nomination"
	"feedback360-backend/lib/notification"
	sendworker "feedback360-backend/lib/notification/send-worker"
	"feedback360-backend/lib/question"
	"feedback360-backend/lib/review"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger()
	InitDBConnection()
	InitS3()
	InitSmtp()
	notification.NewHandler()
	external.NewHandler()
	review.NewHandler()
	approval.NewHandler()
	deadline.NewHandler()
	nomination.NewHandler()
	employee.NewHandler()
	cycle.NewHandler()
	question.NewHandler()
	feedback.NewHandler()
	xlsexport.NewHandler()
	filestorage.NewHandler()
	go initWorkers(ctx)
}

// запускаем с промежутком чтоб размыть нагрузку
func initWorkers(ctx context.Context) {
	// Задача отправки писем из очереди
	sendworker.StartWorker(ctx)

	if makeTimeGap(ctx) {
		// Задача автопереходов и напоминаний по дедлайнам
		sweepworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
