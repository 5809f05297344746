package sendworker

import (
	"context"
	"time"

	"feedback360-backend/config"
	"feedback360-backend/lib/notification"
	baseworker "feedback360-backend/lib/utils/base-worker"
	"feedback360-backend/lib/utils/lock"
)

const lockKey = "email_send_worker"

func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Policy.EmailSendIntervalMin) * time.Minute
	i := &impl{
		BaseImpl: *baseworker.NewInstance("EmailSendWorker", 30*time.Second, interval),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
}

func (i impl) handle(ctx context.Context) {
	ok, err := lock.WithDelay(ctx, lockKey, 5*time.Second, func() error {
		notification.Instance.ProcessQueue(ctx)
		return nil
	})
	if err != nil {
		i.GetLogger().WithError(err).Error("ошибка обработки очереди писем")
		return
	}
	if !ok {
		i.GetLogger().Warn("очередь писем уже обрабатывается")
	}
}
