package sweepworker

import (
	"context"
	"time"

	"feedback360-backend/config"
	"feedback360-backend/lib/deadline"
	baseworker "feedback360-backend/lib/utils/base-worker"
	"feedback360-backend/lib/utils/lock"
)

const lockKey = "deadline_sweep"

func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Policy.SweepIntervalMin) * time.Minute
	i := &impl{
		BaseImpl: *baseworker.NewInstance("DeadlineSweepWorker", time.Minute, interval),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
}

// handle - сборка в один поток, параллельный запуск пропускается
func (i impl) handle(ctx context.Context) {
	ok, err := lock.WithDelay(ctx, lockKey, 5*time.Second, func() error {
		return deadline.Instance.Sweep(ctx)
	})
	if err != nil {
		i.GetLogger().WithError(err).Error("ошибка сборки по дедлайнам")
		return
	}
	if !ok {
		i.GetLogger().Warn("сборка по дедлайнам уже выполняется")
	}
}
