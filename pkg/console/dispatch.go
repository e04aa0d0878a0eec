package console

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"fleetpanel.dev/device-console-service/pkg/common"
)

// PushJob is one best-effort delivery to one device push token.
type PushJob struct {
	Token string
	Data  map[string]string
}

// PushDispatcher decouples command issuing from push delivery: Enqueue
// returns immediately, a worker drains the queue in the background. A full
// queue drops the job — delivery is best effort with no retry, and the
// device's status report is the only delivery signal the system trusts.
type PushDispatcher struct {
	pusher IPush
	jobs   chan PushJob
	wg     sync.WaitGroup
}

func NewPushDispatcher(pusher IPush, buffer int) *PushDispatcher {
	return &PushDispatcher{
		pusher: pusher,
		jobs:   make(chan PushJob, buffer),
	}
}

func (d *PushDispatcher) dispatchLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNamePushDispatcher,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPush),
	)
}

func (d *PushDispatcher) Start(workers int) {
	for range workers {
		d.wg.Add(1)
		go d.run()
	}
}

func (d *PushDispatcher) run() {
	defer d.wg.Done()
	logger := d.dispatchLogger()
	for job := range d.jobs {
		if d.pusher == nil {
			logger.Warn("No push channel configured, dropping job")
			continue
		}
		if err := d.pusher.Send(context.Background(), job.Token, job.Data); err != nil {
			logger.Warn("Push delivery failed", zap.Error(err))
			continue
		}
		logger.Info("Push delivered", zap.String("command_id", job.Data["command_id"]))
	}
}

func (d *PushDispatcher) Enqueue(job PushJob) bool {
	select {
	case d.jobs <- job:
		return true
	default:
		d.dispatchLogger().Warn("Push queue full, dropping job",
			zap.String("command_id", job.Data["command_id"]))
		return false
	}
}

// Stop closes the queue and waits for in-flight deliveries.
func (d *PushDispatcher) Stop() {
	close(d.jobs)
	d.wg.Wait()
}
