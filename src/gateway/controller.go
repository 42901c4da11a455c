package gateway

import (
	"time"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/events"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/pinata"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/reconcile"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/refresh"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/registry"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/session"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/model"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/monitoring"
	monitor_portal "github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/monitoring/portal"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/publisher"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/task"
)

type Controller struct {
	*task.Task
}

// Main class that orchestrates the portal gateway.
// Sets up the registry client, reconciliation, persistence and the REST APIs.
func NewController(config *config.Config) (self *Controller, err error) {
	self = new(Controller)

	self.Task = task.NewTask(config, "controller")

	monitor := monitor_portal.NewMonitor()

	monitorServer := monitoring.NewServer(config).
		WithMonitor(monitor)

	db, err := model.NewConnection(self.Ctx, config, "gateway")
	if err != nil {
		return
	}

	ledger, err := registry.NewClient(&config.Registry)
	if err != nil {
		return
	}
	ledger = ledger.WithMonitor(monitor)

	engine := reconcile.NewEngine(&config.Reconciler).
		WithLedger(ledger).
		WithMonitor(monitor)

	blobStore := pinata.NewClient(&config.Pinata)

	guard := session.NewGuard(&config.Session)

	store := events.NewStore(db)

	var notifications chan *model.StatusChangeNotification
	if config.Redis.Enabled {
		notifications = make(chan *model.StatusChangeNotification, config.Redis.MaxQueueSize)
	}

	redisPublisher := publisher.NewRedisPublisher[*model.StatusChangeNotification](config, "redis-publisher").
		WithInputChannel(notifications).
		WithMonitor(monitor)

	records := make(chan model.ApplicationRecord, 100)
	recordsSink := task.NewSinkTask[model.ApplicationRecord](config, "records-sink").
		WithBatchSize(50).
		WithOnFlush(5*time.Second, func(batch []model.ApplicationRecord) error {
			return store.UpsertApplicationRecords(self.Ctx, batch)
		}).
		WithInputChannel(records)

	refresher := refresh.NewRefresher(config)

	server := NewServer(config).
		WithMonitor(monitor).
		WithLedger(ledger).
		WithEngine(engine).
		WithBlobStore(blobStore).
		WithGuard(guard).
		WithStore(store).
		WithRefresher(refresher).
		WithNotificationChannel(notifications).
		WithRecordsChannel(records)

	refresher = refresher.WithOnRefresh(server.RefreshAdminApplications)

	self.Task.
		WithSubtask(monitor.Task).
		WithSubtask(monitorServer.Task).
		WithConditionalSubtask(config.Redis.Enabled, redisPublisher.Task).
		WithSubtask(recordsSink.Task).
		WithSubtask(refresher.Task).
		WithSubtask(server.Task)

	return
}
