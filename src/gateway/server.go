// Package gateway is the portal-facing REST API: owner application views,
// admin decisions, non-interactive submissions and event listings.
package gateway

import (
	"context"
	"net/http"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/events"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/reconcile"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/refresh"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/registry"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/session"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/submit"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/config"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/model"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/monitoring"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/task"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/vocab"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
)

// Rest API server of the portal
type Server struct {
	*task.Task

	httpServer *http.Server
	Router     *gin.Engine

	monitor monitoring.Monitor

	ledger    registry.Ledger
	engine    *reconcile.Engine
	blobStore submit.BlobStore
	guard     *session.Guard
	store     *events.Store
	refresher *refresh.Refresher

	// Reconciled owner lists, keyed by owner identity
	ownerCache *cache.Cache

	// Status change notifications consumed by the redis publisher, nil when
	// notifications are disabled
	notifications chan *model.StatusChangeNotification

	// Freshly reconciled cache rows, batched into the database by a sink task
	records chan model.ApplicationRecord
}

func NewServer(config *config.Config) (self *Server) {
	self = new(Server)

	self.Task = task.NewTask(config, "gateway").
		WithSubtaskFunc(self.run).
		WithOnStop(self.stop)

	if !config.IsDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	self.Router = gin.New()
	self.Router.Use(gin.Recovery())

	self.ownerCache = cache.New(config.Gateway.CacheTtl, 2*config.Gateway.CacheTtl)

	self.httpServer = &http.Server{
		Addr:        self.Config.Gateway.ListenAddress,
		Handler:     self.Router,
		ReadTimeout: self.Config.Gateway.ServerRequestTimeout,
	}

	return
}

func (self *Server) WithMonitor(v monitoring.Monitor) *Server {
	self.monitor = v
	return self
}

func (self *Server) WithLedger(v registry.Ledger) *Server {
	self.ledger = v
	return self
}

func (self *Server) WithEngine(v *reconcile.Engine) *Server {
	self.engine = v
	return self
}

func (self *Server) WithBlobStore(v submit.BlobStore) *Server {
	self.blobStore = v
	return self
}

func (self *Server) WithGuard(v *session.Guard) *Server {
	self.guard = v
	return self
}

func (self *Server) WithStore(v *events.Store) *Server {
	self.store = v
	return self
}

func (self *Server) WithRefresher(v *refresh.Refresher) *Server {
	self.refresher = v
	return self
}

func (self *Server) WithNotificationChannel(v chan *model.StatusChangeNotification) *Server {
	self.notifications = v
	return self
}

func (self *Server) WithRecordsChannel(v chan model.ApplicationRecord) *Server {
	self.records = v
	return self
}

func (self *Server) run() (err error) {
	v1 := self.Router.Group("v1")
	{
		v1.GET("owner/:identity/applications", self.onGetOwnerApplications)

		v1.GET("admin/applications", self.onGetAdminApplications)
		v1.POST("admin/applications/:id/accept", self.onDecideApplication(uint8(vocab.StatusApproved)))
		v1.POST("admin/applications/:id/reject", self.onDecideApplication(uint8(vocab.StatusRejected)))

		v1.POST("applications", self.onSubmitApplication)

		v1.GET("events", self.onListEvents)
		v1.POST("events", self.onCreateEvent)
		v1.GET("events/:id", self.onGetEvent)
		v1.PUT("events/:id", self.onUpdateEvent)
		v1.DELETE("events/:id", self.onDeleteEvent)
	}

	err = self.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		self.Log.WithError(err).Error("Failed to start gateway REST server")
		return
	}
	return nil
}

func (self *Server) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), self.Config.StopTimeout)
	defer cancel()

	err := self.httpServer.Shutdown(ctx)
	if err != nil {
		self.Log.WithError(err).Error("Failed to gracefully shutdown gateway REST server")
		return
	}
}
