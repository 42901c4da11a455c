package gateway

import (
	"errors"
	"net/http"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/gateway/response"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/reconcile"
	. "github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/vocab"

	"github.com/gin-gonic/gin"
)

func (self *Server) onGetOwnerApplications(c *gin.Context) {
	identity := c.Param("identity")
	if identity == "" {
		LOGE(c, nil, http.StatusBadRequest).Error("Missing owner identity")
		return
	}

	if cached, ok := self.ownerCache.Get(identity); ok {
		self.monitor.GetReport().Gateway.State.CacheHits.Inc()
		self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
		c.JSON(http.StatusOK, response.Ok(cached))
		return
	}

	applications, err := self.engine.Reconcile(c.Request.Context(), identity, vocab.Owner)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reconcile.ErrIndexUnavailable) {
			status = http.StatusServiceUnavailable
		}
		LOGE(c, err, status).Error("Failed to reconcile owner applications")
		self.monitor.GetReport().Gateway.Errors.RequestFailures.Inc()
		return
	}

	out := response.ReconciledToResponse(applications)
	self.ownerCache.SetDefault(identity, out)

	LOG(c).
		WithField("owner", identity).
		WithField("num", len(applications)).
		Debug("Return owner applications")

	self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
	c.JSON(http.StatusOK, response.Ok(out))
}
