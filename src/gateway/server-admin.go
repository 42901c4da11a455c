package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/gateway/request"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/gateway/response"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/reconcile"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/registry"
	. "github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/model"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/vocab"

	"github.com/gin-gonic/gin"
)

func (self *Server) onGetAdminApplications(c *gin.Context) {
	applications, err := self.listAllApplications(c.Request.Context())
	if err != nil {
		// Serve the last cached rows instead of failing the listing outright
		records, dbErr := self.store.ListApplicationRecords(c.Request.Context())
		if dbErr != nil || len(records) == 0 {
			LOGE(c, err, http.StatusServiceUnavailable).Error("Failed to list applications")
			self.monitor.GetReport().Gateway.Errors.RequestFailures.Inc()
			return
		}

		LOG(c).WithError(err).Warn("Registry unreachable, serving cached application records")
		self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
		c.JSON(http.StatusOK, response.Ok(response.RecordsToResponse(records)))
		return
	}

	self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
	c.JSON(http.StatusOK, response.Ok(response.ReconciledToResponse(applications)))
}

// listAllApplications walks the registry's id sequence, maps statuses through
// the admin vocabulary and refreshes the local cache rows
func (self *Server) listAllApplications(ctx context.Context) (out []reconcile.Application, err error) {
	total, err := self.ledger.GetTotalApplications(ctx)
	if err != nil {
		return
	}

	out = make([]reconcile.Application, 0, total)
	for i := 0; i < int(total); i++ {
		id := reconcile.DeriveApplicationID(i)

		application, err := self.ledger.GetApplication(ctx, id)
		if err != nil {
			self.Log.WithError(err).WithField("application_id", id).Warn("Skipping application, fetch failed")
			continue
		}

		label, known := vocab.Map(int64(application.Status), vocab.Admin)
		if !known {
			self.Log.WithField("application_id", id).WithField("status_code", application.Status).Warn("Unknown status code")
		}

		out = append(out, reconcile.Application{
			Application:   *application,
			DisplayStatus: label,
		})
	}

	self.upsertRecords(out)
	return out, nil
}

// upsertRecords hands the fresh rows to the sink task that batches database
// writes. A full channel drops the row, the next refresh pass resends it.
func (self *Server) upsertRecords(applications []reconcile.Application) {
	if self.records == nil {
		return
	}

	for _, application := range applications {
		record := model.ApplicationRecord{
			ApplicationId: application.ID,
			OwnerIdentity: application.OwnerIdentity,
			OwnerWallet:   application.OwnerWallet.Hex(),
			DocumentHash:  application.DocumentHash,
			Status:        application.Status,
			DisplayStatus: application.DisplayStatus,
			TransactionId: application.TransactionID,
			SubmittedAt:   application.SubmittedAt,
			ReviewNotes:   application.ReviewNotes,
			Stale:         application.Stale,
		}

		select {
		case self.records <- record:
		default:
			self.Log.WithField("application_id", record.ApplicationId).Warn("Records channel full, dropping row")
			return
		}
	}
}

// RefreshAdminApplications re-reads the registry and refreshes the cache
// rows, wired as the refresher callback
func (self *Server) RefreshAdminApplications() (err error) {
	_, err = self.listAllApplications(self.Ctx)
	return
}

func (self *Server) onDecideApplication(status uint8) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			LOGE(c, nil, http.StatusBadRequest).Error("Missing application id")
			return
		}

		var in request.DecideApplication
		if c.Request.ContentLength > 0 {
			err := c.ShouldBindJSON(&in)
			if err != nil {
				LOGE(c, err, http.StatusBadRequest).Error("Failed to parse request")
				return
			}
		}

		txID, err := self.ledger.UpdateApplicationStatus(c.Request.Context(), id, status, in.ReviewNotes)
		if err != nil {
			httpStatus := http.StatusBadGateway
			switch {
			case errors.Is(err, registry.ErrNotFound):
				httpStatus = http.StatusNotFound
			case errors.Is(err, registry.ErrConfirmationTimeout):
				httpStatus = http.StatusGatewayTimeout
			}
			LOGE(c, err, httpStatus).Error("Failed to update application status")
			self.monitor.GetReport().Gateway.Errors.RequestFailures.Inc()
			return
		}

		label, _ := vocab.Map(int64(status), vocab.Admin)

		LOG(c).
			WithField("application_id", id).
			WithField("status", label).
			WithField("tx_id", txID).
			Info("Application status updated")

		self.notifyStatusChange(c.Request.Context(), id, status, label, in.ReviewNotes, txID)
		if self.refresher != nil {
			self.refresher.Poke()
		}

		self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
		c.JSON(http.StatusOK, response.Ok(gin.H{
			"id":             id,
			"status":         label,
			"transaction_id": txID,
		}))
	}
}

// notifyStatusChange publishes the decision to the notification channel,
// best effort. The owner identity comes from a follow-up read; a failed read
// sends the notification without it.
func (self *Server) notifyStatusChange(ctx context.Context, id string, status uint8, label, reviewNotes, txID string) {
	if self.notifications == nil {
		return
	}

	notification := &model.StatusChangeNotification{
		ApplicationId: id,
		Status:        status,
		DisplayStatus: label,
		ReviewNotes:   reviewNotes,
		TransactionId: txID,
	}

	application, err := self.ledger.GetApplication(ctx, id)
	if err == nil {
		notification.OwnerIdentity = application.OwnerIdentity

		// The owner's cached list is outdated now
		self.ownerCache.Delete(application.OwnerIdentity)
	}

	select {
	case self.notifications <- notification:
	default:
		self.Log.WithField("application_id", id).Warn("Notification channel full, dropping status change")
	}
}
