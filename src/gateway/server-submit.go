package gateway

import (
	"errors"
	"net/http"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/gateway/request"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/gateway/response"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/registry"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/submit"
	. "github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// onSubmitApplication drives a whole submission in one request. The preview
// pause exists for owners reviewing their form in the portal; a backend
// caller has no form to re-read, so this path runs without it.
func (self *Server) onSubmitApplication(c *gin.Context) {
	var in request.SubmitApplication
	err := c.ShouldBindJSON(&in)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to parse request")
		return
	}

	if !common.IsHexAddress(in.OwnerWallet) {
		LOGE(c, nil, http.StatusBadRequest).Error("Invalid owner wallet address")
		return
	}

	cfg := self.Config.Submitter
	if cfg.ServerCooldownExempt {
		cfg.PreviewCooldown = 0
	}

	workflow := submit.NewWorkflow(&cfg, in.OwnerIdentity, common.HexToAddress(in.OwnerWallet)).
		WithLedger(self.ledger).
		WithBlobStore(self.blobStore).
		WithGuard(self.guard)

	err = self.driveWorkflow(workflow, &in)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Rejected application form")
		self.monitor.GetReport().Gateway.Errors.RequestFailures.Inc()
		return
	}

	result, err := workflow.Submit(c.Request.Context())
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, submit.ErrAlreadyInFlight):
			status = http.StatusConflict
		case errors.Is(err, registry.ErrConfirmationTimeout):
			status = http.StatusGatewayTimeout
		}

		switch {
		case errors.Is(err, submit.ErrDocumentGeneration):
			self.monitor.GetReport().Submitter.Errors.DocumentFailures.Inc()
		case errors.Is(err, submit.ErrUpload):
			self.monitor.GetReport().Submitter.Errors.UploadFailures.Inc()
		case errors.Is(err, submit.ErrLedgerWrite):
			self.monitor.GetReport().Submitter.Errors.LedgerFailures.Inc()
		}
		LOGE(c, err, status).Error("Failed to submit application")
		self.monitor.GetReport().Gateway.Errors.RequestFailures.Inc()
		return
	}

	LOG(c).
		WithField("owner", in.OwnerIdentity).
		WithField("application_id", result.ApplicationID).
		WithField("tx_id", result.TransactionID).
		Info("Application submitted")

	// The owner's cached list no longer includes the new application
	self.ownerCache.Delete(in.OwnerIdentity)
	if self.refresher != nil {
		self.refresher.Poke()
	}

	self.monitor.GetReport().Submitter.State.ApplicationsSubmitted.Inc()
	self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
	c.JSON(http.StatusCreated, response.Ok(response.SubmitResultToResponse(result)))
}

func (self *Server) driveWorkflow(workflow *submit.Workflow, in *request.SubmitApplication) (err error) {
	err = workflow.SetOwnerDetails(in.Owner)
	if err != nil {
		return
	}

	err = workflow.SetTheaterDetails(in.Theater)
	if err != nil {
		return
	}

	err = workflow.SetLegalDocuments(in.Legal)
	if err != nil {
		return
	}

	return workflow.EnterPreview()
}
