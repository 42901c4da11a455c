package monitor_portal

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	monitor *Monitor

	// Run
	UpForSeconds *prometheus.Desc

	// Errors
	RegistryCallFailures         *prometheus.Desc
	RegistryWriteFailures        *prometheus.Desc
	RegistryConfirmationTimeouts *prometheus.Desc
	ReconcilerIndexFailures      *prometheus.Desc
	ReconcilerEntryFetchFailures *prometheus.Desc
	ReconcilerUnknownStatusCodes *prometheus.Desc
	SubmitterDocumentFailures    *prometheus.Desc
	SubmitterUploadFailures      *prometheus.Desc
	SubmitterLedgerFailures      *prometheus.Desc
	GatewayRequestFailures       *prometheus.Desc
	RedisPublishFailures         *prometheus.Desc

	// State
	SubmissionsConfirmed             *prometheus.Desc
	StatusUpdatesConfirmed           *prometheus.Desc
	ReconcilerListsReconciled        *prometheus.Desc
	ReconcilerEntriesDegraded        *prometheus.Desc
	ReconcilerTransactionsRecovered  *prometheus.Desc
	SubmitterApplicationsSubmitted   *prometheus.Desc
	GatewayRequestsServed            *prometheus.Desc
	GatewayCacheHits                 *prometheus.Desc
	RedisPublisherMessagesPublished  *prometheus.Desc
}

func NewCollector() *Collector {
	return &Collector{
		UpForSeconds: prometheus.NewDesc("up_for_seconds", "", nil, nil),

		// Errors
		RegistryCallFailures:         prometheus.NewDesc("registry_call_failures", "", nil, nil),
		RegistryWriteFailures:        prometheus.NewDesc("registry_write_failures", "", nil, nil),
		RegistryConfirmationTimeouts: prometheus.NewDesc("registry_confirmation_timeouts", "", nil, nil),
		ReconcilerIndexFailures:      prometheus.NewDesc("reconciler_index_failures", "", nil, nil),
		ReconcilerEntryFetchFailures: prometheus.NewDesc("reconciler_entry_fetch_failures", "", nil, nil),
		ReconcilerUnknownStatusCodes: prometheus.NewDesc("reconciler_unknown_status_codes", "", nil, nil),
		SubmitterDocumentFailures:    prometheus.NewDesc("submitter_document_failures", "", nil, nil),
		SubmitterUploadFailures:      prometheus.NewDesc("submitter_upload_failures", "", nil, nil),
		SubmitterLedgerFailures:      prometheus.NewDesc("submitter_ledger_failures", "", nil, nil),
		GatewayRequestFailures:       prometheus.NewDesc("gateway_request_failures", "", nil, nil),
		RedisPublishFailures:         prometheus.NewDesc("redis_publish_failures", "", nil, nil),

		// State
		SubmissionsConfirmed:            prometheus.NewDesc("registry_submissions_confirmed", "", nil, nil),
		StatusUpdatesConfirmed:          prometheus.NewDesc("registry_status_updates_confirmed", "", nil, nil),
		ReconcilerListsReconciled:       prometheus.NewDesc("reconciler_lists_reconciled", "", nil, nil),
		ReconcilerEntriesDegraded:       prometheus.NewDesc("reconciler_entries_degraded_to_stale", "", nil, nil),
		ReconcilerTransactionsRecovered: prometheus.NewDesc("reconciler_transactions_recovered", "", nil, nil),
		SubmitterApplicationsSubmitted:  prometheus.NewDesc("submitter_applications_submitted", "", nil, nil),
		GatewayRequestsServed:           prometheus.NewDesc("gateway_requests_served", "", nil, nil),
		GatewayCacheHits:                prometheus.NewDesc("gateway_cache_hits", "", nil, nil),
		RedisPublisherMessagesPublished: prometheus.NewDesc("redis_publisher_messages_published", "", nil, nil),
	}
}

func (self *Collector) WithMonitor(m *Monitor) *Collector {
	self.monitor = m
	return self
}

func (self *Collector) Describe(ch chan<- *prometheus.Desc) {
	// Run
	ch <- self.UpForSeconds

	// Errors
	ch <- self.RegistryCallFailures
	ch <- self.RegistryWriteFailures
	ch <- self.RegistryConfirmationTimeouts
	ch <- self.ReconcilerIndexFailures
	ch <- self.ReconcilerEntryFetchFailures
	ch <- self.ReconcilerUnknownStatusCodes
	ch <- self.SubmitterDocumentFailures
	ch <- self.SubmitterUploadFailures
	ch <- self.SubmitterLedgerFailures
	ch <- self.GatewayRequestFailures
	ch <- self.RedisPublishFailures

	// State
	ch <- self.SubmissionsConfirmed
	ch <- self.StatusUpdatesConfirmed
	ch <- self.ReconcilerListsReconciled
	ch <- self.ReconcilerEntriesDegraded
	ch <- self.ReconcilerTransactionsRecovered
	ch <- self.SubmitterApplicationsSubmitted
	ch <- self.GatewayRequestsServed
	ch <- self.GatewayCacheHits
	ch <- self.RedisPublisherMessagesPublished
}

func (self *Collector) Collect(ch chan<- prometheus.Metric) {
	report := self.monitor.GetReport()

	// Run
	upForSeconds := uint64(time.Now().Unix() - report.Run.State.StartTimestamp.Load())
	ch <- prometheus.MustNewConstMetric(self.UpForSeconds, prometheus.GaugeValue, float64(upForSeconds))

	// Errors
	ch <- prometheus.MustNewConstMetric(self.RegistryCallFailures, prometheus.CounterValue, float64(report.Registry.Errors.CallFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.RegistryWriteFailures, prometheus.CounterValue, float64(report.Registry.Errors.WriteFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.RegistryConfirmationTimeouts, prometheus.CounterValue, float64(report.Registry.Errors.ConfirmationTimeouts.Load()))
	ch <- prometheus.MustNewConstMetric(self.ReconcilerIndexFailures, prometheus.CounterValue, float64(report.Reconciler.Errors.IndexFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.ReconcilerEntryFetchFailures, prometheus.CounterValue, float64(report.Reconciler.Errors.EntryFetchFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.ReconcilerUnknownStatusCodes, prometheus.CounterValue, float64(report.Reconciler.Errors.UnknownStatusCodes.Load()))
	ch <- prometheus.MustNewConstMetric(self.SubmitterDocumentFailures, prometheus.CounterValue, float64(report.Submitter.Errors.DocumentFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.SubmitterUploadFailures, prometheus.CounterValue, float64(report.Submitter.Errors.UploadFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.SubmitterLedgerFailures, prometheus.CounterValue, float64(report.Submitter.Errors.LedgerFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.GatewayRequestFailures, prometheus.CounterValue, float64(report.Gateway.Errors.RequestFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.RedisPublishFailures, prometheus.CounterValue, float64(report.RedisPublisher.Errors.Publish.Load()))

	// State
	ch <- prometheus.MustNewConstMetric(self.SubmissionsConfirmed, prometheus.CounterValue, float64(report.Registry.State.SubmissionsConfirmed.Load()))
	ch <- prometheus.MustNewConstMetric(self.StatusUpdatesConfirmed, prometheus.CounterValue, float64(report.Registry.State.StatusUpdatesConfirmed.Load()))
	ch <- prometheus.MustNewConstMetric(self.ReconcilerListsReconciled, prometheus.CounterValue, float64(report.Reconciler.State.ListsReconciled.Load()))
	ch <- prometheus.MustNewConstMetric(self.ReconcilerEntriesDegraded, prometheus.CounterValue, float64(report.Reconciler.State.EntriesDegradedToStale.Load()))
	ch <- prometheus.MustNewConstMetric(self.ReconcilerTransactionsRecovered, prometheus.CounterValue, float64(report.Reconciler.State.TransactionsRecovered.Load()))
	ch <- prometheus.MustNewConstMetric(self.SubmitterApplicationsSubmitted, prometheus.CounterValue, float64(report.Submitter.State.ApplicationsSubmitted.Load()))
	ch <- prometheus.MustNewConstMetric(self.GatewayRequestsServed, prometheus.CounterValue, float64(report.Gateway.State.RequestsServed.Load()))
	ch <- prometheus.MustNewConstMetric(self.GatewayCacheHits, prometheus.CounterValue, float64(report.Gateway.State.CacheHits.Load()))
	ch <- prometheus.MustNewConstMetric(self.RedisPublisherMessagesPublished, prometheus.CounterValue, float64(report.RedisPublisher.State.MessagesPublished.Load()))
}
