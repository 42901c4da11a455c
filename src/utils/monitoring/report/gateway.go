package report

import "go.uber.org/atomic"

type GatewayErrors struct {
	RequestFailures atomic.Uint64 `json:"request_failures"`
}

type GatewayState struct {
	RequestsServed atomic.Int64 `json:"requests_served"`
	CacheHits      atomic.Int64 `json:"cache_hits"`
}

type GatewayReport struct {
	State  GatewayState  `json:"state"`
	Errors GatewayErrors `json:"errors"`
}
