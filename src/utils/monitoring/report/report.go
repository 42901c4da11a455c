package report

type Report struct {
	Run            *RunReport            `json:"run,omitempty"`
	Registry       *RegistryReport       `json:"registry,omitempty"`
	Reconciler     *ReconcilerReport     `json:"reconciler,omitempty"`
	Submitter      *SubmitterReport      `json:"submitter,omitempty"`
	Gateway        *GatewayReport        `json:"gateway,omitempty"`
	RedisPublisher *RedisPublisherReport `json:"redis_publisher,omitempty"`
}
