package kafka

// Config holds broker connection parameters shared by producers and
// consumers. Local development needs only Brokers; SASL and TLS are for
// managed clusters.
type Config struct {
	Brokers       []string
	ConsumerGroup string

	TLS bool

	SASLEnabled   bool
	SASLMechanism string // "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string
}
