// Package kafconf models the tunable parameters of a Kafka consumer and
// resolves them from layered configuration sources.
//
// Resolution merges an optional user-supplied source (a YAML file or a named
// resource) over the built-in default source, then extracts every recognized
// field with type coercion. The result is an immutable Settings value that
// renders to the flat dotted-key property map the broker client consumes:
//
//	settings, err := kafconf.FromFile("consumer.yaml")
//	if err != nil {
//	    return err
//	}
//	client.Configure(settings.Properties())
//
// All keys live beneath the kafka.consumer root of the source tree. The
// built-in defaults supply a valid value for every required key, so a partial
// user source is always sufficient.
package kafconf

import "time"

// Settings holds every recognized consumer parameter. Instances are produced
// by Resolve, FromFile, FromResource or Default, with exactly one value per
// field, and must be treated as read-only after construction.
//
// Optional fields are nil when the merged sources do not set them; they are
// never an empty string.
type Settings struct {
	// Connectivity.
	BootstrapServers   []string
	ClientID           string
	SendBufferBytes    int
	ReceiveBufferBytes int
	ConnectionsMaxIdle time.Duration
	RequestTimeout     time.Duration
	MetadataMaxAge     time.Duration
	ReconnectBackoff   time.Duration
	RetryBackoff       time.Duration

	// Consumer group and fetch tuning.
	GroupID                string
	SessionTimeout         time.Duration
	HeartbeatInterval      time.Duration
	AutoOffsetReset        OffsetReset
	EnableAutoCommit       bool
	AutoCommitInterval     time.Duration
	MaxPollRecords         int
	MaxPollInterval        time.Duration
	MaxPartitionFetchBytes int
	FetchMinBytes          int
	FetchMaxBytes          int
	FetchMaxWait           time.Duration

	// Security.
	SecurityProtocol         SecurityProtocol
	SASLMechanism            SASLMechanism
	SASLKerberosServiceName  *string
	SSLProtocol              SSLProtocol
	SSLEnabledProtocols      []SSLProtocol
	SSLProvider              *string
	SSLKeyPassword           *string
	SSLKeystoreLocation      *string
	SSLKeystorePassword      *string
	SSLKeystoreType          string
	SSLTruststoreLocation    *string
	SSLTruststorePassword    *string
	SSLTruststoreType        string
	SSLKeymanagerAlgorithm   string
	SSLTrustmanagerAlgorithm string

	// Correctness.
	ExcludeInternalTopics bool
	CheckCRCs             bool
}
