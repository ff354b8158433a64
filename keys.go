package kafconf

// Dotted property keys recognized by the resolver and emitted by WireMap.
// These match the broker client's configuration names verbatim.
const (
	KeyBootstrapServers   = "bootstrap.servers"
	KeyClientID           = "client.id"
	KeySendBufferBytes    = "send.buffer.bytes"
	KeyReceiveBufferBytes = "receive.buffer.bytes"
	KeyConnectionsMaxIdle = "connections.max.idle.ms"
	KeyRequestTimeout     = "request.timeout.ms"
	KeyMetadataMaxAge     = "metadata.max.age.ms"
	KeyReconnectBackoff   = "reconnect.backoff.ms"
	KeyRetryBackoff       = "retry.backoff.ms"

	KeyGroupID                = "group.id"
	KeySessionTimeout         = "session.timeout.ms"
	KeyHeartbeatInterval      = "heartbeat.interval.ms"
	KeyAutoOffsetReset        = "auto.offset.reset"
	KeyEnableAutoCommit       = "enable.auto.commit"
	KeyAutoCommitInterval     = "auto.commit.interval.ms"
	KeyMaxPollRecords         = "max.poll.records"
	KeyMaxPollInterval        = "max.poll.interval.ms"
	KeyMaxPartitionFetchBytes = "max.partition.fetch.bytes"
	KeyFetchMinBytes          = "fetch.min.bytes"
	KeyFetchMaxBytes          = "fetch.max.bytes"
	KeyFetchMaxWait           = "fetch.max.wait.ms"

	KeySecurityProtocol         = "security.protocol"
	KeySASLMechanism            = "sasl.mechanism"
	KeySASLKerberosServiceName  = "sasl.kerberos.service.name"
	KeySSLProtocol              = "ssl.protocol"
	KeySSLEnabledProtocols      = "ssl.enabled.protocols"
	KeySSLProvider              = "ssl.provider"
	KeySSLKeyPassword           = "ssl.key.password"
	KeySSLKeystoreLocation      = "ssl.keystore.location"
	KeySSLKeystorePassword      = "ssl.keystore.password"
	KeySSLKeystoreType          = "ssl.keystore.type"
	KeySSLTruststoreLocation    = "ssl.truststore.location"
	KeySSLTruststorePassword    = "ssl.truststore.password"
	KeySSLTruststoreType        = "ssl.truststore.type"
	KeySSLKeymanagerAlgorithm   = "ssl.keymanager.algorithm"
	KeySSLTrustmanagerAlgorithm = "ssl.trustmanager.algorithm"

	KeyExcludeInternalTopics = "exclude.internal.topics"
	KeyCheckCRCs             = "check.crcs"
)

// RequiredKeys lists every key the merged sources must supply, in rendering
// order. The built-in default source covers all of them.
var RequiredKeys = []string{
	KeyBootstrapServers,
	KeyClientID,
	KeyGroupID,
	KeySessionTimeout,
	KeyHeartbeatInterval,
	KeyAutoOffsetReset,
	KeyEnableAutoCommit,
	KeyAutoCommitInterval,
	KeyMaxPollRecords,
	KeyMaxPollInterval,
	KeyMaxPartitionFetchBytes,
	KeyFetchMinBytes,
	KeyFetchMaxBytes,
	KeyFetchMaxWait,
	KeySendBufferBytes,
	KeyReceiveBufferBytes,
	KeyConnectionsMaxIdle,
	KeyRequestTimeout,
	KeyMetadataMaxAge,
	KeyReconnectBackoff,
	KeyRetryBackoff,
	KeySecurityProtocol,
	KeySASLMechanism,
	KeySSLKeystoreType,
	KeySSLTruststoreType,
	KeySSLProtocol,
	KeySSLEnabledProtocols,
	KeySSLKeymanagerAlgorithm,
	KeySSLTrustmanagerAlgorithm,
	KeyExcludeInternalTopics,
	KeyCheckCRCs,
}

// OptionalKeys lists the keys a source may omit. Absent optionals surface as
// nil markers in WireMap and are dropped from Properties.
var OptionalKeys = []string{
	KeySASLKerberosServiceName,
	KeySSLKeyPassword,
	KeySSLKeystoreLocation,
	KeySSLKeystorePassword,
	KeySSLTruststoreLocation,
	KeySSLTruststorePassword,
	KeySSLProvider,
}
