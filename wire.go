package kafconf

import (
	"strconv"
	"strings"
	"time"
)

// WireMap renders the settings to the client wire format: exactly one entry
// per recognized key. Durations render as millisecond counts, booleans as
// lowercase strings, lists as comma-joined codes. Absent optional fields map
// to nil so callers can distinguish "unset" from "set to empty".
//
// WireMap is pure and total; it cannot fail for any Settings value.
func (s Settings) WireMap() map[string]*string {
	m := make(map[string]*string, len(RequiredKeys)+len(OptionalKeys))

	put := func(key, value string) {
		m[key] = &value
	}
	putOpt := func(key string, value *string) {
		if value == nil {
			m[key] = nil
			return
		}
		put(key, *value)
	}

	put(KeyBootstrapServers, strings.Join(s.BootstrapServers, ","))
	put(KeyClientID, s.ClientID)
	put(KeySendBufferBytes, strconv.Itoa(s.SendBufferBytes))
	put(KeyReceiveBufferBytes, strconv.Itoa(s.ReceiveBufferBytes))
	put(KeyConnectionsMaxIdle, millis(s.ConnectionsMaxIdle))
	put(KeyRequestTimeout, millis(s.RequestTimeout))
	put(KeyMetadataMaxAge, millis(s.MetadataMaxAge))
	put(KeyReconnectBackoff, millis(s.ReconnectBackoff))
	put(KeyRetryBackoff, millis(s.RetryBackoff))

	put(KeyGroupID, s.GroupID)
	put(KeySessionTimeout, millis(s.SessionTimeout))
	put(KeyHeartbeatInterval, millis(s.HeartbeatInterval))
	put(KeyAutoOffsetReset, string(s.AutoOffsetReset))
	put(KeyEnableAutoCommit, strconv.FormatBool(s.EnableAutoCommit))
	put(KeyAutoCommitInterval, millis(s.AutoCommitInterval))
	put(KeyMaxPollRecords, strconv.Itoa(s.MaxPollRecords))
	put(KeyMaxPollInterval, millis(s.MaxPollInterval))
	put(KeyMaxPartitionFetchBytes, strconv.Itoa(s.MaxPartitionFetchBytes))
	put(KeyFetchMinBytes, strconv.Itoa(s.FetchMinBytes))
	put(KeyFetchMaxBytes, strconv.Itoa(s.FetchMaxBytes))
	put(KeyFetchMaxWait, millis(s.FetchMaxWait))

	put(KeySecurityProtocol, string(s.SecurityProtocol))
	put(KeySASLMechanism, string(s.SASLMechanism))
	putOpt(KeySASLKerberosServiceName, s.SASLKerberosServiceName)
	put(KeySSLProtocol, string(s.SSLProtocol))
	put(KeySSLEnabledProtocols, joinProtocols(s.SSLEnabledProtocols))
	putOpt(KeySSLProvider, s.SSLProvider)
	putOpt(KeySSLKeyPassword, s.SSLKeyPassword)
	putOpt(KeySSLKeystoreLocation, s.SSLKeystoreLocation)
	putOpt(KeySSLKeystorePassword, s.SSLKeystorePassword)
	put(KeySSLKeystoreType, s.SSLKeystoreType)
	putOpt(KeySSLTruststoreLocation, s.SSLTruststoreLocation)
	putOpt(KeySSLTruststorePassword, s.SSLTruststorePassword)
	put(KeySSLTruststoreType, s.SSLTruststoreType)
	put(KeySSLKeymanagerAlgorithm, s.SSLKeymanagerAlgorithm)
	put(KeySSLTrustmanagerAlgorithm, s.SSLTrustmanagerAlgorithm)

	put(KeyExcludeInternalTopics, strconv.FormatBool(s.ExcludeInternalTopics))
	put(KeyCheckCRCs, strconv.FormatBool(s.CheckCRCs))

	return m
}

// Properties filters the wire map down to present entries. This is the
// literal payload handed to the broker client: absent optional keys are
// dropped, never emitted as empty strings.
func (s Settings) Properties() map[string]string {
	wire := s.WireMap()
	props := make(map[string]string, len(wire))
	for key, value := range wire {
		if value != nil {
			props[key] = *value
		}
	}
	return props
}

func millis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

func joinProtocols(protocols []SSLProtocol) string {
	codes := make([]string, len(protocols))
	for i, p := range protocols {
		codes[i] = string(p)
	}
	return strings.Join(codes, ",")
}
