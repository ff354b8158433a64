package kafconf

import (
	"time"

	"github.com/knadh/koanf/v2"
)

// extractor pulls typed fields out of the merged tree, remembering the first
// failure so field reads can be written as straight-line assignments. Once an
// error is recorded every later read is a no-op and the partial Settings is
// discarded by the caller, keeping resolution atomic.
type extractor struct {
	t   tree
	err error
}

func extract(k *koanf.Koanf) (Settings, error) {
	e := &extractor{t: tree{k: k.Cut(RootKey)}}

	s := Settings{
		BootstrapServers:   e.list(KeyBootstrapServers),
		ClientID:           e.str(KeyClientID),
		SendBufferBytes:    e.num(KeySendBufferBytes),
		ReceiveBufferBytes: e.num(KeyReceiveBufferBytes),
		ConnectionsMaxIdle: e.ms(KeyConnectionsMaxIdle),
		RequestTimeout:     e.ms(KeyRequestTimeout),
		MetadataMaxAge:     e.ms(KeyMetadataMaxAge),
		ReconnectBackoff:   e.ms(KeyReconnectBackoff),
		RetryBackoff:       e.ms(KeyRetryBackoff),

		GroupID:                e.str(KeyGroupID),
		SessionTimeout:         e.ms(KeySessionTimeout),
		HeartbeatInterval:      e.ms(KeyHeartbeatInterval),
		AutoOffsetReset:        enumField(e, KeyAutoOffsetReset, ParseOffsetReset),
		EnableAutoCommit:       e.flag(KeyEnableAutoCommit),
		AutoCommitInterval:     e.ms(KeyAutoCommitInterval),
		MaxPollRecords:         e.num(KeyMaxPollRecords),
		MaxPollInterval:        e.ms(KeyMaxPollInterval),
		MaxPartitionFetchBytes: e.num(KeyMaxPartitionFetchBytes),
		FetchMinBytes:          e.num(KeyFetchMinBytes),
		FetchMaxBytes:          e.num(KeyFetchMaxBytes),
		FetchMaxWait:           e.ms(KeyFetchMaxWait),

		SecurityProtocol:         enumField(e, KeySecurityProtocol, ParseSecurityProtocol),
		SASLMechanism:            enumField(e, KeySASLMechanism, ParseSASLMechanism),
		SASLKerberosServiceName:  e.optStr(KeySASLKerberosServiceName),
		SSLProtocol:              enumField(e, KeySSLProtocol, ParseSSLProtocol),
		SSLEnabledProtocols:      e.sslProtocolList(KeySSLEnabledProtocols),
		SSLProvider:              e.optStr(KeySSLProvider),
		SSLKeyPassword:           e.optStr(KeySSLKeyPassword),
		SSLKeystoreLocation:      e.optStr(KeySSLKeystoreLocation),
		SSLKeystorePassword:      e.optStr(KeySSLKeystorePassword),
		SSLKeystoreType:          e.str(KeySSLKeystoreType),
		SSLTruststoreLocation:    e.optStr(KeySSLTruststoreLocation),
		SSLTruststorePassword:    e.optStr(KeySSLTruststorePassword),
		SSLTruststoreType:        e.str(KeySSLTruststoreType),
		SSLKeymanagerAlgorithm:   e.str(KeySSLKeymanagerAlgorithm),
		SSLTrustmanagerAlgorithm: e.str(KeySSLTrustmanagerAlgorithm),

		ExcludeInternalTopics: e.flag(KeyExcludeInternalTopics),
		CheckCRCs:             e.flag(KeyCheckCRCs),
	}

	if e.err != nil {
		return Settings{}, e.err
	}
	return s, nil
}

func (e *extractor) str(key string) string {
	if e.err != nil {
		return ""
	}
	v, err := e.t.requiredString(key)
	e.err = err
	return v
}

func (e *extractor) optStr(key string) *string {
	if e.err != nil {
		return nil
	}
	v, err := e.t.optionalString(key)
	e.err = err
	return v
}

func (e *extractor) num(key string) int {
	if e.err != nil {
		return 0
	}
	v, err := e.t.requiredInt(key)
	e.err = err
	return v
}

func (e *extractor) flag(key string) bool {
	if e.err != nil {
		return false
	}
	v, err := e.t.requiredBool(key)
	e.err = err
	return v
}

func (e *extractor) ms(key string) time.Duration {
	if e.err != nil {
		return 0
	}
	v, err := e.t.requiredMillis(key)
	e.err = err
	return v
}

func (e *extractor) list(key string) []string {
	if e.err != nil {
		return nil
	}
	v, err := e.t.requiredList(key)
	e.err = err
	return v
}

// sslProtocolList matches every element of the list against the SSLProtocol
// table. One bad element fails the whole list; there is no lenient path that
// silently drops it.
func (e *extractor) sslProtocolList(key string) []SSLProtocol {
	parts := e.list(key)
	if e.err != nil {
		return nil
	}
	protocols := make([]SSLProtocol, len(parts))
	for i, part := range parts {
		p, err := ParseSSLProtocol(part)
		if err != nil {
			e.err = &KeyError{Key: key, Err: err}
			return nil
		}
		protocols[i] = p
	}
	return protocols
}

// enumField reads a required string and resolves it against the enum family's
// code table.
func enumField[T ~string](e *extractor, key string, parse func(string) (T, error)) T {
	code := e.str(key)
	if e.err != nil {
		return ""
	}
	v, err := parse(code)
	if err != nil {
		e.err = &KeyError{Key: key, Err: err}
		return ""
	}
	return v
}
