package kafconf

import "fmt"

// The enumerated fields only ever hold codes from the fixed tables below.
// Resolution looks incoming strings up against the table for the field's
// family and fails on a miss, so an invalid code cannot exist in a Settings
// value.

// OffsetReset is the policy applied when no committed offset exists for the
// group, or the committed offset is out of range.
type OffsetReset string

const (
	OffsetResetLatest   OffsetReset = "latest"
	OffsetResetEarliest OffsetReset = "earliest"
	OffsetResetNone     OffsetReset = "none"
)

var offsetResets = map[string]OffsetReset{
	"latest":   OffsetResetLatest,
	"earliest": OffsetResetEarliest,
	"none":     OffsetResetNone,
}

// ParseOffsetReset maps a config code to its OffsetReset value.
func ParseOffsetReset(code string) (OffsetReset, error) {
	v, ok := offsetResets[code]
	if !ok {
		return "", fmt.Errorf("%w: %q is not an offset reset policy", ErrUnknownEnum, code)
	}
	return v, nil
}

// SecurityProtocol selects the transport used to talk to the brokers.
type SecurityProtocol string

const (
	SecurityPlaintext     SecurityProtocol = "PLAINTEXT"
	SecuritySSL           SecurityProtocol = "SSL"
	SecuritySASLPlaintext SecurityProtocol = "SASL_PLAINTEXT"
	SecuritySASLSSL       SecurityProtocol = "SASL_SSL"
)

var securityProtocols = map[string]SecurityProtocol{
	"PLAINTEXT":      SecurityPlaintext,
	"SSL":            SecuritySSL,
	"SASL_PLAINTEXT": SecuritySASLPlaintext,
	"SASL_SSL":       SecuritySASLSSL,
}

// ParseSecurityProtocol maps a config code to its SecurityProtocol value.
func ParseSecurityProtocol(code string) (SecurityProtocol, error) {
	v, ok := securityProtocols[code]
	if !ok {
		return "", fmt.Errorf("%w: %q is not a security protocol", ErrUnknownEnum, code)
	}
	return v, nil
}

// SASLMechanism is the authentication mechanism used when the security
// protocol is SASL_PLAINTEXT or SASL_SSL.
type SASLMechanism string

const (
	SASLGSSAPI      SASLMechanism = "GSSAPI"
	SASLPlain       SASLMechanism = "PLAIN"
	SASLScramSHA256 SASLMechanism = "SCRAM-SHA-256"
	SASLScramSHA512 SASLMechanism = "SCRAM-SHA-512"
	SASLOAuthBearer SASLMechanism = "OAUTHBEARER"
)

var saslMechanisms = map[string]SASLMechanism{
	"GSSAPI":        SASLGSSAPI,
	"PLAIN":         SASLPlain,
	"SCRAM-SHA-256": SASLScramSHA256,
	"SCRAM-SHA-512": SASLScramSHA512,
	"OAUTHBEARER":   SASLOAuthBearer,
}

// ParseSASLMechanism maps a config code to its SASLMechanism value.
func ParseSASLMechanism(code string) (SASLMechanism, error) {
	v, ok := saslMechanisms[code]
	if !ok {
		return "", fmt.Errorf("%w: %q is not a SASL mechanism", ErrUnknownEnum, code)
	}
	return v, nil
}

// SSLProtocol is a TLS protocol version, used both for the negotiated
// protocol (ssl.protocol) and the enabled set (ssl.enabled.protocols).
type SSLProtocol string

const (
	TLSv1  SSLProtocol = "TLSv1"
	TLSv11 SSLProtocol = "TLSv1.1"
	TLSv12 SSLProtocol = "TLSv1.2"
	TLSv13 SSLProtocol = "TLSv1.3"
)

var sslProtocols = map[string]SSLProtocol{
	"TLSv1":   TLSv1,
	"TLSv1.1": TLSv11,
	"TLSv1.2": TLSv12,
	"TLSv1.3": TLSv13,
}

// ParseSSLProtocol maps a config code to its SSLProtocol value.
func ParseSSLProtocol(code string) (SSLProtocol, error) {
	v, ok := sslProtocols[code]
	if !ok {
		return "", fmt.Errorf("%w: %q is not an SSL protocol", ErrUnknownEnum, code)
	}
	return v, nil
}
