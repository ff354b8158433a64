package kafconf_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/kafconf"
)

func TestParseOffsetReset(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"latest", "earliest", "none"} {
		v, err := kafconf.ParseOffsetReset(code)
		if err != nil {
			t.Errorf("ParseOffsetReset(%q) error: %v", code, err)
		}
		if string(v) != code {
			t.Errorf("ParseOffsetReset(%q) = %q, want code preserved", code, v)
		}
	}
}

func TestParseOffsetReset_RejectsUnknownCode(t *testing.T) {
	t.Parallel()

	_, err := kafconf.ParseOffsetReset("bogus")
	if !errors.Is(err, kafconf.ErrUnknownEnum) {
		t.Fatalf("error = %v, want ErrUnknownEnum", err)
	}
}

func TestParseSecurityProtocol(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"PLAINTEXT", "SSL", "SASL_PLAINTEXT", "SASL_SSL"} {
		if _, err := kafconf.ParseSecurityProtocol(code); err != nil {
			t.Errorf("ParseSecurityProtocol(%q) error: %v", code, err)
		}
	}

	// Codes are case-sensitive.
	if _, err := kafconf.ParseSecurityProtocol("plaintext"); !errors.Is(err, kafconf.ErrUnknownEnum) {
		t.Errorf("ParseSecurityProtocol(\"plaintext\") error = %v, want ErrUnknownEnum", err)
	}
}

func TestParseSASLMechanism(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"GSSAPI", "PLAIN", "SCRAM-SHA-256", "SCRAM-SHA-512", "OAUTHBEARER"} {
		if _, err := kafconf.ParseSASLMechanism(code); err != nil {
			t.Errorf("ParseSASLMechanism(%q) error: %v", code, err)
		}
	}

	if _, err := kafconf.ParseSASLMechanism("NTLM"); !errors.Is(err, kafconf.ErrUnknownEnum) {
		t.Errorf("ParseSASLMechanism(\"NTLM\") error = %v, want ErrUnknownEnum", err)
	}
}

func TestParseSSLProtocol(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"TLSv1", "TLSv1.1", "TLSv1.2", "TLSv1.3"} {
		if _, err := kafconf.ParseSSLProtocol(code); err != nil {
			t.Errorf("ParseSSLProtocol(%q) error: %v", code, err)
		}
	}

	if _, err := kafconf.ParseSSLProtocol("SSLv3"); !errors.Is(err, kafconf.ErrUnknownEnum) {
		t.Errorf("ParseSSLProtocol(\"SSLv3\") error = %v, want ErrUnknownEnum", err)
	}
}
