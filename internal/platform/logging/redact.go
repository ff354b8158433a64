package logging

import (
	"log/slog"

	"github.com/m-mizutani/masq"
)

// SensitiveKeys is the canonical set of consumer property keys whose values
// are credentials and must be redacted before logging. Property maps rendered
// by the settings model use these exact dotted names.
var SensitiveKeys = map[string]bool{
	"ssl.key.password":        true,
	"ssl.keystore.password":   true,
	"ssl.truststore.password": true,
}

// settingsSecretFields are the Settings struct fields carrying the same
// secrets, covered for callers that log the typed value instead of the
// rendered property map.
var settingsSecretFields = []string{
	"SSLKeyPassword",
	"SSLKeystorePassword",
	"SSLTruststorePassword",
}

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by key for the rendered property map and by
// field name for the typed settings value.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveKeys)+len(settingsSecretFields)+1)

	for name := range SensitiveKeys {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range settingsSecretFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	// Catch-all for ad-hoc attrs named "password" at any nesting.
	opts = append(opts, masq.WithFieldName("password"))

	return masq.New(opts...)
}
