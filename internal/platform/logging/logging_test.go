package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/kafconf/internal/platform/logging"
)

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, `"level":"INFO"`) {
		t.Errorf("output = %q, want it to contain '\"level\":\"INFO\"'", out)
	}
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("output = %q, want it to contain '\"msg\":\"hello\"'", out)
	}
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "text", &buf)

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("output = %q, want it to contain 'level=INFO'", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("warn", "json", &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output = %q, want info record filtered out", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("output = %q, want warn record present", out)
	}
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("verbose", "json", &buf)

	logger.Debug("dropped")
	logger.Info("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output = %q, want debug record filtered out at default info level", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("output = %q, want info record present", out)
	}
}

func TestNew_RedactsPropertyMapCredentials(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	props := map[string]string{
		"group.id":              "payments",
		"ssl.keystore.password": "hunter2",
	}
	logger.Info("resolved consumer configuration", slog.Any("properties", props))

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Errorf("output = %q, want keystore password redacted", out)
	}
	if !strings.Contains(out, "payments") {
		t.Errorf("output = %q, want non-sensitive values untouched", out)
	}
}

func TestNew_RedactsPasswordAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("auth", slog.String("password", "s3cret"))

	out := buf.String()
	if strings.Contains(out, "s3cret") {
		t.Errorf("output = %q, want password attr redacted", out)
	}
}
