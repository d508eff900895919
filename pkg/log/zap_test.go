package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"go-weather/configs"
	"go-weather/pkg/msg"
)

func TestConfigureLevelAndFields(t *testing.T) {
	var out bytes.Buffer
	Configure("warn", &out)
	t.Cleanup(func() { Configure("warn", os.Stderr) })

	Info("hidden")
	Warn("shown")
	Sync()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one entry, got %d:\n%s", len(lines), out.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["msg"] != "shown" || entry["level"] != "warn" || entry["logName"] == nil || entry["@timestamp"] == nil {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestHTTPLoggerTruncatesBodies(t *testing.T) {
	if err := msg.Init("", configs.Messages); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	Configure("debug", &out)
	t.Cleanup(func() { Configure("warn", os.Stderr) })

	logger := &HTTPLogger{MaxBodyLength: 4}
	logger.LogResponseSuccess("GET", "http://example.test", 200, "abcdefgh", time.Millisecond)
	logger.LogResponseError("GET", "http://example.test", 500, "", time.Millisecond, errors.New("boom"))

	logged := out.String()
	if !strings.Contains(logged, `"body":"abcd..."`) {
		t.Errorf("body not truncated:\n%s", logged)
	}
	if !strings.Contains(logged, `"level":"warn"`) || !strings.Contains(logged, `"error":"boom"`) {
		t.Errorf("failure not logged at warn:\n%s", logged)
	}
	for _, want := range []string{
		`"msg":"outbound GET http://example.test -> 200"`,
		`"msg":"outbound GET http://example.test failed (status 500)"`,
	} {
		if !strings.Contains(logged, want) {
			t.Errorf("missing %s in:\n%s", want, logged)
		}
	}
}
