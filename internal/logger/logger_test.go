package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriterTagsServiceAndFiltersLevel(t *testing.T) {
	var buffer bytes.Buffer
	log := NewWithWriter(&buffer, "accessaid-test", zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	log.Info().Str("user", "7").Msg("visible")

	lines := bytes.Split(bytes.TrimSpace(buffer.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %s", len(lines), buffer.String())
	}

	entry := map[string]any{}
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["service"] != "accessaid-test" || entry["message"] != "visible" || entry["user"] != "7" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp field, got %v", entry)
	}
}
