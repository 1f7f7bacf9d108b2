package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := Setup("warn", "json", &buf)
	l.Info("dropped")
	l.Warn("kept", "vertices", 3)

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "dropped") {
		t.Errorf("info line logged at warn level: %s", out)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("not json: %v (%s)", err, out)
	}
	if rec["msg"] != "kept" || rec["vertices"] != float64(3) {
		t.Errorf("record = %v", rec)
	}
}

func TestSetup_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	Setup("", "", &buf).Info("ready")
	if !strings.Contains(buf.String(), "msg=ready") {
		t.Errorf("got %q", buf.String())
	}
}
