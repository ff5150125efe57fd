package spinner

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer

	s := Start(&buf)
	time.Sleep(3 * interval)
	elapsed := s.Stop()
	s.Stop()

	if elapsed < 3*interval {
		t.Errorf("Stop() = %v, want at least %v", elapsed, 3*interval)
	}
	out := buf.String()
	if !strings.Contains(out, "s") || !strings.HasSuffix(out, "\r\033[K") {
		t.Errorf("output = %q", out)
	}
}
