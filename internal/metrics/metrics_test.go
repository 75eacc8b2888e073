package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Observe(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObserveDataset("orders", 1234, 56789)
	r.ObserveDataset("orders", 1500, 60000)
	r.ObserveDataset("labs", 10, 100)
	r.ObserveRun(time.Unix(1700000000, 0), 1500*time.Millisecond)
	r.ObserveRun(time.Unix(1700000100, 0), 2*time.Second)

	if got := testutil.ToFloat64(r.records.WithLabelValues("orders")); got != 1500 {
		t.Errorf("orders records = %v, want 1500", got)
	}
	if got := testutil.ToFloat64(r.bytes.WithLabelValues("labs")); got != 100 {
		t.Errorf("labs bytes = %v, want 100", got)
	}
	if got := testutil.ToFloat64(r.runs); got != 2 {
		t.Errorf("runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.lastSuccess); got != 1700000100 {
		t.Errorf("last success = %v", got)
	}
	if got := testutil.ToFloat64(r.duration); got != 2 {
		t.Errorf("duration = %v, want 2", got)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObserveDataset("deviations", 42, 4200)

	path := filepath.Join(t.TempDir(), "textfile", "dashmock.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `dashmock_records_generated{dataset="deviations"} 42`) {
		t.Errorf("textfile missing records gauge:\n%s", data)
	}
}
