package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Succeeded(t *testing.T) {
	r := NewRecorder()
	r.Succeeded(44100, 176444)

	if got := testutil.ToFloat64(r.FramesSynthesized); got != 44100 {
		t.Errorf("frames = %v, want 44100", got)
	}
	if got := testutil.ToFloat64(r.OutputBytes); got != 176444 {
		t.Errorf("bytes = %v, want 176444", got)
	}
	if got := testutil.ToFloat64(r.RunsTotal.WithLabelValues(OutcomeSuccess)); got != 1 {
		t.Errorf("success runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.LastSuccessSeconds); got <= 0 {
		t.Errorf("last success = %v, want a timestamp", got)
	}
}

func TestRecorder_Failed(t *testing.T) {
	r := NewRecorder()
	r.Failed()

	if got := testutil.ToFloat64(r.RunsTotal.WithLabelValues(OutcomeFailure)); got != 1 {
		t.Errorf("failure runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.LastSuccessSeconds); got != 0 {
		t.Errorf("last success = %v, want 0 after failure", got)
	}
}

func TestRecorder_ObserveStage(t *testing.T) {
	r := NewRecorder()
	r.ObserveStage(StageSynthesize, time.Now().Add(-time.Second))
	r.ObserveStage(StageEncode, time.Now())

	if got := testutil.ToFloat64(r.StageDuration.WithLabelValues(StageSynthesize)); got < 1 {
		t.Errorf("synthesize duration = %v, want >= 1s", got)
	}
	if n := testutil.CollectAndCount(r.StageDuration); n != 2 {
		t.Errorf("stage series = %d, want 2", n)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveStage(StageWrite, time.Now())
	r.Succeeded(176400, 705644)

	path := filepath.Join(t.TempDir(), "wavgen.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	body := string(data)

	for _, want := range []string{
		"wavgen_frames_synthesized 176400",
		"wavgen_output_bytes 705644",
		`wavgen_runs_total{outcome="success"} 1`,
		`wavgen_stage_duration_seconds{stage="write"}`,
		"# TYPE wavgen_last_success_timestamp_seconds gauge",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("textfile missing %q:\n%s", want, body)
		}
	}
}

func TestRecorder_WriteTextfile_BadPath(t *testing.T) {
	r := NewRecorder()
	path := filepath.Join(t.TempDir(), "missing", "wavgen.prom")

	if err := r.WriteTextfile(path); err == nil {
		t.Error("WriteTextfile() into missing directory should fail")
	}
}

func TestRecorder_Registry(t *testing.T) {
	r := NewRecorder()
	r.Failed()

	families, err := r.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) == 0 {
		t.Error("Gather() returned no metric families")
	}
}
