package dispatcher

import (
	"testing"
	"time"

	"github.com/dshills/vimops/internal/dispatcher/handler"
)

func TestMetricsTopActions(t *testing.T) {
	m := NewMetrics()

	m.RecordDispatch("editor.yankLine", time.Millisecond, handler.StatusOK)
	m.RecordDispatch("editor.deleteChar", time.Millisecond, handler.StatusOK)
	m.RecordDispatch("editor.deleteChar", 3*time.Millisecond, handler.StatusNoOp)
	m.RecordDispatch("editor.pasteAfter", time.Millisecond, handler.StatusOK)

	top := m.TopActions(2)
	if len(top) != 2 {
		t.Fatalf("len(TopActions(2)) = %d, want 2", len(top))
	}
	if top[0].Name != "editor.deleteChar" || top[1].Name != "editor.pasteAfter" {
		t.Errorf("TopActions(2) = %s, %s, want deleteChar, pasteAfter", top[0].Name, top[1].Name)
	}
	if got := top[0].AverageDuration(); got != 2*time.Millisecond {
		t.Errorf("AverageDuration() = %v, want 2ms", got)
	}
	if top[0].MaxDuration != 3*time.Millisecond {
		t.Errorf("MaxDuration = %v, want 3ms", top[0].MaxDuration)
	}

	if n := len(m.TopActions(10)); n != 3 {
		t.Errorf("len(TopActions(10)) = %d, want 3", n)
	}
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()
	m.RecordDispatch("editor.yankLine", time.Millisecond, handler.StatusError)
	m.RecordPanic("editor.yankLine")

	snap := m.Snapshot()
	if snap.TotalErrors != 1 || snap.TotalPanics != 1 || snap.AverageDuration != time.Millisecond {
		t.Errorf("Snapshot() = %+v, want one error and one panic", snap)
	}

	m.Reset()
	if snap := m.Snapshot(); snap != (MetricsSnapshot{}) {
		t.Errorf("Snapshot() after Reset = %+v, want zero", snap)
	}
	if m.ActionStats("editor.yankLine") != nil {
		t.Error("ActionStats should be nil after Reset")
	}
}
