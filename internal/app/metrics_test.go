package app

import (
	"testing"
	"time"
)

func TestMetrics_RecordFrame(t *testing.T) {
	m := NewMetrics()

	m.RecordFrame(2 * time.Millisecond)
	m.RecordFrame(4 * time.Millisecond)
	m.RecordFrame(3 * time.Millisecond)

	s := m.Snapshot()
	if s.FrameCount != 3 {
		t.Errorf("FrameCount = %d, want 3", s.FrameCount)
	}
	if s.AvgFrameTimeNs != int64(3*time.Millisecond) {
		t.Errorf("AvgFrameTimeNs = %d", s.AvgFrameTimeNs)
	}
	if s.MaxFrameTimeNs != int64(4*time.Millisecond) {
		t.Errorf("MaxFrameTimeNs = %d", s.MaxFrameTimeNs)
	}
	if s.LastFrameNs != int64(3*time.Millisecond) {
		t.Errorf("LastFrameNs = %d", s.LastFrameNs)
	}
	if s.AvgFrameMs() != 3 {
		t.Errorf("AvgFrameMs = %v", s.AvgFrameMs())
	}
}

func TestMetrics_RecordInput(t *testing.T) {
	m := NewMetrics()
	m.RecordInput(time.Millisecond)
	m.RecordInput(3 * time.Millisecond)
	m.RecordConfigReload()

	s := m.Snapshot()
	if s.InputCount != 2 || s.AvgInputTimeNs != int64(2*time.Millisecond) {
		t.Errorf("input = %d avg %d", s.InputCount, s.AvgInputTimeNs)
	}
	if s.ConfigReloads != 1 {
		t.Errorf("ConfigReloads = %d", s.ConfigReloads)
	}
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	s := NewMetrics().Snapshot()
	if s.FrameCount != 0 || s.AvgFrameTimeNs != 0 || s.AvgInputTimeNs != 0 {
		t.Errorf("empty snapshot = %+v", s)
	}
}
