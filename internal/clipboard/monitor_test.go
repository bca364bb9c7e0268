package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/berrythewa/clipcycle/internal/mocks"
)

func TestMonitor_Poll(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClip := mocks.NewMockClipboard(ctrl)
	gomock.InOrder(
		mockClip.EXPECT().ReadText().Return("initial content", nil),
		mockClip.EXPECT().ReadText().Return("initial content", nil),
		mockClip.EXPECT().ReadText().Return("new content", nil),
		mockClip.EXPECT().ReadText().Return("new content", nil),
		mockClip.EXPECT().ReadText().Return("more content", nil),
	)

	history := NewClipboardHistory(3)
	m := NewMonitor(mockClip, history, zaptest.NewLogger(t), 10*time.Millisecond)

	m.prime()
	for i := 0; i < 4; i++ {
		m.poll()
	}

	// content present at startup is not a fresh copy
	want := []string{"new content", "more content"}
	if diff := cmp.Diff(want, history.Snapshot().Entries); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}

	stats := m.Stats()
	if stats.Reads != 5 || stats.Inserts != 2 || stats.Changes != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestMonitor_PrimeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClip := mocks.NewMockClipboard(ctrl)
	gomock.InOrder(
		mockClip.EXPECT().ReadText().Return("", errors.New("clipboard locked")),
		mockClip.EXPECT().ReadText().Return("already there", nil),
	)

	history := NewClipboardHistory(3)
	m := NewMonitor(mockClip, history, nil, 0)

	m.prime()
	if _, ok := m.LastSeen(); ok {
		t.Fatal("lastSeen set after failed initial read")
	}
	m.poll()

	if diff := cmp.Diff([]string{"already there"}, history.Snapshot().Entries); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
	if m.Interval() != DefaultPollInterval {
		t.Errorf("interval = %v, want default", m.Interval())
	}
}

func TestMonitor_ErrorHandling(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClip := mocks.NewMockClipboard(ctrl)
	gomock.InOrder(
		mockClip.EXPECT().ReadText().Return("", nil),
		mockClip.EXPECT().ReadText().Return("", errors.New("clipboard error")),
		mockClip.EXPECT().ReadText().Return("", errors.New("clipboard error")),
		mockClip.EXPECT().ReadText().Return("test", nil),
	)

	core, logs := observer.New(zap.DebugLevel)
	history := NewClipboardHistory(3)
	m := NewMonitor(mockClip, history, zap.New(core), time.Millisecond)

	m.prime()
	m.poll()
	m.poll()
	m.poll()

	if diff := cmp.Diff([]string{"test"}, history.Snapshot().Entries); diff != "" {
		t.Errorf("Monitor did not recover from errors (-want +got):\n%s", diff)
	}
	if n := logs.FilterMessage("Error reading clipboard").Len(); n != 2 {
		t.Errorf("logged %d read errors, want 2", n)
	}
	if got := m.Stats().ReadFailures; got != 2 {
		t.Errorf("ReadFailures = %d, want 2", got)
	}
}

func TestMonitor_ActivateIsNotReinserted(t *testing.T) {
	clip := NewMemoryClipboard()
	history := NewClipboardHistory(3)
	m := NewMonitor(clip, history, zaptest.NewLogger(t), time.Millisecond)

	m.prime()
	for _, text := range []string{"a", "b", "c"} {
		if err := clip.WriteText(text); err != nil {
			t.Fatal(err)
		}
		m.poll()
	}

	entry, ok := history.CycleActive()
	if !ok || entry != "a" {
		t.Fatalf("CycleActive() = %q, %v", entry, ok)
	}
	if err := m.Activate(entry); err != nil {
		t.Fatalf("Activate() failed: %v", err)
	}
	m.poll()

	snap := history.Snapshot()
	if diff := cmp.Diff([]string{"a", "b", "c"}, snap.Entries); diff != "" {
		t.Errorf("write-back was stored again (-want +got):\n%s", diff)
	}
	if active, _ := snap.ActiveEntry(); active != "a" {
		t.Errorf("active = %q, want a", active)
	}
	if got, _ := clip.ReadText(); got != "a" {
		t.Errorf("clipboard = %q, want a", got)
	}
}

func TestMonitor_ActivateWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClip := mocks.NewMockClipboard(ctrl)
	mockClip.EXPECT().ReadText().Return("before", nil)
	mockClip.EXPECT().WriteText("next").Return(errors.New("busy"))

	m := NewMonitor(mockClip, NewClipboardHistory(3), nil, time.Millisecond)
	m.prime()

	if err := m.Activate("next"); err == nil {
		t.Fatal("Activate() succeeded despite write failure")
	}
	if seen, _ := m.LastSeen(); seen != "before" {
		t.Errorf("lastSeen = %q after failed write, want %q", seen, "before")
	}
}

func TestMonitor_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClip := mocks.NewMockClipboard(ctrl)
	mockClip.EXPECT().Name().Return("mock").AnyTimes()
	mockClip.EXPECT().ReadText().Return("steady", nil).AnyTimes()

	interval := 5 * time.Millisecond
	m := NewMonitor(mockClip, NewClipboardHistory(3), zaptest.NewLogger(t), interval)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	time.Sleep(4 * interval)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after cancellation")
	}

	if m.Stats().Reads < 2 {
		t.Errorf("expected several reads, got %d", m.Stats().Reads)
	}
}

func BenchmarkMonitor_Poll(b *testing.B) {
	clip := NewMemoryClipboard()
	m := NewMonitor(clip, NewClipboardHistory(3), nil, time.Millisecond)
	m.prime()

	texts := []string{"alpha", "beta", "gamma"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = clip.WriteText(texts[i%len(texts)])
		m.poll()
	}
}

func TestMonitor_OnCopy(t *testing.T) {
	clip := NewMemoryClipboard()
	history := NewClipboardHistory(3)
	m := NewMonitor(clip, history, nil, time.Millisecond)

	var copied []string
	m.OnCopy(func(text string) { copied = append(copied, text) })

	m.prime()
	_ = clip.WriteText("one")
	m.poll()
	_ = clip.WriteText("   ")
	m.poll()
	_ = clip.WriteText("two")
	m.poll()
	if err := m.Activate("one"); err != nil {
		t.Fatal(err)
	}
	m.poll()

	if diff := cmp.Diff([]string{"one", "two"}, copied); diff != "" {
		t.Errorf("OnCopy calls mismatch (-want +got):\n%s", diff)
	}
}

func TestMonitor_ObserverCallsBack(t *testing.T) {
	clip := NewMemoryClipboard()
	history := NewClipboardHistory(3)
	m := NewMonitor(clip, history, nil, time.Millisecond)

	var inserts []int64
	history.OnChange(func() {
		inserts = append(inserts, m.Stats().Inserts)
		if _, ok := m.LastSeen(); !ok {
			t.Error("lastSeen not recorded before the history changed")
		}
	})

	m.prime()
	_ = clip.WriteText("copied")

	done := make(chan struct{})
	go func() {
		m.poll()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poll deadlocked on a history observer")
	}

	if diff := cmp.Diff([]int64{0}, inserts); diff != "" {
		t.Errorf("observer calls mismatch (-want +got):\n%s", diff)
	}
	if got := m.Stats().Inserts; got != 1 {
		t.Errorf("Inserts = %d, want 1", got)
	}
}
