package utils

import (
	"image"
	"reflect"
	"testing"
)

// 画布位于 (20,20)-(220,170)
var testBounds = image.Rect(20, 20, 220, 170)

func newTestTracker() *PointerTracker {
	pt := NewPointerTracker()
	pt.SetBounds(testBounds)
	return pt
}

// runSamples 依次喂入采样，返回全部事件
func runSamples(pt *PointerTracker, samples []PointerSample) []PointerEvent {
	var events []PointerEvent
	for _, s := range samples {
		events = pt.Update(s, events)
	}
	return events
}

func TestPointerTracker_MouseClick(t *testing.T) {
	pt := newTestTracker()
	events := runSamples(pt, []PointerSample{
		{X: 50, Y: 60},
		{Pressed: true, X: 50, Y: 60},
		{Pressed: true, X: 55, Y: 60},
		{X: 55, Y: 60},
	})

	want := []PointerEvent{
		{Phase: PointerDown, X: 30, Y: 40},
		{Phase: PointerMove, X: 35, Y: 40},
		{Phase: PointerUp, X: 35, Y: 40},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %+v, want %+v", events, want)
	}
	if pt.IsPressed() {
		t.Error("IsPressed() = true after release")
	}
}

func TestPointerTracker_MouseLeave(t *testing.T) {
	pt := newTestTracker()
	events := runSamples(pt, []PointerSample{
		{Pressed: true, X: 100, Y: 100},
		{Pressed: true, X: 5, Y: 100},   // 拖出画布
		{Pressed: true, X: 100, Y: 100}, // 拖回画布：不算新的按下
		{X: 100, Y: 100},                // 抬起：之前的按下已随离开结束
	})

	want := []PointerEvent{
		{Phase: PointerDown, X: 80, Y: 80},
		{Phase: PointerLeave, X: 80, Y: 80},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %+v, want %+v", events, want)
	}
}

func TestPointerTracker_PressOutsideIgnored(t *testing.T) {
	pt := newTestTracker()
	events := runSamples(pt, []PointerSample{
		{Pressed: true, X: 2, Y: 2},
		{Pressed: true, X: 50, Y: 50},
		{Pressed: true, X: 60, Y: 50},
		{X: 60, Y: 50},
	})

	// 只有画布内的移动，不产生按下与抬起
	for _, e := range events {
		if e.Phase == PointerDown || e.Phase == PointerUp {
			t.Errorf("unexpected %v event: %+v", e.Phase, e)
		}
	}
}

func TestPointerTracker_Touch(t *testing.T) {
	pt := newTestTracker()
	events := runSamples(pt, []PointerSample{
		{Pressed: true, X: 40, Y: 40, Touch: true},
		{Pressed: true, X: 40, Y: 40, Touch: true},
		{Pressed: true, X: 70, Y: 90, Touch: true},
		{Pressed: false, X: 70, Y: 90, Touch: true},
	})

	want := []PointerEvent{
		{Phase: PointerDown, X: 20, Y: 20},
		{Phase: PointerMove, X: 50, Y: 70},
		{Phase: PointerUp, X: 50, Y: 70},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %+v, want %+v", events, want)
	}
}

func TestPointerTracker_ResetKeepsHeldButton(t *testing.T) {
	pt := newTestTracker()
	pt.Reset(true)
	events := pt.Update(PointerSample{Pressed: true, X: 50, Y: 50}, nil)
	for _, e := range events {
		if e.Phase == PointerDown {
			t.Fatalf("held button produced Down after Reset: %+v", events)
		}
	}
}

func TestPointerPhase_String(t *testing.T) {
	tests := []struct {
		phase PointerPhase
		want  string
	}{
		{PointerDown, "Down"},
		{PointerMove, "Move"},
		{PointerUp, "Up"},
		{PointerLeave, "Leave"},
		{PointerPhase(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("PointerPhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
