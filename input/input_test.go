package input

import (
	"slices"
	"testing"
)

func TestQueue(t *testing.T) {
	var q Queue
	if q.Poll() != nil {
		t.Error("empty queue should poll nil")
	}

	q.Push(Down(KeyLeftUp), Up(KeyLeftUp))
	q.Push(Quit())
	if q.Len() != 3 {
		t.Errorf("Len = %d, want 3", q.Len())
	}

	want := []Event{Down(KeyLeftUp), Up(KeyLeftUp), Quit()}
	if got := q.Poll(); !slices.Equal(got, want) {
		t.Errorf("Poll = %v, want %v", got, want)
	}
	if q.Len() != 0 || q.Poll() != nil {
		t.Error("Poll should drain the queue")
	}
}

func TestMerge(t *testing.T) {
	var a, b Queue
	a.Push(Down(KeyRestart))
	b.Push(Down(KeyToggleAI), Up(KeyToggleAI))

	got := Merge{&a, &b}.Poll()
	want := []Event{Down(KeyRestart), Down(KeyToggleAI), Up(KeyToggleAI)}
	if !slices.Equal(got, want) {
		t.Errorf("Poll = %v, want %v", got, want)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{KeyLeftUp, "left_up"},
		{KeyRightDown, "right_down"},
		{KeyToggleAI, "toggle_ai"},
		{KeyNone, "none"},
		{Key(200), "none"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
