package key

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), NewRuneEvent('x', ModNone)},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModNone), NewRuneEvent('X', ModShift)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), NewSpecialEvent(KeyEnter, ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), NewSpecialEvent(KeyEscape, ModNone)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), NewSpecialEvent(KeyLeft, ModShift)},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), NewRuneEvent('a', ModAlt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTcell(tt.ev); got != tt.want {
				t.Errorf("FromTcell() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFromTcellClassify(t *testing.T) {
	in, ok := Classify(FromTcell(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	if !ok || !in.IsLineBreak() {
		t.Errorf("Enter from tcell = %v, %v, want line break", in, ok)
	}

	in, ok = Classify(FromTcell(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	if !ok || in != Literal('q') {
		t.Errorf("'q' from tcell = %v, %v, want q", in, ok)
	}
}
