package key

import "github.com/gdamore/tcell/v2"

// FromTcell converts a tcell key event.
func FromTcell(ev *tcell.EventKey) Event {
	mods := fromTcellMod(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return runeEvent(ev.Rune(), mods)
	case tcell.KeyEnter:
		return NewSpecialEvent(KeyEnter, mods)
	case tcell.KeyTab:
		return NewSpecialEvent(KeyTab, mods)
	case tcell.KeyEscape:
		return NewSpecialEvent(KeyEscape, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return NewSpecialEvent(KeyBackspace, mods)
	case tcell.KeyDelete:
		return NewSpecialEvent(KeyDelete, mods)
	case tcell.KeyInsert:
		return NewSpecialEvent(KeyInsert, mods)
	case tcell.KeyHome:
		return NewSpecialEvent(KeyHome, mods)
	case tcell.KeyEnd:
		return NewSpecialEvent(KeyEnd, mods)
	case tcell.KeyPgUp:
		return NewSpecialEvent(KeyPageUp, mods)
	case tcell.KeyPgDn:
		return NewSpecialEvent(KeyPageDown, mods)
	case tcell.KeyUp:
		return NewSpecialEvent(KeyUp, mods)
	case tcell.KeyDown:
		return NewSpecialEvent(KeyDown, mods)
	case tcell.KeyLeft:
		return NewSpecialEvent(KeyLeft, mods)
	case tcell.KeyRight:
		return NewSpecialEvent(KeyRight, mods)
	default:
		if k == tcell.KeyCtrlJ {
			return NewSpecialEvent(KeyLinefeed, mods.Without(ModCtrl))
		}
		// Remaining control codes arrive as Ctrl-letter keys.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mods.With(ModCtrl))
		}
		return NewSpecialEvent(KeyNone, mods)
	}
}

func fromTcellMod(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
