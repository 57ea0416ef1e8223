package execctx_test

import (
	"github.com/dshills/vimops/internal/input/key"
	"github.com/dshills/vimops/internal/register"
)

type nopOps struct{}

func (nopOps) DeleteCharacterAtCursor(int, rune) (int, error) { return 0, nil }
func (nopOps) DeleteCharacterBeforeCursor(int, rune) (int, error) { return 0, nil }
func (nopOps) DeleteLines(int, rune) (int, error) { return 0, nil }
func (nopOps) ReplaceChar(key.Input, int) (bool, error) { return false, nil }
func (nopOps) YankLines(int, rune) (int, error) { return 0, nil }
func (nopOps) PasteAfter(string, int, register.OperationKind, bool) error {
	return nil
}
func (nopOps) PasteBefore(string, int, bool) error { return nil }
func (nopOps) InsertLineAbove() error { return nil }
func (nopOps) InsertLineBelow() error { return nil }
