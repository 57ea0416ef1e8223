package register

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Store reads and writes registers.
type Store interface {
	// Get returns the value of a register. The second result is false if
	// the register was never written.
	Get(key rune) (Value, bool)

	// Set overwrites a register.
	Set(key rune, v Value) error
}

// ClipboardProvider abstracts system clipboard access.
type ClipboardProvider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClipboard routes every key in keys to the clipboard provider.
func WithClipboard(p ClipboardProvider, keys string) Option {
	return func(s *MemoryStore) {
		s.clipboard = p
		s.clipboardKeys = keys
	}
}

// MemoryStore keeps registers in memory. Last write wins.
// All methods are thread-safe.
type MemoryStore struct {
	mu            sync.RWMutex
	values        map[rune]Value
	clipboard     ClipboardProvider
	clipboardKeys string
}

// NewMemoryStore creates an empty register store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		values: make(map[rune]Value),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) isClipboardKey(key rune) bool {
	return s.clipboard != nil && strings.ContainsRune(s.clipboardKeys, key)
}

// Get returns the value of a register.
// Clipboard keys read the provider; a read failure reports the register as
// missing.
func (s *MemoryStore) Get(key rune) (Value, bool) {
	if s.isClipboardKey(key) {
		return s.getClipboard(key)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) getClipboard(key rune) (Value, bool) {
	text, err := s.clipboard.Get()
	if err != nil || text == "" {
		return Value{}, false
	}

	// Keep the kind of our own last write; foreign text ending in a break
	// is taken as whole lines.
	s.mu.RLock()
	last, ok := s.values[key]
	s.mu.RUnlock()
	if ok && last.Text == text {
		return last, true
	}
	if hasTrailingBreak(text) {
		return Value{Text: text, Kind: LineWise}, true
	}
	return Value{Text: text, Kind: CharacterWise}, true
}

// Set overwrites a register. Line-wise text is given a trailing break if it
// lacks one.
func (s *MemoryStore) Set(key rune, v Value) error {
	if !ValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	v, err := NewValue(v.Text, v.Kind)
	if err != nil {
		return err
	}

	if s.isClipboardKey(key) {
		if err := s.clipboard.Set(v.Text); err != nil {
			return fmt.Errorf("%w: register %q: %w", ErrClipboard, key, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
	return nil
}

// Keys returns the keys of all written registers in ascending order.
func (s *MemoryStore) Keys() []rune {
	s.mu.RLock()
	keys := make([]rune, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	s.mu.RUnlock()

	slices.Sort(keys)
	return keys
}
