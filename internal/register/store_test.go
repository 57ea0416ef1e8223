package register

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeClipboard struct {
	mu      sync.Mutex
	content string
	getErr  error
	setErr  error
}

func (f *fakeClipboard) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content, f.getErr
}

func (f *fakeClipboard) Set(content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.content = content
	return nil
}

func TestNewValue(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		kind    OperationKind
		want    Value
		wantErr error
	}{
		{"charwise", "foo", CharacterWise, Value{"foo", CharacterWise}, nil},
		{"charwise keeps break", "foo\n", CharacterWise, Value{"foo\n", CharacterWise}, nil},
		{"linewise adds break", "foo", LineWise, Value{"foo\n", LineWise}, nil},
		{"linewise keeps crlf", "foo\r\n", LineWise, Value{"foo\r\n", LineWise}, nil},
		{"linewise empty", "", LineWise, Value{"\n", LineWise}, nil},
		{"unknown kind", "foo", OperationKind(7), Value{}, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewValue(tt.text, tt.kind)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewValue error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewValue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want OperationKind
	}{
		{"", CharacterWise},
		{"char", CharacterWise},
		{"CharacterWise", CharacterWise},
		{"l", LineWise},
		{"linewise", LineWise},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("block"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(block) error = %v, want ErrUnknownKind", err)
	}
}

func TestMemoryStoreSetGet(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Get('a'); ok {
		t.Error("unwritten register should be missing")
	}

	if err := s.Set('a', Value{Text: "foo", Kind: CharacterWise}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set('A', Value{Text: "bar", Kind: LineWise}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := s.Get('a')
	if !ok || got != (Value{"foo", CharacterWise}) {
		t.Errorf("Get('a') = %v, %v, want charwise \"foo\"", got, ok)
	}

	// Case distinguishes keys; line-wise text gains its break.
	got, ok = s.Get('A')
	if !ok || got != (Value{"bar\n", LineWise}) {
		t.Errorf("Get('A') = %v, %v, want linewise \"bar\\n\"", got, ok)
	}

	// Last write wins.
	if err := s.Set('a', Value{Text: "baz", Kind: CharacterWise}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, _ := s.Get('a'); got.Text != "baz" {
		t.Errorf("Get('a').Text = %q, want %q", got.Text, "baz")
	}

	if diff := cmp.Diff([]rune{'A', 'a'}, s.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreInvalid(t *testing.T) {
	s := NewMemoryStore()

	for _, key := range []rune{' ', '\n', '\t', 0} {
		if err := s.Set(key, Value{Text: "x"}); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Set(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}

	if err := s.Set('a', Value{Text: "x", Kind: 9}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Set with bad kind error = %v, want ErrUnknownKind", err)
	}
	if _, ok := s.Get('a'); ok {
		t.Error("failed Set should not create the register")
	}
}

func TestMemoryStoreClipboard(t *testing.T) {
	clip := &fakeClipboard{}
	s := NewMemoryStore(WithClipboard(clip, "+*"))

	if err := s.Set('+', Value{Text: "line", Kind: LineWise}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if clip.content != "line\n" {
		t.Errorf("clipboard = %q, want %q", clip.content, "line\n")
	}

	got, ok := s.Get('+')
	if !ok || got != (Value{"line\n", LineWise}) {
		t.Errorf("Get('+') = %v, %v, want our linewise value", got, ok)
	}

	// Foreign clipboard content.
	clip.content = "other"
	got, ok = s.Get('*')
	if !ok || got != (Value{"other", CharacterWise}) {
		t.Errorf("Get('*') = %v, %v, want charwise \"other\"", got, ok)
	}
	clip.content = "a\nb\n"
	if got, _ := s.Get('+'); got.Kind != LineWise {
		t.Errorf("Get('+').Kind = %v, want linewise", got.Kind)
	}

	// Non-clipboard keys stay local.
	if err := s.Set('a', Value{Text: "local"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if clip.content != "a\nb\n" {
		t.Errorf("clipboard changed to %q", clip.content)
	}
}

func TestMemoryStoreClipboardErrors(t *testing.T) {
	noDisplay := errors.New("no display")
	clip := &fakeClipboard{setErr: noDisplay}
	s := NewMemoryStore(WithClipboard(clip, "+"))

	err := s.Set('+', Value{Text: "x"})
	if !errors.Is(err, ErrClipboard) {
		t.Errorf("Set error = %v, want ErrClipboard", err)
	}
	if !errors.Is(err, noDisplay) {
		t.Errorf("Set error = %v, should wrap the provider error", err)
	}

	clip.getErr = noDisplay
	if _, ok := s.Get('+'); ok {
		t.Error("Get should report a missing register when the clipboard fails")
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(key rune) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Set(key, Value{Text: "x"})
				_, _ = s.Get(Unnamed)
			}
		}(rune('a' + i))
	}
	wg.Wait()

	if n := len(s.Keys()); n != 8 {
		t.Errorf("len(Keys()) = %d, want 8", n)
	}
}
