package buffer

import "testing"

func TestParseLineEnding(t *testing.T) {
	tests := []struct {
		in      string
		want    LineEnding
		wantErr bool
	}{
		{"lf", LineEndingLF, false},
		{"", LineEndingLF, false},
		{"CRLF", LineEndingCRLF, false},
		{" windows ", LineEndingCRLF, false},
		{"cr", LineEndingCR, false},
		{"nel", LineEndingLF, true},
	}

	for _, tt := range tests {
		got, err := ParseLineEnding(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLineEnding(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLineEnding(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLineEndingNormalize(t *testing.T) {
	in := "a\r\nb\rc\nd"

	tests := []struct {
		le   LineEnding
		want string
	}{
		{LineEndingLF, "a\nb\nc\nd"},
		{LineEndingCRLF, "a\r\nb\r\nc\r\nd"},
		{LineEndingCR, "a\rb\rc\rd"},
	}

	for _, tt := range tests {
		if got := tt.le.Normalize(in); got != tt.want {
			t.Errorf("%v.Normalize() = %q, want %q", tt.le, got, tt.want)
		}
	}
}

func TestBreakLen(t *testing.T) {
	tests := []struct {
		b    Break
		want int
	}{
		{BreakNone, 0},
		{BreakLF, 1},
		{BreakCR, 1},
		{BreakCRLF, 2},
	}

	for _, tt := range tests {
		if got := tt.b.Len(); got != tt.want {
			t.Errorf("%v.Len() = %d, want %d", tt.b, got, tt.want)
		}
		if got := len(tt.b.Sequence()); got != tt.want {
			t.Errorf("len(%v.Sequence()) = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"no breaks", LineEndingLF},
		{"a\nb", LineEndingLF},
		{"a\r\nb", LineEndingCRLF},
		{"a\rb\rc\n", LineEndingCR},
	}

	for _, tt := range tests {
		if got := DetectLineEnding(tt.text); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestHasTrailingBreak(t *testing.T) {
	for s, want := range map[string]bool{"a\n": true, "a\r": true, "a\r\n": true, "a": false, "": false} {
		if got := HasTrailingBreak(s); got != want {
			t.Errorf("HasTrailingBreak(%q) = %v, want %v", s, got, want)
		}
	}
}
