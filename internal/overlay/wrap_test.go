package overlay

import (
	"reflect"
	"testing"
)

func lineTexts(lines []Line) []string {
	var out []string
	for _, l := range lines {
		out = append(out, l.Text())
	}
	return out
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     []string
	}{
		{
			name:     "fits on one line",
			text:     "hello world",
			maxChars: 18,
			want:     []string{"hello world"},
		},
		{
			name:     "greedy split",
			text:     "the quick brown fox jumps",
			maxChars: 18,
			want:     []string{"the quick brown", "fox jumps"},
		},
		{
			name:     "boundary exactly fills",
			text:     "abc def",
			maxChars: 7,
			want:     []string{"abc def"},
		},
		{
			name:     "separator pushes over",
			text:     "abc def",
			maxChars: 6,
			want:     []string{"abc", "def"},
		},
		{
			name:     "overlong word keeps its own line",
			text:     "a extraordinarily b",
			maxChars: 5,
			want:     []string{"a", "extraordinarily", "b"},
		},
		{
			name:     "single overlong word",
			text:     "incomprehensibilities",
			maxChars: 10,
			want:     []string{"incomprehensibilities"},
		},
		{
			name:     "one word per line",
			text:     "one two three",
			maxChars: 1,
			want:     []string{"one", "two", "three"},
		},
		{
			name:     "empty input",
			text:     "",
			maxChars: 18,
			want:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineTexts(Wrap(Words(tt.text), tt.maxChars))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %v, want %v", tt.text, tt.maxChars, got, tt.want)
			}
		})
	}
}

func TestWrapRespectsBudget(t *testing.T) {
	const maxChars = 12
	words := Words("some words of rather unequal sizes including incomprehensibilities and tiny a i bits")
	for _, line := range Wrap(words, maxChars) {
		if line.width() > maxChars && len(line) > 1 {
			t.Errorf("line %q is %d chars, over budget %d with %d words",
				line.Text(), line.width(), maxChars, len(line))
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	const maxChars = 10
	words := Words("pack these words twice and expect the same partition back")
	first := Wrap(words, maxChars)

	var flattened []Word
	for _, line := range first {
		flattened = append(flattened, line...)
	}
	second := Wrap(flattened, maxChars)

	if !reflect.DeepEqual(lineTexts(first), lineTexts(second)) {
		t.Errorf("re-wrapping changed the partition: %v then %v",
			lineTexts(first), lineTexts(second))
	}
}

func TestMaxCharsPerLine(t *testing.T) {
	style := DefaultStyle()
	tests := []struct {
		name       string
		frameWidth int
		fontSize   int
		want       int
	}{
		{"portrait default", 1080, 80, 18},
		{"wider frame", 1920, 80, 32},
		{"small font", 1080, 40, 36},
		{"huge font clamps to one", 100, 400, 1},
		{"degenerate width", 0, 80, 1},
		{"degenerate font size", 1080, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := style.MaxCharsPerLine(tt.frameWidth, tt.fontSize); got != tt.want {
				t.Errorf("MaxCharsPerLine(%d, %d) = %d, want %d",
					tt.frameWidth, tt.fontSize, got, tt.want)
			}
		})
	}
}
