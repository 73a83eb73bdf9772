package overlay

import (
	"testing"
)

func TestLayoutVerticalCentering(t *testing.T) {
	c := NewComposer(DefaultStyle())
	lines := []Line{
		Line(Words("first line")),
		{Word{Text: "second", Index: 2}, Word{Text: "line", Index: 3}},
		{Word{Text: "third", Index: 4}},
	}

	// Font size 80 with the default 1.3 scale gives a 104px line advance,
	// so a three line block spans 312px and starts 156px above the anchor.
	units := c.Layout(lines, nil, 80, 0, TimeWindow{})
	if len(units) != 3 {
		t.Fatalf("Layout returned %d units, want 3", len(units))
	}

	wantY := []string{
		"(h-text_h)/2-156",
		"(h-text_h)/2-52",
		"(h-text_h)/2+52",
	}
	for i, u := range units {
		if u.Y != wantY[i] {
			t.Errorf("line %d y = %q, want %q", i, u.Y, wantY[i])
		}
		if u.X != "(w-text_w)/2" {
			t.Errorf("line %d x = %q, want backend-centered expression", i, u.X)
		}
		if u.FontSize != 80 {
			t.Errorf("line %d font size = %d, want 80", i, u.FontSize)
		}
		if u.Highlighted {
			t.Errorf("line %d unexpectedly highlighted", i)
		}
	}
	if units[0].Text != "first line" {
		t.Errorf("line 0 text = %q, want %q", units[0].Text, "first line")
	}
}

func TestLayoutAnchorShiftsBlock(t *testing.T) {
	c := NewComposer(DefaultStyle())
	lines := []Line{Line(Words("solo"))}

	// One line at size 80: half the 104px advance pulls the line up 52px,
	// then the anchor offsets the whole block.
	units := c.Layout(lines, nil, 80, 400, TimeWindow{})
	if got, want := units[0].Y, "(h-text_h)/2+348"; got != want {
		t.Errorf("anchored y = %q, want %q", got, want)
	}
}

func TestLayoutHighlightedLineSplitsPerWord(t *testing.T) {
	c := NewComposer(DefaultStyle())
	lines := []Line{Line(Words("go now"))}
	highlights := map[int]bool{0: true}

	units := c.Layout(lines, highlights, 80, 0, TimeWindow{})
	if len(units) != 2 {
		t.Fatalf("Layout returned %d units, want one per word", len(units))
	}

	// Estimated char width 48: "go now" is 6 chars, 288px wide; "now"
	// starts after "go " (3 chars, 144px).
	if got, want := units[0].X, "(w-288)/2"; got != want {
		t.Errorf("word 0 x = %q, want %q", got, want)
	}
	if got, want := units[1].X, "(w-288)/2+144"; got != want {
		t.Errorf("word 1 x = %q, want %q", got, want)
	}
	if units[0].Y != units[1].Y {
		t.Errorf("words on one line differ in y: %q vs %q", units[0].Y, units[1].Y)
	}

	if !units[0].Highlighted || units[0].Color != DefaultStyle().HighlightColor {
		t.Errorf("word 0 = %+v, want highlighted in %s", units[0], DefaultStyle().HighlightColor)
	}
	if units[1].Highlighted || units[1].Color != DefaultStyle().FontColor {
		t.Errorf("word 1 = %+v, want plain %s", units[1], DefaultStyle().FontColor)
	}
}

func TestLayoutWindowPropagates(t *testing.T) {
	c := NewComposer(DefaultStyle())
	window := VisibleUntil(7.5)
	units := c.Layout([]Line{Line(Words("timed text"))}, nil, 80, 0, window)
	if got := units[0].Window.Enable(); got != "lt(t,7.5)" {
		t.Errorf("unit window = %q, want %q", got, "lt(t,7.5)")
	}
}

func TestLayoutEmpty(t *testing.T) {
	c := NewComposer(DefaultStyle())
	if units := c.Layout(nil, nil, 80, 0, TimeWindow{}); len(units) != 0 {
		t.Errorf("Layout(nil) returned %d units, want none", len(units))
	}
}
