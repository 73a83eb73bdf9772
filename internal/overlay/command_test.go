package overlay

import (
	"strings"
	"testing"
)

func TestDrawTextString(t *testing.T) {
	tests := []struct {
		name string
		cmd  DrawText
		want string
	}{
		{
			name: "solid layer",
			cmd: DrawText{
				Text:        "fox jumps",
				X:           "(w-text_w)/2",
				Y:           "(h-text_h)/2+52",
				FontSize:    80,
				Color:       "white",
				Alpha:       1,
				BorderColor: "white",
				BorderAlpha: 1,
				BorderWidth: 2,
				Font:        "sans",
				Enable:      "lt(t,7.5)",
			},
			want: "text='fox jumps':font=sans:fontsize=80:fontcolor=white:borderw=2:bordercolor=white:x=(w-text_w)/2:y=(h-text_h)/2+52:enable='lt(t,7.5)'",
		},
		{
			name: "glow layer carries alpha",
			cmd: DrawText{
				Text:        "glow",
				X:           "(w-288)/2",
				Y:           "(h-text_h)/2",
				FontSize:    40,
				Color:       "white",
				Alpha:       0.1,
				BorderColor: "white",
				BorderAlpha: 0.1,
				BorderWidth: 16,
				Font:        "sans",
			},
			want: "text='glow':font=sans:fontsize=40:fontcolor=white@0.10:borderw=16:bordercolor=white@0.10:x=(w-288)/2:y=(h-text_h)/2",
		},
		{
			name: "font file wins over family",
			cmd: DrawText{
				Text:     "x",
				X:        "0",
				Y:        "0",
				FontSize: 10,
				Color:    "white",
				Alpha:    1,
				Font:     "sans",
				FontFile: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			},
			want: "text='x':fontfile=/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf:fontsize=10:fontcolor=white:x=0:y=0",
		},
		{
			name: "escapes backslashes and quotes",
			cmd: DrawText{
				Text:     `back\slash 'quote'`,
				X:        "0",
				Y:        "0",
				FontSize: 10,
				Color:    "white",
				Alpha:    1,
			},
			want: `text='back\\slash \'quote\'':fontsize=10:fontcolor=white:x=0:y=0`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterGraphString(t *testing.T) {
	g := FilterGraph{
		{Text: "a", X: "0", Y: "0", FontSize: 10, Color: "white", Alpha: 1},
		{Text: "b", X: "0", Y: "0", FontSize: 10, Color: "white", Alpha: 1},
	}
	got := g.String()
	if strings.Count(got, "drawtext=") != 2 {
		t.Errorf("graph %q should contain one drawtext per command", got)
	}
	if !strings.Contains(got, ",drawtext=") {
		t.Errorf("graph %q should join commands with a comma", got)
	}
}

func TestFilterGraphEmpty(t *testing.T) {
	if !(FilterGraph{}).Empty() {
		t.Error("empty graph should report Empty")
	}
	if (FilterGraph{{Text: "a"}}).Empty() {
		t.Error("non-empty graph should not report Empty")
	}
	if (FilterGraph{}).String() != "" {
		t.Error("empty graph should serialize to an empty string")
	}
}
