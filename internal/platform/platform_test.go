package platform

import (
	"reflect"
	"testing"
)

func TestSupportedIsSorted(t *testing.T) {
	want := []string{"instagram-reel", "tiktok", "x-twitter", "youtube-short"}
	if got := Supported(); !reflect.DeepEqual(got, want) {
		t.Errorf("Supported() = %v, want %v", got, want)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name       string
		platform   string
		wantFormat string
		wantTier   string
		wantErr    bool
	}{
		{"tiktok", "tiktok", "mp4", "balanced", false},
		{"instagram reel", "instagram-reel", "mp4", "balanced", false},
		{"youtube short", "youtube-short", "mp4", "high_quality", false},
		{"x twitter", "x-twitter", "mp4", "balanced", false},
		{"unknown", "vine", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Get(tt.platform)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Get(%q) error = nil, want error", tt.platform)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.platform, err)
			}
			if got := p.GetOutputFormat(); got != tt.wantFormat {
				t.Errorf("GetOutputFormat() = %q, want %q", got, tt.wantFormat)
			}
			if got := p.GetPresetTier(); got != tt.wantTier {
				t.Errorf("GetPresetTier() = %q, want %q", got, tt.wantTier)
			}
		})
	}
}

func TestTargetsArePortraitExceptTwitter(t *testing.T) {
	for _, name := range Supported() {
		p, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", name, err)
		}
		w, h := p.GetTargetDimensions()
		portrait := h > w
		if name == "x-twitter" {
			if portrait {
				t.Errorf("%s: dimensions %dx%d, want landscape", name, w, h)
			}
			continue
		}
		if !portrait {
			t.Errorf("%s: dimensions %dx%d, want portrait", name, w, h)
		}
	}
}
