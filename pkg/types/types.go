package types

type ProcessingPlatform string

const (
	ProcessingPlatformTikTok        ProcessingPlatform = "tiktok"
	ProcessingPlatformInstagramReel ProcessingPlatform = "instagram-reel"
	ProcessingPlatformYouTubeShort  ProcessingPlatform = "youtube-short"
	ProcessingPlatformXTwitter      ProcessingPlatform = "x-twitter"
)

// RenderRequest mirrors the non-file form fields of POST /api/v1/render.
// The video and audio files travel as multipart attachments next to it.
type RenderRequest struct {
	Setup          string             `json:"setup" form:"setup"`
	Punchline      string             `json:"punchline" form:"punchline"`
	Channel        string             `json:"channel" form:"channel"`
	FontSize       int                `json:"font_size" form:"font_size"`
	FontColor      string             `json:"font_color" form:"font_color"`
	HighlightColor string             `json:"highlight_color" form:"highlight_color"`
	Platform       ProcessingPlatform `json:"platform" form:"platform"`
}

// RenderResult reports one finished render.
type RenderResult struct {
	OutputPath string  `json:"output"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Duration   float64 `json:"duration"`
}
