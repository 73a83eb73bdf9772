package platform

type TikTok struct{}

func init() {
	Register(&TikTok{})
}

func (p *TikTok) GetName() string {
	return "tiktok"
}

func (p *TikTok) GetTargetDimensions() (width, height int) {
	return 1080, 1920
}

func (p *TikTok) GetMaxDuration() int {
	return 180
}

func (p *TikTok) GetMaxFileSize() int64 {
	return 287 * 1024 * 1024 // 287MB
}

func (p *TikTok) GetVideoBitrate() string {
	return "2M"
}

func (p *TikTok) GetOutputFormat() string {
	return "mp4"
}

func (p *TikTok) GetPresetTier() string {
	return "balanced"
}
