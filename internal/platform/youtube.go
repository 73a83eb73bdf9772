package platform

type YouTube struct{}

func init() {
	Register(&YouTube{})
}

func (p *YouTube) GetName() string {
	return "youtube-short"
}

func (p *YouTube) GetTargetDimensions() (width, height int) {
	return 1080, 1920
}

func (p *YouTube) GetMaxDuration() int {
	return 60
}

func (p *YouTube) GetMaxFileSize() int64 {
	return 2 * 1024 * 1024 * 1024 // 2GB
}

func (p *YouTube) GetVideoBitrate() string {
	return "4M"
}

func (p *YouTube) GetOutputFormat() string {
	return "mp4"
}

func (p *YouTube) GetPresetTier() string {
	return "high_quality"
}
