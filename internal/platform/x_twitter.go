package platform

type Twitter struct{}

func init() {
	Register(&Twitter{})
}

func (p *Twitter) GetName() string {
	return "x-twitter"
}

func (p *Twitter) GetTargetDimensions() (width, height int) {
	return 1920, 1200
}

func (p *Twitter) GetMaxDuration() int {
	return 140
}

func (p *Twitter) GetMaxFileSize() int64 {
	return 512 * 1024 * 1024 // 512MB
}

func (p *Twitter) GetVideoBitrate() string {
	return "2M"
}

func (p *Twitter) GetOutputFormat() string {
	return "mp4"
}

func (p *Twitter) GetPresetTier() string {
	return "balanced"
}
