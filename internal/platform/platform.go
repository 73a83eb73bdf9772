package platform

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Platform defines an encode target for rendered videos
type Platform interface {
	// GetName returns the platform name
	GetName() string

	// GetTargetDimensions returns the dimensions the platform expects
	GetTargetDimensions() (width, height int)

	// GetMaxDuration returns the maximum allowed video duration in seconds
	GetMaxDuration() int

	// GetMaxFileSize returns the maximum allowed file size in bytes
	GetMaxFileSize() int64

	// GetVideoBitrate returns the recommended video bitrate
	GetVideoBitrate() string

	// GetOutputFormat returns the preferred output format (e.g., "mp4", "webm")
	GetOutputFormat() string

	// GetPresetTier selects among the format's encoder presets
	GetPresetTier() string
}

var platforms = make(map[string]Platform)

// Register adds a platform to the registry
func Register(p Platform) {
	platforms[p.GetName()] = p
}

// Get returns a platform by name
func Get(name string) (Platform, error) {
	p, ok := platforms[name]
	if !ok {
		return nil, errors.Errorf("unsupported platform: %s (supported: %s)",
			name, strings.Join(Supported(), ", "))
	}
	return p, nil
}

// Supported returns the registered platform names, sorted
func Supported() []string {
	names := maps.Keys(platforms)
	slices.Sort(names)
	return names
}
