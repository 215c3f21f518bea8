package video

import (
	"path/filepath"
	"strings"
)

// DerivedOutputPath names the output next to the input video:
// "clip.mp4" becomes "clip_soundwaves.mp4".
func DerivedOutputPath(videoPath string) string {
	ext := filepath.Ext(videoPath)
	return strings.TrimSuffix(videoPath, ext) + "_soundwaves" + ext
}
