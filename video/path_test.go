package video

import (
	"testing"
)

func TestDerivedOutputPath(t *testing.T) {
	cases := map[string]string{
		"clip.mp4":          "clip_soundwaves.mp4",
		"/tmp/a/video.mkv":  "/tmp/a/video_soundwaves.mkv",
		"noextension":       "noextension_soundwaves",
		"dir.v1/movie.webm": "dir.v1/movie_soundwaves.webm",
	}
	for in, expected := range cases {
		if out := DerivedOutputPath(in); out != expected {
			t.Errorf("%s: expected %s, got %s", in, expected, out)
		}
	}
}
