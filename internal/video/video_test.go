package video

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	ffmpegbin "github.com/mgpai22/srtparse/internal/ffmpeg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probeJSON = `{
  "streams": [
    {"index": 2, "codec_name": "subrip", "codec_type": "subtitle", "tags": {"language": "eng", "title": "English"}},
    {"index": 0, "codec_name": "h264", "codec_type": "video"},
    {"index": 3, "codec_name": "ass", "codec_type": "subtitle", "tags": {"language": "jpn"}}
  ]
}`

func TestParseStreams(t *testing.T) {
	streams, err := parseStreams([]byte(probeJSON))
	require.NoError(t, err)
	assert.Equal(t, []SubtitleStream{
		{Index: 0, Codec: "subrip", Language: "eng", Title: "English"},
		{Index: 1, Codec: "ass", Language: "jpn"},
	}, streams)

	streams, err = parseStreams([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, streams)

	_, err = parseStreams([]byte("garbage"))
	assert.ErrorContains(t, err, "failed to parse ffprobe output")
}

func TestExtractArgs(t *testing.T) {
	args := extractArgs(2)
	assert.Equal(t, "0:s:2", args["map"])
	assert.Equal(t, "srt", args["c:s"])
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("movie.MKV"))
	assert.True(t, IsVideoFile("/a/b/clip.mp4"))
	assert.False(t, IsVideoFile("movie.srt"))
	assert.False(t, IsVideoFile("noext"))
}

func TestDefaultSubtitlePath(t *testing.T) {
	assert.Equal(t, "/v/movie.srt", DefaultSubtitlePath("/v/movie.mkv", 0))
	assert.Equal(t, "/v/movie.2.srt", DefaultSubtitlePath("/v/movie.mkv", 2))
}

func TestMissingVideo(t *testing.T) {
	p := NewProcessor(ffmpegbin.BinaryPaths{FFmpeg: "ffmpeg", FFprobe: "ffprobe"})
	missing := filepath.Join(t.TempDir(), "missing.mkv")

	_, err := p.SubtitleStreams(context.Background(), missing)
	assert.ErrorContains(t, err, "video file not found")

	err = p.ExtractSubtitles(context.Background(), missing, "out.srt", 0)
	assert.ErrorContains(t, err, "video file not found")
}

// needs ffmpeg on PATH; builds a tiny mkv with one subtitle stream
func TestExtractRoundTrip(t *testing.T) {
	paths, err := ffmpegbin.Ensure()
	if err != nil {
		t.Skip("ffmpeg not available")
	}

	dir := t.TempDir()
	srtPath := filepath.Join(dir, "in.srt")
	require.NoError(t, writeFile(srtPath, "1\n00:00:00,000 --> 00:00:01,000\nHello\n"))

	mkvPath := filepath.Join(dir, "in.mkv")
	cmd := exec.Command(paths.FFmpeg,
		"-v", "quiet",
		"-f", "lavfi", "-i", "color=c=black:s=32x32:d=1",
		"-i", srtPath,
		"-c:s", "srt",
		mkvPath,
	)
	if err := cmd.Run(); err != nil {
		t.Skipf("could not build test video: %v", err)
	}

	p := NewProcessor(paths)
	streams, err := p.SubtitleStreams(context.Background(), mkvPath)
	require.NoError(t, err)
	require.Len(t, streams, 1)

	out := filepath.Join(dir, "out", "out.srt")
	require.NoError(t, p.ExtractSubtitles(context.Background(), mkvPath, out, 0))
	assert.FileExists(t, out)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
