package media

import "context"

// SubtitleTrack is one subtitle file to attach to the output container,
// tagged with a display name and a language code.
type SubtitleTrack struct {
	Path     string
	Name     string
	Language string
}

// Converter repackages a video into another container without re-encoding.
type Converter interface {
	Convert(ctx context.Context, input, output string) error
}

// Prober lists the streams of a media container.
type Prober interface {
	Probe(ctx context.Context, path string) ([]Stream, error)
}

// Muxer assembles a video file plus subtitle tracks into one output
// container. audioLabel renames every audio track's display name.
type Muxer interface {
	Mux(ctx context.Context, input, output, audioLabel string, audioStreams []Stream, subtitles []SubtitleTrack) error
}

// NewConverter returns the default ffmpeg-backed converter.
func NewConverter() Converter {
	return NewFfmpeg(NewRunner())
}

// NewProber returns the default ffprobe-backed prober.
func NewProber() Prober {
	return NewFfmpeg(NewRunner())
}

// NewMuxer returns the default mkvmerge-backed muxer.
func NewMuxer() Muxer {
	return NewMkvmerge(NewRunner())
}
