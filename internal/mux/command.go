package mux

// ffmpeg / ffprobe flags used by the mux pass
const (
	FlagOverwrite   = "-y"
	FlagInput       = "-i"
	FlagMap         = "-map"
	FlagCodec       = "-c"
	CodecCopy       = "copy"
	MapFirstVideo   = "0:v:0"
	MapSecondAudio  = "1:a:0"
	FlagLogLevel    = "-v"
	LogLevelError   = "error"
	FlagPrintFormat = "-print_format"
	PrintFormatJSON = "json"
	FlagShowFormat  = "-show_format"
	FlagShowStreams = "-show_streams"
)

// BuildJoinArgs builds the ffmpeg argument list that stream-copies a video
// file and an audio file into one container. No re-encoding happens.
func BuildJoinArgs(videoPath, audioPath, outputPath string) []string {
	return []string{
		FlagOverwrite,
		FlagInput, videoPath,
		FlagInput, audioPath,
		FlagMap, MapFirstVideo,
		FlagMap, MapSecondAudio,
		FlagCodec, CodecCopy,
		outputPath,
	}
}

// BuildProbeArgs builds the ffprobe argument list that reports streams and
// container info as JSON.
func BuildProbeArgs(path string) []string {
	return []string{
		FlagLogLevel, LogLevelError,
		FlagPrintFormat, PrintFormatJSON,
		FlagShowFormat,
		FlagShowStreams,
		path,
	}
}
