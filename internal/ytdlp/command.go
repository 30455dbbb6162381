package ytdlp

// yt-dlp flags used by the application
const (
	FlagDumpJSON      = "--dump-single-json"
	FlagGetTitle      = "--get-title"
	FlagFormat        = "-f"
	FlagOutput        = "-o"
	FlagCookieSource  = "--cookies-from-browser"
	FlagNoPlaylist    = "--no-playlist"
	FlagNewline       = "--newline"
	FlagRestrictNames = "--restrict-filenames"

	// OutputTemplate is the yt-dlp name template used inside a target
	// directory.
	OutputTemplate = "%(title)s.%(ext)s"
)

// BuildProbeArgs builds the argument list for the JSON format probe.
// cookieSource is the resolved --cookies-from-browser value, empty for a
// cookie-less invocation.
func BuildProbeArgs(url, cookieSource string) []string {
	args := []string{FlagDumpJSON, FlagNoPlaylist}
	if cookieSource != "" {
		args = append(args, FlagCookieSource, cookieSource)
	}
	return append(args, url)
}

// BuildTitleArgs builds the argument list for the quick title probe
func BuildTitleArgs(url string) []string {
	return []string{FlagGetTitle, FlagNoPlaylist, url}
}

// BuildDownloadArgs builds the argument list for a download invocation.
// formatSpec may be empty, which leaves format selection to yt-dlp.
func BuildDownloadArgs(url, formatSpec, outputTemplate, cookieSource string) []string {
	var args []string
	if formatSpec != "" {
		args = append(args, FlagFormat, formatSpec)
	}
	if cookieSource != "" {
		args = append(args, FlagCookieSource, cookieSource)
	}
	args = append(args, FlagNoPlaylist, FlagRestrictNames, FlagNewline)
	if outputTemplate != "" {
		args = append(args, FlagOutput, outputTemplate)
	}
	return append(args, url)
}
