package config

// ── Invocation constants ─────────────────────────────────────────────

const (
	// Minimum argument counts, mode tokens included.
	ServerArgs = 3
	SingleArgs = 8
	DoubleArgs = 10
	MultiArgs  = 7

	// DefaultBacklog is the connection backlog handed to the file
	// server.  It is not configurable from the invocation.
	DefaultBacklog = 1000
)

// Usage is logged whenever an invocation cannot be parsed.
const Usage = "\nFiletransfer usage:\n" +
	"\t'server serverListenPort pathToDocRoot'\n" +
	"\t'client single fileServerHostname fileServerPort socksServerHostname(or 'none') socksServerPort nDownloads pathToFile'\n" +
	"\t'client double fileServerHostname fileServerPort socksServerHostname(or 'none') socksServerPort pathToFile1 pathToFile2 pathToFile3(or 'none') secondsPause'\n" +
	"\t'client multi pathToDownloadSpec socksServerHostname(or 'none') socksServerPort pathToThinktimeCDF(or 'none') secondsRunTime(or '-1')'\n"

// ── CLI defaults ─────────────────────────────────────────────────────

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatAuto = "auto"

	// DefaultFormat picks JSON when stdout is not a terminal.
	DefaultFormat = FormatAuto

	// DefaultVerbose shows warnings and messages but not info or debug.
	DefaultVerbose = 1
)
