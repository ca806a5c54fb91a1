package format

// =================================
// File permissions defaults
// =================================
const (
	FilePerms = 0o644 // Shows are plain data files
	DirPerms  = 0o755
)

// =================================
// Path constants
// =================================
const (
	LXSSuffix        = ".lxs"
	ShowMetadataFile = "show.json"
	DecodedFile      = "decoded.bin"
)

// =================================
// Environment variables
// =================================
const (
	EnvLogLevel = "LUXBIN_LOG_LEVEL"
	EnvLogPath  = "LUXBIN_LOG_PATH"
	EnvJSONLog  = "LUXBIN_JSON_LOG"
	EnvCacheDir = "LUXBIN_CACHE_DIR"
)

// =================================
// Tool identification
// =================================
const (
	FormatName  = "LXS/2026"
	ToolName    = "luxbin-go"
	ToolVersion = "0.3.0"
)
