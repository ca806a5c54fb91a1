package format

// Metadata is the gzip-compressed JSON block stored alongside the event
// table. It is informational; decoding relies on the index alone.
type Metadata struct {
	Format        string      `json:"format"`
	FormatVersion string      `json:"format_version"`
	Show          ShowInfo    `json:"show"`
	Encoder       EncoderInfo `json:"encoder"`
}

// ShowInfo describes the encoded payload.
type ShowInfo struct {
	Name        string `json:"name"`
	SourceBytes int64  `json:"source_bytes"`
	Alphabet    string `json:"alphabet"`
	Category    string `json:"category"`
	Operations  string `json:"operations"` // Operation chain (e.g., "gzip", "gzip|zstd")
}

// EncoderInfo identifies the producing tool. No timestamps: show files are
// byte-identical for identical inputs.
type EncoderInfo struct {
	Tool        string `json:"tool"`
	ToolVersion string `json:"tool_version"`
}
