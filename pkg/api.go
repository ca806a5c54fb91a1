// Package pkg exposes the high-level encode/decode/verify entry points used
// by the CLI binaries.
package pkg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/luxbin-io/luxbin/go/luxbin/internal/showcache"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/logging"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/codec"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/color"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/format"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/operations"
)

// EncodeOptions drive one encode run.
type EncodeOptions struct {
	InputPath  string // file to encode; mutually exclusive with Text
	Text       string // literal text to encode
	OutputPath string // .lxs destination
	ChunkBits  int    // 6 (default) or 7
	Operations string // payload operation chain ("raw", "gzip", "gzip|zstd", ...)
	Category   string // category tag name, empty for raw-binary
	ThemePath  string // optional YAML theme file
}

// NewToolLogger builds the logger for a CLI run. Priority: explicit CLI
// level, then LUXBIN_<TOOL>_LOG_LEVEL, then LUXBIN_LOG_LEVEL, then "info".
// A "json" or "json:<level>" value switches to JSON output.
func NewToolLogger(tool, cliLogLevel string) hclog.Logger {
	var logLevel string
	switch {
	case cliLogLevel != "":
		logLevel = cliLogLevel
	default:
		envKey := "LUXBIN_" + strings.ToUpper(strings.ReplaceAll(tool, "-", "_")) + "_LOG_LEVEL"
		if envLevel := os.Getenv(envKey); envLevel != "" {
			logLevel = envLevel
		} else if envLevel := os.Getenv(format.EnvLogLevel); envLevel != "" {
			logLevel = envLevel
		} else {
			logLevel = "info"
		}
	}

	// Parse JSON format from log level
	jsonFormat := false
	actualLevel := logLevel
	if strings.HasPrefix(logLevel, "json") {
		jsonFormat = true
		parts := strings.Split(logLevel, ":")
		if len(parts) > 1 {
			actualLevel = parts[1]
		} else {
			actualLevel = "info"
		}
	}

	var output io.Writer = os.Stderr

	// Support log file output
	if logPath := os.Getenv(format.EnvLogPath); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			output = file
		}
	}

	// Add 💡 prefix to non-JSON output
	if !jsonFormat {
		output = logging.NewPrefixWriter("💡 ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       tool,
		Level:      hclog.LevelFromString(actualLevel),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// EncodeShow reads the input, encodes it and writes the .lxs file.
func EncodeShow(opts EncodeOptions, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var data []byte
	var name string
	switch {
	case opts.InputPath != "":
		var err error
		data, err = os.ReadFile(opts.InputPath)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		name = filepath.Base(opts.InputPath)
	case opts.Text != "":
		data = []byte(opts.Text)
		name = "text"
	default:
		return ErrNoInput
	}
	if len(data) == 0 {
		return ErrNoInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	encOpts := codec.Options{ChunkBits: opts.ChunkBits}
	if opts.Category != "" {
		cat, err := color.ParseCategory(opts.Category)
		if err != nil {
			return err
		}
		encOpts.Category = cat
	}
	if opts.ThemePath != "" {
		theme, err := color.LoadTheme(opts.ThemePath)
		if err != nil {
			return err
		}
		encOpts.Theme = theme
	}

	packed, err := operations.StringToOperations(opts.Operations)
	if err != nil {
		return err
	}

	show, err := codec.Encode(data, encOpts)
	if err != nil {
		return err
	}
	logger.Info("🔄 Encoded input",
		"bytes", len(data),
		"symbols", show.Header.SymbolCount,
		"chunk_bits", show.Header.ChunkBits,
		"pad_bits", show.Header.PadBits,
	)

	writer := format.NewWriterWithLogger(logger)
	return writer.WriteFile(opts.OutputPath, show, format.WriteOptions{
		ShowName:    name,
		SourceBytes: int64(len(data)),
		Operations:  packed,
	})
}

// DecodeShow reads a .lxs file, verifies it and returns the original bytes.
func DecodeShow(showPath string, logger hclog.Logger) ([]byte, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	reader := format.NewReaderWithLogger(showPath, logger)
	if err := reader.Open(); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrShowNotFound, showPath)
		}
		return nil, err
	}
	show, err := reader.ReadShow()
	if err != nil {
		return nil, err
	}
	data, err := codec.Decode(show)
	if err != nil {
		return nil, err
	}
	logger.Info("🔓 Show decoded", "symbols", show.Header.SymbolCount, "bytes", len(data))
	return data, nil
}

// ExtractShow decodes a show to outputPath. When outputPath is empty the
// decoded payload is placed in the show cache, keyed by payload checksum.
func ExtractShow(showPath, outputPath string, logger hclog.Logger) (string, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	data, err := DecodeShow(showPath, logger)
	if err != nil {
		return "", err
	}

	if outputPath == "" {
		reader := format.NewReader(showPath)
		idx, err := reader.ReadIndex()
		if err != nil {
			return "", err
		}
		dir := showcache.ShowPath(filepath.Base(showPath), fmt.Sprintf("%x", idx.PayloadChecksum))
		if err := showcache.Create(dir); err != nil {
			return "", err
		}
		// Cache extractions keep the show metadata next to the payload.
		meta, err := reader.ReadMetadata()
		if err != nil {
			return "", err
		}
		metaJSON, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling metadata: %w", err)
		}
		if err := os.WriteFile(filepath.Join(dir, format.ShowMetadataFile), metaJSON, format.FilePerms); err != nil {
			return "", fmt.Errorf("writing show metadata: %w", err)
		}
		outputPath = filepath.Join(dir, format.DecodedFile)
	}

	if err := os.WriteFile(outputPath, data, format.FilePerms); err != nil {
		return "", fmt.Errorf("writing decoded output: %w", err)
	}
	logger.Info("📤 Decoded payload written", "path", outputPath, "bytes", len(data))
	return outputPath, nil
}
