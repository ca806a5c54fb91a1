package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/luxbin-io/luxbin/go/luxbin/pkg"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

var (
	inputPath   string
	inputText   string
	outputPath  string
	chunkBits   int
	opChain     string
	category    string
	themePath   string
	logLevel    string
	rootCmd     *cobra.Command
	versionFlag bool
)

func getEncoderTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "luxbin-encoder",
		Short: "Encode binary data as LXS light shows",
		Long:  `Encode binary data as LXS light shows`,
		Run:   encodeShow,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to input file")
	rootCmd.Flags().StringVarP(&inputText, "text", "t", "", "Literal text to encode")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path for .lxs show (required)")
	rootCmd.Flags().IntVar(&chunkBits, "chunk-bits", 6, "Bits per symbol (6 or 7)")
	rootCmd.Flags().StringVar(&opChain, "operations", "raw", "Payload operation chain (raw, gzip, bzip2, zstd, or pipe-separated)")
	rootCmd.Flags().StringVar(&category, "category", "", "Category tag (noun, verb, ..., raw-binary)")
	rootCmd.Flags().StringVar(&themePath, "theme", "", "Path to YAML color theme")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("luxbin-encoder %s\n", version)
		fmt.Printf("Built: %s\n", getEncoderTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func encodeShow(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("luxbin-encoder %s\n", version)
		fmt.Printf("Built: %s\n", getEncoderTimestamp())
		return
	}

	logger := pkg.NewToolLogger("luxbin-encoder", logLevel)
	logger.Info("💡💡💡 Hello from the LUXBIN Go Encoder 💡💡💡")

	err := pkg.EncodeShow(pkg.EncodeOptions{
		InputPath:  inputPath,
		Text:       inputText,
		OutputPath: outputPath,
		ChunkBits:  chunkBits,
		Operations: opChain,
		Category:   category,
		ThemePath:  themePath,
	}, logger)
	if err != nil {
		logger.Error("❌ Encode failed", "error", err)
		os.Exit(1)
	}
	logger.Info("✅ Show encoded", "output", outputPath)
}
