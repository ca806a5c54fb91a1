package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/luxbin-io/luxbin/go/luxbin/pkg"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/codec"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/format"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/morse"
	"github.com/luxbin-io/luxbin/go/luxbin/pkg/lux/render"
)

const version = "0.3.0"

var (
	outputPath string
	renderPath string
	logLevel   string
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:     "luxbin-player <show.lxs>",
		Short:   "Inspect, verify and play LXS light shows",
		Version: version,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	infoCmd := &cobra.Command{
		Use:   "info <show.lxs>",
		Short: "Print show header and metadata",
		Args:  cobra.ExactArgs(1),
		Run:   showInfo,
	}

	extractCmd := &cobra.Command{
		Use:   "extract <show.lxs>",
		Short: "Decode a show back to its original bytes",
		Args:  cobra.ExactArgs(1),
		Run:   extractShow,
	}
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Decoded output path (defaults to the show cache)")

	verifyCmd := &cobra.Command{
		Use:   "verify <show.lxs>",
		Short: "Verify every checksum and the decode path",
		Args:  cobra.ExactArgs(1),
		Run:   verifyShow,
	}

	renderCmd := &cobra.Command{
		Use:   "render <show.lxs>",
		Short: "Render the show as a PNG strip",
		Args:  cobra.ExactArgs(1),
		Run:   renderShow,
	}
	renderCmd.Flags().StringVarP(&renderPath, "output", "o", "show.png", "PNG output path")

	morseCmd := &cobra.Command{
		Use:   "morse <show.lxs>",
		Short: "Print the Morse pulse schedule",
		Args:  cobra.ExactArgs(1),
		Run:   morseShow,
	}

	rootCmd.AddCommand(infoCmd, extractCmd, verifyCmd, renderCmd, morseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showInfo(cmd *cobra.Command, args []string) {
	logger := pkg.NewToolLogger("luxbin-player", logLevel)
	reader := format.NewReaderWithLogger(args[0], logger)

	index, err := reader.ReadIndex()
	if err != nil {
		logger.Error("❌ Failed to read index", "error", err)
		os.Exit(1)
	}
	metadata, err := reader.ReadMetadata()
	if err != nil {
		logger.Error("❌ Failed to read metadata", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Show:       %s\n", metadata.Show.Name)
	fmt.Printf("Format:     %s (0x%08x)\n", metadata.Format, index.FormatVersion)
	fmt.Printf("Encoder:    %s %s\n", metadata.Encoder.Tool, metadata.Encoder.ToolVersion)
	fmt.Printf("Alphabet:   %s (%d-bit chunks, %d pad bits)\n",
		metadata.Show.Alphabet, index.ChunkBits, index.PadBits)
	fmt.Printf("Category:   %s\n", metadata.Show.Category)
	fmt.Printf("Events:     %d\n", index.EventCount)
	fmt.Printf("Source:     %d bytes\n", metadata.Show.SourceBytes)
	fmt.Printf("Operations: %s\n", metadata.Show.Operations)
	fmt.Printf("Stored:     %d bytes (raw %d)\n", index.EventTableSize, index.EventTableRawSize)

	show, err := reader.ReadShow()
	if err != nil {
		logger.Error("❌ Failed to read event table", "error", err)
		os.Exit(1)
	}
	indices := make([]int, len(show.Events))
	for i, ev := range show.Events {
		indices[i] = ev.Index
	}
	runs := codec.CompressSymbols(indices)
	longest := 0
	for _, r := range runs {
		if r.Count > longest {
			longest = r.Count
		}
	}
	fmt.Printf("Runs:       %d (longest %d)\n", len(runs), longest)
}

func extractShow(cmd *cobra.Command, args []string) {
	logger := pkg.NewToolLogger("luxbin-player", logLevel)
	path, err := pkg.ExtractShow(args[0], outputPath, logger)
	if err != nil {
		logger.Error("❌ Extract failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(path)
}

func verifyShow(cmd *cobra.Command, args []string) {
	logger := pkg.NewToolLogger("luxbin-player", logLevel)
	if err := pkg.VerifyShowWithLogger(args[0], logger); err != nil {
		os.Exit(1)
	}
}

func renderShow(cmd *cobra.Command, args []string) {
	logger := pkg.NewToolLogger("luxbin-player", logLevel)
	reader := format.NewReaderWithLogger(args[0], logger)
	show, err := reader.ReadShow()
	if err != nil {
		logger.Error("❌ Failed to read show", "error", err)
		os.Exit(1)
	}

	out, err := os.Create(renderPath)
	if err != nil {
		logger.Error("❌ Failed to create output", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := render.Strip(show, render.Options{}, out); err != nil {
		logger.Error("❌ Render failed", "error", err)
		os.Exit(1)
	}
	logger.Info("🖼️ Strip rendered", "path", renderPath)
}

func morseShow(cmd *cobra.Command, args []string) {
	logger := pkg.NewToolLogger("luxbin-player", logLevel)
	reader := format.NewReaderWithLogger(args[0], logger)
	show, err := reader.ReadShow()
	if err != nil {
		logger.Error("❌ Failed to read show", "error", err)
		os.Exit(1)
	}

	pulses, err := morse.Schedule(show)
	if err != nil {
		logger.Error("❌ Schedule failed", "error", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tSYMBOL\tMORSE\tWAVELENGTH\tDURATION\tTYPE")
	elapsed := 0
	for _, p := range pulses {
		sym := "-"
		if p.Symbol != 0 {
			sym = string(p.Symbol)
		}
		wl := "OFF"
		if p.WavelengthNm > 0 {
			wl = fmt.Sprintf("%.1fnm", p.WavelengthNm)
		}
		kind := "PULSE"
		if p.IsGap {
			kind = "GAP"
		}
		fmt.Fprintf(tw, "%dms\t%s\t%s\t%s\t%dms\t%s\n", elapsed, sym, p.Morse, wl, p.DurationMs, kind)
		elapsed += p.DurationMs
	}
	tw.Flush()

	stats := morse.Summarize(pulses)
	fmt.Printf("\nTotal: %dms, %d pulses, %d unique wavelengths\n",
		stats.TotalDurationMs, stats.PulseCount, stats.UniqueWavelengths)
}
