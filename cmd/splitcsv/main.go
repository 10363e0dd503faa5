package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"

	"github.com/dugjason/split-csv/document"
	smcp "github.com/dugjason/split-csv/mcp"
	"github.com/dugjason/split-csv/service"
	"github.com/dugjason/split-csv/splitter"
)

func main() {
	startGops()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	case "split":
		splitCmd(os.Args[2:])
	case "estimate":
		estimateCmd(os.Args[2:])
	case "serve":
		serveCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: splitcsv <command> [options]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  validate  Check CSV structure and report issues")
	fmt.Fprintln(os.Stderr, "  split     Split a CSV into chunk files (or print a summary)")
	fmt.Fprintln(os.Stderr, "  estimate  Report the chunk count a split would produce")
	fmt.Fprintln(os.Stderr, "  serve     Run the MCP server")
}

func validateCmd(args []string) {
	flags := flag.NewFlagSet("validate", flag.ExitOnError)
	src := flags.String("src", "", "source file path or URL (required)")
	configPath := flags.String("config", "", "config yaml (optional)")
	mcpAddr := flags.String("mcp-addr", "", "route through a running MCP server (optional)")
	verbose := flags.Bool("verbose", false, "log operation details")
	debugSleep := flags.Int("debug-sleep", 0, "debug: sleep N seconds before execution (for gops)")
	flags.Parse(args)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("validate", *debugSleep)

	cfg := loadConfigOrExit(*configPath)
	srcVal := resolveSource(*src, cfg)
	if srcVal == "" {
		flags.Usage()
		os.Exit(2)
	}

	var issues []string
	var valid bool
	if *mcpAddr != "" {
		out, err := mcpValidate(ctx, *mcpAddr, &smcp.ValidateInput{SourceURL: srcVal})
		if err != nil {
			log.Fatalf("validate: %v", err)
		}
		issues, valid = out.Issues, out.Valid
	} else {
		svc, err := service.NewService()
		if err != nil {
			log.Fatalf("service init: %v", err)
		}
		result, err := svc.Validate(ctx, service.ValidateRequest{
			SourceURL: srcVal,
			Logf:      logfWhen(*verbose),
		})
		if err != nil {
			log.Fatalf("validate: %v", err)
		}
		issues, valid = result.Issues, result.IsValid
	}
	for _, issue := range issues {
		fmt.Println(issue)
	}
	if !valid {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
}

func splitCmd(args []string) {
	flags := flag.NewFlagSet("split", flag.ExitOnError)
	src := flags.String("src", "", "source file path or URL (required)")
	dest := flags.String("dest", "", "destination directory or URL (omit to print a summary)")
	baseName := flags.String("base-name", "", "base chunk file name (defaults to the source name)")
	maxLines := flags.Int("max-lines", 0, "max lines per chunk file (required)")
	includeHeader := flags.Bool("include-header", false, "repeat the header row in every chunk")
	configPath := flags.String("config", "", "config yaml (optional)")
	mcpAddr := flags.String("mcp-addr", "", "route through a running MCP server (optional)")
	verbose := flags.Bool("verbose", false, "log operation details")
	debugSleep := flags.Int("debug-sleep", 0, "debug: sleep N seconds before execution (for gops)")
	flags.Parse(args)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("split", *debugSleep)

	cfg := loadConfigOrExit(*configPath)
	srcVal := resolveSource(*src, cfg)
	options := resolveOptions(*maxLines, *includeHeader, cfg)
	if srcVal == "" || options.MaxLinesPerFile <= 0 {
		flags.Usage()
		os.Exit(2)
	}
	destVal := *dest
	if destVal == "" && cfg != nil {
		destVal = cfg.Dest
	}
	baseVal := *baseName
	if baseVal == "" && cfg != nil {
		baseVal = cfg.BaseName
	}

	if destVal == "" {
		if *mcpAddr != "" {
			out, err := mcpSplit(ctx, *mcpAddr, &smcp.SplitInput{
				SourceURL:       srcVal,
				MaxLinesPerFile: options.MaxLinesPerFile,
				IncludeHeader:   options.IncludeHeader,
			})
			if err != nil {
				log.Fatalf("split: %v", err)
			}
			printChunkSummary(out.Chunks, out.TotalChunks, out.OriginalLineCount)
			return
		}
		svc, err := service.NewService()
		if err != nil {
			log.Fatalf("service init: %v", err)
		}
		result, err := svc.Split(ctx, service.SplitRequest{
			SourceURL: srcVal,
			Options:   options,
			Logf:      logfWhen(*verbose),
		})
		if err != nil {
			log.Fatalf("split: %v", err)
		}
		printChunkSummary(result.Chunks, result.TotalChunks, result.OriginalLineCount)
		return
	}

	if *mcpAddr != "" {
		out, err := mcpExport(ctx, *mcpAddr, &smcp.ExportInput{
			SourceURL:       srcVal,
			DestURL:         destVal,
			BaseName:        baseVal,
			MaxLinesPerFile: options.MaxLinesPerFile,
			IncludeHeader:   options.IncludeHeader,
		})
		if err != nil {
			log.Fatalf("split: %v", err)
		}
		printExportSummary(out.JobID, out.Files, out.TotalChunks, out.OriginalLineCount)
		return
	}

	svc, err := service.NewService()
	if err != nil {
		log.Fatalf("service init: %v", err)
	}
	result, err := svc.Export(ctx, service.ExportRequest{
		SourceURL: srcVal,
		DestURL:   destVal,
		BaseName:  baseVal,
		Options:   options,
		Logf:      logfWhen(*verbose),
	})
	if err != nil {
		log.Fatalf("split: %v", err)
	}
	printExportSummary(result.JobID, result.Files, result.TotalChunks, result.OriginalLineCount)
}

func estimateCmd(args []string) {
	flags := flag.NewFlagSet("estimate", flag.ExitOnError)
	src := flags.String("src", "", "source file path or URL (required)")
	maxLines := flags.Int("max-lines", 0, "max lines per chunk file (required)")
	includeHeader := flags.Bool("include-header", false, "repeat the header row in every chunk")
	configPath := flags.String("config", "", "config yaml (optional)")
	mcpAddr := flags.String("mcp-addr", "", "route through a running MCP server (optional)")
	verbose := flags.Bool("verbose", false, "log operation details")
	debugSleep := flags.Int("debug-sleep", 0, "debug: sleep N seconds before execution (for gops)")
	flags.Parse(args)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	maybeDebugSleep("estimate", *debugSleep)

	cfg := loadConfigOrExit(*configPath)
	srcVal := resolveSource(*src, cfg)
	options := resolveOptions(*maxLines, *includeHeader, cfg)
	if srcVal == "" || options.MaxLinesPerFile <= 0 {
		flags.Usage()
		os.Exit(2)
	}

	if *mcpAddr != "" {
		out, err := mcpEstimate(ctx, *mcpAddr, &smcp.EstimateInput{
			SourceURL:       srcVal,
			MaxLinesPerFile: options.MaxLinesPerFile,
			IncludeHeader:   options.IncludeHeader,
		})
		if err != nil {
			log.Fatalf("estimate: %v", err)
		}
		fmt.Printf("chunks=%d\n", out.Chunks)
		return
	}

	svc, err := service.NewService()
	if err != nil {
		log.Fatalf("service init: %v", err)
	}
	count, err := svc.Estimate(ctx, service.EstimateRequest{
		SourceURL: srcVal,
		Options:   options,
		Logf:      logfWhen(*verbose),
	})
	if err != nil {
		log.Fatalf("estimate: %v", err)
	}
	fmt.Printf("chunks=%d\n", count)
}

func loadConfigOrExit(path string) *service.Config {
	path = resolveConfigPath(path)
	if path == "" {
		return nil
	}
	cfg, err := service.LoadConfig(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

// resolveConfigPath falls back to ~/splitcsv/config.yaml when present.
func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(home, "splitcsv", "config.yaml")
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}

func resolveSource(flagSrc string, cfg *service.Config) string {
	if flagSrc != "" {
		return flagSrc
	}
	if cfg != nil {
		return cfg.Source
	}
	return ""
}

// resolveOptions prefers explicit flags over config values.
func resolveOptions(maxLines int, includeHeader bool, cfg *service.Config) splitter.Options {
	options := splitter.Options{MaxLinesPerFile: maxLines, IncludeHeader: includeHeader}
	if cfg == nil {
		return options
	}
	if options.MaxLinesPerFile <= 0 {
		options.MaxLinesPerFile = cfg.MaxLinesPerFile
	}
	if !options.IncludeHeader {
		options.IncludeHeader = cfg.IncludeHeader
	}
	return options
}

func printChunkSummary(chunks []document.Chunk, total, lines int) {
	for _, chunk := range chunks {
		fmt.Printf("chunk=%d/%d data_lines=%d checksum=%d range=%v\n",
			chunk.Index+1, total, chunk.DataLines, chunk.Checksum, chunk.Meta["line_range"])
	}
	fmt.Printf("chunks=%d lines=%d\n", total, lines)
}

func printExportSummary(jobID string, files []service.ExportedFile, total, lines int) {
	for _, exported := range files {
		fmt.Printf("wrote %s (%d bytes)\n", exported.URL, exported.Size)
	}
	fmt.Printf("job=%s chunks=%d lines=%d\n", jobID, total, lines)
}

func logfWhen(verbose bool) func(format string, args ...any) {
	if !verbose {
		return nil
	}
	return log.Printf
}

func maybeDebugSleep(cmd string, seconds int) {
	if seconds <= 0 {
		seconds = debugSleepFromEnv()
	}
	if seconds <= 0 {
		return
	}
	log.Printf("debug: cmd=%s pid=%d sleep=%ds", cmd, os.Getpid(), seconds)
	time.Sleep(time.Duration(seconds) * time.Second)
}

func startGops() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("gops: %v", err)
	}
}

func debugSleepFromEnv() int {
	val := strings.TrimSpace(os.Getenv("SPLITCSV_DEBUG_SLEEP"))
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
