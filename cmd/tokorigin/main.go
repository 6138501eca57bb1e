// Package main implements the tokorigin CLI: detect an account's country
// of origin from a profile JSON file, or resolve a hosting region from
// saved page markup.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/tokorigin/pkg/markup"
	"github.com/codeGROOVE-dev/tokorigin/pkg/origin"
	"github.com/codeGROOVE-dev/tokorigin/pkg/pagefetch"
	"github.com/codeGROOVE-dev/tokorigin/pkg/profile"
	"github.com/codeGROOVE-dev/tokorigin/pkg/resultcache"
)

var (
	videosPath  = flag.String("videos", "", "JSON file with recent videos for the account")
	markupPath  = flag.String("markup", "", "raw markup file for CDN-fallback region detection")
	fetchRegion = flag.String("fetch-region", "", "username: fetch the live page and run region detection")
	asJSON      = flag.Bool("json", false, "emit results as JSON")
	verbose     = flag.Bool("verbose", false, "enable verbose logging")
	showVersion = flag.Bool("version", false, "show version")
	cacheTTL    = flag.Duration("cache-ttl", time.Hour, "per-username result memoization TTL")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println("tokorigin v1.0.0")
		return
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	switch {
	case *fetchRegion != "":
		runFetchRegion(logger, *fetchRegion)
	case *markupPath != "":
		runMarkupRegion(*markupPath)
	default:
		runDetect(logger, flag.Args())
	}
}

// runDetect classifies one or more profile JSON files. Repeated usernames
// within a batch hit the result cache instead of re-running detection.
func runDetect(logger *slog.Logger, paths []string) {
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <profile.json> [more.json...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	detector := origin.NewWithLogger(logger)
	cache := resultcache.New(*cacheTTL, logger)

	videos, err := loadVideos(*videosPath)
	if err != nil {
		logger.Error("loading videos", "path", *videosPath, "error", err)
		os.Exit(1)
	}

	for _, path := range paths {
		p, err := loadProfile(path)
		if err != nil {
			logger.Error("loading profile", "path", path, "error", err)
			os.Exit(1)
		}

		result, cached := cache.Get(p.Username)
		if !cached {
			result = detector.DetectCountry(p, videos)
			cache.Set(p.Username, result)
		}

		if *asJSON {
			printJSON(result)
			continue
		}
		printResult(p.Username, result, cached)
	}
	logger.Debug("batch complete", "profiles", len(paths), "cached_results", cache.Len())
}

func runFetchRegion(logger *slog.Logger, username string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var fetcher pagefetch.Fetcher = pagefetch.New(pagefetch.WithLogger(logger))
	page, err := fetcher.Fetch(ctx, username)

	var result markup.RegionResult
	switch {
	case errors.Is(err, pagefetch.ErrParseFailed):
		result = markup.Errored()
	case err != nil:
		result = markup.FailedFetch()
	default:
		result = markup.DetectRegion(page.Markup, page.Region, page.Language)
	}
	printRegion(username, result)
}

func runMarkupRegion(path string) {
	raw, err := os.ReadFile(path)
	var result markup.RegionResult
	if err != nil {
		result = markup.FailedFetch()
	} else {
		result = markup.DetectRegion(string(raw), "", "")
	}
	printRegion(path, result)
}

func loadProfile(path string) (profile.Profile, error) {
	var p profile.Profile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing %s: %w", path, err)
	}
	if p.Username == "" {
		return p, fmt.Errorf("%s: profile has no username", path)
	}
	return p, nil
}

func loadVideos(path string) ([]profile.Video, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var videos []profile.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return videos, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encoding result: %v\n", err)
		os.Exit(1)
	}
}

func printResult(username string, result origin.Result, cached bool) {
	fmt.Printf("\n🌍 Account: @%s", username)
	if cached {
		fmt.Print(" (cached)")
	}
	fmt.Println()
	fmt.Println(strings.Repeat("─", 50))

	confColor := confidenceColor(result.Confidence)
	fmt.Printf("Country:    %s (%s)\n", color.New(color.Bold).Sprint(result.CountryName), result.Country)
	fmt.Printf("Confidence: %s\n", confColor.Sprintf("%.0f%%", result.Confidence*100))
	if result.MethodCount > 0 {
		methods := make([]string, len(result.Methods))
		for i, m := range result.Methods {
			methods[i] = string(m)
		}
		fmt.Printf("Methods:    %s", strings.Join(methods, ", "))
		if result.DiversityBonus > 0 {
			fmt.Printf("  (+%.0f%% diversity bonus)", result.DiversityBonus*100)
		}
		fmt.Println()
	}
	if result.Warning != "" {
		color.New(color.FgYellow).Printf("⚠️  %s\n", result.Warning)
	}
	if len(result.Signals) > 0 {
		fmt.Println("\nEvidence:")
		for _, s := range result.Signals {
			fmt.Printf("  • [%s %.2f] %s\n", s.Method, s.Confidence, s.Evidence)
		}
	}
}

func printRegion(subject string, result markup.RegionResult) {
	if *asJSON {
		printJSON(result)
		return
	}
	fmt.Printf("\n🌐 Region for %s\n", subject)
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("Region:     %s\n", color.New(color.Bold).Sprint(result.Region))
	fmt.Printf("Confidence: %s\n", confidenceColor(result.Confidence).Sprintf("%.0f%%", result.Confidence*100))
	fmt.Printf("Method:     %s\n", result.Method)
	if !result.Success {
		color.New(color.FgYellow).Println("⚠️  no region evidence found")
	}
}

func confidenceColor(confidence float64) *color.Color {
	switch {
	case confidence >= 0.6:
		return color.New(color.FgGreen)
	case confidence >= 0.3:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
