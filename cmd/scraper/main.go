package main

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/openindoormaps/gumap/internal/config"
	"github.com/openindoormaps/gumap/internal/logger"
	"github.com/openindoormaps/gumap/internal/processor"
	"github.com/openindoormaps/gumap/internal/scraper"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

const defaultOutput = "georgetown-map-data.json"

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"   env:"CONFIG_FILE" description:"Path to YAML configuration overriding the built-in defaults"`
	DumpRaw    string `short:"r" long:"dump-raw" env:"DUMP_RAW"    description:"Also write the raw fetched payload to this path"`

	Args struct {
		Output string `positional-arg-name:"output" description:"Destination file path"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	output := opts.Args.Output
	if output == "" {
		output = defaultOutput
	}

	client := &http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	}
	s := scraper.New(client, cfg)

	log.Info().
		Str("site", cfg.Site.Name).
		Str("output", output).
		Msg("Campus map scrape starting")

	pageURL, page, err := s.FindMapPage()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not find campus map page")
	}

	mapID, err := scraper.ExtractMapID(page)
	if err != nil {
		log.Fatal().Err(err).Str("url", pageURL).Msg("Could not extract map ID")
	}

	data := s.FetchMapData(mapID)
	if len(data) == 0 {
		log.Fatal().Str("map_id", mapID).Msg("No data fetched from any endpoint")
	}

	if opts.DumpRaw != "" {
		dumpRaw(opts.DumpRaw, data)
	}

	doc := processor.New(cfg).Build(data)

	if err := processor.WriteDocument(output, doc); err != nil {
		log.Fatal().Err(err).Str("path", output).Msg("Failed to write output file")
	}

	log.Info().
		Int("pois", len(doc.POIs.Features)).
		Str("path", output).
		Msg("Scrape completed successfully")
}

// dumpRaw saves the unprocessed endpoint payloads for manual review.
// Failures here are not terminal, the normalized output still matters.
func dumpRaw(path string, data map[string]any) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err == nil {
		err = os.WriteFile(path, out, 0644)
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to write raw payload")
		return
	}

	log.Info().Str("path", path).Msg("Raw payload saved")
}
