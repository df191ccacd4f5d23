package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/openindoormaps/gumap/internal/config"
	"github.com/openindoormaps/gumap/internal/processor"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Input      string `short:"i" long:"in"     description:"Raw payload JSON file. Reads from stdin if empty"`
	Output     string `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to YAML configuration overriding the built-in defaults"`
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

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
	}

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	var payload map[string]any
	if err := json.Unmarshal(inputData, &payload); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing payload JSON: %v\n", err)
		os.Exit(1)
	}

	doc := processor.New(cfg).Build(payload)

	if opts.Output != "" {
		if err := processor.WriteDocument(opts.Output, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully converted %d POIs to %s\n", len(doc.POIs.Features), opts.Output)
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling document: %v\n", err)
		os.Exit(1)
	}
}
