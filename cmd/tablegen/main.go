package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/docfold/tablegen/internal/htmldoc"
	"github.com/docfold/tablegen/pkg/doctable"
	"github.com/docfold/tablegen/pkg/orchestrator"
)

func main() {
	source := flag.String("source", htmldoc.DefaultDocURL, "documentation page path or URL")
	output := flag.String("output", "twitch_eventsub_swagger.yaml", "output file (stdout if empty)")
	timeout := flag.Duration("timeout", 30*time.Second, "HTTP fetch timeout")
	validate := flag.Bool("validate", false, "validate the emitted document with an OpenAPI loader")
	force := flag.Bool("force", false, "overwrite the output file without asking")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	options := []orchestrator.Option{
		orchestrator.WithLoaderOptions(doctable.LoaderOptions{RequestTimeout: *timeout}),
	}
	if *validate {
		options = append(options, orchestrator.WithValidation())
	}

	gen := orchestrator.New(options...)

	outputYAML, err := gen.Generate(ctx, orchestrator.Request{Source: src})
	if err != nil {
		log.Fatalf("Failed to generate schemas: %v", err)
	}

	if *output == "" {
		fmt.Println(string(outputYAML))
		return
	}

	if !*force && !confirmOverwrite(*output) {
		log.Fatalf("Aborted: %s already exists", *output)
	}
	if err := os.WriteFile(*output, outputYAML, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Done! Created %s\n", *output)
}

// confirmOverwrite asks before clobbering an existing file. Missing files
// need no confirmation.
func confirmOverwrite(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return true
	}
	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s exists, overwrite?", path),
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false
	}
	return overwrite
}

func parseSource(raw string) doctable.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return doctable.SourceFromURL(path)
	}
	return doctable.SourceFromFile(path)
}
