package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/viant/afs"
	"github.com/viant/crossuuid"
	"github.com/viant/crossuuid/config"
	"github.com/viant/crossuuid/tracing"
)

const version = "0.1.0"

type app struct {
	cfg       *config.Config
	generator *crossuuid.Generator
	stdout    io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	flags := flag.NewFlagSet("crossuuid", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configURL := flags.String("config", "", "YAML config URL")
	sourceName := flags.String("source", "", "identifier source name")
	traceFile := flags.String("trace", "", "write spans to file")
	count := flags.Int("n", 0, "number of UUIDs to generate")
	strict := flags.Bool("strict", false, "accept canonical form only")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx, afs.New(), *configURL)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		return 1
	}
	if *sourceName != "" {
		cfg.Source = *sourceName
	}
	if *count > 0 {
		cfg.Count = *count
	}
	if *strict {
		cfg.Strict = true
	}
	if err = cfg.Validate(); err != nil {
		logger.Printf("ERROR: %v", err)
		return 1
	}
	options, err := cfg.Options()
	if err != nil {
		logger.Printf("ERROR: %v", err)
		return 1
	}
	generator := crossuuid.NewGenerator(append(options, crossuuid.WithLogger(logger))...)
	if *traceFile != "" {
		if err = tracing.Init("crossuuid", version, *traceFile); err != nil {
			logger.Printf("ERROR: failed to init tracing: %v", err)
			return 1
		}
		defer func() {
			if err := tracing.Shutdown(ctx); err != nil {
				logger.Printf("ERROR: failed to shutdown tracing: %v", err)
			}
		}()
	}

	a := &app{cfg: cfg, generator: generator, stdout: stdout}
	command, rest := "check", flags.Args()
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}
	switch command {
	case "check":
		err = a.check(ctx)
	case "gen":
		err = a.gen(ctx)
	case "parse":
		err = a.parse(ctx, rest)
	default:
		err = fmt.Errorf("unknown command: %s", command)
	}
	if err != nil {
		logger.Printf("ERROR: %v", err)
		return 1
	}
	return 0
}

// step runs fn inside a span named after the step, the error is prefixed with the step name
func step(ctx context.Context, name string, fn func() error) error {
	_, span := tracing.StartSpan(ctx, name)
	err := fn()
	tracing.EndSpan(span, err)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (a *app) check(ctx context.Context) error {
	var original, decoded crossuuid.UUID
	buffer := make([]byte, 64)
	var n int
	err := step(ctx, "generate", func() (err error) {
		original, err = a.generator.Generate()
		return err
	})
	if err != nil {
		return err
	}
	if err = step(ctx, "string", func() (err error) {
		n, err = original.Encode(buffer)
		return err
	}); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "UUID 1(%d): %s\n", n, buffer[:n])
	if err = step(ctx, "fromString", func() error {
		return crossuuid.DecodeInto(&decoded, string(buffer[:n]))
	}); err != nil {
		return err
	}
	if err = step(ctx, "string", func() (err error) {
		n, err = decoded.Encode(buffer)
		return err
	}); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "UUID 2(%d): %s\n", n, buffer[:n])
	if err = step(ctx, "equals", func() error {
		if !crossuuid.Equal(original, decoded) {
			return fmt.Errorf("%v != %v", original, decoded)
		}
		return nil
	}); err != nil {
		return err
	}
	original.Clear()
	return nil
}

func (a *app) gen(ctx context.Context) error {
	for i := 0; i < a.cfg.Count; i++ {
		var id crossuuid.UUID
		if err := step(ctx, "generate", func() (err error) {
			id, err = a.generator.Generate()
			return err
		}); err != nil {
			return fmt.Errorf("uuid %d: %w", i+1, err)
		}
		fmt.Fprintln(a.stdout, id.String())
	}
	return nil
}

func (a *app) parse(ctx context.Context, texts []string) error {
	if len(texts) == 0 {
		return fmt.Errorf("parse: no input")
	}
	decode := crossuuid.Parse
	if a.cfg.Strict {
		decode = crossuuid.ParseStrict
	}
	for _, text := range texts {
		var id crossuuid.UUID
		if err := step(ctx, "fromString", func() (err error) {
			id, err = decode(text)
			return err
		}); err != nil {
			return fmt.Errorf("%q: %w", text, err)
		}
		fmt.Fprintln(a.stdout, id.String())
	}
	return nil
}
