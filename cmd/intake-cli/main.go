package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	intake "github.com/goliatone/go-intake"
	"github.com/goliatone/go-intake/pkg/openapi"
	"github.com/goliatone/go-intake/pkg/render"
	"github.com/goliatone/go-intake/pkg/renderers/tui"
	"github.com/goliatone/go-intake/pkg/report"
	"github.com/goliatone/go-intake/pkg/schema"
	"github.com/goliatone/go-intake/pkg/submission"
)

func main() {
	source := flag.String("schema", "", "form definition path or URL (YAML or JSON)")
	openapiPath := flag.String("openapi", "", "derive the form from an OpenAPI document instead")
	operation := flag.String("operation", "", "operation ID when using -openapi")
	adapterName := flag.String("adapter", "tui", "adapter to collect input with")
	format := flag.String("format", "json", "output format: json, form or pretty")
	output := flag.String("output", "", "output file (stdout if empty)")
	asReport := flag.Bool("report", false, "emit a markdown report instead of the raw record")
	attempts := flag.Int("attempts", render.DefaultMaxAttempts, "solicitation rounds before giving up")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sch, err := loadSchema(ctx, *source, *openapiPath, *operation)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	adapter, err := newAdapterRegistry().Get(*adapterName)
	if err != nil {
		log.Fatalf("Failed to resolve adapter: %v", err)
	}

	record, err := intake.Collect(ctx, sch, adapter, intake.SessionOptions{MaxAttempts: *attempts})
	if err != nil {
		var errs submission.Errors
		switch {
		case errors.Is(err, render.ErrAborted):
			log.Fatal("Submission aborted")
		case errors.As(err, &errs):
			for _, fieldErr := range errs {
				fmt.Fprintln(os.Stderr, fieldErr.Error())
			}
			os.Exit(1)
		default:
			log.Fatalf("Failed to collect submission: %v", err)
		}
	}

	payload, err := encode(sch, record, *format, *asReport)
	if err != nil {
		log.Fatalf("Failed to encode record: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Record written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

// newAdapterRegistry lists every adapter this build ships with. The -adapter
// flag resolves against it by name.
func newAdapterRegistry() *render.Registry {
	reg := render.NewRegistry()
	reg.MustRegister(tui.New())
	return reg
}

func loadSchema(ctx context.Context, source, openapiPath, operation string) (*intake.Schema, error) {
	switch {
	case source != "" && openapiPath != "":
		return nil, errors.New("-schema and -openapi are mutually exclusive")
	case source != "":
		return intake.LoadSchema(ctx, parseSource(source))
	case openapiPath != "":
		if operation == "" {
			return nil, errors.New("-openapi requires -operation")
		}
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, err
		}
		return openapi.ParseDocument(ctx, raw, operation)
	default:
		return nil, errors.New("one of -schema or -openapi is required")
	}
}

func parseSource(raw string) schema.Source {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return schema.SourceFromURL(raw)
	}
	return schema.SourceFromFile(raw)
}

func encode(sch *intake.Schema, record intake.Record, format string, asReport bool) ([]byte, error) {
	if asReport {
		renderer, err := report.New()
		if err != nil {
			return nil, err
		}
		return renderer.Render(sch, record)
	}
	return render.Encode(record, render.OutputFormat(format))
}
