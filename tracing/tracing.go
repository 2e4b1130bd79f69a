package tracing

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/viant/crossuuid"

// installed holds the provider and the trace file opened by Init
var installed struct {
	sync.Mutex
	provider *sdktrace.TracerProvider
	output   *os.File
}

// Init installs a stdout exporter writing to outputFile, or os.Stdout when outputFile is empty.
// It is a no-op once a provider is installed; outputFile is then left untouched.
func Init(serviceName, serviceVersion, outputFile string) error {
	installed.Lock()
	defer installed.Unlock()
	if installed.provider != nil {
		return nil
	}
	var w io.Writer = os.Stdout
	var output *os.File
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create trace file %s: %w", outputFile, err)
		}
		w, output = f, f
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err == nil {
		err = install(serviceName, serviceVersion, exporter)
	}
	if err != nil {
		if output != nil {
			_ = output.Close()
		}
		return err
	}
	installed.output = output
	return nil
}

// InitWithExporter installs the supplied exporter. It is a no-op once a provider is installed.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	installed.Lock()
	defer installed.Unlock()
	if installed.provider != nil || exporter == nil {
		return nil
	}
	return install(serviceName, serviceVersion, exporter)
}

// install expects installed to be locked
func install(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	res, err := resource.New(context.Background(), resource.WithAttributes(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	))
	if err != nil {
		return fmt.Errorf("failed to create trace resource: %w", err)
	}
	installed.provider = sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(installed.provider)
	return nil
}

// Shutdown flushes the installed provider and closes the trace file. A later Init installs a new provider.
func Shutdown(ctx context.Context) error {
	installed.Lock()
	defer installed.Unlock()
	if installed.provider == nil {
		return nil
	}
	err := installed.provider.Shutdown(ctx)
	if installed.output != nil {
		if cerr := installed.output.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	installed.provider, installed.output = nil, nil
	return err
}

// Span wraps trace.Span
type Span struct {
	span trace.Span
}

// WithAttributes attaches string attributes to the span
func (s *Span) WithAttributes(attrs map[string]string) *Span {
	if s == nil {
		return nil
	}
	for key, value := range attrs {
		s.span.SetAttributes(attribute.String(key, value))
	}
	return s
}

// SetStatus records err on the span, or an OK status when err is nil
func (s *Span) SetStatus(err error) {
	switch {
	case s == nil:
	case err == nil:
		s.span.SetStatus(codes.Ok, "")
	default:
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
}

// StartSpan starts an internal span
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// EndSpan records status for err and ends the span
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}
