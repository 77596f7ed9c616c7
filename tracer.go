package bistro

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-preform/bistro/stringMap"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type ConsoleSink struct {
	W io.Writer
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{W: w}
}

func (c ConsoleSink) Emit(e Event) {
	_, _ = fmt.Fprintln(c.W, e.String())
}

type ChainSink []IEventSink

func NewChainSink(sinks ...IEventSink) *ChainSink {
	var chain = ChainSink(sinks)
	return &chain
}

func (c ChainSink) Emit(e Event) {
	for _, sink := range c {
		if sink != nil {
			sink.Emit(e)
		}
	}
}

type ZeroLogSink struct {
	Logger *zerolog.Logger
}

func NewZeroLogSink(l *zerolog.Logger) *ZeroLogSink {
	if l == nil {
		nop := zerolog.Nop()
		l = &nop
	}
	return &ZeroLogSink{Logger: l}
}

func (z ZeroLogSink) Emit(e Event) {
	ev := z.Logger.WithLevel(Ternary(e.IsFailure(), zerolog.WarnLevel, zerolog.InfoLevel))
	fields := stringMap.FromStruct(e)
	for _, k := range stringMap.Keys(fields) {
		ev = ev.Str(k, fields[k])
	}
	ev.Msg(e.String())
}

// OtelSink opens a span per pass and a child span per dish, each attempt becomes a span event.
type OtelSink struct {
	t        trace.Tracer
	ctx      context.Context
	pass     trace.Span
	passCtx  context.Context
	dish     trace.Span
	attempts int
}

func NewOtelSink(ctx context.Context, t trace.Tracer) *OtelSink {
	if ctx == nil {
		ctx = context.Background()
	}
	return &OtelSink{t: t, ctx: ctx}
}

func (o *OtelSink) Emit(e Event) {
	if o.pass == nil {
		o.passCtx, o.pass = o.t.Start(o.ctx, "bistro.pass", trace.WithAttributes(attribute.String("passId", e.PassId)))
	}
	switch e.Kind {
	case EventPreparingDish:
		o.endDish()
		_, o.dish = o.t.Start(o.passCtx, "bistro.dish", trace.WithAttributes(attribute.String("dish", e.Dish)))
		o.attempts = 0
	case EventPrepared:
		o.addEvent(e)
		if o.dish != nil {
			o.dish.SetAttributes(attribute.Bool("prepared", true), attribute.String("station", e.Station))
		}
		o.endDish()
	case EventNotPrepared:
		o.addEvent(e)
		if o.dish != nil {
			o.dish.SetAttributes(attribute.Bool("prepared", false))
			o.dish.SetStatus(codes.Error, e.String())
		}
		o.endDish()
	case EventPassComplete:
		o.endDish()
		o.pass.AddEvent(string(e.Kind))
		o.pass.End()
		o.pass, o.passCtx = nil, nil
	default:
		if e.Kind == EventAttempt {
			o.attempts++
		}
		o.addEvent(e)
	}
}

func (o *OtelSink) addEvent(e Event) {
	span := Ternary(o.dish != nil, o.dish, o.pass)
	fields := stringMap.FromStruct(e)
	kvs := make([]attribute.KeyValue, 0, len(fields))
	for _, k := range stringMap.Keys(fields) {
		kvs = append(kvs, attribute.String(k, fields[k]))
	}
	span.AddEvent(string(e.Kind), trace.WithAttributes(kvs...))
}

func (o *OtelSink) endDish() {
	if o.dish == nil {
		return
	}
	o.dish.SetAttributes(attribute.Int("attempts", o.attempts))
	o.dish.End()
	o.dish = nil
}
