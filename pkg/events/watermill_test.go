package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/itemsdemo/pkg/config"
	"github.com/ghuser/itemsdemo/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func nopLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// TestRetryWithBackoff_SuccessOnFirstAttempt verifies no retry occurs on success.
func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// TestRetryWithBackoff_SuccessAfterRetries verifies retry continues until success.
func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestRetryWithBackoff_ExhaustsRetries verifies an error is returned after all retries fail.
func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("permanent error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

// TestRetryWithBackoff_ContextCancelled verifies retry stops when context is canceled.
func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, nopLogger())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	// Should have called handler once then exited on ctx.Done
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

// TestOTelPropagation_InjectExtract verifies that trace context injected via
// the same propagation path used by Publish/Subscribe round-trips correctly.
func TestOTelPropagation_InjectExtract(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	// Simulate Publish: inject trace context into message metadata.
	msg := message.NewMessage("id", nil)
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	// Simulate Subscribe: extract trace context from message metadata.
	extractCarrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		extractCarrier[k] = v
	}
	msgCtx := otel.GetTextMapPropagator().Extract(context.Background(), extractCarrier)

	gotSpan := trace.SpanFromContext(msgCtx)
	if !gotSpan.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if gotSpan.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, gotSpan.SpanContext().TraceID())
	}
}

func newTestBus(t *testing.T) *EventBus {
	t.Helper()
	bus := NewEventBus(&config.Config{}, nopLogger())
	bus.retryDelay = time.Millisecond
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestNewJSONMessage(t *testing.T) {
	msg, err := NewJSONMessage(map[string]int{"id": 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.UUID == "" {
		t.Error("expected a message UUID")
	}
	var got map[string]int
	if err := json.Unmarshal(msg.Payload, &got); err != nil || got["id"] != 3 {
		t.Errorf("payload round trip: %v %v", got, err)
	}

	if _, err := NewJSONMessage(func() {}); err == nil {
		t.Error("expected marshal error for a func payload")
	}
}

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan string, 1)
	errCh, err := bus.Subscribe(ctx, "topic.a", func(_ context.Context, msg *message.Message) error {
		received <- string(msg.Payload)
		return nil
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	if err := bus.Publish(ctx, "topic.a", message.NewMessage("1", []byte("hello"))); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case got := <-received:
		if got != "hello" {
			t.Errorf("payload: got %q, want hello", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	select {
	case err := <-errCh:
		t.Fatalf("unexpected subscriber error: %v", err)
	default:
	}
}

func TestEventBus_PublishWithoutSubscribers(t *testing.T) {
	bus := newTestBus(t)
	if err := bus.Publish(context.Background(), "nobody.listens", message.NewMessage("1", nil)); err != nil {
		t.Fatalf("publishing to an idle topic should succeed, got %v", err)
	}
}

func TestEventBus_ExhaustedHandlerReportsError(t *testing.T) {
	bus := newTestBus(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	errCh, err := bus.Subscribe(ctx, "topic.fail", func(context.Context, *message.Message) error {
		calls <- struct{}{}
		return errors.New("always fails")
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := bus.Publish(ctx, "topic.fail", message.NewMessage("1", nil)); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected an error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscriber error")
	}

	// Acked after exhaustion: no redelivery beyond the retry budget.
	time.Sleep(50 * time.Millisecond)
	if n := len(calls); n != maxRetries {
		t.Errorf("expected %d handler calls, got %d", maxRetries, n)
	}
}

func TestEventBus_PropagatesTraceContext(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	bus := newTestBus(t)
	subCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan trace.SpanContext, 1)
	if _, err := bus.Subscribe(subCtx, "topic.trace", func(ctx context.Context, _ *message.Message) error {
		got <- trace.SpanContextFromContext(ctx)
		return nil
	}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish")
	defer span.End()
	if err := bus.Publish(ctx, "topic.trace", message.NewMessage("1", nil)); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case sc := <-got:
		if sc.TraceID() != span.SpanContext().TraceID() {
			t.Errorf("trace ID mismatch: want %s, got %s", span.SpanContext().TraceID(), sc.TraceID())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestEventBus_Close(t *testing.T) {
	bus := NewEventBus(&config.Config{}, nopLogger())

	errCh, err := bus.Subscribe(context.Background(), "topic.close", func(context.Context, *message.Message) error { return nil })
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := bus.Ping(context.Background()); err != nil {
		t.Fatalf("Ping before close: %v", err)
	}

	if err := bus.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}

	// Close ends every subscription.
	select {
	case _, ok := <-errCh:
		if ok {
			t.Fatal("expected error channel to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not end on Close")
	}

	if err := bus.Publish(context.Background(), "topic.close", message.NewMessage("1", nil)); !errors.Is(err, ErrClosed) {
		t.Errorf("Publish after Close: got %v, want ErrClosed", err)
	}
	if _, err := bus.Subscribe(context.Background(), "topic.close", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Subscribe after Close: got %v, want ErrClosed", err)
	}
	if err := bus.Ping(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Ping after Close: got %v, want ErrClosed", err)
	}
}
