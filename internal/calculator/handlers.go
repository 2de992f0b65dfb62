package calculator

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler serves the calculator endpoints over one shared Calculator. Every
// access to the Calculator goes through mu.
type Handler struct {
	mu   sync.Mutex
	calc *Calculator
}

func NewHandler(calc *Calculator) *Handler {
	if calc == nil {
		calc = New()
	}
	return &Handler{calc: calc}
}

// ---------------------------------------------------------------------------
// Handler — single operation
// ---------------------------------------------------------------------------

// Compute handles POST /calculator/{operation}.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	opName := chi.URLParam(r, "operation")

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	kind, err := ParseOperation(opName)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusNotFound, w)
		return
	}

	var req CalcRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, string(kind), "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	start := time.Now()
	h.mu.Lock()
	rec := h.calc.Compute(kind, req.values()...)
	h.mu.Unlock()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	historySize.Add(ctx, 1)
	span.SetAttributes(
		attribute.StringSlice("calculator.operands", rec.Operands),
		attribute.Bool("calculator.succeeded", rec.Succeeded),
	)

	if !rec.Succeeded {
		observability.RecordFailure(ctx, span, logger, errorCounter, string(kind), rec.ErrorMessage, rec.Err(),
			attribute.String("error_kind", string(rec.ErrorKind)))
		handlers.WriteJSON(w, http.StatusUnprocessableEntity, rec)
		return
	}

	result, _ := rec.Value()

	attrs := metric.WithAttributes(attribute.String("operation", string(kind)))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", string(kind)),
		zap.Strings("operands", rec.Operands),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, rec)
}

// ---------------------------------------------------------------------------
// Handler — chained operations (nested spans)
// ---------------------------------------------------------------------------

// Chain handles POST /calculator/chain. Each step applies its operation to the
// running total and the step value, is recorded in history like any other
// computation and gets its own child span. The chain stops at the first
// failing step.
func (h *Handler) Chain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.chain",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ChainRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Steps) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "no steps provided", fmt.Errorf("steps array is empty"), http.StatusBadRequest, w)
		return
	}

	initial := 0.0
	if req.Initial != nil {
		v, err := ValidateNumber(req.Initial)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "chain", "invalid initial value", err, http.StatusBadRequest, w)
			return
		}
		initial = v
	}

	span.SetAttributes(
		attribute.Float64("chain.initial", initial),
		attribute.Int("chain.steps_count", len(req.Steps)),
	)

	logger.Info("starting chained calculation",
		zap.Float64("initial", initial),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	// Unknown step operations are request errors, as on the single-operation
	// route; nothing is recorded.
	kinds := make([]OperationKind, len(req.Steps))
	for i, step := range req.Steps {
		kind, err := ParseOperation(step.Op)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "chain",
				fmt.Sprintf("step %d: %s", i, err.Error()), err, http.StatusNotFound, w)
			return
		}
		kinds[i] = kind
	}

	resp := ChainResponse{
		Initial: Number(initial),
		Steps:   make([]CalculationRecord, 0, len(req.Steps)),
	}
	running := initial

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, step := range req.Steps {
		kind := kinds[i]

		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.chain.step.%d.%s", i, kind),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i),
				attribute.String("chain.step.operation", string(kind)),
				attribute.Float64("chain.step.input", running),
			),
		)

		stepStart := time.Now()
		rec := h.calc.Compute(kind, running, step.Value)
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0
		historySize.Add(ctx, 1)

		if !rec.Succeeded {
			stepErr := rec.Err()
			stepSpan.RecordError(stepErr)
			stepSpan.SetStatus(codes.Error, rec.ErrorMessage)
			stepSpan.End()

			observability.RecordFailure(ctx, span, logger, errorCounter, string(kind),
				fmt.Sprintf("chain failed at step %d", i), stepErr,
				attribute.String("error_kind", string(rec.ErrorKind)))

			resp.Failed = &rec
			handlers.WriteJSON(w, http.StatusUnprocessableEntity, resp)
			return
		}

		prev := running
		running, _ = rec.Value()

		attrs := metric.WithAttributes(attribute.String("operation", string(kind)))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, stepElapsed, attrs)

		stepSpan.AddEvent("step.complete", trace.WithAttributes(
			attribute.Float64("input", prev),
			attribute.Float64("result", running),
		))
		stepSpan.SetAttributes(attribute.Float64("chain.step.result", running))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Info("chain step completed",
			zap.Int("step", i),
			zap.String("operation", string(kind)),
			zap.Float64("input", prev),
			zap.Strings("operands", rec.Operands),
			zap.Float64("result", running),
			zap.Float64("duration_ms", stepElapsed),
		)

		resp.Steps = append(resp.Steps, rec)
	}

	resultGauge.Record(ctx, running, metric.WithAttributes(attribute.String("operation", "chain")))

	span.AddEvent("chain.complete", trace.WithAttributes(
		attribute.Float64("final_result", running),
		attribute.Int("total_steps", len(req.Steps)),
	))
	span.SetAttributes(attribute.Float64("chain.result", running))
	span.SetStatus(codes.Ok, "")

	logger.Info("chained calculation completed",
		zap.Float64("initial", initial),
		zap.Float64("result", running),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	result := Number(running)
	resp.Result = &result
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Handlers — history and metadata
// ---------------------------------------------------------------------------

// History handles GET /calculator/history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	records := h.calc.History()
	h.mu.Unlock()

	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{
		Count:   len(records),
		Records: records,
	})
}

// ClearHistory handles DELETE /calculator/history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.mu.Lock()
	removed := h.calc.Len()
	h.calc.ClearHistory()
	h.mu.Unlock()

	historySize.Add(ctx, -int64(removed))

	observability.LoggerWithTrace(ctx).Info("calculation history cleared",
		zap.Int("removed", removed),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	w.WriteHeader(http.StatusNoContent)
}

// Operations handles GET /calculator/operations.
func (h *Handler) Operations(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, DescribeOperations())
}

func decodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.UseNumber()
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
