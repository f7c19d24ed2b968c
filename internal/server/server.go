package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rpgo/pension-gap/internal/cache"
	"github.com/rpgo/pension-gap/internal/calculation"
	"github.com/rpgo/pension-gap/internal/domain"
	"github.com/rpgo/pension-gap/internal/output"
	"github.com/valyala/fasthttp"
)

// ProjectionPath is the projection endpoint.
const ProjectionPath = "/v1/projection"

// ProjectionResponse is the body of every /v1/projection response.
type ProjectionResponse struct {
	CalculationID string `json:"calculation_id"`
	StartedAt     string `json:"started_at"`
	CompletedAt   string `json:"completed_at"`
	DurationMs    int64  `json:"duration_ms"`
	Cached        bool   `json:"cached"`
	output.Envelope
}

// Server serves projections over HTTP.
type Server struct {
	engine *cache.CachedEngine
	now    func() time.Time
	logger calculation.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces the wall clock used for default as_of dates and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithLogger sets the request logger.
func WithLogger(l calculation.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a server around a cached engine.
func New(engine *cache.CachedEngine, opts ...Option) *Server {
	s := &Server{
		engine: engine,
		now:    time.Now,
		logger: calculation.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler routes requests.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case ProjectionPath:
		if !ctx.IsPost() {
			ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodPost)
			s.writeFailure(ctx, fasthttp.StatusMethodNotAllowed, s.now(), errors.New("method not allowed"))
			return
		}
		s.handleProjection(ctx)
	case "/healthz":
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString("ok")
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	start := s.now()

	var req ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeFailure(ctx, fasthttp.StatusBadRequest, start, fmt.Errorf("invalid request body: %w", err))
		return
	}
	asOf, personal, err := req.ToDomain(start)
	if err != nil {
		s.writeFailure(ctx, fasthttp.StatusBadRequest, start, err)
		return
	}

	result, hit, err := s.engine.Project(ctx, asOf, personal, req.Assumptions)
	switch {
	case domain.IsDomainError(err):
		s.writeFailure(ctx, fasthttp.StatusUnprocessableEntity, start, err)
		return
	case err != nil:
		s.logger.Errorf("projection failed: %v", err)
		s.writeFailure(ctx, fasthttp.StatusInternalServerError, start, errors.New("internal error"))
		return
	}

	resp := s.newResponse(start, output.NewSuccessEnvelope(result))
	resp.Cached = hit
	s.logger.Infof("projection %s served (cached=%t, %d ms)", resp.CalculationID, hit, resp.DurationMs)
	s.write(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) newResponse(start time.Time, env output.Envelope) ProjectionResponse {
	end := s.now()
	return ProjectionResponse{
		CalculationID: uuid.New().String(),
		StartedAt:     start.UTC().Format(time.RFC3339),
		CompletedAt:   end.UTC().Format(time.RFC3339),
		DurationMs:    end.Sub(start).Milliseconds(),
		Envelope:      env,
	}
}

func (s *Server) writeFailure(ctx *fasthttp.RequestCtx, status int, start time.Time, err error) {
	s.write(ctx, status, s.newResponse(start, output.NewFailureEnvelope(err)))
}

func (s *Server) write(ctx *fasthttp.RequestCtx, status int, resp ProjectionResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		ctx.Error("internal error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler,
		Name:         "pensiongap",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe(addr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return srv.ShutdownWithContext(context.Background())
	}
}
