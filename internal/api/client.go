// Package api is the HTTP client for the photo board backend.
//
// Every call takes a context, is traced as a client span, and carries a
// fresh X-Request-ID. Failures come back as apperr network errors; the
// HTTP status is kept when the backend answered.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"photoboard/internal/apperr"
	"photoboard/internal/board"
	"photoboard/internal/jsonutil"
	"photoboard/internal/logger"
)

// RequestIDHeader is set on every request.
const RequestIDHeader = "X-Request-ID"

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  oteltrace.Tracer
	log     *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithLogger sets the request logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for baseURL (e.g. "http://localhost:3000/api").
// timeout bounds each request, body included.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tracer:  noop.NewTracerProvider().Tracer("photoboard/api"),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetBoards fetches all boards.
func (c *Client) GetBoards(ctx context.Context) ([]board.Board, error) {
	var out []board.Board
	err := c.do(ctx, "get_boards", http.MethodGet, "/boards", nil, func(r io.Reader) (err error) {
		out, err = jsonutil.DecodeArray[board.Board](r, "decode boards")
		return err
	})
	return out, err
}

// GetImages fetches all images.
func (c *Client) GetImages(ctx context.Context) ([]board.Image, error) {
	var out []board.Image
	err := c.do(ctx, "get_images", http.MethodGet, "/images", nil, func(r io.Reader) (err error) {
		out, err = jsonutil.DecodeArray[board.Image](r, "decode images")
		return err
	})
	return out, err
}

// GetTags sends images to the backend and returns them enriched with tags.
func (c *Client) GetTags(ctx context.Context, images []board.Image) ([]board.Image, error) {
	var out []board.Image
	err := c.do(ctx, "get_tags", http.MethodPost, "/images/tags", images, func(r io.Reader) (err error) {
		out, err = jsonutil.DecodeArray[board.Image](r, "decode tags")
		return err
	})
	return out, err
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

// HasImage asks the backend whether rawURL resolves to a real image.
func (c *Client) HasImage(ctx context.Context, rawURL string) (bool, error) {
	var resp existsResponse
	path := "/images/exists?url=" + url.QueryEscape(rawURL)
	err := c.do(ctx, "has_image", http.MethodGet, path, nil, func(r io.Reader) error {
		return jsonutil.DecodeWithContext(r, &resp, "decode exists")
	})
	return resp.Exists, err
}

// AddBoards persists boards and returns them as saved, in request order.
func (c *Client) AddBoards(ctx context.Context, boards []board.Board) ([]board.Board, error) {
	var out []board.Board
	err := c.do(ctx, "add_boards", http.MethodPost, "/boards", boards, func(r io.Reader) (err error) {
		out, err = jsonutil.DecodeArray[board.Board](r, "decode saved boards")
		return err
	})
	return out, err
}

// AddImages persists images and returns them as saved.
func (c *Client) AddImages(ctx context.Context, images []board.Image) ([]board.Image, error) {
	var out []board.Image
	err := c.do(ctx, "add_images", http.MethodPost, "/images", images, func(r io.Reader) (err error) {
		out, err = jsonutil.DecodeArray[board.Image](r, "decode saved images")
		return err
	})
	return out, err
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do runs one request. decode is called with the body of a 2xx response.
func (c *Client) do(ctx context.Context, op, method, path string, body any, decode func(io.Reader) error) (err error) {
	requestID := uuid.NewString()
	target := c.baseURL + path

	ctx, span := c.tracer.Start(ctx, op,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", target),
			attribute.String("photoboard.request_id", requestID),
		),
	)
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			c.log.Warn("api request failed", "op", op, "request_id", requestID, "error", err)
		} else {
			c.log.Debug("api request", "op", op, "request_id", requestID, "duration", time.Since(start))
		}
		span.End()
	}()

	var reqBody io.Reader
	if body != nil {
		if reqBody, err = jsonutil.MarshalBody(body, "encode "+op); err != nil {
			return apperr.Wrap(err, op)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return apperr.Wrap(err, op)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Network(op, 0, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp)
	}
	if err := decode(resp.Body); err != nil {
		return apperr.Network(op, resp.StatusCode, err)
	}
	return nil
}

// statusError converts a non-2xx response. 404 maps to a not found error,
// every other status to a network error. The backend may send
// {"code","message"}; otherwise the status text is used.
func statusError(op string, resp *http.Response) error {
	msg := fmt.Sprintf("%s: %s", op, http.StatusText(resp.StatusCode))
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var eb errorBody
	if jsonutil.UnmarshalWithContext(data, &eb, op) == nil && eb.Message != "" {
		msg = fmt.Sprintf("%s: %s", op, eb.Message)
	}
	coded := apperr.Network(msg, resp.StatusCode, nil)
	if resp.StatusCode == http.StatusNotFound {
		coded = apperr.NotFound(msg)
		coded.Status = resp.StatusCode
	}
	if eb.Code != "" {
		return coded.WithDetails(map[string]string{"code": eb.Code})
	}
	return coded
}
