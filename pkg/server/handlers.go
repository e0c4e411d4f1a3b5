package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/plotlib/pkg/errors"
	pkgio "github.com/matzehuels/plotlib/pkg/io"
	"github.com/matzehuels/plotlib/pkg/pipeline"
	"github.com/matzehuels/plotlib/pkg/sink"
	"github.com/matzehuels/plotlib/pkg/theme"
	"github.com/matzehuels/plotlib/pkg/ticks"
)

type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg, RequestID: RequestID(r.Context())})
}

// writeErr maps a pkg/errors code to an HTTP status.
func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch {
	case code.IsClientError():
		status = http.StatusBadRequest
	case code == errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case code == "":
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.cfg.Logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
		msg = "internal error"
	}
	writeError(w, r, status, string(code), msg)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Ping != nil {
		if err := s.cfg.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "cache": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type themeInfo struct {
	Name       string   `json:"name"`
	Background string   `json:"background"`
	Foreground string   `json:"foreground"`
	Palette    []string `json:"palette"`
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	var out []themeInfo
	for _, name := range theme.Names() {
		t, _ := theme.ByName(name)
		c := t.Colors()
		info := themeInfo{
			Name:       name,
			Background: theme.FormatColor(c.Background),
			Foreground: theme.FormatColor(c.Foreground),
		}
		for _, p := range c.Palette {
			info.Palette = append(info.Palette, theme.FormatColor(p))
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"formats": sink.Formats()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	doc, err := s.decodeDocument(w, r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	result, err := s.cfg.Runner.Execute(r.Context(), doc, opts)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	format := opts.Formats[0]
	sk, err := sink.ForFormat(format)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	data := result.Artifacts[sk.Format()]
	cacheStatus := "MISS"
	if result.CacheInfo.RenderHit {
		cacheStatus = "HIT"
	}
	w.Header().Set("Content-Type", sk.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Document-Hash", result.DocumentHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// renderOptions reads the query parameters of /v1/render.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{Theme: q.Get("theme")}

	format := q.Get("format")
	if format == "" {
		format = pipeline.DefaultFormat
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, err
	}
	opts.Formats = []string{format}

	for _, p := range []struct {
		name string
		dst  *int
	}{{"width", &opts.Width}, {"height", &opts.Height}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s must be a positive integer, got %q", p.name, v)
		}
		*p.dst = n
	}
	if v := q.Get("refresh"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "refresh must be a boolean, got %q", v)
		}
		opts.Refresh = b
	}
	return opts, nil
}

func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request) (*pkgio.Document, error) {
	format := pkgio.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad content type")
		}
		switch {
		case mt == "application/toml" || strings.HasSuffix(mt, "+toml"):
			format = pkgio.FormatTOML
		case mt == "application/json" || strings.HasSuffix(mt, "+json"):
		default:
			return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported content type %q", mt)
		}
	}
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body")
	}
	return pkgio.DecodeBytes(data, format)
}

type ticksRequest struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Target int     `json:"target"`
}

type tickJSON struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type ticksResponse struct {
	Step  float64    `json:"step"`
	Ticks []tickJSON `json:"ticks"`
}

// maxTickTarget bounds the tick count a client may ask for.
const maxTickTarget = 50

func (s *Server) handleTicks(w http.ResponseWriter, r *http.Request) {
	var req ticksRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeErr(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Target == 0 {
		req.Target = 5
	}
	if req.Target < 0 || req.Target > maxTickTarget {
		s.writeErr(w, r, errors.New(errors.ErrCodeInvalidInput, "target must be between 1 and %d, got %d", maxTickTarget, req.Target))
		return
	}
	sc := ticks.Nice(req.Min, req.Max, req.Target, ticks.DefaultFormat())
	resp := ticksResponse{Step: sc.Step, Ticks: make([]tickJSON, len(sc.Ticks))}
	for i, t := range sc.Ticks {
		resp.Ticks[i] = tickJSON{Value: t.Value, Label: t.Label}
	}
	writeJSON(w, http.StatusOK, resp)
}
