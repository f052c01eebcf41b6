package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/dsaviz/pkg/buildinfo"
	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/algo/topics"
	"github.com/matzehuels/dsaviz/pkg/core/render/style"
	"github.com/matzehuels/dsaviz/pkg/core/step"
	"github.com/matzehuels/dsaviz/pkg/httputil"
	"github.com/matzehuels/dsaviz/pkg/pipeline"
)

// =============================================================================
// Views
// =============================================================================

type algorithmView struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Summary  string       `json:"summary"`
	Display  algo.Display `json:"display"`
	Params   []algo.Param `json:"params"`
	Defaults step.Input   `json:"defaults"`
}

type topicView struct {
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Algorithms  []algorithmView  `json:"algorithms"`
	Problems    []topics.Problem `json:"problems,omitempty"`
}

func (s *Server) algorithmView(a *algo.Algorithm) algorithmView {
	return algorithmView{
		Name:     a.Name,
		Title:    a.Title,
		Summary:  a.Summary,
		Display:  a.Display,
		Params:   a.Params,
		Defaults: s.runner.DefaultInput(a),
	}
}

func (s *Server) topicView(t *algo.Topic) topicView {
	v := topicView{Name: t.Name, Title: t.Title, Description: t.Description}
	for _, a := range t.Algorithms {
		v.Algorithms = append(v.Algorithms, s.algorithmView(a))
	}
	return v
}

// =============================================================================
// Requests
// =============================================================================

type batchRequest struct {
	Requests []pipeline.Request `json:"requests" validate:"required,min=1,max=64,dive"`
}

type batchResponse struct {
	Results []*pipeline.Result `json:"results"`
}

type frameRequest struct {
	pipeline.Request
	Step   int    `json:"step" validate:"gte=-1"`
	Format string `json:"format" validate:"omitempty,oneof=dot svg png pdf"`
}

var contentTypes = map[string]string{
	pipeline.FormatDOT: "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
	pipeline.FormatPDF: "application/pdf",
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": buildinfo.Get(),
	})
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	views := make([]topicView, 0, len(s.runner.Topics))
	for _, t := range s.runner.Topics {
		views = append(views, s.topicView(t))
	}
	_ = httputil.WriteJSON(w, http.StatusOK, views)
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	t, err := s.runner.LookupTopic(chi.URLParam(r, "topic"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	v := s.topicView(t)
	problems, err := topics.Problems(t.Name)
	if err != nil {
		s.logger.Warn("load practice problems", "topic", t.Name, "err", err)
	}
	v.Problems = problems
	_ = httputil.WriteJSON(w, http.StatusOK, v)
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"default": style.Default,
		"tags":    style.Table(),
	})
}

func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, res)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	results, err := s.runner.ExecuteAll(r.Context(), req.Requests)
	if err != nil {
		s.fail(w, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, batchResponse{Results: results})
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	var req frameRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.Format == "" {
		req.Format = pipeline.FormatSVG
	}

	a, in, err := s.runner.Resolve(req.Request)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := s.runner.Generate(r.Context(), a, in)
	if err != nil {
		s.fail(w, err)
		return
	}
	index := req.Step
	if index < 0 {
		index = res.Sequence.Len() - 1
	}
	data, err := s.runner.RenderFrame(r.Context(), a, res, index, req.Format)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[req.Format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"sessions": s.sessions.List(),
	})
}

// fail writes err and logs it when it is a server-side failure.
func (s *Server) fail(w http.ResponseWriter, err error) {
	if status := httputil.WriteError(w, err); status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
}
