package api

import (
	"net/http"
	"strconv"

	"github.com/jwinther/homeplan/pkg/pipeline"
	"github.com/jwinther/homeplan/pkg/render/floorplan"
	"github.com/jwinther/homeplan/pkg/requirements"
	"github.com/jwinther/homeplan/pkg/store"
)

type createPlanRequest struct {
	Description  string                          `json:"description,omitempty"`
	Requirements *requirements.HouseRequirements `json:"requirements,omitempty"`
	Refresh      bool                            `json:"refresh,omitempty"`
}

// handleCreatePlan generates a plan from a description or an explicit
// requirements record, persists it and returns the stored record.
func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	body, ok := readJSON[createPlanRequest](w, r)
	if !ok {
		return
	}
	if body.Description == "" && body.Requirements == nil {
		writeError(w, http.StatusBadRequest, "description or requirements is required")
		return
	}

	opts := pipeline.Options{
		Description:  body.Description,
		Requirements: body.Requirements,
		Refresh:      body.Refresh,
	}
	req := s.runner.Requirements(opts)
	p, err := s.runner.Generate(r.Context(), req, opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	rec := store.NewRecord(body.Description, req, p)
	if err := s.store.Put(r.Context(), rec); err != nil {
		writeDomainError(w, err)
		return
	}

	s.logger.Info("plan created", "id", rec.ID, "rooms", len(p.Rooms))
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), urlParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePlanSVG renders the stored plan as an SVG drawing. Query
// parameters: scale (float), labels (bool, default true), grid (bool).
func (s *Server) handlePlanSVG(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var opts []floorplan.SVGOption
	q := r.URL.Query()
	if v, err := strconv.ParseFloat(q.Get("scale"), 64); err == nil && v > 0 {
		opts = append(opts, floorplan.WithScale(v))
	}
	if q.Get("labels") == "false" {
		opts = append(opts, floorplan.WithoutLabels())
	}
	if q.Get("grid") == "true" {
		opts = append(opts, floorplan.WithGrid())
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(floorplan.RenderSVG(rec.Plan, opts...))
}

// handlePlanDOT returns the adjacency graph in Graphviz DOT format.
func (s *Server) handlePlanDOT(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(floorplan.ToDOT(rec.Plan)))
}

// handlePlanGraph renders the adjacency graph to SVG via Graphviz.
func (s *Server) handlePlanGraph(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	svg, err := floorplan.RenderDOTSVG(r.Context(), floorplan.ToDOT(rec.Plan))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}
