package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/graph/metrics"
	"github.com/bloomlab/remedygraph/pkg/graph/query"
	"github.com/bloomlab/remedygraph/pkg/remedy"
	"github.com/bloomlab/remedygraph/pkg/source"
	"github.com/bloomlab/remedygraph/pkg/store"
	"github.com/bloomlab/remedygraph/pkg/viz"
)

type knowledgeSourceRequest struct {
	SourceType string `json:"source_type" validate:"required,oneof=web pdf text"`
	Content    string `json:"content"`
	SourceURL  string `json:"source_url" validate:"omitempty,url"`
}

func (s *Server) handleCreateSource(w http.ResponseWriter, r *http.Request) {
	var req knowledgeSourceRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Content == "" && req.SourceURL == "" {
		respondError(w, http.StatusBadRequest, "either content or source_url is required")
		return
	}

	src := &store.KnowledgeSource{
		SourceType: req.SourceType,
		Content:    req.Content,
		SourceURL:  req.SourceURL,
	}
	if err := s.store.SaveSource(src); err != nil {
		s.logger.WithError(err).Error("saving knowledge source")
		respondError(w, http.StatusInternalServerError, "saving knowledge source")
		return
	}

	respondJSON(w, http.StatusCreated, src)
}

func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := s.store.ListSources(100)
	if err != nil {
		s.logger.WithError(err).Error("listing knowledge sources")
		respondError(w, http.StatusInternalServerError, "listing knowledge sources")
		return
	}
	respondJSON(w, http.StatusOK, sources)
}

// processSource turns one stored source into a processed document. Web
// sources are fetched and converted to Markdown first, PDF sources pass
// through text extraction, and everything ends with the NLP pass.
func (s *Server) processSource(ctx context.Context, src store.KnowledgeSource) (*source.Document, error) {
	meta := map[string]interface{}{
		"source_id":   src.ID,
		"source_type": src.SourceType,
	}

	content := src.Content
	switch src.SourceType {
	case source.TypeWeb:
		if src.SourceURL != "" {
			fetched, err := s.fetcher.Fetch(ctx, src.SourceURL)
			if err != nil {
				return nil, err
			}
			content = fetched
		} else {
			doc, err := s.html.Process(ctx, []byte(content), meta)
			if err != nil {
				return nil, err
			}
			content = doc.Content
		}
	case source.TypePDF:
		doc, err := s.pdf.Process(ctx, []byte(content), meta)
		if err != nil {
			return nil, err
		}
		content = doc.Content
	}

	// Long sources get split into token windows so no single NLP pass
	// works on more than one model context worth of text.
	chunks, err := source.SplitIntoChunks(content)
	if err != nil {
		return nil, err
	}
	if len(chunks) <= 1 {
		return s.nlp.Process(ctx, []byte(content), meta)
	}

	var merged *source.Document
	for _, chunk := range chunks {
		doc, err := s.nlp.Process(ctx, []byte(chunk), meta)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = doc
			continue
		}
		merged.Mentions = append(merged.Mentions, doc.Mentions...)
		merged.Keywords = append(merged.Keywords, doc.Keywords...)
	}
	merged.Content = content
	return merged, nil
}

func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sources, err := s.store.UnprocessedSources(0)
	if err != nil {
		s.logger.WithError(err).Error("loading unprocessed sources")
		respondError(w, http.StatusInternalServerError, "loading unprocessed sources")
		return
	}

	processed, failed := 0, 0
	for _, src := range sources {
		if _, err := s.processSource(ctx, src); err != nil {
			s.logger.WithError(err).WithField("source_id", src.ID).Warn("source processing failed")
			metrics.SourceProcessingErrors.WithLabelValues(src.SourceType, "processing").Inc()
			failed++
			continue
		}
		if err := s.store.MarkSourceProcessed(src.ID); err != nil {
			s.logger.WithError(err).WithField("source_id", src.ID).Warn("marking source processed")
			metrics.SourceProcessingErrors.WithLabelValues(src.SourceType, "persistence").Inc()
			failed++
			continue
		}
		processed++
	}

	rebuilt := graph.Build(remedy.All())
	s.graph.Replace(rebuilt)

	if err := s.index.Rebuild(ctx, remedy.All()); err != nil {
		s.logger.WithError(err).Error("rebuilding vector index")
		respondError(w, http.StatusInternalServerError, "rebuilding vector index")
		return
	}
	s.invalidateEmbeddingSnapshot()

	nodes, edges := s.graph.Size()
	metrics.KnowledgeBaseRebuilds.Inc()
	metrics.GraphNodeCount.Set(float64(nodes))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sources_processed": processed,
		"sources_failed":    failed,
		"graph_nodes":       nodes,
		"graph_edges":       edges,
	})
}

func snapshotFilter(r *http.Request) query.Filter {
	f := query.Filter{
		Category: remedy.Category(r.URL.Query().Get("category")),
		Type:     r.URL.Query().Get("type"),
	}
	if raw := r.URL.Query().Get("min_weight"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinWeight = v
		}
	}
	return f
}

func (s *Server) handleGraphSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := query.Apply(s.graph.Snapshot(), snapshotFilter(r))
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) handleGraphPage(w http.ResponseWriter, r *http.Request) {
	view := viz.NewGraphView("Remedy Knowledge Graph", "knowledge")
	view.SetSnapshot(query.Apply(s.graph.Snapshot(), snapshotFilter(r)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := viz.RenderGraphPage(w, view); err != nil {
		s.logger.WithError(err).Error("rendering graph page")
	}
}

func (s *Server) handleEmbeddingSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.embeddingSnapshot(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("building embedding snapshot")
		respondError(w, http.StatusInternalServerError, "building embedding snapshot")
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) handleEmbeddingPage(w http.ResponseWriter, r *http.Request) {
	view := viz.NewEmbeddingView("Remedy Embedding Space")

	snap, err := s.embeddingSnapshot(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("building embedding snapshot")
	} else {
		view.SetSnapshot(snap)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := viz.RenderEmbeddingPage(w, view); err != nil {
		s.logger.WithError(err).Error("rendering embedding page")
	}
}
