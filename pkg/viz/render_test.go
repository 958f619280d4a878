package viz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGraphPage(t *testing.T) {
	v := newTestGraphView()

	var buf bytes.Buffer
	require.NoError(t, RenderGraphPage(&buf, v))

	html := buf.String()
	assert.Contains(t, html, "Remedy Knowledge Graph")
	assert.Contains(t, html, "d3.forceSimulation")
	assert.Contains(t, html, "Mimulus")
	// The style block carries the palette the view resolves with.
	assert.Contains(t, html, "#fbbf24")
	assert.Contains(t, html, "#ef4444")
}

func TestRenderGraphPageEmptyState(t *testing.T) {
	v := NewGraphView("Remedy Knowledge Graph", "knowledge")

	var buf bytes.Buffer
	require.NoError(t, RenderGraphPage(&buf, v))

	html := buf.String()
	assert.Contains(t, html, "Remedy Knowledge Graph")
	assert.Contains(t, html, "No graph data available")
	assert.NotContains(t, html, "d3.forceSimulation")
}

func TestRenderEmbeddingPage(t *testing.T) {
	v := newTestEmbeddingView()

	var buf bytes.Buffer
	require.NoError(t, RenderEmbeddingPage(&buf, v))

	html := buf.String()
	assert.Contains(t, html, "Remedy Embedding Space")
	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, "Clematis")
	// Only Aspen crosses the label threshold.
	assert.Contains(t, html, `>Aspen</text>`)
	assert.NotContains(t, html, `>Willow</text>`)
}

func TestRenderEmbeddingPageEmptyState(t *testing.T) {
	v := NewEmbeddingView("Remedy Embedding Space")

	var buf bytes.Buffer
	require.NoError(t, RenderEmbeddingPage(&buf, v))

	assert.Contains(t, buf.String(), "No embedding data available")
}
