package viz

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/pkg/errors"
)

// The HTML template for the interactive D3.js graph page. The browser runs
// the force layout; highlight colors, radii and zoom behavior mirror the
// GraphView resolution rules so server-rendered snapshots and the live page
// agree on styling.
const graphTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <script src="https://d3js.org/d3.v7.min.js"></script>
    <style>
        body {
            margin: 0;
            font-family: Arial, sans-serif;
        }
        #graph {
            width: 100%;
            height: 100vh;
            background-color: #f5f5f5;
        }
        .node {
            stroke: #fff;
            stroke-width: 1.5px;
            cursor: pointer;
        }
        .node-label {
            font-size: 10px;
            pointer-events: none;
        }
        .controls {
            position: absolute;
            top: 10px;
            left: 10px;
            background-color: rgba(255,255,255,0.8);
            padding: 10px;
            border-radius: 5px;
            box-shadow: 0 0 10px rgba(0,0,0,0.1);
        }
        .controls button {
            margin-right: 4px;
        }
        .empty-state {
            padding: 40px;
            text-align: center;
            color: #6b7280;
        }
    </style>
</head>
<body>
{{if .Empty}}
    <div class="empty-state">
        <h3>{{.Title}}</h3>
        <p>No graph data available yet.</p>
    </div>
{{else}}
    <div id="graph"></div>
    <div class="controls">
        <h3>{{.Title}}</h3>
        <p>Remedies: {{.NodeCount}}, Relations: {{.EdgeCount}}</p>
        <div>
            <button id="zoom-in">+</button>
            <button id="zoom-out">&minus;</button>
            <button id="reset">Reset</button>
        </div>
    </div>

    <script>
        const graphData = {{.GraphData}};
        const style = {{.Style}};

        // Selection and hover state. Clicking a node locks its
        // neighborhood highlight; hovering while selected changes nothing
        // until the selection is cleared by a background click.
        let selectedId = null;
        let hoveredId = null;

        const neighborSets = {};
        const edgeSets = {};
        graphData.entities.forEach(n => {
            neighborSets[n.id] = new Set([n.id]);
            edgeSets[n.id] = new Set();
        });
        graphData.relations.forEach((e, i) => {
            neighborSets[e.source].add(e.target);
            neighborSets[e.target].add(e.source);
            edgeSets[e.source].add(i);
            edgeSets[e.target].add(i);
        });

        function activeId() { return selectedId !== null ? selectedId : hoveredId; }

        const simulation = d3.forceSimulation(graphData.entities)
            .force("link", d3.forceLink(graphData.relations).id(d => d.id).distance(100))
            .force("charge", d3.forceManyBody().strength(-300))
            .force("center", d3.forceCenter(window.innerWidth / 2, window.innerHeight / 2));

        const svg = d3.select("#graph")
            .append("svg")
            .attr("width", "100%")
            .attr("height", "100%")
            .on("click", () => {
                selectedId = null;
                hoveredId = null;
                restyle();
            });

        const zoom = d3.zoom().scaleExtent([0.2, 8]).on("zoom", (event) => {
            g.attr("transform", event.transform);
        });
        svg.call(zoom);

        d3.select("#zoom-in").on("click", () => svg.transition().call(zoom.scaleBy, style.zoomStep));
        d3.select("#zoom-out").on("click", () => svg.transition().call(zoom.scaleBy, 1 / style.zoomStep));
        d3.select("#reset").on("click", () => {
            selectedId = null;
            hoveredId = null;
            svg.transition().call(zoom.transform, d3.zoomIdentity);
            restyle();
        });

        const g = svg.append("g");

        const link = g.append("g")
            .selectAll("line")
            .data(graphData.relations)
            .enter()
            .append("line");

        const node = g.append("g")
            .selectAll("circle")
            .data(graphData.entities)
            .enter()
            .append("circle")
            .attr("class", "node")
            .on("mouseover", (event, d) => { hoveredId = d.id; restyle(); })
            .on("mouseout", () => { hoveredId = null; restyle(); })
            .on("click", (event, d) => {
                event.stopPropagation();
                selectedId = d.id;
                restyle();
            })
            .call(d3.drag()
                .on("start", dragstarted)
                .on("drag", dragged)
                .on("end", dragended));

        const label = g.append("g")
            .selectAll("text")
            .data(graphData.entities)
            .enter()
            .append("text")
            .attr("class", "node-label")
            .attr("dx", 12)
            .attr("dy", ".35em")
            .text(d => d.name);

        node.append("title")
            .text(d => d.name + " (" + d.category + ")\nConnections: " + d.connections);

        function nodeColor(d) {
            const active = activeId();
            if (selectedId === d.id) return style.selectedColor;
            if (selectedId === null && hoveredId === d.id) return style.hoverColor;
            if (active !== null) {
                return neighborSets[active].has(d.id)
                    ? style.categoryColors[d.category] || style.fallbackColor
                    : style.dimmedColor;
            }
            return style.categoryColors[d.category] || style.fallbackColor;
        }

        function nodeRadius(d) {
            const r = style.minNodeRadius + d.connections * style.radiusPerConn;
            return d.id === selectedId || d.id === hoveredId ? r * 2 : r;
        }

        function edgeColor(e, i) {
            const active = activeId();
            if (active !== null) {
                return edgeSets[active].has(i) ? style.edgeAccentColor : style.edgeDimmedColor;
            }
            return e.type === "combination" ? style.edgeCombinationColor : style.edgeOrdinaryColor;
        }

        function edgeWidth(e, i) {
            const active = activeId();
            if (active !== null && edgeSets[active].has(i)) return style.edgeAccentWide;
            return e.weight > 0.5 ? style.edgeWideWidth : style.edgeBaseWidth;
        }

        function restyle() {
            node.attr("fill", nodeColor).attr("r", nodeRadius);
            link.attr("stroke", edgeColor).attr("stroke-width", edgeWidth);
        }
        restyle();

        simulation.on("tick", () => {
            link
                .attr("x1", d => d.source.x)
                .attr("y1", d => d.source.y)
                .attr("x2", d => d.target.x)
                .attr("y2", d => d.target.y);

            node
                .attr("cx", d => d.x)
                .attr("cy", d => d.y);

            label
                .attr("x", d => d.x)
                .attr("y", d => d.y);
        });

        function dragstarted(event, d) {
            if (!event.active) simulation.alphaTarget(0.3).restart();
            d.fx = d.x;
            d.fy = d.y;
        }

        function dragged(event, d) {
            d.fx = event.x;
            d.fy = event.y;
        }

        function dragended(event, d) {
            if (!event.active) simulation.alphaTarget(0);
            d.fx = null;
            d.fy = null;
        }
    </script>
{{end}}
</body>
</html>
`

// The HTML template for the embedding scatter plot. Positions, radii and
// colors are resolved server-side by EmbeddingView; the page only handles
// hover growth and tooltips.
const embeddingTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body {
            margin: 0;
            font-family: Arial, sans-serif;
        }
        .plot {
            display: block;
            margin: 20px auto;
            background-color: #f9fafb;
        }
        .marker {
            cursor: pointer;
        }
        .marker-label {
            font-size: 10px;
            pointer-events: none;
        }
        .info {
            text-align: center;
            color: #374151;
        }
        .empty-state {
            padding: 40px;
            text-align: center;
            color: #6b7280;
        }
    </style>
</head>
<body>
{{if .Empty}}
    <div class="empty-state">
        <h3>{{.Title}}</h3>
        <p>No embedding data available yet.</p>
    </div>
{{else}}
    <div class="info">
        <h3>{{.Title}}</h3>
        <p>{{.TotalRemedies}} remedies, {{.Dimensions}} dimensions ({{.Model}})</p>
    </div>
    <svg class="plot" width="{{.Width}}" height="{{.Height}}">
    {{range .Markers}}
        <circle class="marker"
            cx="{{printf "%.2f" .X}}" cy="{{printf "%.2f" .Y}}"
            r="{{printf "%.2f" .Radius}}"
            fill="{{.Fill}}" stroke="{{.Stroke}}"
            stroke-width="{{printf "%.1f" .StrokeWidth}}"
            data-base-r="{{printf "%.2f" .Radius}}">
            <title>{{.Tooltip}}</title>
        </circle>
        {{if .Labeled}}
        <text class="marker-label"
            x="{{printf "%.2f" .LabelX}}" y="{{printf "%.2f" .LabelY}}">{{.Name}}</text>
        {{end}}
    {{end}}
    </svg>

    <script>
        document.querySelectorAll(".marker").forEach(c => {
            const base = parseFloat(c.dataset.baseR);
            c.addEventListener("mouseover", () => {
                c.setAttribute("r", base * {{.HoverGrowth}});
                c.setAttribute("stroke-width", {{.HoverStroke}});
            });
            c.addEventListener("mouseout", () => {
                c.setAttribute("r", base);
                c.setAttribute("stroke-width", {{.BaseStroke}});
            });
        });
    </script>
{{end}}
</body>
</html>
`

var (
	graphTmpl     = template.Must(template.New("graph").Parse(graphTemplate))
	embeddingTmpl = template.Must(template.New("embedding").Parse(embeddingTemplate))
)

type graphStyle struct {
	CategoryColors  map[string]string `json:"categoryColors"`
	FallbackColor   string            `json:"fallbackColor"`
	SelectedColor   string            `json:"selectedColor"`
	HoverColor      string            `json:"hoverColor"`
	DimmedColor     string            `json:"dimmedColor"`
	EdgeAccentColor string            `json:"edgeAccentColor"`
	EdgeDimmedColor string            `json:"edgeDimmedColor"`
	EdgeCombination string            `json:"edgeCombinationColor"`
	EdgeOrdinary    string            `json:"edgeOrdinaryColor"`
	MinNodeRadius   float64           `json:"minNodeRadius"`
	RadiusPerConn   float64           `json:"radiusPerConn"`
	ZoomStep        float64           `json:"zoomStep"`
	EdgeBaseWidth   float64           `json:"edgeBaseWidth"`
	EdgeWideWidth   float64           `json:"edgeWideWidth"`
	EdgeAccentWide  float64           `json:"edgeAccentWide"`
}

func currentGraphStyle() graphStyle {
	colors := make(map[string]string, len(categoryColors))
	for c, hex := range categoryColors {
		colors[string(c)] = hex
	}
	return graphStyle{
		CategoryColors:  colors,
		FallbackColor:   fallbackColor,
		SelectedColor:   selectedColor,
		HoverColor:      hoverColor,
		DimmedColor:     dimmedColor,
		EdgeAccentColor: edgeAccentColor,
		EdgeDimmedColor: edgeDimmedColor,
		EdgeCombination: edgeCombinationColor,
		EdgeOrdinary:    edgeOrdinaryColor,
		MinNodeRadius:   minNodeRadius,
		RadiusPerConn:   radiusPerConn,
		ZoomStep:        zoomStep,
		EdgeBaseWidth:   edgeBaseWidth,
		EdgeWideWidth:   edgeWideWidth,
		EdgeAccentWide:  edgeAccentWide,
	}
}

// RenderGraphPage writes the interactive graph HTML page for the view's
// current snapshot. A view without a snapshot renders the empty state.
func RenderGraphPage(w io.Writer, view *GraphView) error {
	data := struct {
		Title     string
		Empty     bool
		NodeCount int
		EdgeCount int
		GraphData template.JS
		Style     template.JS
	}{
		Title: view.Title(),
		Empty: !view.HasData(),
	}

	if !data.Empty {
		snapJSON, err := json.Marshal(view.Snapshot())
		if err != nil {
			return errors.Wrap(err, "marshaling graph snapshot")
		}
		styleJSON, err := json.Marshal(currentGraphStyle())
		if err != nil {
			return errors.Wrap(err, "marshaling graph style")
		}
		data.NodeCount = len(view.Snapshot().Entities)
		data.EdgeCount = len(view.Snapshot().Relations)
		data.GraphData = template.JS(snapJSON)
		data.Style = template.JS(styleJSON)
	}

	return errors.Wrap(graphTmpl.Execute(w, data), "rendering graph page")
}

type renderedMarker struct {
	Marker
	Tooltip string
	LabelX  float64
	LabelY  float64
}

// RenderEmbeddingPage writes the scatter plot HTML page for the view's
// current snapshot. A view without a snapshot renders the empty state.
func RenderEmbeddingPage(w io.Writer, view *EmbeddingView) error {
	data := struct {
		Title         string
		Empty         bool
		TotalRemedies int
		Dimensions    int
		Model         string
		Width         float64
		Height        float64
		Markers       []renderedMarker
		HoverGrowth   float64
		HoverStroke   float64
		BaseStroke    float64
	}{
		Title:       view.Title(),
		Empty:       !view.HasData(),
		Width:       plotWidth,
		Height:      plotHeight,
		HoverGrowth: hoverGrowth,
		HoverStroke: hoverStrokeWidth,
		BaseStroke:  baseStrokeWidth,
	}

	if !data.Empty {
		snap := view.Snapshot()
		data.TotalRemedies = snap.TotalRemedies
		data.Dimensions = snap.EmbeddingDimensions
		data.Model = snap.ModelInfo.Name

		for _, m := range view.Markers() {
			tooltip, _ := view.Tooltip(m.Name)
			data.Markers = append(data.Markers, renderedMarker{
				Marker:  m,
				Tooltip: tooltip,
				LabelX:  m.X + m.Radius + 3,
				LabelY:  m.Y + 3,
			})
		}
	}

	return errors.Wrap(embeddingTmpl.Execute(w, data), "rendering embedding page")
}
