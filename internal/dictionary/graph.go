package dictionary

// Concept graph colors, per relation type and theme. The node palette is
// theme-independent; only edge and font colors follow the theme.
const (
	colorMain    = "#ea580c"
	colorSynonym = "#10b981"
	colorAntonym = "#ef4444"
	colorRelated = "#3b82f6"

	edgeColorDark  = "#475569"
	edgeColorLight = "#64748b"
)

// NodeColor is the vis.js node color record.
type NodeColor struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

// NodeFont is the vis.js node font record.
type NodeFont struct {
	Color string `json:"color"`
	Size  int    `json:"size"`
}

// Node is one concept-graph node in the shape the client-side visualization
// consumes directly.
type Node struct {
	ID     int       `json:"id"`
	Label  string    `json:"label"`
	Group  string    `json:"group"`
	Color  NodeColor `json:"color"`
	Font   NodeFont  `json:"font"`
	Shape  string    `json:"shape"`
	Margin int       `json:"margin"`
}

// EdgeColor is the vis.js edge color record.
type EdgeColor struct {
	Color string `json:"color"`
}

// Edge connects the main node to a synonym/antonym/related node. Antonym
// edges are dashed.
type Edge struct {
	From   int       `json:"from"`
	To     int       `json:"to"`
	Color  EdgeColor `json:"color"`
	Dashes bool      `json:"dashes"`
}

// Graph is the node/edge structure for one entry.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// BuildConceptGraph turns an entry into its concept graph. Node 0 is always
// the main word; the remaining nodes get sequential ids starting at 1, and
// duplicate labels are dropped on insert. Any theme other than "dark" uses
// the light palette.
func BuildConceptGraph(e Entry, theme string) Graph {
	isDark := theme == "dark"

	edgeColor := edgeColorLight
	fontColor := "#000000"
	if isDark {
		edgeColor = edgeColorDark
		fontColor = "#ffffff"
	}

	g := Graph{
		Nodes: []Node{{
			ID:     0,
			Label:  e.Word,
			Group:  "main",
			Color:  NodeColor{Background: colorMain, Border: colorMain},
			Font:   NodeFont{Color: "white", Size: 24},
			Shape:  "box",
			Margin: 10,
		}},
		Edges: []Edge{},
	}

	idCounter := 1
	addNode := func(word, group, color string, dashed bool) {
		for _, n := range g.Nodes {
			if n.Label == word {
				return
			}
		}
		g.Nodes = append(g.Nodes, Node{
			ID:     idCounter,
			Label:  word,
			Group:  group,
			Color:  NodeColor{Background: color, Border: color},
			Font:   NodeFont{Color: fontColor, Size: 16},
			Shape:  "dot",
			Margin: 10,
		})
		g.Edges = append(g.Edges, Edge{
			From:   0,
			To:     idCounter,
			Color:  EdgeColor{Color: edgeColor},
			Dashes: dashed,
		})
		idCounter++
	}

	for _, s := range e.Synonyms {
		addNode(s, "synonym", colorSynonym, false)
	}
	for _, a := range e.Antonyms {
		addNode(a, "antonym", colorAntonym, true)
	}
	for _, r := range e.RelatedWords {
		addNode(r.Word, "related", colorRelated, false)
	}

	return g
}
