// Package dot writes graphs in the Graphviz dot format
package dot

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Edge struct {
	From string
	To   []string
}

// SubGraph is a named cluster of nodes
type SubGraph struct {
	name  string
	nodes map[string]Node
}

func (g *SubGraph) AddNode(name string, edges ...string) {
	if g.nodes == nil {
		g.nodes = make(map[string]Node)
	}
	g.nodes[name] = Node{name: name, edges: edges}
}

// AsDot returns the cluster, and the edges of its nodes so they can be
// written after every node has been declared
func (g SubGraph) AsDot() (string, []Edge) {
	totalEdges := []Edge{}
	total := fmt.Sprintf("  subgraph %s {\n", quote("cluster_"+g.name))
	total += fmt.Sprintf("    label=%s\n", quote(g.name))
	for _, name := range sortedKeys(g.nodes) {
		item := g.nodes[name]
		totalEdges = append(totalEdges, Edge{From: item.name, To: item.edges})
		total += "    " + quote(item.Name()) + "\n"
	}
	return total + "  }", totalEdges
}

type Node struct {
	name  string
	edges []string
}

func (n Node) Name() string {
	return n.name
}

// Dotfile is a directed graph made of top-level nodes and clusters
type Dotfile struct {
	SubGraph
	subgraphs map[string]*SubGraph
}

// New creates an empty graph
func New(name string) *Dotfile {
	return &Dotfile{SubGraph: SubGraph{name: name}}
}

// Subgraph returns the named cluster, adding it if necessary
func (d *Dotfile) Subgraph(name string) *SubGraph {
	if d.subgraphs == nil {
		d.subgraphs = make(map[string]*SubGraph)
	}
	if _, in := d.subgraphs[name]; !in {
		d.subgraphs[name] = &SubGraph{name: name}
	}
	return d.subgraphs[name]
}

func (d *Dotfile) AddEdge(node string, edge string) {
	if d.nodes == nil {
		d.nodes = make(map[string]Node)
	}
	temp := d.nodes[node]
	// If the node doesn't exist, create it
	if temp.name == "" {
		temp = Node{name: node}
	}
	temp.edges = append(temp.edges, edge)
	d.nodes[node] = temp
}

func quote(name string) string {
	return "\"" + strings.ReplaceAll(name, "\"", "\\\"") + "\""
}

func commaSeparatedString(list []string) string {
	quoted := make([]string, len(list))
	for ind, item := range list {
		quoted[ind] = quote(item)
	}
	return strings.Join(quoted, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// WriteTo writes the whole graph to w, in a stable order
func (d *Dotfile) WriteTo(w io.Writer) (int64, error) {
	var out strings.Builder
	totalEdges := []Edge{}
	fmt.Fprintf(&out, "digraph %s {\n", quote(d.name))

	// First, write out all the subgraphs
	for _, name := range sortedKeys(d.subgraphs) {
		sub, edges := d.subgraphs[name].AsDot()
		totalEdges = append(totalEdges, edges...)
		out.WriteString(sub + "\n")
	}

	// Then, go through the nodes
	for _, name := range sortedKeys(d.nodes) {
		node := d.nodes[name]
		if len(node.edges) == 0 {
			fmt.Fprintf(&out, "  %s\n", quote(name))
			continue
		}
		fmt.Fprintf(&out, "  %s -> {%s}\n", quote(name), commaSeparatedString(node.edges))
	}

	// Finally, connect all the edges from everything else
	for _, edge := range totalEdges {
		// Skip creating edges that don't point anywhere
		if len(edge.To) == 0 || edge.From == "" {
			continue
		}
		fmt.Fprintf(&out, "  %s -> {%s}\n", quote(edge.From), commaSeparatedString(edge.To))
	}
	out.WriteString("}\n")

	n, err := io.WriteString(w, out.String())
	return int64(n), err
}
