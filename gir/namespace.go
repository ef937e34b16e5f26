package gir

// Namespace is everything extracted from one .gir file.
type Namespace struct {
	Name          string
	Version       string
	SharedLibrary string
	// CIncludes are the c:include headers, in document order
	CIncludes []string
	// Packages are the pkg-config names exported by the repository
	Packages []string
	// Nodes lists every entity in document order (members follow their enum)
	Nodes []*Node
	// TypeNames maps glib:type-name to node for registered types
	TypeNames *NodeMap
	// CTypes maps c:type to node
	CTypes *NodeMap
}

// NewNamespace returns an empty namespace with initialised maps.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		Name:      name,
		TypeNames: NewNodeMap(),
		CTypes:    NewNodeMap(),
	}
}

// Add appends a node and indexes it.
func (ns *Namespace) Add(n *Node) {
	ns.Nodes = append(ns.Nodes, n)
	if n.GTypeName != "" {
		ns.TypeNames.Set(n.GTypeName, n)
	}
	if n.CType != "" {
		ns.CTypes.Set(n.CType, n)
	}
}

// UnregisteredCTypes returns the c-type nodes that have no glib:type-name,
// keyed by c:type.
func (ns *Namespace) UnregisteredCTypes() *NodeMap {
	out := NewNodeMap()
	for _, e := range ns.CTypes.Entries() {
		if e.Node.GTypeName != "" {
			continue
		}
		out.Set(e.Node.CType, e.Node)
	}
	return out
}

// Entry is one key/node pair of a NodeMap.
type Entry struct {
	Key  string
	Node *Node
}

// NodeMap is a string-keyed map that iterates in first-insertion order.
// Setting an existing key replaces the node but keeps its position.
type NodeMap struct {
	keys  []string
	nodes map[string]*Node
}

// NewNodeMap returns an empty map.
func NewNodeMap() *NodeMap {
	return &NodeMap{nodes: make(map[string]*Node)}
}

// Set inserts or replaces key.
func (m *NodeMap) Set(key string, n *Node) {
	if _, ok := m.nodes[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.nodes[key] = n
}

// Get returns the node stored under key.
func (m *NodeMap) Get(key string) (*Node, bool) {
	n, ok := m.nodes[key]
	return n, ok
}

// Len returns the number of keys.
func (m *NodeMap) Len() int {
	return len(m.keys)
}

// Entries returns the pairs in insertion order.
func (m *NodeMap) Entries() []Entry {
	out := make([]Entry, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Entry{Key: k, Node: m.nodes[k]})
	}
	return out
}
