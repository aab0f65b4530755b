package tree

import "strings"

// Node statuses, ordered from most to least urgent for display.
const (
	StatusError   = "error"
	StatusWarning = "warning"
	StatusOK      = "ok"
)

// Node is one entry in the inventory forest. The ID distinguishes a node
// from its siblings; it is derived from the upstream source identity and
// is opaque to this package.
type Node struct {
	// ID is the node key (e.g. "db:furniture:1234", "storage:bundled/a.nitro").
	ID string `json:"id"`
	// Title is the display label.
	Title string `json:"title"`
	// Status is one of StatusError, StatusWarning, StatusOK.
	Status string `json:"status"`
	// Source names the provider that produced the node.
	Source string `json:"source,omitempty"`
	// Children are the ordered child nodes.
	Children []*Node `json:"children,omitempty"`
}

// Tree is an ordered forest of root nodes. A published Tree is immutable:
// callers must treat it as read-only and build a new Tree to change it.
type Tree struct {
	Roots []*Node `json:"roots"`
}

// Empty returns the distinguished empty tree, served before the first
// successful load and after an unrecoverable failure with no fallback.
func Empty() *Tree {
	return &Tree{}
}

// IsEmpty reports whether the tree has no roots. A nil tree is empty.
func (t *Tree) IsEmpty() bool {
	return t == nil || len(t.Roots) == 0
}

// NodeCount returns the total number of nodes at all depths.
func (t *Tree) NodeCount() int {
	if t == nil {
		return 0
	}
	return countNodes(t.Roots)
}

func countNodes(nodes []*Node) int {
	n := len(nodes)
	for _, node := range nodes {
		n += countNodes(node.Children)
	}
	return n
}

// CompareFunc is a total order over nodes. It returns a negative value if
// a sorts before b, zero if they rank equally, and a positive value
// otherwise.
type CompareFunc func(a, b *Node) int

var statusRank = map[string]int{
	StatusError:   0,
	StatusWarning: 1,
	StatusOK:      2,
}

// ByStatusThenTitle orders nodes by status urgency (errors first), then by
// title, then by ID as a final tiebreak. Unknown statuses sort last.
func ByStatusThenTitle(a, b *Node) int {
	if ra, rb := rankStatus(a.Status), rankStatus(b.Status); ra != rb {
		return ra - rb
	}
	if c := strings.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// ByTitle orders nodes alphabetically by title, then by ID.
func ByTitle(a, b *Node) int {
	if c := strings.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

func rankStatus(s string) int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return len(statusRank)
}
