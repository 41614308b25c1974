package domain

// NodeKind distinguishes directory and file nodes in the virtual tree
type NodeKind string

const (
	KindDirectory NodeKind = "directory"
	KindFile      NodeKind = "file"
)

// RootParent is the parent key of the root node
const RootParent = ""

// Node is a single entry in the virtual directory tree. Nodes reference each
// other by key (absolute path) rather than by pointer, so a subtree can be
// removed by walking child-key lists without chasing object links.
type Node struct {
	Key         string
	DisplayName string
	Kind        NodeKind
	Parent      string
	Children    []string
	Expanded    bool
}

// IsDir returns true for directory nodes
func (n *Node) IsDir() bool {
	return n.Kind == KindDirectory
}
