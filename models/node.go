package models

// NodeType is the kind of a node in the remote file tree.
type NodeType int

const (
	FileNode NodeType = iota
	FolderNode
	RootNode
	VaultNode
	RubbishNode
)

// NodeChanges tracks which parts of a node changed since the last
// notification round. The node manager resets it after delivery.
type NodeChanges struct {
	Removed bool
	Attrs   bool
	Owner   bool
	Parent  bool
}

// Node is a file or folder held by the remote storage system.
//
// Nodes are owned by the node manager; everything else refers to them by
// handle and resolves through the manager. Parent is therefore a handle and
// not a pointer.
type Node struct {
	Handle NodeHandle
	Parent NodeHandle
	Owner  Handle
	Type   NodeType

	// Key is the node's plain symmetric key, nil while it is still unknown.
	Key []byte

	// ShareKey is set on nodes that are the root of an outgoing or incoming
	// share.
	ShareKey []byte

	// ForeignKey marks a key received in a format that has to be rewritten
	// with our own key before it can be persisted.
	ForeignKey bool

	// AttrString holds the encrypted attributes until they are decrypted
	// with Key. Nil once resolved.
	AttrString *string

	Attrs map[string]string

	Changed NodeChanges
}

// HasUnresolvedAttrs reports whether the node still carries an encrypted
// attribute string.
func (n *Node) HasUnresolvedAttrs() bool {
	return n.AttrString != nil
}

// Name returns the decrypted "n" attribute, or an empty string.
func (n *Node) Name() string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs["n"]
}
