package localsync

import (
	"maps"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

// Transfer is an upload or download attached to a local node. Everything
// except the local name is owned by the transfer subsystem.
type Transfer struct {
	NodeHandle models.NodeHandle
	Size       int64

	mu        sync.Mutex
	localName string
}

// LocalName returns the local path the transfer reads from or writes to.
func (t *Transfer) LocalName() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.localName
}

// SetLocalName is safe to call concurrently with the transfer subsystem.
func (t *Transfer) SetLocalName(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.localName = name
}

// LocalNode is a file or folder of a synced local tree.
type LocalNode struct {
	Sync   *Sync
	Parent *LocalNode

	// Name is the name in the local filesystem.
	Name       string
	NodeHandle models.NodeHandle
	Type       models.NodeType

	// DBID identifies the node in the state cache of Sync, 0 until the node
	// has been persisted. Ids are not portable between syncs.
	DBID uint32

	Children map[string]*LocalNode
	Transfer *Transfer
}

func (l *LocalNode) addChild(name string, t models.NodeType) *LocalNode {
	child := &LocalNode{
		Sync:       l.Sync,
		Parent:     l,
		Name:       name,
		NodeHandle: models.UndefNodeHandle,
		Type:       t,
	}
	if l.Children == nil {
		l.Children = make(map[string]*LocalNode)
	}
	l.Children[name] = child
	return child
}

func (l *LocalNode) detach() {
	if l.Parent != nil {
		delete(l.Parent.Children, l.Name)
		l.Parent = nil
	}
}

// sortedChildren returns the children ordered by name.
func (l *LocalNode) sortedChildren() []*LocalNode {
	out := make([]*LocalNode, 0, len(l.Children))
	for _, name := range slices.Sorted(maps.Keys(l.Children)) {
		out = append(out, l.Children[name])
	}
	return out
}

// LocalPath returns the full local path of l: the local root of its sync
// followed by the names from the sync root down to l.
func (l *LocalNode) LocalPath() string {
	var names []string
	for n := l; n != nil && n.Parent != nil; n = n.Parent {
		names = append(names, n.Name)
	}
	slices.Reverse(names)

	root := ""
	if l.Sync != nil {
		root = l.Sync.LocalRoot
	}
	return filepath.Join(append([]string{root}, names...)...)
}

// UpdateTransferLocalName refreshes the local name of the attached transfer.
func (l *LocalNode) UpdateTransferLocalName() {
	if l.Transfer == nil {
		return
	}
	l.Transfer.SetLocalName(l.LocalPath())
}

func (l *LocalNode) state() models.LocalNodeState {
	st := models.LocalNodeState{
		DBID:       l.DBID,
		Name:       l.Name,
		NodeHandle: l.NodeHandle,
		Type:       l.Type,
	}
	if l.Sync != nil {
		st.SyncID = l.Sync.ID
	}
	if l.Parent != nil {
		st.ParentDBID = l.Parent.DBID
	}
	return st
}
