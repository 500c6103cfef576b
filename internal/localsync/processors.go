package localsync

import "github.com/spf13/afero"

// LocalTreeProcessor is invoked once per visited local node.
//
// The set of processors is closed: Move and UpdateTransfers.
type LocalTreeProcessor interface {
	Proc(fs afero.Fs, n *LocalNode)

	isLocalTreeProcessor()
}

// Move reassigns the visited nodes to another sync.
type Move struct {
	target *Sync
	count  int
}

func NewMove(target *Sync) *Move {
	return &Move{target: target}
}

func (p *Move) isLocalTreeProcessor() {}

// Proc moves n from the state cache of its sync to the one of the target.
// The node gets a new id in the target cache. Nodes already in the target
// are left alone but still counted.
func (p *Move) Proc(_ afero.Fs, n *LocalNode) {
	if n.Sync != p.target {
		if n.Sync != nil {
			n.Sync.StateCacheDel(n)
		}
		n.Sync = p.target
		n.DBID = 0
		p.target.StateCacheAdd(n)
	}
	p.count++
}

// Count returns the number of visited nodes.
func (p *Move) Count() int {
	return p.count
}

// UpdateTransfers refreshes the local name of transfers attached to the
// visited nodes and touches nothing else of them.
type UpdateTransfers struct{}

func (UpdateTransfers) isLocalTreeProcessor() {}

func (UpdateTransfers) Proc(_ afero.Fs, n *LocalNode) {
	n.UpdateTransferLocalName()
}

// ProcLocalTree calls tp.Proc for n and all its descendants, parents before
// children, siblings by name.
func ProcLocalTree(fs afero.Fs, n *LocalNode, tp LocalTreeProcessor) {
	tp.Proc(fs, n)
	for _, child := range n.sortedChildren() {
		ProcLocalTree(fs, child, tp)
	}
}
