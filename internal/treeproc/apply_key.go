package treeproc

import "github.com/MKhiriev/go-cloud-keeper/models"

// ApplyKey resolves pending attribute strings.
type ApplyKey struct{}

func (ApplyKey) isTreeProcessor() {}

// Proc tries to decrypt the attributes of n. Only a node that got resolved
// is flagged and notified; the others are retried on the next traversal.
func (ApplyKey) Proc(c *Client, n *models.Node) {
	if !n.HasUnresolvedAttrs() {
		return
	}

	c.Keys.ApplyKey(n)
	if n.HasUnresolvedAttrs() {
		return
	}

	n.Changed.Attrs = true
	c.Nodes.NotifyNode(n)
}
