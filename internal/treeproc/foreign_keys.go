package treeproc

import "github.com/MKhiriev/go-cloud-keeper/models"

// ForeignKeys queues nodes holding a foreign key for rewriting.
type ForeignKeys struct{}

func (ForeignKeys) isTreeProcessor() {}

// Proc moves n from "foreign key" to "pending rewrite". The flag is cleared,
// so the node is queued at most once.
func (ForeignKeys) Proc(c *Client, n *models.Node) {
	if !n.ForeignKey {
		return
	}
	c.NodeKeyRewrite = append(c.NodeKeyRewrite, n.Handle)
	n.ForeignKey = false
}
