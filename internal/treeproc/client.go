package treeproc

import "github.com/MKhiriev/go-cloud-keeper/models"

// Client is the state shared by all processors of a traversal.
type Client struct {
	// Me is the handle of the local account.
	Me models.Handle

	Nodes  NodeManager
	Alerts AlertService
	Keys   KeyApplier

	// NodeKeyRewrite collects nodes whose foreign key has to be rewritten.
	NodeKeyRewrite []models.NodeHandle
}

// TreeProcessor is invoked once per visited node.
//
// The set of processors is closed: ShareKeys, ForeignKeys, Delete and
// ApplyKey.
type TreeProcessor interface {
	Proc(c *Client, n *models.Node)

	isTreeProcessor()
}
