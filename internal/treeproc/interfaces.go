package treeproc

import "github.com/MKhiriev/go-cloud-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/treeproc_mock.go -package=mock

// NodeManager owns the canonical nodes.
type NodeManager interface {
	// NotifyNode queues n for change-notification delivery.
	NotifyNode(n *models.Node)

	// NodeByHandle resolves h, returning nil for unknown handles.
	NodeByHandle(h models.NodeHandle) *models.Node
}

// AlertService delivers user-visible alerts.
type AlertService interface {
	NoteSharedNode(user models.Handle, nodeType models.NodeType, flag int, n *models.Node)
}

// KeyApplier decrypts the attribute string of a node with its key. On
// success the node's AttrString is cleared; on failure it is left as is.
type KeyApplier interface {
	ApplyKey(n *models.Node)
}
