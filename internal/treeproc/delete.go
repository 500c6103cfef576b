package treeproc

import "github.com/MKhiriev/go-cloud-keeper/models"

// Delete marks the visited nodes as removed.
type Delete struct {
	originatingUser models.Handle
}

// NewDelete returns a Delete that attributes removals to the node owners.
func NewDelete() *Delete {
	return &Delete{originatingUser: models.UndefHandle}
}

func (p *Delete) isTreeProcessor() {}

// SetOriginatingUser attributes the removals to user instead of the owners.
func (p *Delete) SetOriginatingUser(user models.Handle) {
	p.originatingUser = user
}

// Proc marks n removed, notifies the node manager and then, when someone
// other than the local account is responsible, raises a shared-node alert.
// The alert comes last because its consumer inspects the notified state.
func (p *Delete) Proc(c *Client, n *models.Node) {
	n.Changed.Removed = true
	c.Nodes.NotifyNode(n)

	user := p.originatingUser
	if user.IsUndef() {
		user = n.Owner
	}
	if user != c.Me {
		c.Alerts.NoteSharedNode(user, n.Type, 0, n)
	}
}
