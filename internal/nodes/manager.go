// Package nodes keeps the canonical in-memory node graph. It is the single
// owner of *models.Node values; everything else resolves handles through it.
package nodes

import (
	"context"
	"encoding/base64"
	"sync"

	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/treeproc"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// Manager implements treeproc.NodeManager and treeproc.KeyApplier.
type Manager struct {
	mu       sync.RWMutex
	nodes    map[models.NodeHandle]*models.Node
	children map[models.NodeHandle][]models.NodeHandle

	notified []*models.Node
	queued   map[models.NodeHandle]struct{}

	cipher crypto.Cipher
	logger *logger.Logger
}

func NewManager(cipher crypto.Cipher, logger *logger.Logger) *Manager {
	return &Manager{
		nodes:    make(map[models.NodeHandle]*models.Node),
		children: make(map[models.NodeHandle][]models.NodeHandle),
		queued:   make(map[models.NodeHandle]struct{}),
		cipher:   cipher,
		logger:   logger,
	}
}

// Client returns the traversal context for the local account me.
func (m *Manager) Client(me models.Handle, alerts treeproc.AlertService) *treeproc.Client {
	return &treeproc.Client{Me: me, Nodes: m, Alerts: alerts, Keys: m}
}

// Add inserts n, replacing a node with the same handle. The parent does not
// have to be known yet.
func (m *Manager) Add(n *models.Node) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.nodes[n.Handle]; ok {
		m.unlinkLocked(old)
	}
	m.nodes[n.Handle] = n
	if !n.Parent.IsUndef() {
		m.children[n.Parent] = append(m.children[n.Parent], n.Handle)
	}
}

// Remove drops the node with handle h. Its children stay and become
// unreachable from the parent.
func (m *Manager) Remove(h models.NodeHandle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n, ok := m.nodes[h]; ok {
		m.unlinkLocked(n)
		delete(m.nodes, h)
	}
}

func (m *Manager) unlinkLocked(n *models.Node) {
	siblings := m.children[n.Parent]
	for i, h := range siblings {
		if h == n.Handle {
			m.children[n.Parent] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
}

// NodeByHandle implements treeproc.NodeManager.
func (m *Manager) NodeByHandle(h models.NodeHandle) *models.Node {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.nodes[h]
}

// Children returns the direct children of h in insertion order.
func (m *Manager) Children(h models.NodeHandle) []*models.Node {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Node, 0, len(m.children[h]))
	for _, ch := range m.children[h] {
		if n, ok := m.nodes[ch]; ok {
			out = append(out, n)
		}
	}
	return out
}

// NotifyNode implements treeproc.NodeManager. A node is queued at most once
// per notification round.
func (m *Manager) NotifyNode(n *models.Node) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.queued[n.Handle]; ok {
		return
	}
	m.queued[n.Handle] = struct{}{}
	m.notified = append(m.notified, n)
}

// Notifications drains the notification queue. The caller resets
// Node.Changed once it has delivered them.
func (m *Manager) Notifications() []*models.Node {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.notified
	m.notified = nil
	clear(m.queued)
	return out
}

// ApplyKey implements treeproc.KeyApplier. The attribute string is the
// URL-safe Base64 form of a blob produced by crypto.Cipher.EncryptAttrs.
func (m *Manager) ApplyKey(n *models.Node) {
	if n.AttrString == nil || n.Key == nil {
		return
	}

	blob, err := base64.RawURLEncoding.DecodeString(*n.AttrString)
	if err != nil {
		m.logger.Err(err).Str("func", "Manager.ApplyKey").Stringer("node", n.Handle).Msg("malformed attribute string")
		return
	}

	attrs, err := m.cipher.DecryptAttrs(blob, n.Key)
	if err != nil {
		m.logger.Debug().Err(err).Str("func", "Manager.ApplyKey").Stringer("node", n.Handle).Msg("attribute key not applicable yet")
		return
	}

	n.Attrs = attrs
	n.AttrString = nil
}

// ProcTree calls tp.Proc for root and all its descendants, parents before
// children. It stops early with ctx.Err() when ctx is done; an unknown root
// visits nothing.
func (m *Manager) ProcTree(ctx context.Context, c *treeproc.Client, root models.NodeHandle, tp treeproc.TreeProcessor) error {
	n := m.NodeByHandle(root)
	if n == nil {
		return nil
	}

	stack := []*models.Node{n}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tp.Proc(c, n)

		children := m.Children(n.Handle)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}
