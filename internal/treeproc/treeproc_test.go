package treeproc

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cloud-keeper/internal/mock"
	"github.com/MKhiriev/go-cloud-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const me models.Handle = 0x1000

type testTree struct {
	byHandle map[models.NodeHandle]*models.Node
}

// newChain builds a chain of folders where every node is the parent of the
// next one, rooted at handles[0].
func newChain(handles ...models.NodeHandle) *testTree {
	tree := &testTree{byHandle: make(map[models.NodeHandle]*models.Node)}
	parent := models.UndefNodeHandle
	for _, h := range handles {
		tree.byHandle[h] = &models.Node{
			Handle: h,
			Parent: parent,
			Owner:  me,
			Type:   models.FolderNode,
			Key:    []byte{byte(h), byte(h), byte(h), byte(h)},
		}
		parent = h
	}
	return tree
}

func newTestClient(t *testing.T, ctrl *gomock.Controller, tree *testTree) (*Client, *mock.MockNodeManager, *mock.MockAlertService, *mock.MockKeyApplier) {
	t.Helper()

	nodes := mock.NewMockNodeManager(ctrl)
	alerts := mock.NewMockAlertService(ctrl)
	keys := mock.NewMockKeyApplier(ctrl)

	if tree != nil {
		nodes.EXPECT().NodeByHandle(gomock.Any()).DoAndReturn(func(h models.NodeHandle) *models.Node {
			return tree.byHandle[h]
		}).AnyTimes()
	}

	return &Client{Me: me, Nodes: nodes, Alerts: alerts, Keys: keys}, nodes, alerts, keys
}

func identityWrap(key, _ []byte) ([]byte, error) {
	return key, nil
}

// ── ShareKeys ────────────────────────────────────────────────────────────────

func TestShareKeys_WithoutAncestors(t *testing.T) {
	ctrl := gomock.NewController(t)
	tree := newChain(1, 2, 3, 4)
	c, _, _, _ := newTestClient(t, ctrl, tree)

	p := NewShareKeys(tree.byHandle[1], false, identityWrap)
	p.Proc(c, tree.byHandle[4])

	assert.Equal(t, 1, p.Len())
}

func TestShareKeys_AncestorsAtDepthThree(t *testing.T) {
	ctrl := gomock.NewController(t)
	tree := newChain(1, 2, 3, 4)
	tree.byHandle[1].ShareKey = []byte("share-key")
	c, _, _, _ := newTestClient(t, ctrl, tree)

	p := NewShareKeys(tree.byHandle[1], true, identityWrap)
	p.Proc(c, tree.byHandle[4])
	require.Equal(t, 4, p.Len())

	// visiting the ancestors afterwards adds nothing
	for _, h := range []models.NodeHandle{1, 2, 3, 4} {
		p.Proc(c, tree.byHandle[h])
	}
	assert.Equal(t, 4, p.Len())

	cmd := models.NewShareKeysCommand("req")
	require.NoError(t, p.Get(cmd))

	assert.Equal(t, []string{models.NodeHandle(1).Base64()}, cmd.Shares)
	assert.Len(t, cmd.Nodes, 4)
	require.Len(t, cmd.Keys, 4)

	seen := make(map[int]bool)
	for _, entry := range cmd.Keys {
		assert.Equal(t, 0, entry.ShareIndex)
		assert.False(t, seen[entry.NodeIndex], "duplicate node index %d", entry.NodeIndex)
		seen[entry.NodeIndex] = true

		h := tree.byHandle[nodeHandleAt(t, cmd, entry.NodeIndex)]
		assert.Equal(t, base64.RawURLEncoding.EncodeToString(h.Key), entry.Key)
	}
}

func TestShareKeys_AncestorWalkStopsAtShareNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	tree := newChain(1, 2, 3, 4)
	c, _, _, _ := newTestClient(t, ctrl, tree)

	p := NewShareKeys(tree.byHandle[2], true, identityWrap)
	p.Proc(c, tree.byHandle[4])

	assert.Equal(t, 3, p.Len())
}

func TestShareKeys_SkipsNodesWithoutKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	tree := newChain(1, 2, 3)
	tree.byHandle[2].Key = nil
	c, _, _, _ := newTestClient(t, ctrl, tree)

	p := NewShareKeys(tree.byHandle[1], true, identityWrap)
	p.Proc(c, tree.byHandle[3])

	assert.Equal(t, 2, p.Len())
}

func TestShareKeys_UnknownParentEndsWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	tree := newChain(1, 2, 3)
	delete(tree.byHandle, 2)
	c, _, _, _ := newTestClient(t, ctrl, tree)

	p := NewShareKeys(tree.byHandle[1], true, identityWrap)
	p.Proc(c, tree.byHandle[3])

	assert.Equal(t, 1, p.Len())
}

func TestShareKeys_GetErrors(t *testing.T) {
	t.Run("no share key", func(t *testing.T) {
		tree := newChain(1)
		p := NewShareKeys(tree.byHandle[1], false, identityWrap)
		p.Proc(&Client{}, tree.byHandle[1])

		cmd := models.NewShareKeysCommand("req")
		err := p.Get(cmd)

		assert.ErrorIs(t, err, ErrNoShareKey)
		assert.True(t, cmd.IsEmpty())
	})

	t.Run("wrap failure leaves command untouched", func(t *testing.T) {
		tree := newChain(1, 2)
		tree.byHandle[1].ShareKey = []byte("share-key")
		p := NewShareKeys(tree.byHandle[1], false, func(key, _ []byte) ([]byte, error) {
			if key[0] == 2 {
				return nil, errors.New("boom")
			}
			return key, nil
		})
		p.Proc(&Client{}, tree.byHandle[1])
		p.Proc(&Client{}, tree.byHandle[2])

		cmd := models.NewShareKeysCommand("req")
		err := p.Get(cmd)

		assert.ErrorIs(t, err, ErrWrapKey)
		assert.True(t, cmd.IsEmpty())
		assert.Empty(t, cmd.Shares)
		assert.Empty(t, cmd.Nodes)
	})

	t.Run("nothing collected", func(t *testing.T) {
		tree := newChain(1)
		p := NewShareKeys(tree.byHandle[1], false, identityWrap)

		cmd := models.NewShareKeysCommand("req")
		require.NoError(t, p.Get(cmd))
		assert.True(t, cmd.IsEmpty())
	})
}

func TestShareKeys_Command(t *testing.T) {
	tree := newChain(1)
	tree.byHandle[1].ShareKey = []byte("share-key")
	p := NewShareKeys(tree.byHandle[1], false, identityWrap)
	p.Proc(&Client{}, tree.byHandle[1])

	cmd, err := p.Command()
	require.NoError(t, err)

	assert.NotEmpty(t, cmd.RequestID)
	assert.Len(t, cmd.Keys, 1)

	other, err := p.Command()
	require.NoError(t, err)
	assert.NotEqual(t, cmd.RequestID, other.RequestID)
}

func nodeHandleAt(t *testing.T, cmd *models.ShareKeysCommand, i int) models.NodeHandle {
	t.Helper()
	for h := models.NodeHandle(1); h <= 4; h++ {
		if h.Base64() == cmd.Nodes[i] {
			return h
		}
	}
	t.Fatalf("unknown node %q", cmd.Nodes[i])
	return models.UndefNodeHandle
}

// ── ForeignKeys ──────────────────────────────────────────────────────────────

func TestForeignKeys_Proc(t *testing.T) {
	c := &Client{}
	foreign := &models.Node{Handle: 7, ForeignKey: true}
	plain := &models.Node{Handle: 8}

	var p ForeignKeys
	p.Proc(c, foreign)
	p.Proc(c, plain)
	p.Proc(c, foreign)

	assert.Equal(t, []models.NodeHandle{7}, c.NodeKeyRewrite)
	assert.False(t, foreign.ForeignKey)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDelete_Proc(t *testing.T) {
	const other models.Handle = 0x2000

	tests := []struct {
		name       string
		owner      models.Handle
		override   models.Handle
		wantAlerts int
		wantUser   models.Handle
	}{
		{name: "own node", owner: me, override: models.UndefHandle, wantAlerts: 0},
		{name: "foreign owner", owner: other, override: models.UndefHandle, wantAlerts: 1, wantUser: other},
		{name: "removed by me in a foreign share", owner: other, override: me, wantAlerts: 0},
		{name: "removed by someone else", owner: me, override: other, wantAlerts: 1, wantUser: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c, nodes, alerts, _ := newTestClient(t, ctrl, nil)
			n := &models.Node{Handle: 5, Owner: tt.owner, Type: models.FileNode}

			notify := nodes.EXPECT().NotifyNode(n).Do(func(n *models.Node) {
				assert.True(t, n.Changed.Removed, "node is marked before notification")
			}).Times(1)
			if tt.wantAlerts > 0 {
				alert := alerts.EXPECT().NoteSharedNode(tt.wantUser, models.FileNode, 0, n).Times(tt.wantAlerts)
				gomock.InOrder(notify, alert)
			}

			p := NewDelete()
			if !tt.override.IsUndef() {
				p.SetOriginatingUser(tt.override)
			}
			p.Proc(c, n)

			assert.True(t, n.Changed.Removed)
		})
	}
}

// ── ApplyKey ─────────────────────────────────────────────────────────────────

func TestApplyKey_Resolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, nodes, _, keys := newTestClient(t, ctrl, nil)

	attrs := "encrypted"
	n := &models.Node{Handle: 3, AttrString: &attrs}

	keys.EXPECT().ApplyKey(n).Do(func(n *models.Node) {
		n.AttrString = nil
		n.Attrs = map[string]string{"n": "report.pdf"}
	})
	nodes.EXPECT().NotifyNode(n)

	ApplyKey{}.Proc(c, n)

	assert.True(t, n.Changed.Attrs)
	assert.Equal(t, "report.pdf", n.Name())
}

func TestApplyKey_Unresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, nodes, _, keys := newTestClient(t, ctrl, nil)

	attrs := "encrypted"
	n := &models.Node{Handle: 3, AttrString: &attrs}

	keys.EXPECT().ApplyKey(n)
	nodes.EXPECT().NotifyNode(gomock.Any()).Times(0)

	ApplyKey{}.Proc(c, n)

	assert.False(t, n.Changed.Attrs)
	assert.True(t, n.HasUnresolvedAttrs())
}

func TestApplyKey_AlreadyResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, nodes, _, keys := newTestClient(t, ctrl, nil)

	n := &models.Node{Handle: 3}

	keys.EXPECT().ApplyKey(gomock.Any()).Times(0)
	nodes.EXPECT().NotifyNode(gomock.Any()).Times(0)

	ApplyKey{}.Proc(c, n)
}

func TestProcessorsAreTreeProcessors(t *testing.T) {
	processors := []TreeProcessor{
		NewShareKeys(&models.Node{}, false, identityWrap),
		ForeignKeys{},
		NewDelete(),
		ApplyKey{},
	}
	assert.Len(t, processors, 4)
}
