// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package treeproc

import (
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/internal/utils"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// KeyWrapFunc encrypts a node key with a share key.
type KeyWrapFunc func(key, shareKey []byte) ([]byte, error)

type nodeKey struct {
	handle models.NodeHandle
	key    []byte
}

// ShareKeys collects the keys of the visited nodes so that they can be sent
// to the recipients of shareNode.
type ShareKeys struct {
	share            *models.Node
	includeAncestors bool
	wrap             KeyWrapFunc
	ids              *utils.RequestIDGenerator

	keys []nodeKey
	seen map[models.NodeHandle]struct{}
}

// NewShareKeys returns a collector for shareNode. With includeAncestors every
// visited node also contributes the keys of its parents up to and including
// shareNode, so that recipients can decrypt the whole path.
func NewShareKeys(shareNode *models.Node, includeAncestors bool, wrap KeyWrapFunc) *ShareKeys {
	return &ShareKeys{
		share:            shareNode,
		includeAncestors: includeAncestors,
		wrap:             wrap,
		ids:              utils.NewRequestIDGenerator("sk"),
		seen:             make(map[models.NodeHandle]struct{}),
	}
}

func (p *ShareKeys) isTreeProcessor() {}

// Proc records the key of n and, if requested, of its ancestors.
func (p *ShareKeys) Proc(c *Client, n *models.Node) {
	p.add(n)
	if !p.includeAncestors {
		return
	}

	for cur := n; cur.Handle != p.share.Handle && !cur.Parent.IsUndef(); {
		parent := c.Nodes.NodeByHandle(cur.Parent)
		if parent == nil {
			return
		}
		p.add(parent)
		cur = parent
	}
}

func (p *ShareKeys) add(n *models.Node) {
	if n.Key == nil {
		return
	}
	if _, ok := p.seen[n.Handle]; ok {
		return
	}
	p.seen[n.Handle] = struct{}{}
	p.keys = append(p.keys, nodeKey{handle: n.Handle, key: n.Key})
}

// Len returns the number of collected keys.
func (p *ShareKeys) Len() int {
	return len(p.keys)
}

// Get wraps every collected key with the share key and appends the entries
// to cmd. Nothing is appended when wrapping any key fails.
func (p *ShareKeys) Get(cmd *models.ShareKeysCommand) error {
	if len(p.keys) == 0 {
		return nil
	}
	if p.share.ShareKey == nil {
		return fmt.Errorf("share %s: %w", p.share.Handle, ErrNoShareKey)
	}

	wrapped := make([]string, len(p.keys))
	for i, k := range p.keys {
		w, err := p.wrap(k.key, p.share.ShareKey)
		if err != nil {
			return fmt.Errorf("%w: node %s: %w", ErrWrapKey, k.handle, err)
		}
		wrapped[i] = base64.RawURLEncoding.EncodeToString(w)
	}

	shareIndex := cmd.AddShare(p.share.Handle)
	for i, k := range p.keys {
		cmd.Keys = append(cmd.Keys, models.ShareKeyEntry{
			ShareIndex: shareIndex,
			NodeIndex:  cmd.AddNode(k.handle),
			Key:        wrapped[i],
		})
	}
	return nil
}

// Command returns a new command with a fresh request id holding the
// collected keys.
func (p *ShareKeys) Command() (*models.ShareKeysCommand, error) {
	cmd := models.NewShareKeysCommand(p.ids.Generate())
	if err := p.Get(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}
