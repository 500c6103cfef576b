package sets

import (
	"github.com/MKhiriev/go-cloud-keeper/internal/codec"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// Element is a member of a Set. It refers to a node of the file tree by
// handle and is positioned inside the Set by its order key.
type Element struct {
	EncryptedAttrs
	changeTracker

	setID      models.Handle
	id         models.Handle
	nodeHandle models.NodeHandle
	order      *int64
	ts         int64

	attrsClearedByLastUpdate bool
}

// NewElement returns an Element without an order. attrs may be nil.
func NewElement(setID models.Handle, nodeHandle models.NodeHandle, id models.Handle, key []byte, attrs map[string]string) *Element {
	return &Element{
		EncryptedAttrs: EncryptedAttrs{key: key, attrs: attrs},
		setID:          setID,
		id:             id,
		nodeHandle:     nodeHandle,
	}
}

// SetID returns the id of the owning Set.
func (el *Element) SetID() models.Handle { return el.setID }

func (el *Element) ID() models.Handle             { return el.id }
func (el *Element) NodeHandle() models.NodeHandle { return el.nodeHandle }
func (el *Element) TS() int64                     { return el.ts }

// SetTS sets the last-modified time (unix seconds).
func (el *Element) SetTS(ts int64) {
	el.ts = ts
}

// HasOrder reports whether an order has been assigned.
func (el *Element) HasOrder() bool {
	return el.order != nil
}

// Order returns the order key, 0 when unset.
func (el *Element) Order() int64 {
	if el.order == nil {
		return 0
	}
	return *el.order
}

// SetOrder assigns the order key and flags ChangeElementOrder when it was
// unset or differs from the current one.
func (el *Element) SetOrder(order int64) {
	if el.order != nil && *el.order == order {
		return
	}
	el.order = &order
	el.SetChanged(ChangeElementOrder)
}

// SetAttrsClearedByLastUpdate records that the last remote delta wiped all
// attributes, as opposed to carrying no attribute delta at all.
func (el *Element) SetAttrsClearedByLastUpdate(cleared bool) {
	el.attrsClearedByLastUpdate = cleared
}

// AttrsClearedByLastUpdate reports the flag set by SetAttrsClearedByLastUpdate.
func (el *Element) AttrsClearedByLastUpdate() bool {
	return el.attrsClearedByLastUpdate
}

// UpdateWith merges a newer snapshot of the same Element into el and reports
// whether anything changed.
//
// Attributes are replaced only when other carries a map or explicitly cleared
// them; a delta without attributes leaves the local ones alone. The order is
// applied whenever other has one.
func (el *Element) UpdateWith(other *Element) bool {
	if other.HasOrder() {
		el.SetOrder(other.Order())
	}
	el.SetTS(other.ts)

	if other.HasAttrs() || other.AttrsClearedByLastUpdate() {
		if el.HasAttrChanged(NameTag, other.attrs) {
			el.SetChanged(ChangeElementName)
		}
		el.swapAttrs(&other.EncryptedAttrs)
	}

	return el.HasChanges()
}

// Serialize appends the cache record of el to buf. An unset order is written
// as 0.
func (el *Element) Serialize(buf []byte) []byte {
	w := codec.NewWriter(buf)

	w.Handle(el.setID)
	w.Handle(el.id)
	w.NodeHandle(el.nodeHandle)
	w.I64(el.Order())
	w.Compressed64(uint64(el.ts))
	w.Bytes32(el.key)
	writeAttrs(w, el.attrs)
	w.ExpansionFlags()

	return w.Bytes()
}

// UnserializeElement restores an Element written by Serialize. The whole
// record is rejected on any decoding failure. The restored element has an
// order and no pending change flags.
func UnserializeElement(data []byte) (*Element, error) {
	r := codec.NewReader(data)

	setID, err := r.Handle()
	if err != nil {
		return nil, corrupt("element set id", err)
	}
	id, err := r.Handle()
	if err != nil {
		return nil, corrupt("element id", err)
	}
	nodeHandle, err := r.NodeHandle()
	if err != nil {
		return nil, corrupt("element node handle", err)
	}
	order, err := r.I64()
	if err != nil {
		return nil, corrupt("element order", err)
	}
	ts, err := r.Compressed64()
	if err != nil {
		return nil, corrupt("element timestamp", err)
	}
	key, err := r.Bytes32()
	if err != nil {
		return nil, corrupt("element key", err)
	}
	attrs, err := readAttrs(r)
	if err != nil {
		return nil, err
	}
	if _, err = r.ExpansionFlags(0); err != nil {
		return nil, corrupt("element expansion flags", err)
	}

	el := NewElement(setID, nodeHandle, id, key, attrs)
	el.order = &order
	el.SetTS(int64(ts))
	return el, nil
}
