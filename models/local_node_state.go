package models

// LocalNodeState is the persisted form of a locally mirrored node inside the
// state cache of one sync.
type LocalNodeState struct {
	// SyncID identifies the sync whose cache owns the row.
	SyncID Handle

	// DBID is unique within one sync only.
	DBID       uint32
	ParentDBID uint32

	Name       string
	NodeHandle NodeHandle
	Type       NodeType
}
