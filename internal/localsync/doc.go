// Package localsync mirrors synced local folders as trees of LocalNode and
// persists them in a per-sync state cache.
//
// The local trees belong to the Engine: processors, scans and state cache
// flushes all run under its lock. The only field written from elsewhere is
// the local name of an attached Transfer, which has its own lock.
package localsync
