// Package treeproc holds the visitors applied to the remote node tree.
//
// A traversal driver (see nodes.Manager.ProcTree) calls Proc once for every
// visited node. Processors mutate the node or accumulate results; they never
// walk the tree themselves except for the ancestor chain of ShareKeys.
// A processor instance is meant for a single traversal.
package treeproc
