package nodes

import (
	"sync"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// SharedNodeAlert tells that a node shared by or with User went away.
type SharedNodeAlert struct {
	User   models.Handle
	Type   models.NodeType
	Flag   int
	Handle models.NodeHandle
}

// AlertLog implements treeproc.AlertService by logging and keeping the
// alerts until they are drained.
type AlertLog struct {
	mu     sync.Mutex
	alerts []SharedNodeAlert
	logger *logger.Logger
}

func NewAlertLog(logger *logger.Logger) *AlertLog {
	return &AlertLog{logger: logger}
}

func (a *AlertLog) NoteSharedNode(user models.Handle, nodeType models.NodeType, flag int, n *models.Node) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.alerts = append(a.alerts, SharedNodeAlert{User: user, Type: nodeType, Flag: flag, Handle: n.Handle})
	a.logger.Info().
		Str("func", "AlertLog.NoteSharedNode").
		Stringer("user", user).
		Stringer("node", n.Handle).
		Msg("shared node removed")
}

// Drain returns the collected alerts and forgets them.
func (a *AlertLog) Drain() []SharedNodeAlert {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := a.alerts
	a.alerts = nil
	return out
}
