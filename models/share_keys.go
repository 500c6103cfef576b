package models

// ShareKeysCommand is the pending outbound "cr" command that distributes node
// keys to the recipients of one or more shares.
//
// Shares and Nodes hold Base64 handles; every entry of Keys refers to them by
// index so that a handle is sent only once.
type ShareKeysCommand struct {
	// RequestID correlates the command with its response.
	RequestID string `json:"i"`

	Shares []string        `json:"sh"`
	Nodes  []string        `json:"nd"`
	Keys   []ShareKeyEntry `json:"ky"`
}

// ShareKeyEntry is one node key wrapped with one share key.
type ShareKeyEntry struct {
	ShareIndex int    `json:"s"`
	NodeIndex  int    `json:"n"`
	Key        string `json:"k"`
}

// NewShareKeysCommand returns an empty command with the given request id.
func NewShareKeysCommand(requestID string) *ShareKeysCommand {
	return &ShareKeysCommand{RequestID: requestID}
}

// AddShare appends h to Shares unless already present and returns its index.
func (c *ShareKeysCommand) AddShare(h NodeHandle) int {
	return addHandle(&c.Shares, h.Base64())
}

// AddNode appends h to Nodes unless already present and returns its index.
func (c *ShareKeysCommand) AddNode(h NodeHandle) int {
	return addHandle(&c.Nodes, h.Base64())
}

// IsEmpty reports whether the command carries no keys.
func (c *ShareKeysCommand) IsEmpty() bool {
	return len(c.Keys) == 0
}

func addHandle(list *[]string, h string) int {
	for i, v := range *list {
		if v == h {
			return i
		}
	}
	*list = append(*list, h)
	return len(*list) - 1
}
