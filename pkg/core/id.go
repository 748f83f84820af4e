package core

import (
	"fmt"
	"sync/atomic"
)

// componentCount backs generated component ids. Process-unique and
// monotonic; never reset.
var componentCount atomic.Uint64

// newComponentID generates an id scoped to the owning player's id.
func newComponentID(playerID string) string {
	if playerID == "" {
		playerID = "no_player"
	}
	return fmt.Sprintf("%s_component_%d", playerID, componentCount.Add(1))
}
