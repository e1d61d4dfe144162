package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/core/ports"
)

// NodeID is the unique identifier for the branch resolver Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.BranchResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BranchResolver, error) {
			return NewResolver(), nil
		},
	})
}
