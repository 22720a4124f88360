package transend

import (
	"context"
)

type branchAPI struct {
	c *Client
}

func (b *branchAPI) GetAllBranches(ctx context.Context, active *bool) (any, error) {
	return b.c.get(ctx, "branch.get_all", "/api/Branch", queryOf("active", active))
}

func (b *branchAPI) GetBranchByNumber(ctx context.Context, branchNumber string) (any, error) {
	return b.c.get(ctx, "branch.get_by_number", "/api/Branch/"+segment(branchNumber), nil)
}
