package transend

import (
	"context"
)

type coreAPI struct {
	c *Client
}

func (a *coreAPI) GetOpenCores(ctx context.Context) (any, error) {
	return a.c.get(ctx, "core.open", "/api/Core/Open", nil)
}
