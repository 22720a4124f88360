package transend

import (
	"context"
)

type customerAPI struct {
	c *Client
}

func (a *customerAPI) GetUsers(ctx context.Context) (any, error) {
	return a.c.get(ctx, "customer.users", "/api/Customer/Users", nil)
}
