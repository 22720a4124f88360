package transend

import (
	"context"
)

type productAPI struct {
	c *Client
}

func (p *productAPI) GetAllSortTypes(ctx context.Context) (any, error) {
	return p.c.get(ctx, "product.sort_types", "/api/Product/SortTypes", nil)
}

func (p *productAPI) GetAllTags(ctx context.Context) (any, error) {
	return p.c.get(ctx, "product.tags", "/api/Product/Tags", nil)
}

func (p *productAPI) GetAvailabilityByItemID(ctx context.Context, itemID ID) (any, error) {
	return p.c.get(ctx, "product.availability", "/api/Product/Availability/"+segment(itemID.String()), nil)
}

func (p *productAPI) GetAvailableQuantity(ctx context.Context, itemID ID, branchNumber string, availabilityTypeID ID) (any, error) {
	q := queryOf(
		"itemId", itemID,
		"branchNumber", branchNumber,
		"availabilityTypeId", availabilityTypeID,
	)
	return p.c.get(ctx, "product.available_quantity", "/api/Product/AvailableQuantity", q)
}

func (p *productAPI) GetBrands(ctx context.Context, vhid, phid *string) (any, error) {
	return p.c.get(ctx, "product.brands", "/api/Product/Brands", queryOf("vhid", vhid, "phid", phid))
}

func (p *productAPI) GetCategories(ctx context.Context, vhid, phid, searchID *string) (any, error) {
	q := queryOf("vhid", vhid, "phid", phid, "searchId", searchID)
	return p.c.get(ctx, "product.categories", "/api/Product/Categories", q)
}
