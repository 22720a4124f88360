package transend

import (
	"context"
	"strconv"
)

type contentAPI struct {
	c *Client
}

func (a *contentAPI) GetArticleResources(ctx context.Context, articleID int64) (any, error) {
	path := "/api/Content/Articles/" + strconv.FormatInt(articleID, 10) + "/Resources"
	return a.c.get(ctx, "content.article_resources", path, nil)
}

func (a *contentAPI) GetArticles(ctx context.Context) (any, error) {
	return a.c.get(ctx, "content.articles", "/api/Content/Articles", nil)
}
