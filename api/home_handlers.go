package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-directory/model"
)

// newsItem is a news entry with its body rendered to HTML.
type newsItem struct {
	model.News
	HTML string `json:"html"`
}

// OverviewHandler returns the home page summary counts.
func (api *API) OverviewHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"metrics": api.directory.Dataset().Overview(),
	})
}

// NewsHandler lists the news items in source order.
func (api *API) NewsHandler(c *gin.Context) {
	news := api.directory.Dataset().News()

	items := make([]newsItem, len(news))
	for i, n := range news {
		html, err := api.markdown.HTML(n.Content)
		if err != nil {
			SendInternalError(c, "render news", err)
			return
		}
		items[i] = newsItem{News: n, HTML: html}
	}

	c.JSON(http.StatusOK, gin.H{
		"news":  items,
		"total": len(items),
	})
}

// MapHandler returns one marker per country with a known map position.
func (api *API) MapHandler(c *gin.Context) {
	markers := api.directory.MapMarkers()
	c.JSON(http.StatusOK, gin.H{
		"markers": markers,
		"total":   len(markers),
	})
}
