package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-directory/internal/search"
	"github.com/gcbaptista/go-directory/services"
)

const (
	// PromptMessage asks for a keyword when the search box was left empty.
	PromptMessage = "请输入关键字进行搜索。"
	// NoMatchNotice is shown under a partition with no hits.
	NoMatchNotice = "暂无匹配结果"
)

// SearchResponse is a global search result with the summary line shown above it.
// Notice is only set once a keyword was searched; a prompt shows no partitions to annotate.
type SearchResponse struct {
	services.GlobalSearchResult
	Summary string `json:"summary"`
	Notice  string `json:"notice,omitempty"`
}

// SearchHandler handles the global cross-collection search.
// Query params: query
func (api *API) SearchHandler(c *gin.Context) {
	kw := search.ParseQuery(c.Request.URL.RawQuery)
	result := api.directory.Search(kw)

	resp := SearchResponse{
		GlobalSearchResult: result,
		Summary:            summary(result),
	}
	if !result.Prompt {
		resp.Notice = NoMatchNotice
	}
	c.JSON(http.StatusOK, resp)
}

func summary(result services.GlobalSearchResult) string {
	if result.Prompt {
		return PromptMessage
	}
	return "关键字 “" + result.Query + "” 的搜索结果："
}
