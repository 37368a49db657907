package search

import (
	"net/url"
	"strings"

	"github.com/gcbaptista/go-directory/internal/keyword"
)

// QueryParam is the URL parameter that carries the global search keyword.
const QueryParam = "query"

// ParseQuery extracts the search keyword from a raw URL query string such as
// "query=%E5%8F%8D%E5%9E%84%E6%96%AD&x=1". The first "query" parameter wins.
// A missing parameter yields a disabled keyword.
func ParseQuery(rawQuery string) keyword.Keyword {
	return keyword.Parse(ParseParams(rawQuery).Get(QueryParam))
}

// ParseParams splits a raw URL query string into its parameters, keeping every value.
// Only '&' separates pairs. Names and values are percent-decoded ('+' is a space);
// a component with malformed escapes is kept literally rather than dropped.
func ParseParams(rawQuery string) url.Values {
	params := url.Values{}
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		params.Add(decodeComponent(key), decodeComponent(value))
	}
	return params
}

func decodeComponent(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
