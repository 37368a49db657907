package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-directory/internal/errors"
	"github.com/gcbaptista/go-directory/internal/facet"
	"github.com/gcbaptista/go-directory/internal/search"
	"github.com/gcbaptista/go-directory/services"
)

// EmptyNotice is shown by list views when nothing matches.
const EmptyNotice = "暂无数据"

// ViewResponse is a filtered list view together with the options of its facet selectors.
type ViewResponse[T any] struct {
	services.ViewResult[T]
	Facets []facet.Options `json:"facets,omitempty"`
	Notice string          `json:"notice,omitempty"`
}

// LawcaseResponse is the law/case view: two partitions sharing one facet state.
type LawcaseResponse struct {
	Laws   ViewResponse[lawRecord]  `json:"laws"`
	Cases  ViewResponse[caseRecord] `json:"cases"`
	Facets []facet.Options          `json:"facets"`
}

// bindViewQuery parses the request's facet and keyword parameters for view.
// It sends the error response itself and reports false when the request is invalid.
func (api *API) bindViewQuery(c *gin.Context, view string) (services.ViewQuery, []facet.Options, bool) {
	names, err := search.FacetNames(view)
	if err != nil {
		SendUnknownViewError(c, view)
		return services.ViewQuery{}, nil, false
	}

	query, result := ParseViewQuery(search.ParseParams(c.Request.URL.RawQuery), names)
	if result.HasErrors() {
		SendStructuredValidationError(c, result)
		return services.ViewQuery{}, nil, false
	}

	options, err := api.directory.Facets(view)
	if err != nil {
		SendInternalError(c, "list facet options", err)
		return services.ViewQuery{}, nil, false
	}
	return query, options, true
}

func newViewResponse[T any](result services.ViewResult[T], options []facet.Options) ViewResponse[T] {
	resp := ViewResponse[T]{ViewResult: result, Facets: options}
	if result.Empty {
		resp.Notice = EmptyNotice
	}
	return resp
}

// ExpertsHandler handles the expert list view.
// Query params: nationality, institution, research, q
func (api *API) ExpertsHandler(c *gin.Context) {
	query, options, ok := api.bindViewQuery(c, services.ViewExperts)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newViewResponse(api.directory.Experts(query), options))
}

// InstitutionsHandler handles the institution list view.
// Query params: country, field, q
func (api *API) InstitutionsHandler(c *gin.Context) {
	query, options, ok := api.bindViewQuery(c, services.ViewInstitutions)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newViewResponse(api.directory.Institutions(query), options))
}

// LawcaseHandler handles the law and case view.
// Query params: category, q
func (api *API) LawcaseHandler(c *gin.Context) {
	query, options, ok := api.bindViewQuery(c, services.ViewLawcase)
	if !ok {
		return
	}

	result := api.directory.Lawcase(query)
	c.JSON(http.StatusOK, LawcaseResponse{
		Laws:   newViewResponse(withDownloads(result.Laws, newLawRecord), nil),
		Cases:  newViewResponse(withDownloads(result.Cases, newCaseRecord), nil),
		Facets: options,
	})
}

// ReportsHandler handles the report list view.
// Query params: category, q
func (api *API) ReportsHandler(c *gin.Context) {
	query, options, ok := api.bindViewQuery(c, services.ViewReports)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newViewResponse(withDownloads(api.directory.Reports(query), newReportRecord), options))
}

// FacetsHandler returns the selectable values of every facet of a view.
func (api *API) FacetsHandler(c *gin.Context) {
	view := c.Param("view")

	options, err := api.directory.Facets(view)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnknownView) {
			SendUnknownViewError(c, view)
			return
		}
		SendInternalError(c, "list facet options", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"view":   view,
		"facets": options,
	})
}
