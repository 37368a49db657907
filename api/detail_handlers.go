package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-directory/model"
	"github.com/gcbaptista/go-directory/services"
	"github.com/gcbaptista/go-directory/store"
)

// Publications carry a download link only when their link points somewhere real.
type (
	lawRecord struct {
		model.Law
		Download string `json:"download,omitempty"`
	}
	caseRecord struct {
		model.Case
		Download string `json:"download,omitempty"`
	}
	reportRecord struct {
		model.Report
		Download string `json:"download,omitempty"`
	}
)

func download(link model.Link) string {
	if !link.Present() {
		return ""
	}
	return string(link)
}

func newLawRecord(l model.Law) lawRecord {
	return lawRecord{Law: l, Download: download(l.Link)}
}

func newCaseRecord(c model.Case) caseRecord {
	return caseRecord{Case: c, Download: download(c.Link)}
}

func newReportRecord(r model.Report) reportRecord {
	return reportRecord{Report: r, Download: download(r.Link)}
}

// withDownloads converts the items of a view result, keeping its metadata.
func withDownloads[T, R any](result services.ViewResult[T], convert func(T) R) services.ViewResult[R] {
	items := make([]R, len(result.Items))
	for i, item := range result.Items {
		items[i] = convert(item)
	}
	return services.ViewResult[R]{
		Items:          items,
		Total:          result.Total,
		Empty:          result.Empty,
		Keyword:        result.Keyword,
		KeywordActive:  result.KeywordActive,
		ActiveFacets:   result.ActiveFacets,
		CollectionSize: result.CollectionSize,
	}
}

// institutionRecord is the institution detail page.
type institutionRecord struct {
	store.InstitutionDetail
	Laws  []lawRecord  `json:"laws"`
	Cases []caseRecord `json:"cases"`
}

// lookup validates the id parameter and runs find, sending the error response on failure.
func lookup[T any](c *gin.Context, operation string, find func(string) (T, error)) (T, bool) {
	var zero T
	id := c.Param("id")

	if result := ValidateRecordID(id); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return zero, false
	}

	record, err := find(id)
	if err != nil {
		SendLookupError(c, operation, err)
		return zero, false
	}
	return record, true
}

// GetExpertHandler handles the expert detail page.
func (api *API) GetExpertHandler(c *gin.Context) {
	if expert, ok := lookup(c, "get expert", api.directory.Dataset().Expert); ok {
		c.JSON(http.StatusOK, expert)
	}
}

// GetInstitutionHandler handles the institution detail page, including its leaders and related laws and cases.
func (api *API) GetInstitutionHandler(c *gin.Context) {
	detail, ok := lookup(c, "get institution", api.directory.Dataset().InstitutionDetail)
	if !ok {
		return
	}

	record := institutionRecord{
		InstitutionDetail: detail,
		Laws:              make([]lawRecord, len(detail.Laws)),
		Cases:             make([]caseRecord, len(detail.Cases)),
	}
	for i, l := range detail.Laws {
		record.Laws[i] = newLawRecord(l)
	}
	for i, cs := range detail.Cases {
		record.Cases[i] = newCaseRecord(cs)
	}
	c.JSON(http.StatusOK, record)
}

// GetLawHandler handles the law detail page.
func (api *API) GetLawHandler(c *gin.Context) {
	if law, ok := lookup(c, "get law", api.directory.Dataset().Law); ok {
		c.JSON(http.StatusOK, newLawRecord(law))
	}
}

// GetCaseHandler handles the case detail page.
func (api *API) GetCaseHandler(c *gin.Context) {
	if cs, ok := lookup(c, "get case", api.directory.Dataset().Case); ok {
		c.JSON(http.StatusOK, newCaseRecord(cs))
	}
}

// GetReportHandler handles the report detail page.
func (api *API) GetReportHandler(c *gin.Context) {
	if report, ok := lookup(c, "get report", api.directory.Dataset().Report); ok {
		c.JSON(http.StatusOK, newReportRecord(report))
	}
}
