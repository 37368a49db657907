package model

// NoLink is the placeholder the source data uses for publications without a downloadable original.
const NoLink Link = "#"

// Link is an external URL attached to a publication.
type Link string

// Present reports whether the link points somewhere real.
func (l Link) Present() bool {
	return l != "" && l != NoLink
}

// Publication is the shape shared by laws, cases and reports.
// Date is kept as the ISO 8601 string found in the source data.
type Publication struct {
	ID       int    `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Title    string `json:"title" yaml:"title"`
	Summary  string `json:"summary" yaml:"summary"`
	Date     string `json:"date" yaml:"date"`
	Link     Link   `json:"link" yaml:"link"`
}

// Entry returns the shared publication fields. It is promoted to Law, Case and Report.
func (p Publication) Entry() Publication {
	return p
}

// Law is a statute or regulation.
type Law struct {
	Publication `yaml:",inline"`
}

// Case is an enforcement or merger-review case.
type Case struct {
	Publication `yaml:",inline"`
}

// Report is a published study or annual report.
type Report struct {
	Publication `yaml:",inline"`
}
