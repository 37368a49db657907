package model

// Leader is a named office holder shown on an institution's detail page.
type Leader struct {
	Name     string `json:"name" yaml:"name"`
	Position string `json:"position" yaml:"position"`
}

// Institution is an organisation experts can be affiliated with.
// RelatedLaws and RelatedCases hold ids into the law and case collections; a missing list
// means the institution has no related items.
type Institution struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Country      string   `json:"country" yaml:"country"`
	Field        string   `json:"field" yaml:"field"`
	Logo         string   `json:"logo" yaml:"logo"`
	Description  string   `json:"description" yaml:"description"`
	Leaders      []Leader `json:"leaders,omitempty" yaml:"leaders,omitempty"`
	RelatedLaws  []int    `json:"related_laws" yaml:"related_laws,omitempty"`
	RelatedCases []int    `json:"related_cases" yaml:"related_cases,omitempty"`
}
