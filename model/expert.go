package model

// Expert is a person listed in the directory.
// Institution is derived at load time from InstitutionID and is never read from source data.
type Expert struct {
	ID            int      `json:"id" yaml:"id"`
	NameCN        string   `json:"name_cn" yaml:"name_cn"`
	NameEN        string   `json:"name_en" yaml:"name_en"`
	Gender        string   `json:"gender" yaml:"gender"`
	BirthYear     int      `json:"birth_year" yaml:"birth_year"`
	Nationality   string   `json:"nationality" yaml:"nationality"`
	InstitutionID int      `json:"institution_id" yaml:"institution_id"`
	Institution   string   `json:"institution" yaml:"-"`
	Position      string   `json:"position" yaml:"position"`
	Degree        string   `json:"degree" yaml:"degree"`
	Email         string   `json:"email" yaml:"email"`
	ResearchTags  []string `json:"research_tags" yaml:"research_tags"`
	Avatar        string   `json:"avatar" yaml:"avatar"`
	Outputs       []string `json:"outputs" yaml:"outputs"`
	Projects      []string `json:"projects" yaml:"projects"`
	Media         []string `json:"media" yaml:"media"`
}
