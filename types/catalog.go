package types

// Role is a canonical role from the catalog.
type Role struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// CompetencyDefinition is a single entry of the competency taxonomy.
type CompetencyDefinition struct {
	Competency string `json:"competency"`
	Definition string `json:"definition"`
}

// AdjacencyEntry describes the overlap between the anchor role and
// another role, as a percentage.
type AdjacencyEntry struct {
	Role       string  `json:"role"`
	OverlapPct float64 `json:"overlap_pct"`
}

// Resource is a learning or reference resource.
type Resource struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	URL   string   `json:"url,omitempty"`
	Tags  []string `json:"tags"`
}
