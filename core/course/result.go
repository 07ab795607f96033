package course

// SearchHits is a page of raw documents as returned by the search engine
type SearchHits struct {
	Courses []Course
	Total   int64
}

// SearchResult represents a page of search results
type SearchResult struct {
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	TotalPages int    `json:"totalPages"`
	Courses    []View `json:"courses"`
}

// NewSearchResult projects engine hits into a result page for the given criteria
func NewSearchResult(cfg SearchCriteria, hits SearchHits) SearchResult {
	views := make([]View, len(hits.Courses))
	for i, c := range hits.Courses {
		views[i] = c.View()
	}

	return SearchResult{
		Total:      hits.Total,
		Page:       cfg.Page,
		Size:       cfg.PageSize,
		TotalPages: TotalPages(hits.Total, cfg.PageSize),
		Courses:    views,
	}
}

// TotalPages is ceil(total / pageSize). pageSize must be positive,
// a non-positive pageSize yields 0.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}
