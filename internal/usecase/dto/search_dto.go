package dto

// SearchResult - one merged search hit. Kind is "establishment" or "spot";
// establishments carry name+category, spots carry description.
type SearchResult struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// SearchResponse - one page of merged results plus the total across all
// pages.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
}
