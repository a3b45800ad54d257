package pagination

// Metadata contains pagination metadata included in listing responses.
type Metadata struct {
	Total      int  `json:"total"`       // Total number of items across all pages
	Page       int  `json:"page"`        // Current page number (1-based)
	PageSize   int  `json:"page_size"`   // Items per page
	TotalPages int  `json:"total_pages"` // Calculated total number of pages
	HasNext    bool `json:"has_next"`    // Whether a higher-numbered page exists
	HasPrev    bool `json:"has_prev"`    // Whether a lower-numbered page exists
}

// NewMetadata builds the metadata block for a page of a set with the given
// total item count.
func NewMetadata(total, page, pageSize int) Metadata {
	totalPages := TotalPages(total, pageSize)
	return Metadata{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
