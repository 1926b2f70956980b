package response_models

// PaginationMetadata is sent in the X-Pagination header next to a page of results.
type PaginationMetadata struct {
	TotalItemCount int64 `json:"totalItemCount"`
	TotalPageCount int   `json:"totalPageCount"`
	PageSize       int   `json:"pageSize"`
	CurrentPage    int   `json:"currentPage"`
}

func NewPaginationMetadata(totalItemCount int64, pageSize, currentPage int) PaginationMetadata {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItemCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return PaginationMetadata{
		TotalItemCount: totalItemCount,
		TotalPageCount: totalPages,
		PageSize:       pageSize,
		CurrentPage:    currentPage,
	}
}
