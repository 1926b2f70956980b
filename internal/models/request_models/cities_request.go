package request_models

// CityListQuery filters and pages the city list. Name is an exact match,
// SearchQuery a substring match on name or description.
type CityListQuery struct {
	Name        string `form:"name"`
	SearchQuery string `form:"searchQuery"`
	PageNumber  int    `form:"pageNumber"`
	PageSize    int    `form:"pageSize"`
}

type CityQuery struct {
	IncludePointsOfInterest bool `form:"includePointsOfInterest"`
}
