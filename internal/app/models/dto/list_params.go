package dto

// ListQuery carries the common list parameters bound from the query
// string. Page and limit are clamped downstream; sort keys outside an
// entity's whitelist fall back to created-at descending.
type ListQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Order  string `form:"order"`
}
