package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams narrows a multi-document read. The zero value reads everything in storage order.
type QueryParams struct {
	Limit   int64  `json:"limit"    validate:"omitempty,gte=0"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// SortOrder returns the store sort direction for SortDir: -1 for DESC, 1 otherwise.
func (q QueryParams) SortOrder() int {
	if q.SortDir == SortDirDesc {
		return -1
	}

	return 1
}
