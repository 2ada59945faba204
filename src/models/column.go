package models

// Column describes one column of a provisioned table as reported by information_schema.
type Column struct {
	Name      string  `json:"name"`
	DataType  string  `json:"data_type"`
	Nullable  bool    `json:"nullable"`
	MaxLength *int    `json:"max_length"`
	Default   *string `json:"default"`
}
