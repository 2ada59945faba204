package models

type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Schema   string `json:"schema"`
}

func (h Health) OK() bool {
	return h.Status == "ok"
}
