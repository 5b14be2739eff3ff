package models

// ExportDocument is the canonical backup format. The version field exists
// for future migration; no migration logic branches on it yet.
type ExportDocument struct {
	Version      string        `json:"version"`
	ExportDate   string        `json:"exportDate"`
	Triggers     []Trigger     `json:"triggers"`
	Settings     Settings      `json:"settings"`
	Achievements []Achievement `json:"achievements"`
}
