package models

// EntryResponse describes a knowledge base entry for the JSON API.
type EntryResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	Target   string   `json:"target,omitempty"`
}

// ProbeResponse is returned by the health probes.
type ProbeResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
