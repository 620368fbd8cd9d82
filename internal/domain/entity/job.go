package entity

// Job is a scraped job listing. Rows are written by the Jooble ingestion
// command and read-only for the API.
type Job struct {
	ID       int    `json:"jobId"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
	Salary   string `json:"salary,omitempty"`
	Source   string `json:"source,omitempty"`
	Link     string `json:"link"`
	Updated  string `json:"updated,omitempty"`
	JobType  string `json:"jobType,omitempty"`
}
