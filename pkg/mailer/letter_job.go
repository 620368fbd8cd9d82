package mailer

// LetterJob is the JSON payload put on the letters queue. The worker loads
// the full letter from the blob named here; the remaining fields let it
// address the email without another database read.
type LetterJob struct {
	To          string `json:"to"`
	Name        string `json:"name"`
	BlobName    string `json:"blobName"`
	JobTitle    string `json:"jobTitle,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}
