package api

// Entity is one tagged span from the analysis, in the order the service
// produced them.
type Entity struct {
	Word   string `json:"word"`
	Entity string `json:"entity"`
}

// Analysis is the composite result attached to a document. Every field may be
// absent independently; pointer types keep "absent" distinct from a zero value.
type Analysis struct {
	Summary          *string  `json:"summary,omitempty"`
	TranslatedText   *string  `json:"translated_text,omitempty"`
	Entities         []Entity `json:"entities,omitempty"`
	AudioResponse    *string  `json:"audio_response,omitempty"`
	ConfidenceScore  *float64 `json:"confidence_score,omitempty"`
	TranslationError *string  `json:"translation_error,omitempty"`
}

// Document is a stored record as returned by the retrieval endpoints. The
// service assigns the identifier; the client never mutates a record.
type Document struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title,omitempty"`
	Language  string    `json:"language,omitempty"`
	Content   *string   `json:"content,omitempty"`
	Analysis  *Analysis `json:"analysis,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
}

// UploadReceipt is the success response of a document submission. Only the
// identifier is guaranteed; the rest is a best-effort echo of the fresh record.
type UploadReceipt struct {
	DocumentID    string    `json:"document_id"`
	Title         string    `json:"title,omitempty"`
	Language      string    `json:"language,omitempty"`
	Analysis      *Analysis `json:"analysis,omitempty"`
	AudioFilename string    `json:"audio_filename,omitempty"`
	ExtractedText string    `json:"extracted_text,omitempty"`
}
