package dto

type SearchKnowledgeRequest struct {
	Query      string `json:"query" validate:"required"`
	MatchCount int    `json:"match_count" validate:"omitempty,min=1,max=20"`
}

type KnowledgeChunkResponse struct {
	Id         string  `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

type KnowledgeStatsResponse struct {
	TotalRecords   int64 `json:"total_records"`
	ChapterRecords int64 `json:"chapter_records"`
}

// IngestSummary reports a completed ingestion run. Failures are the
// difference between total and succeeded; individual chunk errors are
// logged, not returned.
type IngestSummary struct {
	TotalChunks     int `json:"total_chunks"`
	SucceededChunks int `json:"succeeded_chunks"`
}
