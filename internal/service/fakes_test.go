package service

import (
	"context"
	"fmt"

	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/pkg/logger"
	"grow-coach-be/pkg/embedding"
	"grow-coach-be/pkg/llm"
	"grow-coach-be/pkg/rag/prompt"

	"github.com/google/uuid"
)

// nopLogger keeps test output clean.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var testLogger logger.ILogger = nopLogger{}

type fakeEmbedder struct {
	vector []float32
	err    error
	// failOn makes specific calls (0-based) fail while others succeed
	failOn map[int]bool
	calls  []string
}

func (f *fakeEmbedder) Generate(text, taskType string) (*embedding.EmbeddingResponse, error) {
	idx := len(f.calls)
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}
	if f.failOn[idx] {
		return nil, fmt.Errorf("embedding backend unavailable")
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: f.vector},
	}, nil
}

type fakeKnowledgeRepo struct {
	byTitle     map[string]*entity.KnowledgeSource
	upsertCount map[string]int
	upsertErr   error
	searchRes   []*entity.ScoredKnowledgeSource
	searchErr   error
}

func newFakeKnowledgeRepo() *fakeKnowledgeRepo {
	return &fakeKnowledgeRepo{
		byTitle:     map[string]*entity.KnowledgeSource{},
		upsertCount: map[string]int{},
	}
}

func (f *fakeKnowledgeRepo) Upsert(ctx context.Context, source *entity.KnowledgeSource) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.byTitle[source.Title] = source
	f.upsertCount[source.Title]++
	return nil
}

func (f *fakeKnowledgeRepo) FindByTitle(ctx context.Context, title string) (*entity.KnowledgeSource, error) {
	return f.byTitle[title], nil
}

func (f *fakeKnowledgeRepo) SearchSimilarWithScore(ctx context.Context, emb []float32, limit int) ([]*entity.ScoredKnowledgeSource, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if limit < len(f.searchRes) {
		return f.searchRes[:limit], nil
	}
	return f.searchRes, nil
}

func (f *fakeKnowledgeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byTitle)), nil
}

func (f *fakeKnowledgeRepo) CountBySourceType(ctx context.Context, sourceType string) (int64, error) {
	var n int64
	for _, s := range f.byTitle {
		if s.SourceType == sourceType {
			n++
		}
	}
	return n, nil
}

func (f *fakeKnowledgeRepo) DeleteBySourceType(ctx context.Context, sourceType string) error {
	for title, s := range f.byTitle {
		if s.SourceType == sourceType {
			delete(f.byTitle, title)
		}
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
	saveErr  error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{}}
}

func (f *fakeProfileRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return f.profiles[id], nil
}

func (f *fakeProfileRepo) Save(ctx context.Context, profile *entity.Profile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.profiles[profile.Id] = profile
	return nil
}

func (f *fakeProfileRepo) UpdateTier(ctx context.Context, id uuid.UUID, tier string) error {
	p, ok := f.profiles[id]
	if !ok {
		p = &entity.Profile{Id: id}
		f.profiles[id] = p
	}
	p.SubscriptionTier = tier
	return nil
}

type fakeCalendarRepo struct {
	calendars []*entity.GrowCalendar
	createErr error
}

func (f *fakeCalendarRepo) Create(ctx context.Context, calendar *entity.GrowCalendar) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.calendars = append(f.calendars, calendar)
	return nil
}

func (f *fakeCalendarRepo) FindById(ctx context.Context, userId, id uuid.UUID) (*entity.GrowCalendar, error) {
	for _, c := range f.calendars {
		if c.UserId == userId && c.Id == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCalendarRepo) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.GrowCalendar, error) {
	var res []*entity.GrowCalendar
	for _, c := range f.calendars {
		if c.UserId == userId {
			res = append(res, c)
		}
	}
	return res, nil
}

func (f *fakeCalendarRepo) Delete(ctx context.Context, userId, id uuid.UUID) error {
	for i, c := range f.calendars {
		if c.UserId == userId && c.Id == id {
			f.calendars = append(f.calendars[:i], f.calendars[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLLM struct {
	chatResponse string
	chatErr      error
	deltas       []string
	streamErr    error
	lastHistory  []llm.Message
	lastOptions  llm.Options
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.lastHistory = history
	f.lastOptions = llm.Options{}
	for _, opt := range options {
		opt(&f.lastOptions)
	}
	return f.chatResponse, f.chatErr
}

func (f *fakeLLM) ChatStream(ctx context.Context, history []llm.Message, onDelta llm.StreamFunc, options ...llm.Option) error {
	f.lastHistory = history
	if f.streamErr != nil {
		return f.streamErr
	}
	for _, d := range f.deltas {
		if err := onDelta(d); err != nil {
			return err
		}
	}
	return nil
}

type fakeKnowledgeService struct {
	chunks    []prompt.RetrievedChunk
	lastQuery string
}

func (f *fakeKnowledgeService) Retrieve(ctx context.Context, query string, matchCount int) []prompt.RetrievedChunk {
	f.lastQuery = query
	return f.chunks
}

func (f *fakeKnowledgeService) Search(ctx context.Context, req *dto.SearchKnowledgeRequest) ([]*dto.KnowledgeChunkResponse, error) {
	return nil, nil
}

func (f *fakeKnowledgeService) Stats(ctx context.Context) (*dto.KnowledgeStatsResponse, error) {
	return nil, nil
}

type fakeEmailService struct {
	sent    int
	lastTo  string
	sendErr error
}

func (f *fakeEmailService) SendCalendarSummary(toEmail string, totalWeeks int, harvestDate string) error {
	f.sent++
	f.lastTo = toEmail
	return f.sendErr
}
