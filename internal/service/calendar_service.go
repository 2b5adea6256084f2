package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"grow-coach-be/internal/constant"
	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/pkg/logger"
	"grow-coach-be/internal/pkg/mailer"
	"grow-coach-be/internal/pkg/serverutils"
	"grow-coach-be/internal/repository/contract"
	"grow-coach-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const calendarMaxTokens = 8192

type ICalendarService interface {
	// Generate runs the wizard: checks the caller's trial window, asks the
	// LLM for a week-by-week plan, persists it, and emails a summary.
	Generate(ctx context.Context, userId uuid.UUID, email string, req *dto.GenerateCalendarRequest) (*dto.CalendarResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.CalendarListItemResponse, error)
	Get(ctx context.Context, userId, id uuid.UUID) (*dto.CalendarResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type calendarService struct {
	calendarRepo  contract.CalendarRepository
	profileRepo   contract.ProfileRepository
	llmProvider   llm.LLMProvider
	emailService  mailer.IEmailService
	logger        logger.ILogger
	calendarModel string
}

func NewCalendarService(
	calendarRepo contract.CalendarRepository,
	profileRepo contract.ProfileRepository,
	llmProvider llm.LLMProvider,
	emailService mailer.IEmailService,
	sysLogger logger.ILogger,
	calendarModel string,
) ICalendarService {
	return &calendarService{
		calendarRepo:  calendarRepo,
		profileRepo:   profileRepo,
		llmProvider:   llmProvider,
		emailService:  emailService,
		logger:        sysLogger,
		calendarModel: calendarModel,
	}
}

func (s *calendarService) Generate(ctx context.Context, userId uuid.UUID, email string, req *dto.GenerateCalendarRequest) (*dto.CalendarResponse, error) {
	if err := s.checkAccess(ctx, userId, email); err != nil {
		return nil, err
	}

	raw, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: constant.CalendarSystemPrompt},
		{Role: "user", Content: buildCalendarPrompt(req)},
	},
		llm.WithModel(s.calendarModel),
		llm.WithMaxTokens(calendarMaxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("calendar generation failed: %w", err)
	}

	data, err := parseCalendarData(raw)
	if err != nil {
		s.logger.Error("calendar", "Model returned unparseable calendar", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, serverutils.NewApiError(fiber.StatusBadGateway, "calendar generation produced an invalid plan, please retry")
	}

	calendar := &entity.GrowCalendar{
		Id:                   uuid.New(),
		UserId:               userId,
		Setup:                setupMap(req),
		Weeks:                data.Weeks,
		TotalWeeks:           data.TotalWeeks,
		EstimatedHarvestDate: data.EstimatedHarvestDate,
		CreatedAt:            time.Now(),
	}
	if err := s.calendarRepo.Create(ctx, calendar); err != nil {
		return nil, err
	}

	// Best effort: a failed summary email never fails the request.
	if email != "" {
		if err := s.emailService.SendCalendarSummary(email, data.TotalWeeks, data.EstimatedHarvestDate); err != nil {
			s.logger.Warn("calendar", "Summary email failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return toCalendarResponse(calendar), nil
}

// checkAccess enforces the free trial window. A caller without a profile is
// given a fresh trial starting now; premium profiles always pass.
func (s *calendarService) checkAccess(ctx context.Context, userId uuid.UUID, email string) error {
	profile, err := s.profileRepo.FindById(ctx, userId)
	if err != nil {
		return err
	}

	now := time.Now()
	if profile == nil {
		profile = &entity.Profile{
			Id:               userId,
			Email:            email,
			SubscriptionTier: entity.TierFree,
			TrialStartDate:   &now,
			CreatedAt:        now,
		}
		return s.profileRepo.Save(ctx, profile)
	}

	if profile.TrialExpired(now) {
		return serverutils.NewApiError(fiber.StatusPaymentRequired, "free trial expired, upgrade to keep generating calendars")
	}
	return nil
}

func (s *calendarService) List(ctx context.Context, userId uuid.UUID) ([]*dto.CalendarListItemResponse, error) {
	calendars, err := s.calendarRepo.FindAllByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CalendarListItemResponse, 0, len(calendars))
	for _, c := range calendars {
		res = append(res, &dto.CalendarListItemResponse{
			Id:                   c.Id,
			TotalWeeks:           c.TotalWeeks,
			EstimatedHarvestDate: c.EstimatedHarvestDate,
			CreatedAt:            c.CreatedAt,
		})
	}
	return res, nil
}

func (s *calendarService) Get(ctx context.Context, userId, id uuid.UUID) (*dto.CalendarResponse, error) {
	calendar, err := s.calendarRepo.FindById(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if calendar == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "calendar not found")
	}
	return toCalendarResponse(calendar), nil
}

func (s *calendarService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	calendar, err := s.calendarRepo.FindById(ctx, userId, id)
	if err != nil {
		return err
	}
	if calendar == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "calendar not found")
	}
	return s.calendarRepo.Delete(ctx, userId, id)
}

func buildCalendarPrompt(req *dto.GenerateCalendarRequest) string {
	var sb strings.Builder
	sb.WriteString("Generate a grow calendar for this setup:\n")
	fmt.Fprintf(&sb, "- Experience level: %s\n", req.ExperienceLevel)
	fmt.Fprintf(&sb, "- Strain type: %s\n", req.StrainType)
	fmt.Fprintf(&sb, "- Grow medium: %s\n", req.Medium)
	fmt.Fprintf(&sb, "- Light type: %s\n", req.LightType)
	fmt.Fprintf(&sb, "- Space size: %s\n", req.SpaceSize)
	fmt.Fprintf(&sb, "- Start date: %s\n", req.StartDate)
	if req.CurrentStage != "" {
		fmt.Fprintf(&sb, "- Already in progress: currently in %s", req.CurrentStage)
		if req.CurrentDayInStage != nil {
			fmt.Fprintf(&sb, ", day %d of that stage", *req.CurrentDayInStage)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "- Goals: %s\n", strings.Join(req.Goals, ", "))
	return sb.String()
}

// parseCalendarData extracts the outermost JSON object from the model
// response. The model is told to return bare JSON but sometimes wraps it in
// prose or a code fence.
func parseCalendarData(raw string) (*dto.CalendarData, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var data dto.CalendarData
	if err := json.Unmarshal([]byte(raw[start:end+1]), &data); err != nil {
		return nil, fmt.Errorf("decode calendar: %w", err)
	}

	var weeks []json.RawMessage
	if err := json.Unmarshal(data.Weeks, &weeks); err != nil {
		return nil, fmt.Errorf("decode weeks: %w", err)
	}
	if data.TotalWeeks <= 0 || len(weeks) == 0 {
		return nil, fmt.Errorf("calendar missing weeks")
	}
	return &data, nil
}

func setupMap(req *dto.GenerateCalendarRequest) map[string]interface{} {
	m := map[string]interface{}{
		"experienceLevel": req.ExperienceLevel,
		"strainType":      req.StrainType,
		"medium":          req.Medium,
		"lightType":       req.LightType,
		"spaceSize":       req.SpaceSize,
		"startDate":       req.StartDate,
		"goals":           req.Goals,
	}
	if req.CurrentStage != "" {
		m["currentStage"] = req.CurrentStage
	}
	if req.CurrentDayInStage != nil {
		m["currentDayInStage"] = *req.CurrentDayInStage
	}
	return m
}

func toCalendarResponse(c *entity.GrowCalendar) *dto.CalendarResponse {
	return &dto.CalendarResponse{
		Id:                   c.Id,
		TotalWeeks:           c.TotalWeeks,
		EstimatedHarvestDate: c.EstimatedHarvestDate,
		Weeks:                c.Weeks,
		CreatedAt:            c.CreatedAt,
	}
}
