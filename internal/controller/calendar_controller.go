package controller

import (
	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/pkg/serverutils"
	"grow-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICalendarController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type calendarController struct {
	calendarService service.ICalendarService
}

func NewCalendarController(calendarService service.ICalendarService) ICalendarController {
	return &calendarController{
		calendarService: calendarService,
	}
}

func (c *calendarController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/calendar/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("generate", c.Generate)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *calendarController) Generate(ctx *fiber.Ctx) error {
	userId, email := callerIdentity(ctx)

	var req dto.GenerateCalendarRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.calendarService.Generate(ctx.Context(), userId, email, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate calendar", res))
}

func (c *calendarController) List(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	res, err := c.calendarService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list calendars", res))
}

func (c *calendarController) Show(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid calendar id")
	}

	res, err := c.calendarService.Get(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show calendar", res))
}

func (c *calendarController) Delete(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid calendar id")
	}

	if err := c.calendarService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete calendar", nil))
}

// callerIdentity pulls the authenticated user's id and email out of the JWT
// middleware locals.
func callerIdentity(ctx *fiber.Ctx) (uuid.UUID, string) {
	var userId uuid.UUID
	if idStr, ok := ctx.Locals("user_id").(string); ok {
		userId, _ = uuid.Parse(idStr)
	}
	email, _ := ctx.Locals("email").(string)
	return userId, email
}
