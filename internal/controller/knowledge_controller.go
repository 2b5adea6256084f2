package controller

import (
	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/pkg/serverutils"
	"grow-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("search", c.Search)
	h.Get("stats", c.Stats)
}

func (c *knowledgeController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search knowledge", res))
}

func (c *knowledgeController) Stats(ctx *fiber.Ctx) error {
	res, err := c.knowledgeService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get knowledge stats", res))
}
