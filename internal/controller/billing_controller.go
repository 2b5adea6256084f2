package controller

import (
	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/pkg/serverutils"
	"grow-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	DemoAccess(ctx *fiber.Ctx) error
}

type billingController struct {
	billingService service.IBillingService
}

func NewBillingController(billingService service.IBillingService) IBillingController {
	return &billingController{
		billingService: billingService,
	}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing/v1")
	// the demo grant is anonymous, so it stays outside the JWT guard
	h.Post("demo", c.DemoAccess)

	protected := h.Use(serverutils.JwtMiddleware)
	protected.Post("checkout", c.Checkout)
	protected.Get("status", c.Status)
	protected.Post("cancel", c.Cancel)
}

func (c *billingController) Checkout(ctx *fiber.Ctx) error {
	userId, email := callerIdentity(ctx)

	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.billingService.Checkout(ctx.Context(), userId, email, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create checkout", res))
}

func (c *billingController) Status(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	res, err := c.billingService.Status(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subscription status", res))
}

func (c *billingController) Cancel(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	if err := c.billingService.Cancel(ctx.Context(), userId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success cancel subscription", nil))
}

func (c *billingController) DemoAccess(ctx *fiber.Ctx) error {
	res := c.billingService.IssueDemoAccess()
	return ctx.JSON(serverutils.SuccessResponse("Success issue demo access", res))
}
