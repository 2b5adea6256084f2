package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/pkg/logger"
	"grow-coach-be/internal/pkg/serverutils"
	"grow-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

const demoTokenHeader = "X-Demo-Token"

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Stream(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService    service.IChatService
	billingService service.IBillingService
	logger         logger.ILogger
}

func NewChatController(chatService service.IChatService, billingService service.IBillingService, sysLogger logger.ILogger) IChatController {
	return &chatController{
		chatService:    chatService,
		billingService: billingService,
		logger:         sysLogger,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.demoOrJwt, c.Stream)
}

// demoOrJwt admits either a valid demo token or a signed-in user.
func (c *chatController) demoOrJwt(ctx *fiber.Ctx) error {
	if token := ctx.Get(demoTokenHeader); token != "" {
		if c.billingService.ValidateDemoAccess(token) {
			ctx.Locals("demo", true)
			return ctx.Next()
		}
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Demo token expired"})
	}
	return serverutils.JwtMiddleware(ctx)
}

// Stream runs one coaching turn as an SSE stream: one "data: {json}" frame
// per token delta, terminated by "data: [DONE]".
func (c *chatController) Stream(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	ctx.Set("Content-Type", "text/event-stream")
	ctx.Set("Cache-Control", "no-cache")
	ctx.Set("Connection", "keep-alive")
	ctx.Set("X-Accel-Buffering", "no")

	// The writer runs after this handler returns, so it must not touch the
	// fiber context.
	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		streamCtx := context.Background()

		err := c.chatService.ChatStream(streamCtx, &req, func(delta string) error {
			if err := writeChunk(w, dto.ChatStreamChunk{Text: delta}); err != nil {
				return err
			}
			return w.Flush()
		})
		if err != nil {
			c.logger.Error("chat", "Stream aborted", map[string]interface{}{
				"error": err.Error(),
			})
			_ = writeChunk(w, dto.ChatStreamChunk{Err: "stream interrupted"})
		}

		fmt.Fprint(w, "data: [DONE]\n\n")
		_ = w.Flush()
	}))

	return nil
}

func writeChunk(w *bufio.Writer, chunk dto.ChatStreamChunk) error {
	payload, err := json.Marshal(chunk)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}
