package controller

import (
	"fmt"
	"strconv"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/pkg/serverutils"
	"faq-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	GetKnowledgeBase(ctx *fiber.Ctx) error
	ReloadKnowledgeBase(ctx *fiber.Ctx) error
	GetAnalytics(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
	ListFaqEntries(ctx *fiber.Ctx) error
	ShowFaqEntry(ctx *fiber.Ctx) error
	CreateFaqEntry(ctx *fiber.Ctx) error
	UpdateFaqEntry(ctx *fiber.Ctx) error
	DeleteFaqEntry(ctx *fiber.Ctx) error
}

type adminController struct {
	authService          service.IAdminAuthService
	knowledgeBaseService service.IKnowledgeBaseService
	analyticsService     service.IAnalyticsService
	logService           service.ILogService
	faqEntryService      service.IFaqEntryService
}

func NewAdminController(
	authService service.IAdminAuthService,
	knowledgeBaseService service.IKnowledgeBaseService,
	analyticsService service.IAnalyticsService,
	logService service.ILogService,
	faqEntryService service.IFaqEntryService,
) IAdminController {
	return &adminController{
		authService:          authService,
		knowledgeBaseService: knowledgeBaseService,
		analyticsService:     analyticsService,
		logService:           logService,
		faqEntryService:      faqEntryService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")

	// Public Admin Route (Login)
	h.Post("/login", c.Login)

	h.Use(serverutils.AdminMiddleware)

	h.Get("/knowledge-base", c.GetKnowledgeBase)
	h.Post("/knowledge-base/reload", c.ReloadKnowledgeBase)
	h.Get("/analytics", c.GetAnalytics)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)

	h.Get("/faqs", c.ListFaqEntries)
	h.Post("/faqs", c.CreateFaqEntry)
	h.Get("/faqs/:id", c.ShowFaqEntry)
	h.Put("/faqs/:id", c.UpdateFaqEntry)
	h.Delete("/faqs/:id", c.DeleteFaqEntry)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *adminController) GetKnowledgeBase(ctx *fiber.Ctx) error {
	res, err := c.knowledgeBaseService.Status(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Knowledge base status", res))
}

func (c *adminController) ReloadKnowledgeBase(ctx *fiber.Ctx) error {
	requestedBy := fmt.Sprint(ctx.Locals("user_id"))

	res, err := c.knowledgeBaseService.RequestReload(ctx.UserContext(), requestedBy)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Knowledge base reload queued", res))
}

func (c *adminController) GetAnalytics(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Chat analytics", c.analyticsService.Snapshot()))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	level := ctx.Query("level", "")

	logs, err := c.logService.GetSystemLogs(ctx.UserContext(), page, limit, level)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	logId := ctx.Params("id") // MD5 hash, not UUID

	l, err := c.logService.GetLogDetail(ctx.UserContext(), logId)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Log not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Log detail", l))
}

func (c *adminController) ListFaqEntries(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	res, err := c.faqEntryService.List(ctx.UserContext(), page, limit, ctx.Query("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ entries", res))
}

func (c *adminController) ShowFaqEntry(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid FAQ entry id")
	}

	res, err := c.faqEntryService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ entry", res))
}

func (c *adminController) CreateFaqEntry(ctx *fiber.Ctx) error {
	var req dto.CreateFaqEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.faqEntryService.Create(ctx.UserContext(), fmt.Sprint(ctx.Locals("user_id")), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("FAQ entry created", res))
}

func (c *adminController) UpdateFaqEntry(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid FAQ entry id")
	}

	var req dto.UpdateFaqEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.faqEntryService.Update(ctx.UserContext(), fmt.Sprint(ctx.Locals("user_id")), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ entry updated", res))
}

func (c *adminController) DeleteFaqEntry(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid FAQ entry id")
	}

	res, err := c.faqEntryService.Delete(ctx.UserContext(), fmt.Sprint(ctx.Locals("user_id")), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("FAQ entry deleted", res))
}
