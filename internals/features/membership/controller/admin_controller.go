package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"abhm_backend/internals/features/idcard"
	"abhm_backend/internals/features/membership/dto"
	"abhm_backend/internals/features/membership/model"
	"abhm_backend/internals/features/membership/service"
	helper "abhm_backend/internals/helpers"
	"abhm_backend/internals/helpers/storage"
)

// AdminController serves the authenticated admin surface: review queues,
// verification, dashboard, photo replacement, and card downloads.
type AdminController struct {
	Service  *service.LifecycleService
	Uploads  *storage.UploadService
	Pipeline *idcard.Pipeline
}

func NewAdminController(svc *service.LifecycleService, uploads *storage.UploadService, pipeline *idcard.Pipeline) *AdminController {
	return &AdminController{Service: svc, Uploads: uploads, Pipeline: pipeline}
}

// ListPending handles GET /admin/pending-requests.
func (ctrl *AdminController) ListPending(c *fiber.Ctx) error {
	page := helper.ParsePage(c)
	search := c.Query("search")

	members, total, err := ctrl.Service.ListPending(c.Context(), page, search)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch pending requests")
	}
	return helper.Success(c, "Pending requests fetched successfully",
		helper.NewPagedResponse(members, total, page))
}

// ListMembers handles GET /admin/members with optional status and search filters.
func (ctrl *AdminController) ListMembers(c *fiber.Ctx) error {
	page := helper.ParsePage(c)
	search := c.Query("search")
	status := c.Query("status")

	members, total, err := ctrl.Service.ListMembers(c.Context(), page, search, status)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}
	return helper.Success(c, "Members fetched successfully",
		helper.NewPagedResponse(members, total, page))
}

// GetMember handles GET /admin/member/:id (full record, admin only).
func (ctrl *AdminController) GetMember(c *fiber.Ctx) error {
	member, err := ctrl.Service.GetMember(c.Context(), c.Params("id"))
	if err != nil {
		return helper.FromAppError(c, err, "Failed to fetch member")
	}
	return helper.Success(c, "Member fetched successfully", member)
}

// Verify handles POST /admin/verify-request: the approve/reject decision.
func (ctrl *AdminController) Verify(c *fiber.Ctx) error {
	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.MemberID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "member_id is required")
	}

	member, err := ctrl.Service.Verify(c.Context(), req.MemberID, req.Status, req.RejectionReason)
	if err != nil {
		return helper.FromAppError(c, err, "Failed to verify member")
	}

	log.Printf("[Membership] admin %v set %s to %s", c.Locals("admin_id"), member.ID, member.Status)
	return helper.Success(c, fmt.Sprintf("Member %s successfully", member.Status), member)
}

// UpdatePhoto handles PUT /admin/member/:id/photo (multipart). The replaced
// file is deleted best effort after the record is updated.
func (ctrl *AdminController) UpdatePhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Photo file is required")
	}

	stored, err := ctrl.Uploads.SavePhoto("photo", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	member, oldPhotoURL, err := ctrl.Service.UpdatePhoto(c.Context(), c.Params("id"), stored)
	if err != nil {
		ctrl.Uploads.Delete(stored)
		return helper.FromAppError(c, err, "Failed to update photo")
	}

	if oldPhotoURL != "" && oldPhotoURL != stored {
		ctrl.Uploads.Delete(oldPhotoURL)
	}
	return helper.Success(c, "Photo updated successfully", member)
}

// Dashboard handles GET /admin/dashboard-stats.
func (ctrl *AdminController) Dashboard(c *fiber.Ctx) error {
	stats, err := ctrl.Service.DashboardStats(c.Context())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}
	return helper.Success(c, "Dashboard stats fetched successfully", stats)
}

// IDCardPDF handles GET /admin/member/:id/id-card-pdf. Cards exist only for
// approved members.
func (ctrl *AdminController) IDCardPDF(c *fiber.Ctx) error {
	member, err := ctrl.Service.GetMember(c.Context(), c.Params("id"))
	if err != nil {
		return helper.FromAppError(c, err, "Failed to fetch member")
	}
	if member.Status != model.StatusApproved {
		return helper.Error(c, fiber.StatusBadRequest, "ID card is only available for approved members")
	}

	pdf, err := ctrl.Pipeline.PDF(c.Context(), member)
	if err != nil {
		log.Println("[ERROR] ID card render failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate ID card")
	}

	memberID := "member"
	if member.MemberID != nil && *member.MemberID != "" {
		memberID = *member.MemberID
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_ID_Card.pdf"`, memberID))
	return c.Send(pdf)
}

// IDCardHTML handles GET /admin/member/:id/id-card-html: the same card as a
// standalone document for print-at-home.
func (ctrl *AdminController) IDCardHTML(c *fiber.Ctx) error {
	member, err := ctrl.Service.GetMember(c.Context(), c.Params("id"))
	if err != nil {
		return helper.FromAppError(c, err, "Failed to fetch member")
	}
	if member.Status != model.StatusApproved {
		return helper.Error(c, fiber.StatusBadRequest, "ID card is only available for approved members")
	}

	html, err := ctrl.Pipeline.HTML(member)
	if err != nil {
		log.Println("[ERROR] ID card render failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate ID card")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
