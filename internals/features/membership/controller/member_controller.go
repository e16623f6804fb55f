package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"abhm_backend/internals/features/membership/dto"
	"abhm_backend/internals/features/membership/service"
	helper "abhm_backend/internals/helpers"
	"abhm_backend/internals/helpers/storage"
)

// MemberController serves the public membership surface: application intake,
// status check, and card verification.
type MemberController struct {
	Service *service.LifecycleService
	Uploads *storage.UploadService
}

func NewMemberController(svc *service.LifecycleService, uploads *storage.UploadService) *MemberController {
	return &MemberController{Service: svc, Uploads: uploads}
}

// Join handles POST /api/membership/join (multipart form).
func (ctrl *MemberController) Join(c *fiber.Ctx) error {
	var req dto.JoinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid form data")
	}

	files, err := ctrl.saveUploads(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	member, err := ctrl.Service.Submit(c.Context(), &req, files)
	if err != nil {
		// new uploads are orphans if the submission failed
		ctrl.Uploads.Delete(files.PhotoURL)
		ctrl.Uploads.Delete(files.AadhaarCardURL)
		ctrl.Uploads.Delete(files.PaymentScreenshotURL)
		return helper.FromAppError(c, err, "Failed to submit application")
	}

	log.Printf("[Membership] new application %s (%s)", member.ID, member.Mobile)
	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Application submitted successfully. You will be notified after verification.",
		fiber.Map{
			"id":     member.ID,
			"status": member.Status,
		})
}

func (ctrl *MemberController) saveUploads(c *fiber.Ctx) (dto.UploadedFiles, error) {
	var files dto.UploadedFiles

	if fh, err := c.FormFile("photo"); err == nil {
		stored, err := ctrl.Uploads.SavePhoto("photo", fh)
		if err != nil {
			return files, err
		}
		files.PhotoURL = stored
	}
	if fh, err := c.FormFile("aadhaar_card"); err == nil {
		stored, err := ctrl.Uploads.SaveImage("aadhaar_card", fh)
		if err != nil {
			return files, err
		}
		files.AadhaarCardURL = stored
	}
	if fh, err := c.FormFile("payment_screenshot"); err == nil {
		stored, err := ctrl.Uploads.SaveImage("payment_screenshot", fh)
		if err != nil {
			return files, err
		}
		files.PaymentScreenshotURL = stored
	}
	return files, nil
}

// CheckStatus handles POST /api/membership/status. The one input routes to an
// ID or mobile lookup inside the service.
func (ctrl *MemberController) CheckStatus(c *fiber.Ctx) error {
	var req dto.StatusQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.SearchInput == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Please provide a Member ID or Mobile Number")
	}

	status, err := ctrl.Service.CheckStatus(c.Context(), req.SearchInput)
	if err != nil {
		return helper.FromAppError(c, err, "Failed to check status")
	}
	return helper.Success(c, "Status fetched successfully", status)
}

// VerifyPublic handles GET /api/membership/public/verify/:memberId. Always 200
// with a tri-state body; lookup misses are a verification result, not an error.
func (ctrl *MemberController) VerifyPublic(c *fiber.Ctx) error {
	memberID := c.Params("memberId")
	if memberID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Member ID is required")
	}

	result, err := ctrl.Service.VerifyPublic(c.Context(), memberID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Verification failed")
	}
	return helper.Success(c, result.Message, result)
}
