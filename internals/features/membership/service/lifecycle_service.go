package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"abhm_backend/internals/features/membership/dto"
	"abhm_backend/internals/features/membership/model"
	helper "abhm_backend/internals/helpers"
)

// MemberIDPrefix is the organization prefix of the semantic card ID.
const MemberIDPrefix = "ABHM-MP"

// DefaultRejectionReason is used when the admin rejects without a reason.
const DefaultRejectionReason = "Verification failed."

var hex24Pattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Notifier is the outbound-mail collaborator. Both calls are best effort: the
// lifecycle transition is already persisted when they run and is never rolled
// back on failure.
type Notifier interface {
	SendApproval(ctx context.Context, m *model.MemberModel) error
	SendRejection(ctx context.Context, m *model.MemberModel, reason string) error
}

// NotificationPolicy controls whether a transition waits for its email. The
// defaults preserve the historical asymmetry: approval is awaited, rejection
// is fire-and-forget.
type NotificationPolicy struct {
	AwaitApproval  bool
	AwaitRejection bool
}

func DefaultNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{AwaitApproval: true, AwaitRejection: false}
}

// LifecycleService owns the application state machine: pending on submission,
// approved/rejected (terminal) on admin verification.
type LifecycleService struct {
	DB       *gorm.DB
	Notifier Notifier
	Policy   NotificationPolicy
}

func NewLifecycleService(db *gorm.DB, notifier Notifier) *LifecycleService {
	return &LifecycleService{
		DB:       db,
		Notifier: notifier,
		Policy:   DefaultNotificationPolicy(),
	}
}

// Submit validates and persists a new application with status pending.
// Duplicate policy: any existing non-rejected record sharing the mobile,
// aadhaar number, or payment UTR blocks the submission; an existing rejected
// record is deleted so the applicant can re-apply cleanly.
func (s *LifecycleService) Submit(ctx context.Context, req *dto.JoinRequest, files dto.UploadedFiles) (*model.MemberModel, error) {
	member := req.ToModel(files)
	if err := member.Validate(); err != nil {
		return nil, err
	}

	var existing model.MemberModel
	err := s.DB.WithContext(ctx).
		Where("mobile = ? OR aadhaar_number = ? OR payment_utr_number = ?",
			member.Mobile, member.AadhaarNumber, member.Payment.UTRNumber).
		First(&existing).Error
	switch {
	case err == nil:
		if existing.Status != model.StatusRejected {
			return nil, helper.ErrDuplicate
		}
		log.Printf("[Membership] found rejected record for %s, deleting to allow re-application", member.Mobile)
		if err := s.DB.WithContext(ctx).Delete(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to delete superseded record: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no conflict
	default:
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// Verify applies the admin decision. Approval issues the semantic member ID
// exactly once; repeated approvals never regenerate it. Email dispatch follows
// the notification policy and never affects the persisted transition.
func (s *LifecycleService) Verify(ctx context.Context, recordID, decision, rejectionReason string) (*model.MemberModel, error) {
	if decision != model.StatusApproved && decision != model.StatusRejected {
		return nil, helper.ErrInvalidArgument
	}

	id, err := uuid.Parse(recordID)
	if err != nil {
		return nil, helper.ErrNotFound
	}

	var member model.MemberModel
	if err := s.DB.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}

	if decision == model.StatusApproved {
		member.Status = model.StatusApproved
		if member.MemberID == nil || *member.MemberID == "" {
			generated := s.generateMemberID()
			member.MemberID = &generated
		}
		if err := s.DB.WithContext(ctx).Save(&member).Error; err != nil {
			return nil, err
		}

		s.dispatch(ctx, s.Policy.AwaitApproval, func(ctx context.Context) error {
			return s.Notifier.SendApproval(ctx, &member)
		})
		return &member, nil
	}

	member.Status = model.StatusRejected
	member.RejectionReason = rejectionReason
	if member.RejectionReason == "" {
		member.RejectionReason = DefaultRejectionReason
	}
	if err := s.DB.WithContext(ctx).Save(&member).Error; err != nil {
		return nil, err
	}

	reason := rejectionReason
	s.dispatch(ctx, s.Policy.AwaitRejection, func(ctx context.Context) error {
		return s.Notifier.SendRejection(ctx, &member, reason)
	})
	return &member, nil
}

// dispatch runs a notification either awaited or fire-and-forget. Errors are
// logged and swallowed in both modes.
func (s *LifecycleService) dispatch(ctx context.Context, await bool, send func(context.Context) error) {
	if s.Notifier == nil {
		return
	}
	if await {
		if err := send(ctx); err != nil {
			log.Printf("[Membership] notification failed: %v", err)
		}
		return
	}
	go func() {
		// detached from the request context on purpose
		if err := send(context.Background()); err != nil {
			log.Printf("[Membership] notification failed: %v", err)
		}
	}()
}

// CheckStatus resolves a status query: UUIDs (and legacy 24-hex reference IDs)
// route to an ID lookup, anything else is treated as a mobile number.
func (s *LifecycleService) CheckStatus(ctx context.Context, searchInput string) (*dto.StatusResponse, error) {
	searchInput = strings.TrimSpace(searchInput)
	if searchInput == "" {
		return nil, helper.ErrInvalidArgument
	}

	var member model.MemberModel
	var err error
	switch {
	case isUUID(searchInput):
		err = s.DB.WithContext(ctx).First(&member, "id = ?", searchInput).Error
	case hex24Pattern.MatchString(searchInput):
		// legacy reference IDs route to the ID lookup, which this store cannot
		// satisfy — never fall through to the mobile branch
		return nil, helper.ErrNotFound
	default:
		err = s.DB.WithContext(ctx).First(&member, "mobile = ?", searchInput).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return dto.ToStatusResponse(&member), nil
}

// VerifyPublic looks up by semantic member ID only and applies graduated
// disclosure: full projection for approved members, name for pending, bare
// status for rejected or anything unknown.
func (s *LifecycleService) VerifyPublic(ctx context.Context, memberID string) (*dto.PublicVerification, error) {
	var member model.MemberModel
	err := s.DB.WithContext(ctx).First(&member, "member_id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.PublicVerification{
				IsValid: false,
				Message: "Member ID not found.",
			}, nil
		}
		return nil, err
	}

	switch member.Status {
	case model.StatusPending:
		return &dto.PublicVerification{
			IsValid: false,
			Message: "Membership Application is Pending Approval.",
			Member: &dto.PublicMember{
				FirstName: member.FirstName,
				LastName:  member.LastName,
				Status:    model.StatusPending,
			},
		}, nil
	case model.StatusRejected:
		return &dto.PublicVerification{
			IsValid: false,
			Message: "Membership Application was Rejected.",
			Member:  &dto.PublicMember{Status: model.StatusRejected},
		}, nil
	case model.StatusApproved:
		return &dto.PublicVerification{
			IsValid: true,
			Message: "Membership Verified Successfully",
			Member: &dto.PublicMember{
				FirstName: member.FirstName,
				LastName:  member.LastName,
				PhotoURL:  member.PhotoURL,
				District:  member.District,
				Status:    member.Status,
				MemberID:  member.MemberID,
				CreatedAt: member.CreatedAt,
			},
		}, nil
	default:
		return &dto.PublicVerification{
			IsValid: false,
			Message: fmt.Sprintf("Membership is %s.", member.Status),
			Member:  &dto.PublicMember{Status: member.Status},
		}, nil
	}
}

// GetMember fetches one record by internal ID.
func (s *LifecycleService) GetMember(ctx context.Context, recordID string) (*model.MemberModel, error) {
	id, err := uuid.Parse(recordID)
	if err != nil {
		return nil, helper.ErrNotFound
	}
	var member model.MemberModel
	if err := s.DB.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// ListMembers returns a page of records, newest first, optionally filtered by
// status and searched over names, mobile, and member ID.
func (s *LifecycleService) ListMembers(ctx context.Context, p helper.PageParams, search, statusFilter string) ([]model.MemberModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.MemberModel{})
	if statusFilter != "" && statusFilter != "all" {
		q = q.Where("status = ?", statusFilter)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(mobile) LIKE ? OR LOWER(member_id) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []model.MemberModel
	if err := q.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// ListPending is the pending-queue view used by the admin review screen.
func (s *LifecycleService) ListPending(ctx context.Context, p helper.PageParams, search string) ([]model.MemberModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.MemberModel{}).Where("status = ?", model.StatusPending)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(mobile) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []model.MemberModel
	if err := q.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// UpdatePhoto swaps the stored photo path and returns the previous one so the
// caller can clean up the old file.
func (s *LifecycleService) UpdatePhoto(ctx context.Context, recordID, newPhotoURL string) (*model.MemberModel, string, error) {
	member, err := s.GetMember(ctx, recordID)
	if err != nil {
		return nil, "", err
	}
	oldPhotoURL := member.PhotoURL
	member.PhotoURL = newPhotoURL
	if err := s.DB.WithContext(ctx).Save(member).Error; err != nil {
		return nil, "", err
	}
	return member, oldPhotoURL, nil
}

// DashboardStats aggregates the admin dashboard numbers. Revenue counts every
// non-rejected payment: anyone who submitted has already paid.
func (s *LifecycleService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	db := s.DB.WithContext(ctx)
	stats := &dto.DashboardStats{}

	if err := db.Model(&model.MemberModel{}).Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.MemberModel{}).
		Where("status = ?", model.StatusPending).
		Count(&stats.PendingRequests).Error; err != nil {
		return nil, err
	}

	var revenue struct{ Total int64 }
	if err := db.Model(&model.MemberModel{}).
		Select("COALESCE(SUM(payment_amount), 0) AS total").
		Where("status IN ?", []string{model.StatusApproved, model.StatusPending}).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue.Total

	var recent []model.MemberModel
	if err := db.Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return nil, err
	}
	stats.RecentMembers = dto.ToRecentMemberList(recent)

	startOfMonth := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)
	if err := db.Model(&model.MemberModel{}).
		Where("created_at >= ?", startOfMonth).
		Count(&stats.NewMembersThisMonth).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// generateMemberID builds "ABHM-MP-{year}-{4 digits}". Collisions against the
// unique index are retried a few times before giving up to the constraint.
func (s *LifecycleService) generateMemberID() string {
	year := time.Now().Year()
	for attempt := 0; attempt < 5; attempt++ {
		candidate := fmt.Sprintf("%s-%d-%04d", MemberIDPrefix, year, 1000+rand.Intn(9000))
		var count int64
		s.DB.Model(&model.MemberModel{}).Where("member_id = ?", candidate).Count(&count)
		if count == 0 {
			return candidate
		}
	}
	return fmt.Sprintf("%s-%d-%04d", MemberIDPrefix, year, 1000+rand.Intn(9000))
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
