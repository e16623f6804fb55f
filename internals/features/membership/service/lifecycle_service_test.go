package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"abhm_backend/internals/features/membership/dto"
	"abhm_backend/internals/features/membership/model"
	helper "abhm_backend/internals/helpers"
)

type fakeNotifier struct {
	approvals  []string
	rejections []string
	reasons    []string
	failWith   error
}

func (f *fakeNotifier) SendApproval(ctx context.Context, m *model.MemberModel) error {
	f.approvals = append(f.approvals, m.Mobile)
	return f.failWith
}

func (f *fakeNotifier) SendRejection(ctx context.Context, m *model.MemberModel, reason string) error {
	f.rejections = append(f.rejections, m.Mobile)
	f.reasons = append(f.reasons, reason)
	return f.failWith
}

func newTestService(t *testing.T) (*LifecycleService, *fakeNotifier) {
	t.Helper()
	// named in-memory DB so every pooled connection sees the same schema
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.MemberModel{}))

	notifier := &fakeNotifier{}
	svc := NewLifecycleService(db, notifier)
	// synchronous dispatch in both directions so assertions are deterministic
	svc.Policy = NotificationPolicy{AwaitApproval: true, AwaitRejection: true}
	return svc, notifier
}

func validJoinRequest(mobile, aadhaar, utr string) *dto.JoinRequest {
	return &dto.JoinRequest{
		FirstName:         "Ramesh",
		LastName:          "Sharma",
		Gender:            "Male",
		FatherHusbandName: "Suresh Sharma",
		DOB:               "1990-01-15",
		BloodGroup:        "B+",
		Profession:        "Farmer",
		InterestArea:      "Social Service",
		AadhaarNumber:     aadhaar,
		Mobile:            mobile,
		Email:             "ramesh@example.com",
		PresentAddress:    `{"line1":"12 Station Road","city":"Bhopal","state":"MP","pincode":"462001","country":"India"}`,
		District:          "Bhopal",
		UTRNumber:         utr,
	}
}

func submit(t *testing.T, svc *LifecycleService, mobile, aadhaar, utr string) *model.MemberModel {
	t.Helper()
	m, err := svc.Submit(context.Background(), validJoinRequest(mobile, aadhaar, utr), dto.UploadedFiles{})
	require.NoError(t, err)
	return m
}

func TestSubmitCreatesPendingMember(t *testing.T) {
	svc, _ := newTestService(t)

	m := submit(t, svc, "9876543210", "123412341234", "UTR0001")

	assert.Equal(t, model.StatusPending, m.Status)
	assert.Nil(t, m.MemberID)
	assert.Equal(t, model.RegistrationFee, m.Payment.Amount)
	assert.NotEqual(t, "", m.ID.String())
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	req := validJoinRequest("9876543210", "123412341234", "UTR0001")
	req.FirstName = ""

	_, err := svc.Submit(context.Background(), req, dto.UploadedFiles{})
	assert.Error(t, err)
}

func TestSubmitBlocksDuplicateTriple(t *testing.T) {
	svc, _ := newTestService(t)
	submit(t, svc, "9876543210", "123412341234", "UTR0001")

	cases := []struct {
		name    string
		mobile  string
		aadhaar string
		utr     string
	}{
		{"same mobile", "9876543210", "999912341234", "UTR0002"},
		{"same aadhaar", "9000000001", "123412341234", "UTR0003"},
		{"same utr", "9000000002", "888812341234", "UTR0001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), validJoinRequest(tc.mobile, tc.aadhaar, tc.utr), dto.UploadedFiles{})
			assert.ErrorIs(t, err, helper.ErrDuplicate)
		})
	}
}

func TestSubmitSupersedesRejectedRecord(t *testing.T) {
	svc, _ := newTestService(t)
	old := submit(t, svc, "9876543210", "123412341234", "UTR0001")

	_, err := svc.Verify(context.Background(), old.ID.String(), model.StatusRejected, "bad photo")
	require.NoError(t, err)

	// same mobile re-applies after rejection
	fresh, err := svc.Submit(context.Background(), validJoinRequest("9876543210", "123412341234", "UTR0001"), dto.UploadedFiles{})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, fresh.Status)
	assert.NotEqual(t, old.ID, fresh.ID)

	var count int64
	svc.DB.Model(&model.MemberModel{}).Where("mobile = ?", "9876543210").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestVerifyApprovalIssuesMemberIDOnce(t *testing.T) {
	svc, notifier := newTestService(t)
	m := submit(t, svc, "9876543210", "123412341234", "UTR0001")

	approved, err := svc.Verify(context.Background(), m.ID.String(), model.StatusApproved, "")
	require.NoError(t, err)
	require.NotNil(t, approved.MemberID)
	assert.True(t, strings.HasPrefix(*approved.MemberID, "ABHM-MP-"))
	assert.Len(t, notifier.approvals, 1)

	firstID := *approved.MemberID

	// approving again must not regenerate the ID
	again, err := svc.Verify(context.Background(), m.ID.String(), model.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, firstID, *again.MemberID)
}

func TestVerifyRejectionUsesDefaultReason(t *testing.T) {
	svc, notifier := newTestService(t)
	m := submit(t, svc, "9876543210", "123412341234", "UTR0001")

	rejected, err := svc.Verify(context.Background(), m.ID.String(), model.StatusRejected, "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, rejected.Status)
	assert.Equal(t, DefaultRejectionReason, rejected.RejectionReason)
	assert.Nil(t, rejected.MemberID)
	assert.Len(t, notifier.rejections, 1)
}

func TestVerifyInvalidDecision(t *testing.T) {
	svc, _ := newTestService(t)
	m := submit(t, svc, "9876543210", "123412341234", "UTR0001")

	_, err := svc.Verify(context.Background(), m.ID.String(), "banned", "")
	assert.ErrorIs(t, err, helper.ErrInvalidArgument)
}

func TestVerifyUnknownRecord(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Verify(context.Background(), "not-a-uuid", model.StatusApproved, "")
	assert.ErrorIs(t, err, helper.ErrNotFound)

	_, err = svc.Verify(context.Background(), "00000000-0000-0000-0000-000000000000", model.StatusApproved, "")
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestVerifySurvivesNotifierFailure(t *testing.T) {
	svc, notifier := newTestService(t)
	notifier.failWith = fmt.Errorf("smtp down")
	m := submit(t, svc, "9876543210", "123412341234", "UTR0001")

	approved, err := svc.Verify(context.Background(), m.ID.String(), model.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, approved.Status)
	require.NotNil(t, approved.MemberID)

	// the persisted transition must not roll back
	var stored model.MemberModel
	require.NoError(t, svc.DB.First(&stored, "id = ?", m.ID).Error)
	assert.Equal(t, model.StatusApproved, stored.Status)
}

func TestCheckStatusRouting(t *testing.T) {
	svc, _ := newTestService(t)
	m := submit(t, svc, "9876543210", "123412341234", "UTR0001")

	t.Run("by internal id", func(t *testing.T) {
		res, err := svc.CheckStatus(context.Background(), m.ID.String())
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, "Ramesh", res.FirstName)
	})

	t.Run("by mobile", func(t *testing.T) {
		res, err := svc.CheckStatus(context.Background(), "9876543210")
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("legacy 24-hex id never falls back to mobile", func(t *testing.T) {
		_, err := svc.CheckStatus(context.Background(), "507f1f77bcf86cd799439011")
		assert.ErrorIs(t, err, helper.ErrNotFound)
	})

	t.Run("unknown mobile", func(t *testing.T) {
		_, err := svc.CheckStatus(context.Background(), "9111111111")
		assert.ErrorIs(t, err, helper.ErrNotFound)
	})

	t.Run("blank input", func(t *testing.T) {
		_, err := svc.CheckStatus(context.Background(), "   ")
		assert.ErrorIs(t, err, helper.ErrInvalidArgument)
	})
}

func TestCheckStatusNeverLeaksFullRecord(t *testing.T) {
	svc, _ := newTestService(t)
	m := submit(t, svc, "9876543210", "123412341234", "UTR0001")
	_, err := svc.Verify(context.Background(), m.ID.String(), model.StatusRejected, "blurred documents")
	require.NoError(t, err)

	res, err := svc.CheckStatus(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "blurred documents", res.RejectionReason)
	assert.Equal(t, "Bhopal", res.District)
}

func TestVerifyPublicGraduatedDisclosure(t *testing.T) {
	svc, _ := newTestService(t)

	pending := submit(t, svc, "9000000001", "111111111111", "UTR1001")
	// pending members have no member ID yet; seed one directly to exercise the
	// pending branch of the public lookup
	pendingID := "ABHM-MP-2026-0001"
	require.NoError(t, svc.DB.Model(pending).Update("member_id", pendingID).Error)

	approvedSub := submit(t, svc, "9000000002", "222222222222", "UTR1002")
	approved, err := svc.Verify(context.Background(), approvedSub.ID.String(), model.StatusApproved, "")
	require.NoError(t, err)

	rejectedSub := submit(t, svc, "9000000003", "333333333333", "UTR1003")
	rejected, err := svc.Verify(context.Background(), rejectedSub.ID.String(), model.StatusRejected, "fake aadhaar")
	require.NoError(t, err)
	rejectedID := "ABHM-MP-2026-0002"
	require.NoError(t, svc.DB.Model(rejected).Update("member_id", rejectedID).Error)

	t.Run("approved gets full projection", func(t *testing.T) {
		res, err := svc.VerifyPublic(context.Background(), *approved.MemberID)
		require.NoError(t, err)
		assert.True(t, res.IsValid)
		require.NotNil(t, res.Member)
		assert.Equal(t, "Ramesh", res.Member.FirstName)
		assert.Equal(t, "Bhopal", res.Member.District)
	})

	t.Run("pending leaks name and status only", func(t *testing.T) {
		res, err := svc.VerifyPublic(context.Background(), pendingID)
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		require.NotNil(t, res.Member)
		assert.Equal(t, "Ramesh", res.Member.FirstName)
		assert.Empty(t, res.Member.District)
		assert.Empty(t, res.Member.PhotoURL)
	})

	t.Run("rejected leaks status only", func(t *testing.T) {
		res, err := svc.VerifyPublic(context.Background(), rejectedID)
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		require.NotNil(t, res.Member)
		assert.Empty(t, res.Member.FirstName)
		assert.Equal(t, model.StatusRejected, res.Member.Status)
	})

	t.Run("unknown id is a result, not an error", func(t *testing.T) {
		res, err := svc.VerifyPublic(context.Background(), "ABHM-MP-1999-9999")
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		assert.Nil(t, res.Member)
	})
}

func TestListMembersFilterAndSearch(t *testing.T) {
	svc, _ := newTestService(t)
	a := submit(t, svc, "9000000001", "111111111111", "UTR1001")
	submit(t, svc, "9000000002", "222222222222", "UTR1002")
	_, err := svc.Verify(context.Background(), a.ID.String(), model.StatusApproved, "")
	require.NoError(t, err)

	page := helper.PageParams{Page: 1, Limit: 10}

	members, total, err := svc.ListMembers(context.Background(), page, "", model.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, members, 1)
	assert.Equal(t, model.StatusApproved, members[0].Status)

	members, total, err = svc.ListMembers(context.Background(), page, "ramesh", "all")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, members, 2)

	_, total, err = svc.ListMembers(context.Background(), page, "9000000002", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestListPendingOnlyReturnsPending(t *testing.T) {
	svc, _ := newTestService(t)
	a := submit(t, svc, "9000000001", "111111111111", "UTR1001")
	submit(t, svc, "9000000002", "222222222222", "UTR1002")
	_, err := svc.Verify(context.Background(), a.ID.String(), model.StatusApproved, "")
	require.NoError(t, err)

	members, total, err := svc.ListPending(context.Background(), helper.PageParams{Page: 1, Limit: 10}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, members, 1)
	assert.Equal(t, model.StatusPending, members[0].Status)
}

func TestUpdatePhotoReturnsOldPath(t *testing.T) {
	svc, _ := newTestService(t)
	m := submit(t, svc, "9876543210", "123412341234", "UTR0001")
	require.NoError(t, svc.DB.Model(m).Update("photo_url", "uploads/photo/2026-08/old.webp").Error)

	updated, old, err := svc.UpdatePhoto(context.Background(), m.ID.String(), "uploads/photo/2026-08/new.webp")
	require.NoError(t, err)
	assert.Equal(t, "uploads/photo/2026-08/old.webp", old)
	assert.Equal(t, "uploads/photo/2026-08/new.webp", updated.PhotoURL)
}

func TestDashboardStats(t *testing.T) {
	svc, _ := newTestService(t)
	a := submit(t, svc, "9000000001", "111111111111", "UTR1001")
	submit(t, svc, "9000000002", "222222222222", "UTR1002")
	c := submit(t, svc, "9000000003", "333333333333", "UTR1003")

	_, err := svc.Verify(context.Background(), a.ID.String(), model.StatusApproved, "")
	require.NoError(t, err)
	_, err = svc.Verify(context.Background(), c.ID.String(), model.StatusRejected, "")
	require.NoError(t, err)

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalMembers)
	assert.Equal(t, int64(1), stats.PendingRequests)
	// rejected payments are excluded from revenue
	assert.Equal(t, int64(2*model.RegistrationFee), stats.TotalRevenue)
	assert.Len(t, stats.RecentMembers, 3)
	assert.Equal(t, int64(3), stats.NewMembersThisMonth)
}

func TestGenerateMemberIDFormat(t *testing.T) {
	svc, _ := newTestService(t)

	id := svc.generateMemberID()
	parts := strings.Split(id, "-")
	require.Len(t, parts, 4)
	assert.Equal(t, "ABHM", parts[0])
	assert.Equal(t, "MP", parts[1])
	assert.Len(t, parts[3], 4)
}
