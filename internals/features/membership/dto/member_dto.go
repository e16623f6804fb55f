package dto

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"

	"abhm_backend/internals/features/membership/model"
)

// Address is the structured form of a present/permanent address. When the
// frontend sends the field as an unparseable string it is stored verbatim
// instead (lenient mode); readers must handle both shapes.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// JoinRequest is the multipart form body of POST /api/membership/join.
// Addresses arrive as JSON strings inside the form data.
type JoinRequest struct {
	FirstName            string `form:"first_name" json:"first_name"`
	LastName             string `form:"last_name" json:"last_name"`
	Gender               string `form:"gender" json:"gender"`
	FatherHusbandName    string `form:"father_husband_name" json:"father_husband_name"`
	DOB                  string `form:"dob" json:"dob"`
	Age                  int    `form:"age" json:"age"`
	BloodGroup           string `form:"blood_group" json:"blood_group"`
	Education            string `form:"education" json:"education"`
	Profession           string `form:"profession" json:"profession"`
	InterestArea         string `form:"interest_area" json:"interest_area"`
	FamilyMembersDetails string `form:"family_members_details" json:"family_members_details"`
	AadhaarNumber        string `form:"aadhaar_number" json:"aadhaar_number"`
	Mobile               string `form:"mobile" json:"mobile"`
	Email                string `form:"email" json:"email"`
	PresentAddress       string `form:"present_address" json:"present_address"`
	PermanentAddress     string `form:"permanent_address" json:"permanent_address"`
	District             string `form:"district" json:"district"`
	Constituency         string `form:"constituency" json:"constituency"`
	Panchayat            string `form:"panchayat" json:"panchayat"`
	Taluk                string `form:"taluk" json:"taluk"`
	Corporation          string `form:"corporation" json:"corporation"`
	WardNumber           string `form:"ward_number" json:"ward_number"`
	EmploymentStatus     string `form:"employment_status" json:"employment_status"`
	PreviousExperience   string `form:"previous_experience" json:"previous_experience"`
	UTRNumber            string `form:"utr_number" json:"utr_number"`
}

// UploadedFiles carries the stored relative paths produced by the upload service.
type UploadedFiles struct {
	PhotoURL             string
	AadhaarCardURL       string
	PaymentScreenshotURL string
}

// ToModel maps the request to a pending member record.
func (r *JoinRequest) ToModel(files UploadedFiles) *model.MemberModel {
	return &model.MemberModel{
		FirstName:            r.FirstName,
		LastName:             r.LastName,
		Gender:               r.Gender,
		FatherHusbandName:    r.FatherHusbandName,
		DOB:                  r.DOB,
		Age:                  r.Age,
		BloodGroup:           r.BloodGroup,
		Education:            r.Education,
		Profession:           r.Profession,
		InterestArea:         r.InterestArea,
		FamilyMembersDetails: r.FamilyMembersDetails,
		AadhaarNumber:        r.AadhaarNumber,
		AadhaarCardURL:       files.AadhaarCardURL,
		Mobile:               r.Mobile,
		Email:                r.Email,
		PresentAddress:       ParseAddressPayload(r.PresentAddress),
		PermanentAddress:     ParseAddressPayload(r.PermanentAddress),
		District:             r.District,
		Constituency:         r.Constituency,
		Panchayat:            r.Panchayat,
		Taluk:                r.Taluk,
		Corporation:          r.Corporation,
		WardNumber:           r.WardNumber,
		EmploymentStatus:     r.EmploymentStatus,
		PreviousExperience:   r.PreviousExperience,
		PhotoURL:             files.PhotoURL,
		Payment: model.PaymentInfo{
			Amount:        model.RegistrationFee,
			UTRNumber:     r.UTRNumber,
			ScreenshotURL: files.PaymentScreenshotURL,
		},
		Status: model.StatusPending,
	}
}

// ParseAddressPayload keeps the lenient address mode: a valid JSON object (or
// array) is stored as-is; anything else is logged and stored as a JSON string
// so the submission is never rejected over a malformed address.
func ParseAddressPayload(raw string) datatypes.JSON {
	if raw == "" {
		return nil
	}
	if json.Valid([]byte(raw)) {
		var probe interface{}
		if err := json.Unmarshal([]byte(raw), &probe); err == nil {
			if _, ok := probe.(map[string]interface{}); ok {
				return datatypes.JSON(raw)
			}
		}
	}
	log.Printf("[Membership] address payload is not a JSON object, storing raw value: %.60q", raw)
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	return datatypes.JSON(encoded)
}

// StatusResponse is the narrowed projection returned by the public status
// check. Never the full record.
type StatusResponse struct {
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	District        string    `json:"district"`
	Status          string    `json:"status"`
	MemberID        *string   `json:"member_id,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToStatusResponse(m *model.MemberModel) *StatusResponse {
	return &StatusResponse{
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		District:        m.District,
		Status:          m.Status,
		MemberID:        m.MemberID,
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt,
	}
}

// PublicMember is the projection exposed by public verification for approved
// members only.
type PublicMember struct {
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	District  string    `json:"district,omitempty"`
	Status    string    `json:"status"`
	MemberID  *string   `json:"member_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// PublicVerification is the tri-state result of GET /public/verify/:id.
// Disclosure is graduated on purpose: pending leaks name only, rejected leaks
// status only, anything unknown leaks nothing.
type PublicVerification struct {
	IsValid bool          `json:"is_valid"`
	Message string        `json:"message"`
	Member  *PublicMember `json:"member,omitempty"`
}

// DashboardStats is the admin dashboard summary payload.
type DashboardStats struct {
	TotalMembers       int64          `json:"total_members"`
	PendingRequests    int64          `json:"pending_requests"`
	TotalRevenue       int64          `json:"total_revenue"`
	RecentMembers      []RecentMember `json:"recent_members"`
	NewMembersThisMonth int64         `json:"new_members_this_month"`
}

// RecentMember is the trimmed row shown on the dashboard.
type RecentMember struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	MemberID  *string   `json:"member_id,omitempty"`
	District  string    `json:"district"`
	Status    string    `json:"status"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToRecentMember(m *model.MemberModel) RecentMember {
	return RecentMember{
		ID:        m.ID.String(),
		FirstName: m.FirstName,
		LastName:  m.LastName,
		MemberID:  m.MemberID,
		District:  m.District,
		Status:    m.Status,
		PhotoURL:  m.PhotoURL,
		CreatedAt: m.CreatedAt,
	}
}

func ToRecentMemberList(models []model.MemberModel) []RecentMember {
	result := make([]RecentMember, 0, len(models))
	for i := range models {
		result = append(result, ToRecentMember(&models[i]))
	}
	return result
}

// VerifyRequest is the admin approve/reject body.
type VerifyRequest struct {
	MemberID        string `json:"member_id"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
}

// StatusQueryRequest is the public status check body.
type StatusQueryRequest struct {
	SearchInput string `json:"search_input"`
}
