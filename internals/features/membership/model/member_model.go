package model

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// Membership status values. approved and rejected are terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// RegistrationFee is the fixed one-time fee recorded with every application.
const RegistrationFee = 10

// PaymentInfo records the user-supplied proof of payment. No gateway is
// involved; the UTR is taken on trust and verified manually by the admin.
type PaymentInfo struct {
	Amount        int       `gorm:"column:amount;not null;default:10" json:"amount"`
	UTRNumber     string    `gorm:"column:utr_number;size:50;not null" json:"utr_number" validate:"required"`
	ScreenshotURL string    `gorm:"column:screenshot_url;size:255" json:"screenshot_url,omitempty"`
	Timestamp     time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

// MemberModel is the members table: one row per application, mutated only by
// the admin verification action.
type MemberModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Personal details
	FirstName            string `gorm:"size:100;not null" json:"first_name" validate:"required"`
	LastName             string `gorm:"size:100;not null" json:"last_name" validate:"required"`
	Gender               string `gorm:"type:varchar(10);not null" json:"gender" validate:"required,oneof=Male Female Other"`
	FatherHusbandName    string `gorm:"size:150;not null" json:"father_husband_name" validate:"required"`
	DOB                  string `gorm:"size:20;not null" json:"dob" validate:"required"`
	Age                  int    `json:"age"`
	BloodGroup           string `gorm:"size:10;not null" json:"blood_group" validate:"required"`
	Education            string `gorm:"size:150" json:"education"`
	Profession           string `gorm:"size:150;not null" json:"profession" validate:"required"`
	InterestArea         string `gorm:"size:150;not null" json:"interest_area" validate:"required"`
	FamilyMembersDetails string `gorm:"type:text" json:"family_members_details"`

	// Identity documents
	AadhaarNumber  string `gorm:"size:20;not null;uniqueIndex" json:"aadhaar_number" validate:"required"`
	AadhaarCardURL string `gorm:"size:255" json:"aadhaar_card_url,omitempty"`

	// Contact
	Mobile string `gorm:"size:15;not null;index" json:"mobile" validate:"required"`
	Email  string `gorm:"size:255" json:"email,omitempty" validate:"omitempty,email"`

	// Addresses are stored as JSONB: either the structured object
	// {line1,line2,city,state,pincode,country} or — when the submitted payload
	// could not be parsed — the raw string as sent (lenient mode).
	PresentAddress   datatypes.JSON `gorm:"type:jsonb" json:"present_address"`
	PermanentAddress datatypes.JSON `gorm:"type:jsonb" json:"permanent_address"`

	// Administrative details
	District           string `gorm:"size:100;not null" json:"district" validate:"required"`
	Constituency       string `gorm:"size:100" json:"constituency,omitempty"`
	Panchayat          string `gorm:"size:100" json:"panchayat,omitempty"`
	Taluk              string `gorm:"size:100" json:"taluk,omitempty"`
	Corporation        string `gorm:"size:100" json:"corporation,omitempty"`
	WardNumber         string `gorm:"size:20" json:"ward_number,omitempty"`
	EmploymentStatus   string `gorm:"size:100" json:"employment_status,omitempty"`
	PreviousExperience string `gorm:"type:text" json:"previous_experience,omitempty"`

	// Official details. MemberID is the semantic card ID, issued exactly once
	// on first approval and immutable afterwards.
	MemberID    *string `gorm:"size:30;uniqueIndex" json:"member_id,omitempty"`
	Designation string  `gorm:"size:100;default:'Member'" json:"designation"`
	PhotoURL    string  `gorm:"size:255" json:"photo_url,omitempty"`

	Payment PaymentInfo `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`

	Status          string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RejectionReason string `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MemberModel) TableName() string {
	return "members"
}

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SetDefaultValues fills defaults before validation
func (m *MemberModel) SetDefaultValues() {
	if m.Status == "" {
		m.Status = StatusPending
	}
	if m.Designation == "" {
		m.Designation = "Member"
	}
	if m.Payment.Amount == 0 {
		m.Payment.Amount = RegistrationFee
	}
	if m.Payment.Timestamp.IsZero() {
		m.Payment.Timestamp = time.Now()
	}
}

// Validate checks the input against the field rules
func (m *MemberModel) Validate() error {
	m.SetDefaultValues()
	return validate.Struct(m)
}

// FullName as printed on the ID card.
func (m *MemberModel) FullName() string {
	return m.FirstName + " " + m.LastName
}
