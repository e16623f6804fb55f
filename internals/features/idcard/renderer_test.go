package idcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"abhm_backend/internals/features/membership/model"
)

func testMember() *model.MemberModel {
	memberID := "ABHM-MP-2026-4821"
	return &model.MemberModel{
		FirstName:         "Ramesh",
		LastName:          "Sharma",
		FatherHusbandName: "Suresh Sharma",
		DOB:               "1990-01-15",
		BloodGroup:        "B+",
		Mobile:            "9876543210",
		District:          "Bhopal",
		MemberID:          &memberID,
		Status:            model.StatusApproved,
		PresentAddress:    datatypes.JSON(`{"line1":"12 Station Road","line2":"Near Temple","city":"Bhopal","state":"MP","pincode":"462001"}`),
	}
}

func testAssets() CardAssets {
	return CardAssets{
		LogoSrc: "data:image/jpeg;base64,AAAA",
		FlagSrc: "data:image/png;base64,BBBB",
	}
}

func TestRenderHTMLContainsMemberDetails(t *testing.T) {
	r := NewRenderer("https://abhm-mp.org/verify-member")

	html, err := r.RenderHTML(testMember(), testAssets(), "data:image/webp;base64,CCCC")
	require.NoError(t, err)

	assert.Contains(t, html, "Ramesh Sharma")
	assert.Contains(t, html, "Suresh Sharma")
	assert.Contains(t, html, "1990-01-15")
	assert.Contains(t, html, "9876543210")
	assert.Contains(t, html, "B+")
	assert.Contains(t, html, "ABHM-MP-2026-4821")
	assert.Contains(t, html, "12 Station Road, Near Temple, Bhopal, Bhopal, 462001")
	// embedded assets must survive template escaping intact
	assert.Contains(t, html, "data:image/jpeg;base64,AAAA")
	assert.Contains(t, html, "data:image/webp;base64,CCCC")
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestRenderHTMLPendingMemberID(t *testing.T) {
	r := NewRenderer("https://abhm-mp.org/verify-member")
	m := testMember()
	m.MemberID = nil

	html, err := r.RenderHTML(m, testAssets(), "")
	require.NoError(t, err)
	assert.Contains(t, html, "PENDING")
}

func TestRenderHTMLWithoutPhotoShowsPlaceholder(t *testing.T) {
	r := NewRenderer("https://abhm-mp.org/verify-member")

	html, err := r.RenderHTML(testMember(), testAssets(), "")
	require.NoError(t, err)
	assert.Contains(t, html, "NO PHOTO")
}

func TestRenderHTMLDefaultDesignation(t *testing.T) {
	r := NewRenderer("https://abhm-mp.org/verify-member")
	m := testMember()
	m.Designation = ""

	html, err := r.RenderHTML(m, testAssets(), "")
	require.NoError(t, err)
	assert.Contains(t, html, "Sangathan Sadasya")
}

func TestRenderHTMLEmbedsVerificationQR(t *testing.T) {
	r := NewRenderer("https://abhm-mp.org/verify-member")

	html, err := r.RenderHTML(testMember(), testAssets(), "")
	require.NoError(t, err)
	assert.Contains(t, html, "data:image/png;base64,")
}

func TestFormatAddress(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		district string
		want     string
	}{
		{
			name:     "structured object joins line1 line2 city district pincode",
			raw:      `{"line1":"12 Station Road","line2":"Near Temple","city":"Bhopal","pincode":"462001"}`,
			district: "Bhopal",
			want:     "12 Station Road, Near Temple, Bhopal, Bhopal, 462001",
		},
		{
			name:     "pincode kept even without line2",
			raw:      `{"line1":"12 MG Road","city":"Indore","pincode":"452001"}`,
			district: "Indore",
			want:     "12 MG Road, Indore, Indore, 452001",
		},
		{
			name:     "object with blank parts",
			raw:      `{"line1":"Village Khajuri","line2":"","city":"","pincode":""}`,
			district: "Sehore",
			want:     "Village Khajuri, Sehore",
		},
		{
			name:     "empty object falls back to district",
			raw:      `{}`,
			district: "Indore",
			want:     "Indore",
		},
		{
			name:     "short raw string passes through",
			raw:      `"Ward 4, Khandwa"`,
			district: "Khandwa",
			want:     "Ward 4, Khandwa",
		},
		{
			name:     "long raw string cut at 50 chars",
			raw:      `"` + strings.Repeat("x", 80) + `"`,
			district: "Bhopal",
			want:     strings.Repeat("x", 50),
		},
		{
			name:     "nil falls back to district",
			raw:      "",
			district: "Gwalior",
			want:     "Gwalior",
		},
		{
			name:     "nil and no district falls back to state",
			raw:      "",
			district: "",
			want:     "Madhya Pradesh",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var raw []byte
			if tc.raw != "" {
				raw = []byte(tc.raw)
			}
			assert.Equal(t, tc.want, FormatAddress(raw, tc.district))
		})
	}
}
