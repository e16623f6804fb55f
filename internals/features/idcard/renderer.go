package idcard

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/skip2/go-qrcode"

	"abhm_backend/internals/features/membership/model"
)

var cardTemplate = template.Must(template.New("idcard").Parse(cardTemplateHTML))

// Inline SVG icons used on the card. Declared as template.HTML because they
// are static markup, never user input.
var (
	shieldIcon = template.HTML(`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"/></svg>`)
	phoneIcon  = template.HTML(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 24 24" fill="none" stroke="#FF6B00" stroke-width="3" stroke-linecap="round" stroke-linejoin="round"><path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"/></svg>`)
	dropletIcon = template.HTML(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 24 24" fill="#FF6B00" stroke="#FF6B00" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M12 22a7 7 0 0 0 7-7c0-2-1-3.9-3-5.5s-3.5-4-4-6.5c-.5 2.5-2 4.9-4 6.5C6 11.1 5 13 5 15a7 7 0 0 0 7 7z"/></svg>`)
)

// CardAssets holds the two embedded branding images, already resolved to
// data URIs (or absolute URLs when the local files are missing).
type CardAssets struct {
	LogoSrc template.URL
	FlagSrc template.URL
}

type cardData struct {
	LogoSrc      template.URL
	FlagSrc      template.URL
	PhotoSrc     template.URL
	QRSrc        template.URL
	Name         string
	Designation  string
	GuardianName string
	DOB          string
	Address      string
	Mobile       string
	BloodGroup   string
	MemberID     string

	ShieldIcon  template.HTML
	PhoneIcon   template.HTML
	DropletIcon template.HTML
}

// Renderer turns a member record into the dual-face card HTML. It is a pure
// string transform; fetching photos and rasterizing is the pipeline's job.
type Renderer struct {
	// VerifyURL is the public verification page the back-face QR points at.
	VerifyURL string
}

func NewRenderer(verifyURL string) *Renderer {
	return &Renderer{VerifyURL: verifyURL}
}

// RenderHTML builds the card document for one member. photoSrc may be empty,
// in which case the front face shows the shield placeholder.
func (r *Renderer) RenderHTML(member *model.MemberModel, assets CardAssets, photoSrc string) (string, error) {
	memberID := "PENDING"
	if member.MemberID != nil && *member.MemberID != "" {
		memberID = *member.MemberID
	}

	designation := member.Designation
	if designation == "" {
		designation = "Sangathan Sadasya"
	}

	qrSrc, err := r.qrDataURI(memberID)
	if err != nil {
		log.Println("[ERROR] Failed to generate verification QR:", err)
		qrSrc = ""
	}

	data := cardData{
		LogoSrc:      assets.LogoSrc,
		FlagSrc:      assets.FlagSrc,
		PhotoSrc:     template.URL(photoSrc),
		QRSrc:        template.URL(qrSrc),
		Name:         member.FullName(),
		Designation:  designation,
		GuardianName: member.FatherHusbandName,
		DOB:          member.DOB,
		Address:      FormatAddress(member.PresentAddress, member.District),
		Mobile:       member.Mobile,
		BloodGroup:   member.BloodGroup,
		MemberID:     memberID,

		ShieldIcon:  shieldIcon,
		PhoneIcon:   phoneIcon,
		DropletIcon: dropletIcon,
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render card template: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) qrDataURI(memberID string) (string, error) {
	target := fmt.Sprintf("%s?id=%s", r.VerifyURL, memberID)
	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// FormatAddress turns the stored JSONB address into the single card line.
// Object shape joins line1, line2, city, district, pincode in that order;
// raw-string shape is cut at 50 characters.
func FormatAddress(raw []byte, district string) string {
	fallback := strings.TrimSpace(district)
	if fallback == "" {
		fallback = "Madhya Pradesh"
	}
	if len(raw) == 0 {
		return fallback
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err == nil {
		field := func(key string) string {
			v, _ := obj[key].(string)
			return strings.TrimSpace(v)
		}
		parts := make([]string, 0, 5)
		for _, v := range []string{field("line1"), field("line2"), field("city"), fallback, field("pincode")} {
			if v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) == 0 {
			return fallback
		}
		return strings.Join(parts, ", ")
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		str = strings.TrimSpace(str)
		if str == "" {
			return fallback
		}
		if len(str) > 50 {
			return str[:50]
		}
		return str
	}

	return fallback
}
