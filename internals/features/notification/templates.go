package notification

import (
	"fmt"
	"html"
)

func approvalBody(fullName, memberID string) string {
	name := html.EscapeString(fullName)
	id := html.EscapeString(memberID)
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; border: 1px solid #eee; border-radius: 8px; overflow: hidden;">
  <div style="background: #FF6B00; color: #fff; padding: 20px; text-align: center;">
    <h2 style="margin: 0;">Akhil Bharat Hindu Mahasabha</h2>
    <p style="margin: 4px 0 0; font-size: 13px;">Madhya Pradesh Unit</p>
  </div>
  <div style="padding: 24px;">
    <p>Namaste <strong>%s</strong>,</p>
    <p>We are pleased to inform you that your membership application has been <strong style="color: #16a34a;">approved</strong>.</p>
    <p>Your Member ID is:</p>
    <p style="font-size: 20px; font-weight: bold; letter-spacing: 1px; background: #f9fafb; padding: 12px; text-align: center; border-radius: 6px;">%s</p>
    <p>Your official ID card is attached to this email. Please keep it safe and carry it to all organisational programs.</p>
    <p style="margin-top: 24px;">Jai Shri Ram,<br>Madhya Pradesh State Unit</p>
  </div>
  <div style="background: #f9fafb; padding: 12px; text-align: center; font-size: 11px; color: #9ca3af;">
    This is an automated message. Please do not reply.
  </div>
</div>`, name, id)
}

func rejectionBody(fullName, reason string) string {
	name := html.EscapeString(fullName)
	why := html.EscapeString(reason)
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; border: 1px solid #eee; border-radius: 8px; overflow: hidden;">
  <div style="background: #111827; color: #fff; padding: 20px; text-align: center;">
    <h2 style="margin: 0;">Akhil Bharat Hindu Mahasabha</h2>
    <p style="margin: 4px 0 0; font-size: 13px;">Madhya Pradesh Unit</p>
  </div>
  <div style="padding: 24px;">
    <p>Namaste <strong>%s</strong>,</p>
    <p>Thank you for your interest in joining the organisation. After review, your application could not be approved at this time.</p>
    <p style="background: #fef2f2; border-left: 3px solid #dc2626; padding: 10px 14px; color: #7f1d1d;">Reason: %s</p>
    <p>You may submit a fresh application with corrected details and documents at any time.</p>
    <p style="margin-top: 24px;">Regards,<br>Madhya Pradesh State Unit</p>
  </div>
  <div style="background: #f9fafb; padding: 12px; text-align: center; font-size: 11px; color: #9ca3af;">
    This is an automated message. Please do not reply.
  </div>
</div>`, name, why)
}
