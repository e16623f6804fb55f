package notification

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"abhm_backend/internals/features/membership/model"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

// messageBody renders the full MIME message and undoes quoted-printable soft
// line breaks so substring assertions are stable.
func messageBody(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return strings.ReplaceAll(buf.String(), "=\r\n", "")
}

func approvedMember() *model.MemberModel {
	memberID := "ABHM-MP-2026-4821"
	return &model.MemberModel{
		FirstName: "Ramesh",
		LastName:  "Sharma",
		Email:     "ramesh@example.com",
		MemberID:  &memberID,
		Status:    model.StatusApproved,
	}
}

func TestSendApprovalWithoutPipelineStillSends(t *testing.T) {
	dialer := &recordingDialer{}
	svc := NewEmailServiceWithDialer(dialer, nil, "ABHM MP Admin <admin@abhm-mp.org>")

	err := svc.SendApproval(context.Background(), approvedMember())
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	body := messageBody(t, dialer.sent[0])
	assert.Contains(t, body, "ramesh@example.com")
	assert.Contains(t, body, "ABHM-MP-2026-4821")
	assert.Contains(t, body, "Membership Approved")
}

func TestSendApprovalSkipsMemberWithoutEmail(t *testing.T) {
	dialer := &recordingDialer{}
	svc := NewEmailServiceWithDialer(dialer, nil, "ABHM MP Admin <admin@abhm-mp.org>")

	m := approvedMember()
	m.Email = ""

	require.NoError(t, svc.SendApproval(context.Background(), m))
	assert.Empty(t, dialer.sent)
}

func TestSendRejectionIncludesReason(t *testing.T) {
	dialer := &recordingDialer{}
	svc := NewEmailServiceWithDialer(dialer, nil, "ABHM MP Admin <admin@abhm-mp.org>")

	err := svc.SendRejection(context.Background(), approvedMember(), "Aadhaar photo is not readable")
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	body := messageBody(t, dialer.sent[0])
	assert.Contains(t, body, "Aadhaar photo is not readable")
	assert.Contains(t, body, "Application Update")
}

func TestSendRejectionFallbackReason(t *testing.T) {
	dialer := &recordingDialer{}
	svc := NewEmailServiceWithDialer(dialer, nil, "ABHM MP Admin <admin@abhm-mp.org>")

	err := svc.SendRejection(context.Background(), approvedMember(), "")
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	body := messageBody(t, dialer.sent[0])
	assert.Contains(t, body, "Document verification failed or incomplete details.")
}

func TestSendReturnsDialerError(t *testing.T) {
	dialer := &recordingDialer{err: assert.AnError}
	svc := NewEmailServiceWithDialer(dialer, nil, "ABHM MP Admin <admin@abhm-mp.org>")

	assert.Error(t, svc.SendApproval(context.Background(), approvedMember()))
	assert.Error(t, svc.SendRejection(context.Background(), approvedMember(), "x"))
}
