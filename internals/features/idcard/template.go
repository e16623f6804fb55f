package idcard

// cardTemplateHTML is the dual-face ID card document. Both faces are fixed at
// the CR80 physical size (85.6mm x 53.98mm) and laid out on one A4 page.
const cardTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    @import url('https://fonts.googleapis.com/css2?family=Inter:wght@400;700;900&display=swap');

    body {
        margin: 0; padding: 0;
        font-family: 'Inter', sans-serif;
        background: #fff;
        -webkit-print-color-adjust: exact;
    }

    .page-container {
        padding: 20mm;
        display: flex;
        flex-direction: column;
        gap: 15mm;
        align-items: center;
        background: #f3f4f6;
        min-height: 297mm;
    }

    /* CR80 card: 85.6mm x 53.98mm */
    .card {
        width: 85.6mm;
        height: 53.98mm;
        background: #fff;
        border-radius: 16px;
        position: relative;
        border: 1px solid rgba(0,0,0,0.1);
        display: flex;
        flex-direction: column;
        overflow: hidden;
    }

    .header {
        height: 24px;
        background: #000;
        position: relative;
        padding: 0 12px;
        display: flex;
        align-items: center;
        gap: 8px;
        overflow: hidden;
        flex-shrink: 0;
    }
    .header-saffron {
        position: absolute;
        top: 0; right: 0;
        width: 120px; height: 100%;
        background: #FF6B00;
        transform: skewX(-30deg) translateX(40px);
        opacity: 0.9;
        display: flex;
        align-items: center;
        justify-content: center;
    }
    .header-flag {
        height: 38px;
        width: auto;
        transform: skewX(30deg) translateX(-12px) translateY(6px);
    }
    .logo-box {
        width: 20px; height: 20px;
        border-radius: 4px;
        overflow: hidden;
        z-index: 10;
        flex-shrink: 0;
        background: #fff;
    }
    .logo-img { width: 100%; height: 100%; object-fit: cover; }
    .header-text { display: flex; flex-direction: column; z-index: 10; }
    .org-name {
        font-size: 7.5px; font-weight: 900; color: #fff;
        text-transform: uppercase; line-height: 1; letter-spacing: -0.02em;
    }
    .unit-name {
        font-size: 10px; font-weight: 900; color: #FF6B00;
        text-transform: uppercase; line-height: 1; letter-spacing: -0.02em;
        margin-top: 2px;
    }

    .body-row { flex: 1; display: flex; padding: 10px 12px; gap: 12px; }
    .photo-col { width: 80px; display: flex; flex-direction: column; gap: 6px; flex-shrink: 0; }
    .photo-frame {
        width: 80px; height: 96px;
        background: #f3f4f6;
        border-radius: 10px;
        border: 2px solid rgba(255, 107, 0, 0.2);
        overflow: hidden;
        position: relative;
    }
    .photo-img { width: 100%; height: 100%; object-fit: cover; }
    .no-photo {
        width: 100%; height: 100%;
        display: flex; flex-direction: column;
        align-items: center; justify-content: center;
        text-align: center; padding: 8px;
        color: #d1d5db;
    }
    .status-badge { text-align: center; }
    .status-text {
        font-size: 8px; font-weight: 900; color: #FF6B00;
        text-transform: uppercase; letter-spacing: 0.1em;
    }

    .details-col { flex: 1; display: flex; flex-direction: column; padding-top: 4px; }
    .name-text {
        font-size: 11px; font-weight: 900; color: #000;
        text-transform: uppercase; line-height: 1.1;
    }
    .designation-text {
        font-size: 7.5px; font-weight: 900; color: #FF6B00;
        text-transform: uppercase; letter-spacing: 0.1em; margin-bottom: 4px;
    }
    .detail-row { display: flex; align-items: center; gap: 6px; margin-bottom: 2px; }
    .detail-label {
        width: 28px; font-size: 7px; font-weight: 900; color: #9ca3af;
        text-transform: uppercase;
    }
    .detail-value {
        flex: 1; font-size: 8px; font-weight: 700; color: #374151;
        text-transform: uppercase;
    }
    .addr-row { display: flex; align-items: start; gap: 6px; margin-bottom: 2px; }
    .addr-label {
        width: 28px; font-size: 7px; font-weight: 900; color: #9ca3af;
        text-transform: uppercase; margin-top: 1px;
    }
    .addr-value {
        flex: 1; font-size: 6.5px; font-weight: 700; color: #6b7280;
        text-transform: uppercase; line-height: 1.1;
        padding-left: 1px; margin-top: 1.2px;
        overflow: hidden;
        display: -webkit-box;
        -webkit-line-clamp: 2;
        -webkit-box-orient: vertical;
    }
    .contact-row {
        display: flex; align-items: center; justify-content: space-between;
        margin-top: 6px; padding-top: 6px;
        border-top: 1px solid rgba(0,0,0,0.05);
    }
    .contact-item { display: flex; align-items: center; gap: 6px; }
    .phone-text { font-size: 9px; font-family: monospace; font-weight: 700; color: #4b5563; }
    .blood-text { font-size: 9px; font-weight: 700; color: #4b5563; text-transform: uppercase; }

    .footer {
        height: 36px;
        background: #f9fafb;
        border-top: 1px solid rgba(0,0,0,0.05);
        padding: 0 12px;
        display: flex; align-items: center; justify-content: space-between;
        flex-shrink: 0;
    }
    .footer-box { display: flex; flex-direction: column; }
    .footer-box.right { text-align: right; padding-bottom: 8px; }
    .footer-label {
        font-size: 6px; font-weight: 900; color: #9ca3af;
        text-transform: uppercase; letter-spacing: 0.2em;
    }
    .footer-value {
        font-size: 7.5px; font-weight: 900; color: #000;
        text-transform: uppercase; letter-spacing: -0.02em;
        white-space: nowrap; overflow: hidden; text-overflow: ellipsis;
        max-width: 120px;
    }
    .footer-value.orange { color: #FF6B00; }

    /* back face */
    .watermark {
        position: absolute; inset: 0;
        display: flex; align-items: center; justify-content: center;
        opacity: 0.05; pointer-events: none;
    }
    .watermark-img { width: 160px; height: 160px; object-fit: contain; }
    .back-body {
        flex: 1; display: flex;
        padding: 10px 15px; gap: 12px;
        position: relative; z-index: 5; align-items: center;
    }
    .instructions-col { flex: 1; display: flex; flex-direction: column; justify-content: center; }
    .instr-header {
        font-size: 9px; font-weight: 900; color: #000;
        text-transform: uppercase; letter-spacing: 0.1em;
        margin-bottom: 8px; padding-bottom: 2px;
        border-bottom: 1px solid rgba(0,0,0,0.05);
        width: fit-content;
    }
    .instr-list { list-style: none; margin: 0; padding: 0; display: flex; flex-direction: column; gap: 6px; }
    .instr-li {
        display: flex; align-items: start; gap: 6px;
        font-size: 6px; font-weight: 700; color: #6b7280;
        text-transform: uppercase; line-height: 1.25;
    }
    .dot {
        width: 4px; height: 4px;
        background: #FF6B00; border-radius: 50%;
        margin-top: 3px; flex-shrink: 0;
    }
    .qr-col {
        width: 72px;
        display: flex; flex-direction: column;
        align-items: center; justify-content: center;
        text-align: center; gap: 6px;
    }
    .qr-img { width: 56px; height: 56px; }
    .qr-text {
        font-size: 5px; font-weight: 900; color: #9ca3af;
        text-transform: uppercase; letter-spacing: 0.1em; line-height: 1.2;
    }
    .back-footer {
        height: 64px;
        background: #f9fafb;
        border-top: 1px solid rgba(0,0,0,0.05);
        padding: 0 15px;
        display: flex; align-items: center; justify-content: space-between;
        position: relative; z-index: 10;
    }
    .signature-section { display: flex; flex-direction: column; gap: 4px; }
    .sig-box {
        height: 28px; width: 100px;
        border-bottom: 1px solid rgba(0,0,0,0.2);
        position: relative;
    }
    .sig-watermark { position: absolute; top: 2px; left: 6px; opacity: 0.1; color: #000; }
    .sig-label {
        font-size: 6px; font-weight: 900; color: #9ca3af;
        text-transform: uppercase; letter-spacing: 0.1em;
    }
    .back-footer-right { text-align: right; display: flex; flex-direction: column; }
    .bf-title {
        font-size: 8px; font-weight: 900; color: #000;
        text-transform: uppercase; letter-spacing: -0.02em;
    }
    .bf-sub {
        font-size: 6px; font-weight: 700; color: #FF6B00;
        text-transform: uppercase; letter-spacing: 0.1em;
        line-height: 1; margin-top: 2px;
    }
    .bf-link {
        font-size: 5px; font-weight: 700; color: #9ca3af;
        text-transform: uppercase; letter-spacing: 0.1em;
        margin-top: 6px; text-decoration: underline;
    }
</style>
</head>
<body>
<div class="page-container">

    <!-- FRONT -->
    <div class="card">
        <div class="header">
            <div class="header-saffron">
                <img src="{{.FlagSrc}}" class="header-flag" />
            </div>
            <div class="logo-box">
                <img src="{{.LogoSrc}}" class="logo-img" />
            </div>
            <div class="header-text">
                <span class="org-name">Akhil Bharatiya Hindu Mahasabha</span>
                <span class="unit-name">Madhya Pradesh Unit</span>
            </div>
        </div>

        <div class="body-row">
            <div class="photo-col">
                <div class="photo-frame">
                    {{if .PhotoSrc}}<img src="{{.PhotoSrc}}" class="photo-img" />{{else}}<div class="no-photo">
                        <div style="opacity:0.2; transform: scale(1.5);">{{.ShieldIcon}}</div>
                        <div style="font-size:8px; font-weight:bold; margin-top:8px;">NO PHOTO</div>
                    </div>{{end}}
                </div>
                <div class="status-badge">
                    <span class="status-text">Status: Active</span>
                </div>
            </div>

            <div class="details-col">
                <div style="margin-bottom: 4px;">
                    <div class="name-text">{{.Name}}</div>
                    <div class="designation-text">{{.Designation}}</div>
                </div>

                <div class="detail-row">
                    <span class="detail-label">S/O:</span>
                    <span class="detail-value">{{.GuardianName}}</span>
                </div>
                <div class="detail-row">
                    <span class="detail-label">DOB:</span>
                    <span class="detail-value">{{.DOB}}</span>
                </div>
                <div class="addr-row">
                    <span class="addr-label">Addr:</span>
                    <span class="addr-value">{{.Address}}</span>
                </div>

                <div class="contact-row">
                    <div class="contact-item">
                        {{.PhoneIcon}}
                        <span class="phone-text">{{.Mobile}}</span>
                    </div>
                    <div class="contact-item">
                        {{.DropletIcon}}
                        <span class="blood-text">B: {{.BloodGroup}}</span>
                    </div>
                </div>
            </div>
        </div>

        <div class="footer">
            <div class="footer-box">
                <span class="footer-label">Member ID</span>
                <span class="footer-value">{{.MemberID}}</span>
            </div>
            <div class="footer-box right">
                <span class="footer-label">State Unit</span>
                <span class="footer-value orange">Madhya Pradesh</span>
            </div>
        </div>
    </div>

    <!-- BACK -->
    <div class="card">
        <div class="watermark">
            <img src="{{.LogoSrc}}" class="watermark-img" />
        </div>

        <div class="back-body">
            <div class="instructions-col">
                <div class="instr-header">General Instructions</div>
                <ul class="instr-list">
                    <li class="instr-li"><div class="dot"></div>This card is non-transferable.</li>
                    <li class="instr-li"><div class="dot"></div>Valid only with official signature.</li>
                    <li class="instr-li"><div class="dot"></div>Report loss immediately to state unit.</li>
                    <li class="instr-li"><div class="dot"></div>Verification available at abhm-mp.org.</li>
                </ul>
            </div>

            <div class="qr-col">
                <img src="{{.QRSrc}}" class="qr-img" />
                <span class="qr-text">Scan to Verify<br>Authenticity</span>
            </div>
        </div>

        <div class="back-footer">
            <div class="signature-section">
                <div class="sig-box">
                    <div class="sig-watermark">
                        <div style="transform:scale(0.8);">{{.ShieldIcon}}</div>
                    </div>
                </div>
                <span class="sig-label">Issuing Authority Signature</span>
            </div>
            <div class="back-footer-right">
                <span class="bf-title">Madhya Pradesh State Unit</span>
                <span class="bf-sub">Sangathit Hindu - Samarth Bharat</span>
                <span class="bf-link">www.abhm-mp.org</span>
            </div>
        </div>
    </div>

</div>
</body>
</html>
`
