package mail

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/rose-villa/complaint-service/internal/domain"
)

const complaintBodyTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #2563eb, #e11d48); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 20px; border-radius: 0 0 8px 8px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #374151; }
        .value { margin-top: 5px; padding: 10px; background: white; border-radius: 4px; border-left: 4px solid #2563eb; }
        .complaint-text { background: #fef3c7; border-left-color: #f59e0b; }
        .footer { margin-top: 20px; padding: 15px; background: #e5e7eb; border-radius: 4px; text-align: center; font-size: 14px; color: #6b7280; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1 style="margin: 0;">🏢 {{.SiteName}} - New Complaint</h1>
            <p style="margin: 5px 0 0 0; opacity: 0.9;">Complaint &amp; Feedback System</p>
        </div>

        <div class="content">
            <div class="field">
                <div class="label">👤 Full Name:</div>
                <div class="value">{{.Name}}</div>
            </div>

            <div class="field">
                <div class="label">📧 Email Address:</div>
                <div class="value">{{.Email}}</div>
            </div>
{{if .Phone}}
            <div class="field">
                <div class="label">📱 Phone Number:</div>
                <div class="value">{{.Phone}}</div>
            </div>
{{end}}
            <div class="field">
                <div class="label">🏢 Floor Number:</div>
                <div class="value">{{.Floor}}</div>
            </div>

            <div class="field">
                <div class="label">🚪 Room Number:</div>
                <div class="value">{{.Room}}</div>
            </div>

            <div class="field">
                <div class="label">📝 Complaint Details:</div>
                <div class="value complaint-text">{{.Complaint}}</div>
            </div>

            <div class="field">
                <div class="label">📎 Image Attached:</div>
                <div class="value">{{if .HasAttachment}}✅ Yes (see attachment){{else}}❌ No{{end}}</div>
            </div>
        </div>

        <div class="footer">
            <p>This complaint was submitted through the {{.SiteName}} Complaint &amp; Feedback System.</p>
            <p>Please respond to the complainant at: <strong>{{.Email}}</strong></p>
        </div>
    </div>
</body>
</html>
`

var complaintBody = template.Must(template.New("complaint_body").Parse(complaintBodyTemplate))

type bodyData struct {
	SiteName      string
	Name          string
	Email         string
	Phone         string
	Floor         string
	Room          string
	Complaint     string
	HasAttachment bool
}

// RenderComplaintBody renders the notification HTML for one submission.
// The phone block is omitted entirely when no phone was provided.
func RenderComplaintBody(siteName string, sub domain.ComplaintSubmission) (string, error) {
	var builder strings.Builder
	data := bodyData{
		SiteName:      siteName,
		Name:          sub.Name,
		Email:         sub.Email,
		Phone:         strings.TrimSpace(sub.Phone),
		Floor:         sub.Floor,
		Room:          sub.Room,
		Complaint:     sub.Complaint,
		HasAttachment: sub.Attachment != nil,
	}
	if err := complaintBody.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("render complaint body: %w", err)
	}
	return builder.String(), nil
}

// ComplaintSubject builds the fixed-format subject line.
func ComplaintSubject(siteName, floor, room string) string {
	return fmt.Sprintf("New Complaint from %s - Floor %s, Room %s", siteName, floor, room)
}
