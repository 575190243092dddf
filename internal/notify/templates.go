package notify

import "html/template"

// Email bodies are self-contained HTML documents with inline styles so they
// render the same in every mail client.

var customerCreatedTemplate = template.Must(template.New("customer-created").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #667eea; color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 24px;">APEX GLITCH CRM</h1>
    <p style="margin: 5px 0 0 0;">New Customer Notification</p>
  </div>
  <div style="padding: 20px; background: #f8f9fa; border-radius: 0 0 10px 10px;">
    <h2 style="color: #333; margin-top: 0;">New Customer Added</h2>
    <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #667eea; margin-top: 0;">Customer Information</h3>
      <table style="width: 100%; border-collapse: collapse;">
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Name:</td>
          <td style="padding: 8px 0; color: #333;">{{.Name}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Email:</td>
          <td style="padding: 8px 0; color: #333;">{{.Email}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Phone:</td>
          <td style="padding: 8px 0; color: #333;">{{.Phone}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Company:</td>
          <td style="padding: 8px 0; color: #333;">{{.Company}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Notes:</td>
          <td style="padding: 8px 0; color: #333;">{{.Notes}}</td>
        </tr>
      </table>
    </div>
    <p style="color: #666; font-size: 14px; text-align: center;">
      This notification was sent automatically by APEX GLITCH CRM
    </p>
  </div>
</div>
`))

var documentUploadedTemplate = template.Must(template.New("document-uploaded").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #667eea; color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 24px;">APEX GLITCH CRM</h1>
    <p style="margin: 5px 0 0 0;">Document Upload Notification</p>
  </div>
  <div style="padding: 20px; background: #f8f9fa; border-radius: 0 0 10px 10px;">
    <h2 style="color: #333; margin-top: 0;">New Document Uploaded</h2>
    <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #667eea; margin-top: 0;">Document Details</h3>
      <table style="width: 100%; border-collapse: collapse;">
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Customer:</td>
          <td style="padding: 8px 0; color: #333;">{{.CustomerName}} ({{.CustomerEmail}})</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">File:</td>
          <td style="padding: 8px 0; color: #333;">{{.OriginalFilename}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Type:</td>
          <td style="padding: 8px 0; color: #333;">{{.FileType}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Size:</td>
          <td style="padding: 8px 0; color: #333;">{{.FileSize}} bytes</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Category:</td>
          <td style="padding: 8px 0; color: #333;">{{.Category}}</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; font-weight: bold; color: #555;">Description:</td>
          <td style="padding: 8px 0; color: #333;">{{.Description}}</td>
        </tr>
      </table>
    </div>
    <p style="color: #666; font-size: 14px; text-align: center;">
      This notification was sent automatically by APEX GLITCH CRM
    </p>
  </div>
</div>
`))

type customerCreatedData struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Notes   string
}

type documentUploadedData struct {
	CustomerName     string
	CustomerEmail    string
	OriginalFilename string
	FileType         string
	FileSize         int64
	Category         string
	Description      string
}
