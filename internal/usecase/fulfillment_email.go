package usecase

import (
	"bytes"
	"html/template"
)

// Fulfillment notification sent after a verified payment. The download link
// is the product's static PDF URL from the catalog.
var fulfillmentTemplate = template.Must(template.New("fulfillment").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: 'Segoe UI', sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1>Thank You for Your Purchase!</h1>
    <p>Hi <strong>{{.Name}}</strong>,</p>
    <p>Your payment was successful! Your <strong>{{.ProductName}}</strong> is ready to download.</p>
    <p><a href="{{.PDFURL}}">Download Your PDF</a></p>
    <p><strong>Direct Link:</strong><br>
    <a href="{{.PDFURL}}">{{.PDFURL}}</a></p>
    <p>Reply to this email if you have questions. Welcome to the FlexMode community!</p>
    <p><strong>- FlexMode Team</strong></p>
  </div>
</body>
</html>
`))

type fulfillmentEmailData struct {
	Name        string
	ProductName string
	PDFURL      string
}

// RenderFulfillmentEmail renders the HTML body for the download-link email.
func RenderFulfillmentEmail(customerName, productName, pdfURL string) (string, error) {
	var buf bytes.Buffer
	err := fulfillmentTemplate.Execute(&buf, fulfillmentEmailData{
		Name:        customerName,
		ProductName: productName,
		PDFURL:      pdfURL,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
