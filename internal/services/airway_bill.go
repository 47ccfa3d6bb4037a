package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"shipment-tracking-service/internal/domain"
)

// Fixed A4 portrait geometry in user-space points.
const (
	pageWidth  = 595.0
	pageHeight = 842.0
)

const (
	companyName    = "ASYNCSHIP LOGISTICS"
	documentTitle  = "AIRWAY BILL"
	footerNotice   = "This is an electronically generated document. No signature required."
	footerContact  = "AsyncShip Logistics | www.asyncship.com | support@asyncship.com | +1 (912) 980-1024"
	dangerousBadge = "⚠ DANGEROUS GOODS"
	insuredBadge   = "✓ INSURED"
)

type pdfColor struct{ r, g, b int }

var (
	colorPrimary   = pdfColor{13, 26, 51}
	colorAccent    = pdfColor{51, 102, 204}
	colorGray      = pdfColor{102, 102, 102}
	colorLightGray = pdfColor{230, 230, 230}
	colorWhite     = pdfColor{255, 255, 255}
	colorPaleBlue  = pdfColor{179, 204, 255}
	colorRed       = pdfColor{204, 51, 51}
	colorGreen     = pdfColor{51, 153, 51}
)

// BuildAirwayBill renders the single-page airway bill for an
// aggregated shipment view and returns the document bytes. The caller
// must have resolved the shipment already: the builder assumes a fully
// populated view, and a shipment without packages is a precondition
// failure rather than an empty render.
func BuildAirwayBill(view ShipmentView) ([]byte, error) {
	return BuildAirwayBillAt(view, time.Now())
}

// BuildAirwayBillAt renders with a fixed generation time stamped into
// the document metadata. Two calls with the same view and time produce
// byte-identical output.
func BuildAirwayBillAt(view ShipmentView, generatedAt time.Time) ([]byte, error) {
	if len(view.Packages) == 0 {
		return nil, fmt.Errorf("build airway bill: shipment %s has no packages", view.TrackingNumber)
	}

	b := newBillPage(generatedAt)

	b.header(view)

	// Shipper and consignee columns grow independently; the divider is
	// placed below whichever column reached further down the page.
	leftY := b.shipperColumn(view)
	rightY := b.consigneeColumn(view)
	y := max(leftY, rightY) + 30

	b.rule(y)

	y = b.packageTable(view, y+30)
	y = b.totals(view, y)
	b.shipmentInfo(view, y)

	b.footer(view)

	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("build airway bill: render %s: %w", view.TrackingNumber, err)
	}
	return buf.Bytes(), nil
}

// billPage wraps the fpdf document with the helpers the layout uses.
// Coordinates are top-down: y grows toward the bottom of the page.
type billPage struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newBillPage(generatedAt time.Time) *billPage {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.AddPage()

	// Core fonts are cp1252; the translator keeps the ×/badge glyphs
	// printable without embedding a font.
	return &billPage{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (b *billPage) text(x, y float64, size float64, style string, c pdfColor, s string) {
	b.pdf.SetFont("Helvetica", style, size)
	b.pdf.SetTextColor(c.r, c.g, c.b)
	b.pdf.Text(x, y, b.tr(s))
}

func (b *billPage) fillRect(x, y, w, h float64, c pdfColor) {
	b.pdf.SetFillColor(c.r, c.g, c.b)
	b.pdf.Rect(x, y, w, h, "F")
}

func (b *billPage) rule(y float64) {
	b.pdf.SetDrawColor(colorLightGray.r, colorLightGray.g, colorLightGray.b)
	b.pdf.SetLineWidth(1)
	b.pdf.Line(40, y, pageWidth-40, y)
}

func (b *billPage) header(view ShipmentView) {
	b.fillRect(0, 0, pageWidth, 120, colorPrimary)

	b.text(40, 50, 24, "B", colorWhite, companyName)
	b.text(40, 80, 14, "", colorPaleBlue, documentTitle)

	b.text(pageWidth-200, 45, 10, "", colorPaleBlue, "AWB NUMBER")
	b.text(pageWidth-200, 65, 16, "B", colorWhite, view.TrackingNumber)

	b.fillRect(pageWidth-200, 75, 160, 25, colorAccent)
	b.text(pageWidth-190, 92, 12, "B", colorWhite, strings.ToUpper(string(view.ServiceType)))
}

func (b *billPage) shipperColumn(view ShipmentView) float64 {
	const x = 40.0
	y := 160.0

	b.text(x, y, 10, "B", colorAccent, "SHIPPER / SENDER")

	name := "N/A"
	if view.Sender != nil && view.Sender.Name != "" {
		name = view.Sender.Name
	}
	y += 20
	b.text(x, y, 12, "B", colorPrimary, name)

	y += 15
	b.text(x, y, 10, "", colorGray, view.Origin.Street)
	y += 12
	b.text(x, y, 10, "", colorGray, cityLine(view.Origin))
	y += 12
	b.text(x, y, 10, "", colorGray, view.Origin.Country)

	if view.Sender != nil && view.Sender.Email != "" {
		y += 15
		b.text(x, y, 9, "", colorGray, "Email: "+view.Sender.Email)
	}

	return y
}

func (b *billPage) consigneeColumn(view ShipmentView) float64 {
	x := pageWidth/2 + 20
	y := 160.0

	b.text(x, y, 10, "B", colorAccent, "CONSIGNEE / RECIPIENT")

	y += 20
	b.text(x, y, 12, "B", colorPrimary, view.Recipient.Name)

	if view.Recipient.Company != "" {
		y += 15
		b.text(x, y, 10, "", colorGray, view.Recipient.Company)
	}

	y += 15
	b.text(x, y, 10, "", colorGray, view.Destination.Street)
	y += 12
	b.text(x, y, 10, "", colorGray, cityLine(view.Destination))
	y += 12
	b.text(x, y, 10, "", colorGray, view.Destination.Country)

	y += 15
	b.text(x, y, 9, "", colorGray, "Phone: "+view.Recipient.Phone)

	if view.Recipient.Email != "" {
		y += 12
		b.text(x, y, 9, "", colorGray, "Email: "+view.Recipient.Email)
	}

	return y
}

var tableColumns = []struct {
	title string
	width float64
}{
	{"#", 30},
	{"Type", 80},
	{"Dimensions (cm)", 140},
	{"Weight", 70},
	{"Pieces", 60},
	{"Value", 80},
}

func (b *billPage) packageTable(view ShipmentView, y float64) float64 {
	b.text(40, y, 10, "B", colorAccent, "PACKAGE DETAILS")

	y += 25
	b.fillRect(40, y-15, pageWidth-80, 20, colorLightGray)

	x := 45.0
	for _, col := range tableColumns {
		b.text(x, y, 9, "B", colorPrimary, col.title)
		x += col.width
	}

	y += 25
	for i, pkg := range view.Packages {
		cells := []string{
			strconv.Itoa(i + 1),
			pkg.PackageType,
			fmt.Sprintf("%s × %s × %s", formatNumber(pkg.Length), formatNumber(pkg.Width), formatNumber(pkg.Height)),
			formatNumber(pkg.Weight) + " kg",
			strconv.Itoa(pkg.Pieces),
			"$" + formatNumber(declaredValue(pkg.DeclaredValue)),
		}

		x = 45.0
		for col, cell := range cells {
			b.text(x, y, 9, "", colorGray, cell)
			x += tableColumns[col].width
		}

		y += 15
		b.text(75, y, 8, "", colorGray, "Description: "+pkg.Description)

		if pkg.Dangerous || pkg.Insured {
			y += 12
			if pkg.Dangerous {
				b.text(75, y, 8, "B", colorRed, dangerousBadge)
			}
			if pkg.Insured {
				// Shift right when both badges share the line.
				x := 75.0
				if pkg.Dangerous {
					x = 200.0
				}
				b.text(x, y, 8, "B", colorGreen, insuredBadge)
			}
		}

		y += 20
	}

	return y
}

func (b *billPage) totals(view ShipmentView, y float64) float64 {
	y += 10
	b.rule(y - 5)

	y += 15
	b.text(45, y, 10, "B", colorPrimary, "TOTALS:")
	b.text(200, y, 10, "B", colorPrimary, "Weight: "+formatNumber(view.TotalWeight)+" kg")
	b.text(320, y, 10, "B", colorPrimary, "Pieces: "+strconv.Itoa(view.TotalPieces))
	b.text(420, y, 10, "B", colorPrimary, "Value: $"+formatNumber(view.TotalDeclaredValue))

	return y
}

func (b *billPage) shipmentInfo(view ShipmentView, y float64) {
	y += 40
	b.rule(y - 10)
	b.text(40, y+10, 10, "B", colorAccent, "SHIPMENT INFORMATION")

	y += 35
	b.text(40, y, 10, "", colorGray, "Date Created: "+view.CreatedAt.Format("January 2, 2006"))
	b.text(280, y, 10, "", colorGray, "Estimated Delivery: "+view.EstimatedDelivery.Format("January 2, 2006"))

	y += 20
	paymentColor := colorRed
	paymentLabel := "UNPAID"
	if view.IsPaid {
		paymentColor = colorGreen
		paymentLabel = "PAID"
	}
	b.text(40, y, 10, "B", paymentColor, "Payment Status: "+paymentLabel)

	if view.SpecialInstructions != "" {
		y += 30
		b.text(40, y, 10, "B", colorAccent, "SPECIAL INSTRUCTIONS:")
		y += 15
		b.text(40, y, 9, "", colorGray, view.SpecialInstructions)
	}
}

func (b *billPage) footer(view ShipmentView) {
	b.fillRect(0, pageHeight-60, pageWidth, 60, colorLightGray)

	b.text(40, pageHeight-35, 8, "", colorGray, footerNotice)
	b.text(40, pageHeight-20, 8, "", colorGray, footerContact)

	// Barcode placeholder: a bordered box carrying the tracking number
	// as text. No barcode symbology is generated.
	b.pdf.SetDrawColor(colorGray.r, colorGray.g, colorGray.b)
	b.pdf.SetLineWidth(1)
	b.pdf.Rect(pageWidth-180, pageHeight-50, 140, 35, "D")
	b.text(pageWidth-160, pageHeight-28, 10, "B", colorPrimary, view.TrackingNumber)
}

func cityLine(a domain.Address) string {
	return fmt.Sprintf("%s, %s %s", a.City, a.State, a.PostalCode)
}

func declaredValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// formatNumber renders numbers the way the rest of the document
// surfaces do: no trailing zeros, no forced decimals ("2", "2.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
