// Package pdf renders the application acknowledgement receipt.
//
// Page layout (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: platform name         │  receipt id + date          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  APPLICANT: name / email / company                           │
//	│  TENDER: title / reference / closing date                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STATUS + NOTES                                              │
//	│  FOOTER: QR with the application id                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/ports"
)

var _ ports.ReceiptGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 22, Green: 78, Blue: 99}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02 Jan 2006 15:04"

// ReceiptGenerator Maroto v2 implementation of ports.ReceiptGenerator.
type ReceiptGenerator struct {
	platformName string
}

// NewReceiptGenerator platformName is printed in the header.
func NewReceiptGenerator(platformName string) *ReceiptGenerator {
	return &ReceiptGenerator{platformName: platformName}
}

// GenerateApplicationReceipt renders the PDF and returns its bytes.
func (g *ReceiptGenerator) GenerateApplicationReceipt(r *dto.ApplicationReceipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Tender application receipt", true).
		WithAuthor(g.platformName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(section("APPLICANT",
		r.ApplicantName,
		r.ApplicantEmail,
		nonEmpty(r.CompanyName, "-"),
	))
	closing := "-"
	if r.ClosingDate != nil {
		closing = r.ClosingDate.Format(dateLayout)
	}
	m.AddRows(section("TENDER",
		r.TenderTitle,
		"Reference: "+nonEmpty(r.TenderRef, "-"),
		"Closing date: "+closing,
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(section("APPLICATION",
		"Status: "+r.Status,
		"Notes: "+nonEmpty(r.Notes, "-"),
	))
	m.AddRows(line.NewRow(4))
	m.AddRows(footerRow(r.ApplicationID))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReceiptGenerator) headerRow(r *dto.ApplicationReceipt) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.platformName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Tender application receipt", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(r.ApplicationID, props.Text{Size: 7, Align: align.Right, Top: 7}),
			text.New("Submitted: "+r.ApplicationDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// section a bold title followed by one line per value.
func section(title string, lines ...string) core.Row {
	components := []core.Component{
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	}
	for i, l := range lines {
		components = append(components, text.New(l, props.Text{Size: 9, Top: float64(8 + 5*i)}))
	}
	return row.New(float64(10 + 5*len(lines))).Add(col.New(12).Add(components...))
}

func footerRow(applicationID string) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(applicationID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Keep this receipt as proof of submission.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("The QR code carries the application reference.", props.Text{
				Size: 8, Top: 10, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
