package document

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PaymentVoucher renders a single-page payment voucher.
func (r *Renderer) PaymentVoucher(ctx context.Context, v document.Voucher) (document.Document, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(8, "Payment Voucher", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, r.businessName, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   3,
		}),
	)

	m.AddRow(16,
		col.New(6).Add(
			text.New("Voucher ID: "+v.PaymentID, props.Text{Top: 0}),
			text.New("Date: "+v.Date.Format("2006-01-02"), props.Text{Top: 5}),
		),
		col.New(6),
	)
	m.AddRow(4, line.NewCol(12))

	r.voucherField(m, "Reason / Description", v.Reason)
	r.voucherField(m, "Paid To / For Whom", v.PaidTo)

	m.AddRow(14,
		text.NewCol(4, "Amount Paid", props.Text{Style: fontstyle.Bold, Size: 12, Top: 3}),
		text.NewCol(8, r.money(v.Amount), props.Text{Style: fontstyle.Bold, Size: 14, Top: 2}),
	)
	m.AddRow(10,
		text.NewCol(4, "Amount in Words", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(8, amountInWords(v.Amount), props.Text{Size: 9, Style: fontstyle.Italic}),
	)

	m.AddRow(30,
		text.NewCol(6, "Generated: "+v.GeneratedAt.Format(timestampLayout), props.Text{Size: 8, Top: 20}),
		text.NewCol(6, "Authorized Signature: ....................", props.Text{Size: 9, Top: 20, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return document.Document{}, fmt.Errorf("generate voucher for payment %s: %w", v.PaymentID, err)
	}

	return document.Document{
		Name:        fileName("voucher", v.PaymentID, "pdf"),
		ContentType: document.ContentTypePDF,
		Body:        doc.GetBytes(),
	}, nil
}

func (r *Renderer) voucherField(m core.Maroto, label, value string) {
	m.AddRow(12,
		text.NewCol(4, label, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
		text.NewCol(8, value, props.Text{Size: 10, Top: 2}),
	)
}
