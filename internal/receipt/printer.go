package receipt

import (
	"context"
	"fmt"
	"io"

	"kasirpos/internal/logger"
	"kasirpos/internal/money"
	"kasirpos/internal/payment"

	"go.uber.org/zap"
)

// Header is the store block printed at the top of every receipt.
type Header struct {
	StoreName string
	Address   string
	Phone     string
}

// Printer renders a completed transaction into an ESC/POS stream and writes
// it to the printer device (or spool). It implements payment.ReceiptEmitter.
type Printer struct {
	out    io.Writer
	width  int
	header Header
}

func NewPrinter(out io.Writer, width int, header Header) *Printer {
	if width <= 0 {
		width = 32
	}
	return &Printer{out: out, width: width, header: header}
}

// Emit prints one receipt. Called exactly once per finalized sale; the
// caller treats a failure as best-effort and never unwinds the sale.
func (p *Printer) Emit(ctx context.Context, tx *payment.CompletedTransaction) error {
	doc := p.render(tx)

	if _, err := p.out.Write(doc.Bytes()); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}

	logger.FromCtx(ctx).Info("receipt emitted", zap.String("code", tx.Code))
	return nil
}

func (p *Printer) render(tx *payment.CompletedTransaction) *Document {
	doc := NewDocument(p.width)

	doc.SetAlign(AlignCenter).SetBold(true).Text(p.header.StoreName).SetBold(false)
	if p.header.Address != "" {
		doc.Text(p.header.Address)
	}
	if p.header.Phone != "" {
		doc.Text(p.header.Phone)
	}

	doc.SetAlign(AlignLeft).Separator()
	doc.Text(tx.Code)
	doc.Text(tx.PaidAt.Format("02/01/2006 15:04"))
	doc.TextF("Kasir: %s", tx.CashierName)
	doc.Separator()

	for _, line := range tx.Lines {
		doc.Text(line.Name)
		unit := fmt.Sprintf("%d x %s", line.Quantity, money.Format(line.UnitPrice))
		if line.Discount > 0 {
			unit += fmt.Sprintf(" -%s", money.Format(line.Discount))
		}
		doc.TwoColumn("  "+unit, money.Format(line.Total))
	}

	doc.Separator()
	doc.TwoColumn("TOTAL", money.Format(tx.TotalAmount))
	doc.TwoColumn(string(tx.Method), money.Format(tx.AmountTendered))
	if tx.Method == payment.MethodCash {
		doc.TwoColumn("KEMBALI", money.Format(tx.Change))
	}

	doc.Separator()
	doc.SetAlign(AlignCenter).Text("Terima kasih")
	doc.FeedLines(3).Cut()

	return doc
}
