package terminal

import (
	"context"
	"errors"

	"kasirpos/internal/auth"
	"kasirpos/internal/drawer"
	"kasirpos/internal/heldorder"
	"kasirpos/internal/keybind"
	"kasirpos/internal/logger"
	"kasirpos/internal/money"
	"kasirpos/internal/order"
	"kasirpos/internal/payment"
	"kasirpos/internal/product"
	"kasirpos/internal/session"
	"kasirpos/internal/shift"

	"go.uber.org/zap"
)

// Keys every dialog understands regardless of the user's bindings.
const (
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
)

// Dispatcher owns the terminal's interaction state: it maps key events onto
// engine actions, enforces the one-open-dialog rule, and runs each dialog's
// commit/cancel protocol. All calls happen on the single UI goroutine.
type Dispatcher struct {
	tctx     *session.TerminalContext
	order    *order.Order
	held     *heldorder.Registry
	products product.Repository
	drawers  drawer.Service
	payments payment.Service
	shifts   shift.Service
	pins     *auth.PinChecker

	bindings    keybind.Bindings
	keybindPath string

	modal  Modal
	locked bool

	customerLabel string
	lastTx        *payment.CompletedTransaction

	edit     *lineEdit
	pay      *paymentDraft
	cash     *drawerDraft
	recall   *recallState
	keybinds *keybindDraft
}

type Params struct {
	Context     *session.TerminalContext
	Order       *order.Order
	Held        *heldorder.Registry
	Products    product.Repository
	Drawer      drawer.Service
	Payments    payment.Service
	Shifts      shift.Service
	Pins        *auth.PinChecker
	Bindings    keybind.Bindings
	KeybindPath string
}

func New(p Params) *Dispatcher {
	if p.Bindings == nil {
		p.Bindings = keybind.Default()
	}
	return &Dispatcher{
		tctx:        p.Context,
		order:       p.Order,
		held:        p.Held,
		products:    p.Products,
		drawers:     p.Drawer,
		payments:    p.Payments,
		shifts:      p.Shifts,
		pins:        p.Pins,
		bindings:    p.Bindings,
		keybindPath: p.KeybindPath,
	}
}

func (d *Dispatcher) Modal() Modal { return d.modal }

func (d *Dispatcher) Locked() bool { return d.locked }

func (d *Dispatcher) Bindings() keybind.Bindings {
	return d.bindings.Clone()
}

// LastTransaction returns the most recently finalized sale, for the UI's
// change display.
func (d *Dispatcher) LastTransaction() *payment.CompletedTransaction {
	return d.lastTx
}

// HandleKey routes one key event. While the terminal is locked everything
// is swallowed; while a dialog is open only Enter and Escape mean anything.
func (d *Dispatcher) HandleKey(ctx context.Context, key string) error {
	if d.locked {
		return nil
	}

	if d.modal != ModalNone {
		switch key {
		case KeyEnter:
			return d.Commit(ctx)
		case KeyEscape:
			d.Cancel()
			return nil
		default:
			return nil
		}
	}

	action, ok := d.bindings.ActionFor(key)
	if !ok {
		logger.FromCtx(ctx).Debug("unbound key ignored", zap.String("key", key))
		return nil
	}
	return d.Dispatch(ctx, action)
}

// Dispatch runs one global action. Actions whose target is missing (no
// selected line, empty order) are deliberate no-ops, not errors.
func (d *Dispatcher) Dispatch(ctx context.Context, action keybind.Action) error {
	if d.locked || d.modal != ModalNone {
		return ErrModalOpen
	}

	switch action {
	case keybind.ActionHold:
		_, err := d.held.Hold(d.order, d.customerLabel)
		if errors.Is(err, order.ErrEmptyOrder) {
			return nil
		}
		if err != nil {
			return err
		}
		d.customerLabel = ""
		return nil

	case keybind.ActionRecall:
		d.recall = &recallState{}
		d.modal = ModalRecall
		return nil

	case keybind.ActionCashierMenu:
		d.modal = ModalCashierMenu
		return nil

	case keybind.ActionClear:
		d.order.Clear()
		return nil

	case keybind.ActionEditLine:
		sel := d.order.Selected()
		if sel < 0 {
			return nil
		}
		line, err := d.order.Line(sel)
		if err != nil {
			return nil
		}
		d.edit = &lineEdit{
			index:     sel,
			quantity:  line.Quantity,
			unitPrice: line.UnitPrice,
			discount:  line.Discount,
		}
		d.modal = ModalEditLine
		return nil

	case keybind.ActionDeleteLine:
		sel := d.order.Selected()
		if sel < 0 {
			return nil
		}
		if err := d.order.RemoveLine(sel); err != nil && !errors.Is(err, order.ErrLineNotFound) {
			return err
		}
		return nil

	case keybind.ActionPay:
		if d.order.IsEmpty() {
			return nil
		}
		d.pay = &paymentDraft{method: payment.MethodCash}
		d.modal = ModalPayment
		return nil

	case keybind.ActionLock:
		d.locked = true
		d.modal = ModalLock
		return nil
	}

	return nil
}

// AddItem is the search/add flow of the main screen: resolve a scanned
// barcode or typed term against the catalog and merge it into the order.
func (d *Dispatcher) AddItem(ctx context.Context, term string, qty int) error {
	if d.locked || d.modal != ModalNone {
		return ErrModalOpen
	}

	p, err := d.products.FindBySKUOrName(ctx, term)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	return d.order.AddOrIncrement(*p, qty)
}

// SetCustomerLabel notes who the next held order belongs to ("meja 4").
func (d *Dispatcher) SetCustomerLabel(label string) {
	d.customerLabel = label
}

// SelectLine moves the cashier's row selection on the main screen.
func (d *Dispatcher) SelectLine(index int) error {
	if d.locked || d.modal != ModalNone {
		return ErrModalOpen
	}
	if err := d.order.SelectLine(index); err != nil {
		return nil
	}
	return nil
}

// --- edit-line dialog ---

func (d *Dispatcher) SetEditQuantity(qty int) error {
	if d.modal != ModalEditLine {
		return ErrNoMatchingModal
	}
	d.edit.quantity = qty
	return nil
}

func (d *Dispatcher) SetEditDiscount(amount money.Amount) error {
	if d.modal != ModalEditLine {
		return ErrNoMatchingModal
	}
	d.edit.discount = amount
	return nil
}

// SetEditUnitPrice requires a prior successful UnlockPrice on this dialog.
func (d *Dispatcher) SetEditUnitPrice(amount money.Amount) error {
	if d.modal != ModalEditLine {
		return ErrNoMatchingModal
	}
	if !d.edit.priceUnlocked {
		return ErrPriceLocked
	}
	d.edit.unitPrice = amount
	return nil
}

// UnlockPrice runs the supervisor PIN challenge that opens the unit-price
// field. A wrong PIN keeps the dialog open for retry; the unlock lasts only
// for this dialog instance.
func (d *Dispatcher) UnlockPrice(pin string) error {
	if d.modal != ModalEditLine {
		return ErrNoMatchingModal
	}
	if err := d.pins.Check(pin); err != nil {
		return err
	}
	d.edit.priceUnlocked = true
	return nil
}

// --- recall dialog ---

func (d *Dispatcher) SetRecallQuery(query string) error {
	if d.modal != ModalRecall {
		return ErrNoMatchingModal
	}
	d.recall.query = query
	d.recall.selectedID = ""
	return nil
}

func (d *Dispatcher) RecallMatches() []heldorder.HeldOrder {
	if d.modal != ModalRecall {
		return nil
	}
	return d.held.Search(d.recall.query)
}

func (d *Dispatcher) SelectHeldOrder(id string) error {
	if d.modal != ModalRecall {
		return ErrNoMatchingModal
	}
	d.recall.selectedID = id
	return nil
}

// --- cashier menu and its sub-dialogs ---

func (d *Dispatcher) OpenCashDrawer(kind drawer.EntryKind) error {
	if d.modal != ModalCashierMenu {
		return ErrNoMatchingModal
	}
	d.cash = &drawerDraft{kind: kind}
	d.modal = ModalCashDrawer
	return nil
}

func (d *Dispatcher) OpenShiftReport() error {
	if d.modal != ModalCashierMenu {
		return ErrNoMatchingModal
	}
	d.modal = ModalShiftReport
	return nil
}

func (d *Dispatcher) OpenKeybindSettings() error {
	if d.modal != ModalCashierMenu {
		return ErrNoMatchingModal
	}
	d.keybinds = &keybindDraft{bindings: d.bindings.Clone()}
	d.modal = ModalKeybind
	return nil
}

func (d *Dispatcher) SetDrawerAmount(amount money.Amount) error {
	if d.modal != ModalCashDrawer {
		return ErrNoMatchingModal
	}
	d.cash.amount = amount
	return nil
}

func (d *Dispatcher) SetDrawerDescription(description string) error {
	if d.modal != ModalCashDrawer {
		return ErrNoMatchingModal
	}
	d.cash.description = description
	return nil
}

// Report recomputes the reconciliation numbers; the dialog calls this on
// every repaint so entries appended meanwhile are always reflected.
func (d *Dispatcher) Report(ctx context.Context) (*shift.Report, error) {
	if d.modal != ModalShiftReport {
		return nil, ErrNoMatchingModal
	}
	return d.shifts.Build(ctx, d.tctx.SessionID())
}

// --- payment dialog ---

func (d *Dispatcher) SetPaymentMethod(method payment.Method) error {
	if d.modal != ModalPayment {
		return ErrNoMatchingModal
	}
	if !method.Valid() {
		return payment.ErrInvalidMethod
	}
	d.pay.method = method
	return nil
}

func (d *Dispatcher) SetAmountTendered(amount money.Amount) error {
	if d.modal != ModalPayment {
		return ErrNoMatchingModal
	}
	d.pay.tendered = amount
	return nil
}

// --- keybind settings dialog ---

func (d *Dispatcher) SetBinding(action keybind.Action, key string) error {
	if d.modal != ModalKeybind {
		return ErrNoMatchingModal
	}
	d.keybinds.bindings[action] = key
	return nil
}

// --- dialog protocol ---

// Commit applies the open dialog. Validation failures keep the dialog open
// so the cashier can fix the input; stale targets close it as a no-op.
func (d *Dispatcher) Commit(ctx context.Context) error {
	switch d.modal {
	case ModalNone, ModalCashierMenu, ModalShiftReport:
		d.closeModal()
		return nil

	case ModalEditLine:
		qty := d.edit.quantity
		price := d.edit.unitPrice
		discount := d.edit.discount
		err := d.order.UpdateLine(d.edit.index, order.LineUpdate{
			Quantity:  &qty,
			UnitPrice: &price,
			Discount:  &discount,
		})
		if errors.Is(err, order.ErrLineNotFound) {
			// Stale selection; nothing to edit anymore.
			d.closeModal()
			return nil
		}
		if err != nil {
			return err
		}
		d.closeModal()
		return nil

	case ModalRecall:
		id := d.recall.selectedID
		d.closeModal()
		if id == "" {
			return nil
		}
		if err := d.held.Recall(id, d.order); err != nil && !errors.Is(err, heldorder.ErrNotFound) {
			return err
		}
		return nil

	case ModalCashDrawer:
		_, err := d.drawers.Record(ctx, drawer.RecordParams{
			Kind:        d.cash.kind,
			Amount:      d.cash.amount,
			Description: d.cash.description,
		})
		if err != nil {
			return err
		}
		d.closeModal()
		return nil

	case ModalPayment:
		tx, err := d.payments.Finalize(ctx, d.order, payment.FinalizeParams{
			Method:         d.pay.method,
			AmountTendered: d.pay.tendered,
		})
		if err != nil {
			return err
		}
		d.lastTx = tx
		d.closeModal()
		return nil

	case ModalKeybind:
		if err := keybind.Save(d.keybindPath, d.keybinds.bindings); err != nil {
			return err
		}
		d.bindings = d.keybinds.bindings
		d.closeModal()
		return nil

	case ModalLock:
		// Enter on the lock screen goes through Unlock.
		return nil
	}

	return nil
}

// Cancel closes the open dialog without touching any model state.
// The lock screen cannot be cancelled.
func (d *Dispatcher) Cancel() {
	if d.modal == ModalLock {
		return
	}
	d.closeModal()
}

// Unlock runs the PIN check that releases the locked terminal.
func (d *Dispatcher) Unlock(pin string) error {
	if !d.locked {
		return nil
	}
	if err := d.pins.Check(pin); err != nil {
		return err
	}
	d.locked = false
	d.closeModal()
	return nil
}

func (d *Dispatcher) closeModal() {
	d.modal = ModalNone
	d.edit = nil
	d.pay = nil
	d.cash = nil
	d.recall = nil
	d.keybinds = nil
}
