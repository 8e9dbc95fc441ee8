package terminal

import (
	"kasirpos/internal/drawer"
	"kasirpos/internal/keybind"
	"kasirpos/internal/money"
	"kasirpos/internal/payment"
)

// Modal identifies which dialog is open. At most one is open at a time;
// while it is, every global keybinding is suppressed.
type Modal int

const (
	ModalNone Modal = iota
	ModalEditLine
	ModalRecall
	ModalCashierMenu
	ModalCashDrawer
	ModalShiftReport
	ModalPayment
	ModalKeybind
	ModalLock
)

var modalNames = map[Modal]string{
	ModalNone:        "none",
	ModalEditLine:    "edit_line",
	ModalRecall:      "recall",
	ModalCashierMenu: "cashier_menu",
	ModalCashDrawer:  "cash_drawer",
	ModalShiftReport: "shift_report",
	ModalPayment:     "payment",
	ModalKeybind:     "keybind_settings",
	ModalLock:        "lock_screen",
}

func (m Modal) String() string {
	if name, ok := modalNames[m]; ok {
		return name
	}
	return "modal(?)"
}

// lineEdit is the staged state of the edit-line dialog. Nothing touches the
// order until the dialog commits.
type lineEdit struct {
	index     int
	quantity  int
	unitPrice money.Amount
	discount  money.Amount

	// The unit-price field starts read-only and opens only after the
	// supervisor PIN succeeds, for this dialog instance only.
	priceUnlocked bool
}

type paymentDraft struct {
	method   payment.Method
	tendered money.Amount
}

type drawerDraft struct {
	kind        drawer.EntryKind
	amount      money.Amount
	description string
}

type recallState struct {
	query      string
	selectedID string
}

type keybindDraft struct {
	bindings keybind.Bindings
}
