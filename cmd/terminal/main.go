package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"kasirpos/internal/auth"
	"kasirpos/internal/config"
	"kasirpos/internal/db"
	"kasirpos/internal/drawer"
	"kasirpos/internal/heldorder"
	"kasirpos/internal/keybind"
	"kasirpos/internal/logger"
	"kasirpos/internal/order"
	"kasirpos/internal/payment"
	"kasirpos/internal/product"
	"kasirpos/internal/receipt"
	"kasirpos/internal/session"
	"kasirpos/internal/shift"
	"kasirpos/internal/terminal"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	pinHash := cfg.SupervisorPINHash
	if pinHash == "" {
		// Fresh install without a configured supervisor PIN; fall back to the
		// factory default so the lock screen stays usable.
		var err error
		pinHash, err = auth.HashPin("1234")
		if err != nil {
			log.Fatalf("failed to hash default PIN: %v", err)
		}
		log.Println("SUPERVISOR_PIN_HASH not set, using factory default PIN 1234")
	}

	bindings, err := keybind.Load(cfg.KeybindPath)
	if err != nil {
		log.Fatalf("failed to load keybinds from %s: %v", cfg.KeybindPath, err)
	}

	cashierName := os.Getenv("CASHIER_NAME")
	if cashierName == "" {
		cashierName = "Kasir"
	}
	tctx := session.NewTerminalContext(session.New(cashierName), cfg.StoreName)

	productRepo := product.NewRepository(database)

	drawerRepo := drawer.NewRepository(database)
	drawerSvc := drawer.NewService(drawerRepo, tctx)

	printer := receipt.NewPrinter(os.Stdout, cfg.ReceiptWidth, receipt.Header{
		StoreName: cfg.StoreName,
		Address:   cfg.StoreAddress,
		Phone:     cfg.StorePhone,
	})

	txRepo := payment.NewRepository(database)
	paymentSvc := payment.NewService(txRepo, printer, tctx)

	shiftSvc := shift.NewService(drawerRepo, txRepo, tctx)

	dispatcher := terminal.New(terminal.Params{
		Context:     tctx,
		Order:       order.New(),
		Held:        heldorder.NewRegistry(),
		Products:    productRepo,
		Drawer:      drawerSvc,
		Payments:    paymentSvc,
		Shifts:      shiftSvc,
		Pins:        auth.NewPinChecker(pinHash),
		Bindings:    bindings,
		KeybindPath: cfg.KeybindPath,
	})

	log.Printf("🛒 %s terminal ready, session %s (%s)", cfg.StoreName, tctx.SessionID(), cashierName)
	repl(dispatcher, tctx)
}

// repl is a line-driven stand-in for the keyboard and barcode scanner:
// "key F12" presses a key, a bare line scans or searches an item.
func repl(d *terminal.Dispatcher, tctx *session.TerminalContext) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := handleLine(d, tctx, line); err != nil {
			fmt.Fprintf(os.Stderr, "! %v\n", err)
		}
	}
}

func handleLine(d *terminal.Dispatcher, tctx *session.TerminalContext, line string) error {
	ctx := tctx.WithContext(context.Background())

	fields := strings.Fields(line)
	switch fields[0] {
	case "key":
		if len(fields) < 2 {
			return fmt.Errorf("usage: key <name>")
		}
		return d.HandleKey(ctx, fields[1])

	case "sel":
		if len(fields) < 2 {
			return fmt.Errorf("usage: sel <index>")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad index: %s", fields[1])
		}
		return d.SelectLine(n)

	case "label":
		d.SetCustomerLabel(strings.TrimSpace(strings.TrimPrefix(line, "label")))
		return nil

	case "unlock":
		if len(fields) < 2 {
			return fmt.Errorf("usage: unlock <pin>")
		}
		return d.Unlock(fields[1])

	case "exit", "quit":
		tctx.End()
		logger.Sync()
		os.Exit(0)
		return nil

	default:
		// Anything else is a scan or search term, optionally "<term> x<qty>".
		term, qty := line, 1
		if n := len(fields); n > 1 && strings.HasPrefix(fields[n-1], "x") {
			if parsed, err := strconv.Atoi(fields[n-1][1:]); err == nil && parsed > 0 {
				qty = parsed
				term = strings.TrimSpace(strings.TrimSuffix(line, fields[n-1]))
			}
		}
		return d.AddItem(ctx, term, qty)
	}
}
