package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateTransactionCode builds the human-readable sale number printed on
// receipts, e.g. TRX-20260901-142233-512-0481.
func GenerateTransactionCode() string {
	now := time.Now().UTC()

	datePart := now.Format("20060102-150405")
	millis := now.Nanosecond() / int(time.Millisecond)

	// 4-digit cryptographic random
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf(
		"TRX-%s-%03d-%04d",
		datePart,
		millis,
		n.Int64(),
	)
}
