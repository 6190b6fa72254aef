package payslip

import (
	"context"
	"fmt"
)

const ContentType = "application/pdf"

// Store persists rendered payslips.
type Store interface {
	// Save writes body under key and returns the reference kept on the
	// payroll row.
	Save(ctx context.Context, key string, body []byte) (string, error)
	// URL resolves a saved reference into a link a client can download.
	URL(ctx context.Context, ref string) (string, error)
}

func ObjectKey(payrollID string) string {
	return fmt.Sprintf("payslip_%s.pdf", payrollID)
}
