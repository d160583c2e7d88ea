package postgres

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary columns are NUMERIC. They cross the wire as text so no precision is
// lost between Postgres and decimal.

func numericArg(v float64) string {
	return decimal.NewFromFloat(v).String()
}

type numericText struct {
	raw string
}

func (n *numericText) float() (float64, error) {
	d, err := decimal.NewFromString(n.raw)
	if err != nil {
		return 0, fmt.Errorf("parse numeric %q: %w", n.raw, err)
	}
	return d.InexactFloat64(), nil
}
