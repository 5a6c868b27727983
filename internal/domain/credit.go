package domain

// TotalPaid sums the given payments against a credit.
func TotalPaid(payments []Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// Remaining returns the amount still owed. Never negative.
func (c *Credit) Remaining(payments []Payment) float64 {
	remaining := c.Amount - TotalPaid(payments)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *Credit) IsFullyPaid(payments []Payment) bool {
	return TotalPaid(payments) >= c.Amount
}

// ProgressPercentage is a display value clamped to [0, 100]. Amount is positive
// by construction, the zero guard is there so a bad row can't divide by zero.
func (c *Credit) ProgressPercentage(payments []Payment) float64 {
	if c.Amount <= 0 {
		return 0
	}
	pct := TotalPaid(payments) / c.Amount * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
