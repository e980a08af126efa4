package profile

// Duration is a whole-unit elapsed span: Years >= 0, Months in 0..11.
type Duration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

// TotalMonths returns the span in months.
func (d Duration) TotalMonths() int {
	return d.Years*12 + d.Months
}

// durationFromMonths decomposes a month count, clamping negatives to zero.
func durationFromMonths(months int) Duration {
	if months < 0 {
		months = 0
	}
	return Duration{Years: months / 12, Months: months % 12}
}

// Elapsed computes the whole years and months between start and end. A range
// with end before start is malformed data, not a fault: the duration clamps
// to zero and ok is false so callers can surface the data-quality issue.
func Elapsed(start, end YearMonth) (d Duration, ok bool) {
	months := end.Index() - start.Index()
	return durationFromMonths(months), months >= 0
}

// CareerDuration computes the elapsed duration of one career entry, resolving
// open-ended entries against now. ok is false when the entry's dates are
// malformed: end precedes start, or an entry flagged current also carries an
// end date (the current flag wins and the duration runs to now).
func CareerDuration(c *Career, now YearMonth) (d Duration, ok bool) {
	d, ok = Elapsed(c.StartDate, c.EndOrNow(now))
	if c.Current && c.EndDate != nil {
		ok = false
	}
	return d, ok
}

// TotalTenure sums career durations into one aggregate. Months are summed
// first and decomposed once at the end; summing pre-decomposed years and
// months separately would drop carries. Malformed entries contribute zero.
func TotalTenure(careers []Career, now YearMonth) Duration {
	total := 0
	for i := range careers {
		d, _ := CareerDuration(&careers[i], now)
		total += d.TotalMonths()
	}
	return durationFromMonths(total)
}
