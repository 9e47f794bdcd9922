package spectrum

import "fmt"

// Elementwise combinators over spectra sharing one domain. Each writes into
// result and fails with ErrDomainMismatch when any operand differs.

func checkDomains(result *Spectrum, operands ...*Spectrum) error {
	for i, op := range operands {
		if !result.SameDomain(op) {
			return fmt.Errorf("%w: operand %d is [%d, %d], result is [%d, %d]",
				ErrDomainMismatch, i, op.start, op.end, result.start, result.end)
		}
	}
	return nil
}

// Mult2 computes a*b
func Mult2(a, b, result *Spectrum) error {
	if err := checkDomains(result, a, b); err != nil {
		return err
	}
	for i := range result.data {
		result.data[i] = a.data[i] * b.data[i]
	}
	return nil
}

// Mult4 computes a*b*c*d
func Mult4(a, b, c, d, result *Spectrum) error {
	if err := checkDomains(result, a, b, c, d); err != nil {
		return err
	}
	for i := range result.data {
		result.data[i] = a.data[i] * b.data[i] * c.data[i] * d.data[i]
	}
	return nil
}

// Diff2 computes a-b
func Diff2(a, b, result *Spectrum) error {
	if err := checkDomains(result, a, b); err != nil {
		return err
	}
	for i := range result.data {
		result.data[i] = a.data[i] - b.data[i]
	}
	return nil
}

// NormDiff2 computes (a-b)/a using the raw values of a
func NormDiff2(a, b, result *Spectrum) error {
	if err := checkDomains(result, a, b); err != nil {
		return err
	}
	for i := range result.data {
		av := a.data[i]
		result.data[i] = (av - b.data[i]) / av
	}
	return nil
}

// Div2 computes a/b
func Div2(a, b, result *Spectrum) error {
	if err := checkDomains(result, a, b); err != nil {
		return err
	}
	for i := range result.data {
		result.data[i] = a.data[i] / b.data[i]
	}
	return nil
}
