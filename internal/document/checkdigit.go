package document

// CPFCheckDigits computes both CPF check digits: weights 10..2 over the
// base, then 11..2 over the base plus the first check digit.
func CPFCheckDigits(base [9]int) [2]int {
	first := mod11(weightedDesc(base[:], 10))

	ten := append(base[:], first)
	second := mod11(weightedDesc(ten, 11))

	return [2]int{first, second}
}

// CNPJCheckDigits computes both CNPJ check digits from the 12 base digits.
func CNPJCheckDigits(base [12]int) [2]int {
	sum := 0
	for i, d := range base {
		sum += d * cnpjFirstWeights[i]
	}
	first := mod11(sum)

	sum = 0
	for i, d := range append(base[:], first) {
		sum += d * cnpjSecondWeights[i]
	}
	second := mod11(sum)

	return [2]int{first, second}
}

// RGCheckDigit computes the RG check digit as 11 - (sum mod 11) over
// weights 2..9. Results of 10 and 11 both map to 0 so the number stays
// purely decimal.
func RGCheckDigit(base [8]int) int {
	sum := 0
	for i, d := range base {
		sum += d * rgWeights[i]
	}
	dv := 11 - sum%11
	if dv >= 10 {
		return 0
	}
	return dv
}

// weightedDesc sums digits against weights counting down from start.
func weightedDesc(digits []int, start int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (start - i)
	}
	return sum
}

// mod11 maps a weighted sum to a check digit: remainders below 2 give 0,
// anything else gives 11 - remainder.
func mod11(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
