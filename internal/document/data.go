package document

// digit counts of the unmasked numbers
const (
	cpfLen  = 11
	cnpjLen = 14
	rgLen   = 9
)

// layouts mark digit positions with '#'; everything else is a literal separator.
const (
	cpfLayout  = "###.###.###-##"
	cnpjLayout = "##.###.###/####-##"
	rgLayout   = "##.###.###-#"
)

// headOfficeBranch is the CNPJ branch number of a company's head office.
var headOfficeBranch = [4]int{0, 0, 0, 1}

// CNPJ weights cycle 2..9 from the right.
var (
	cnpjFirstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// RG weights run 2..9 from the left.
var rgWeights = [8]int{2, 3, 4, 5, 6, 7, 8, 9}
