package aminoAcid

import (
	"hnf1b/analysis/models/constants"
)

// Ter is the stop symbol; substitutions resolving to it are
// termination (nonsense) variants.
const Ter constants.AminoAcid = "Ter"

var validThreeLetter = map[constants.AminoAcid]bool{
	"Ala": true, "Cys": true, "Asp": true, "Glu": true, "Phe": true,
	"Gly": true, "His": true, "Ile": true, "Lys": true, "Leu": true,
	"Met": true, "Asn": true, "Pro": true, "Gln": true, "Arg": true,
	"Ser": true, "Thr": true, "Val": true, "Trp": true, "Tyr": true,
	Ter: true,
}

var singleToThree = map[string]constants.AminoAcid{
	"A": "Ala", "C": "Cys", "D": "Asp", "E": "Glu", "F": "Phe",
	"G": "Gly", "H": "His", "I": "Ile", "K": "Lys", "L": "Leu",
	"M": "Met", "N": "Asn", "P": "Pro", "Q": "Gln", "R": "Arg",
	"S": "Ser", "T": "Thr", "V": "Val", "W": "Trp", "Y": "Tyr",
	// Stop codons
	"*": Ter, "X": Ter,
}

func IsValidThreeLetter(code constants.AminoAcid) bool {
	return validThreeLetter[code]
}

// FromSingleLetter translates a one-letter residue code to its
// three-letter form. Unknown letters are returned as-is so that
// downstream validation can reject them.
func FromSingleLetter(code string) constants.AminoAcid {
	if three, ok := singleToThree[code]; ok {
		return three
	}
	return constants.AminoAcid(code)
}

// IsNucleotideSymbol reports whether the letter is one of the four
// DNA base symbols. Used to guard the bare-pattern fallback against
// misreading a coding-sequence change as a protein change.
func IsNucleotideSymbol(letter string) bool {
	switch letter {
	case "A", "T", "G", "C":
		return true
	}
	return false
}
