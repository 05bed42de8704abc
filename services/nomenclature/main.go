package nomenclature

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"hnf1b/analysis/models/constants"
	aminoAcid "hnf1b/analysis/models/constants/amino-acid"
)

/*
	Parses free-text clinical annotations (typically a variant
	calling tool's output string, possibly carrying both
	nucleotide- and protein-level notation) into the canonical
	three-letter protein-change form p.<Ref3><Pos><Alt3>.

	The cascade is an ordered list of (pattern, extractor) stages
	evaluated until one succeeds ; a string failing every stage is
	never fatal, it is reported as Unparsed and the pipeline
	continues.
*/

type Reason string

const (
	ReasonNone           Reason = ""
	ReasonNoMatch        Reason = "no pattern matched"
	ReasonInvalidResidue Reason = "unknown residue code"
)

// Outcome is the tagged result of one parse attempt.
type Outcome struct {
	Parsed bool
	Reason Reason // set when !Parsed

	Ref     constants.AminoAcid
	Residue int
	Alt     constants.AminoAcid
}

// Name renders the canonical identifier, e.g. p.Arg182Trp.
func (o Outcome) Name() string {
	return fmt.Sprintf("p.%s%d%s", o.Ref, o.Residue, o.Alt)
}

// IsTermination reports whether the substitution resolves to the
// stop symbol (a nonsense variant).
func (o Outcome) IsTermination() bool {
	return o.Alt == aminoAcid.Ter
}

var (
	// interior of a parenthesized protein notation:
	// HNF1B(NM_000458.4):c.544C>T (p.Arg182Trp)
	parenProteinRe = regexp.MustCompile(`\(p\.([^)]+)\)`)

	// p.Xxx###Xxx three-letter codes (alt may be Ter, * or X)
	threeLetterRe = regexp.MustCompile(`p\.([A-Z][a-z]{2})(\d+)([A-Z][a-z]{2}|Ter|\*|X)`)

	// p.X###X single-letter codes
	singleLetterRe = regexp.MustCompile(`p\.([A-Z])(\d+)([A-Z*X])`)

	// bare X###X, last-resort fallback without the p. prefix
	bareSingleRe = regexp.MustCompile(`([A-Z])(\d+)([A-Z*X])`)

	codingPrefixRe = regexp.MustCompile(`^c\.`)
)

// Parse runs the fallback cascade over one annotation field.
// Termination substitutions are still successful parses here; the
// extraction pipeline decides their exclusion.
func Parse(text string) Outcome {
	var out Outcome
	var ok bool

	// Stage 1: prefer the parenthesized (p. ...) substring when present
	if m := parenProteinRe.FindStringSubmatch(text); m != nil {
		candidate := "p." + m[1]
		if out, ok = matchThreeLetter(candidate); !ok {
			out, ok = matchSingleLetter(candidate)
		}
	}

	// Stage 2: three-letter notation anywhere in the raw text
	if !ok {
		out, ok = matchThreeLetter(text)
	}

	// Stage 3: single-letter notation with the p. prefix
	if !ok {
		out, ok = matchSingleLetter(text)
	}

	// Stage 4: bare single-letter notation, guarded against
	// coding-sequence changes like c.232G>T
	if !ok && !codingPrefixRe.MatchString(text) {
		if m := bareSingleRe.FindStringSubmatch(text); m != nil {
			ref, alt := m[1], m[3]
			if !aminoAcid.IsNucleotideSymbol(ref) || !aminoAcid.IsNucleotideSymbol(alt) {
				out = Outcome{
					Parsed:  true,
					Ref:     aminoAcid.FromSingleLetter(ref),
					Residue: mustAtoi(m[2]),
					Alt:     aminoAcid.FromSingleLetter(alt),
				}
				ok = true
			}
		}
	}

	if !ok {
		return Outcome{Reason: ReasonNoMatch}
	}
	return validate(out)
}

func matchThreeLetter(text string) (Outcome, bool) {
	m := threeLetterRe.FindStringSubmatch(text)
	if m == nil {
		return Outcome{}, false
	}
	alt := constants.AminoAcid(m[3])
	if alt == "X" {
		alt = aminoAcid.Ter
	}
	return Outcome{
		Parsed:  true,
		Ref:     constants.AminoAcid(m[1]),
		Residue: mustAtoi(m[2]),
		Alt:     alt,
	}, true
}

func matchSingleLetter(text string) (Outcome, bool) {
	m := singleLetterRe.FindStringSubmatch(text)
	if m == nil {
		return Outcome{}, false
	}
	return Outcome{
		Parsed:  true,
		Ref:     aminoAcid.FromSingleLetter(m[1]),
		Residue: mustAtoi(m[2]),
		Alt:     aminoAcid.FromSingleLetter(m[3]),
	}, true
}

// validate rejects resolved codes outside the 20 standard amino
// acids plus the stop symbol (e.g. a matched B, or a three-letter
// pattern whose alt stayed a literal *).
func validate(out Outcome) Outcome {
	if !aminoAcid.IsValidThreeLetter(out.Ref) || !aminoAcid.IsValidThreeLetter(out.Alt) {
		return Outcome{Reason: ReasonInvalidResidue}
	}
	return out
}

func mustAtoi(digits string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(digits))
	return n
}
