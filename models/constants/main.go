package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the HNF1B analysis
	pipelines and their associated
	services.
*/
type Classification string
type PathogenicityGroup string

type AminoAcid string

type UnparsedBucket string
