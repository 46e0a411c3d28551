package domain

// Result is the checksum of one source.
type Result struct {
	// Path is the file the checksum was computed over. Empty for readers.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Algorithm is the name of the checksum algorithm.
	Algorithm string `json:"algorithm" yaml:"algorithm"`

	// Checksum is the public (finalized) checksum value.
	Checksum uint32 `json:"checksum" yaml:"checksum"`

	// Size is the number of payload bytes covered by Checksum.
	Size int64 `json:"size" yaml:"size"`

	// Segments is the number of independently checksummed segments merged
	// into Checksum. It is 1 for sequential runs.
	Segments int `json:"segments" yaml:"segments"`
}

// Report groups the results of one run.
type Report struct {
	Algorithm string    `json:"algorithm" yaml:"algorithm"`
	Results   []*Result `json:"results" yaml:"results"`
}
