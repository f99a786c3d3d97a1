package results

// ResultSet is one loaded benchmark-run file: the run timestamp plus a
// mapping of benchmark name to elapsed seconds.
//
// Timestamps are compared lexicographically, never parsed as dates. The
// harnesses on both sides write ISO-like timestamps, so string order and
// chronological order agree.
type ResultSet struct {
	Timestamp string             `json:"timestamp"`
	Results   map[string]float64 `json:"results"`

	// Source and Path are filled by the loader, not the file itself.
	Source string `json:"-"`
	Path   string `json:"-"`
}

// Family describes one family of result files: a display label and the
// filename prefix its harness uses when writing results.
type Family struct {
	Label  string
	Prefix string
}
