package spec

// CompareSpec configures one comparison run: which two result-file families
// to pair, the category vocabulary for the per-category summary, and the
// implementation-notes boilerplate appended to the report.
type CompareSpec struct {
	Title      string   `yaml:"title"`
	Baseline   Source   `yaml:"baseline"`
	Target     Source   `yaml:"target"`
	Categories []string `yaml:"categories"`
	Notes      []string `yaml:"notes"`
}

type Source struct {
	Label  string `yaml:"label"`
	Prefix string `yaml:"prefix"`
}
