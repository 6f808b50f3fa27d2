package model

// Report modes.
const (
	ReportDetailed = "detailed"
	ReportSummary  = "summary"
)

// Defaults applied when a stored or submitted option is invalid.
const (
	DefaultReportMode = ReportDetailed
	DefaultBatchSize  = 50
	DefaultPHPVersion = "8.3"
	DefaultSkipVendor = true
)

// VendorExclusion is the pattern applied when SkipVendor is set.
const VendorExclusion = "vendor/*"

// SupportedPHPVersions lists the accepted target versions.
var SupportedPHPVersions = []string{"7.4", "8.0", "8.1", "8.2", "8.3", "8.4"}

// SupportedBatchSizes lists the accepted batch sizes.
var SupportedBatchSizes = []int{10, 25, 50, 75, 100}

// Options are the process-wide scan settings.
type Options struct {
	ReportMode string `json:"report_mode" yaml:"report_mode" validate:"oneof=detailed summary"`
	BatchSize  int    `json:"batch_size" yaml:"batch_size" validate:"oneof=10 25 50 75 100"`
	PHPVersion string `json:"php_version" yaml:"php_version" validate:"oneof=7.4 8.0 8.1 8.2 8.3 8.4"`
	SkipVendor bool   `json:"skip_vendor" yaml:"skip_vendor"`
}

// DefaultOptions returns the defaults for every option.
func DefaultOptions() Options {
	return Options{
		ReportMode: DefaultReportMode,
		BatchSize:  DefaultBatchSize,
		PHPVersion: DefaultPHPVersion,
		SkipVendor: DefaultSkipVendor,
	}
}

// Exclusions returns the exclusion patterns implied by the options.
func (o Options) Exclusions() []string {
	if o.SkipVendor {
		return []string{VendorExclusion}
	}

	return []string{}
}
