package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// flag is a boolean request field accepting "1"/"0" and "true"/"false" in
// both form posts and JSON bodies.
type flag bool

// UnmarshalParam implements binding.BindUnmarshaler for form values.
func (f *flag) UnmarshalParam(param string) error {
	*f = flag(parseFlag(param))
	return nil
}

// UnmarshalJSON accepts JSON booleans, numbers and strings.
func (f *flag) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case bool:
		*f = flag(v)
	case float64:
		*f = flag(v == 1)
	case string:
		*f = flag(parseFlag(v))
	case nil:
		*f = false
	default:
		return fmt.Errorf("invalid flag value %s", string(data))
	}

	return nil
}

// looseInt is an integer request field that never fails to bind; malformed
// values become zero.
type looseInt int

// UnmarshalParam implements binding.BindUnmarshaler for form values.
func (i *looseInt) UnmarshalParam(param string) error {
	*i = looseInt(parseInt(param))
	return nil
}

// UnmarshalJSON accepts JSON numbers and numeric strings.
func (i *looseInt) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*i = looseInt(int(v))
	case string:
		*i = looseInt(parseInt(v))
	default:
		*i = 0
	}

	return nil
}

func parseInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}

	return n
}

func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// targetRequest names a plugin or theme.
type targetRequest struct {
	Type string `form:"type" json:"type"`
	Slug string `form:"slug" json:"slug"`
}

// progressRequest starts a session scan.
type progressRequest struct {
	targetRequest

	BatchSize  looseInt `form:"batch_size" json:"batch_size"`
	SkipVendor *flag    `form:"skip_vendor" json:"skip_vendor"`
}

// batchRequest asks for one batch of a session.
type batchRequest struct {
	ScanID      string   `form:"scan_id" json:"scan_id"`
	BatchNumber looseInt `form:"batch_number" json:"batch_number"`
}

// stopRequest optionally scopes a stop to one session.
type stopRequest struct {
	ScanID string `form:"scan_id" json:"scan_id"`
}

// optionsRequest carries submitted options loosely so that malformed values
// are clamped instead of rejected.
type optionsRequest struct {
	ReportMode string    `form:"report_mode" json:"report_mode"`
	BatchSize  *looseInt `form:"batch_size" json:"batch_size"`
	PHPVersion string    `form:"php_version" json:"php_version"`
	SkipVendor *flag     `form:"skip_vendor" json:"skip_vendor"`
}

// toOptions maps the request onto Options; missing fields take their
// defaults.
func (r optionsRequest) toOptions() m.Options {
	options := m.DefaultOptions()

	if r.ReportMode != "" {
		options.ReportMode = strings.TrimSpace(r.ReportMode)
	}

	if r.BatchSize != nil {
		options.BatchSize = int(*r.BatchSize)
	}

	if r.PHPVersion != "" {
		options.PHPVersion = strings.TrimSpace(r.PHPVersion)
	}

	if r.SkipVendor != nil {
		options.SkipVendor = bool(*r.SkipVendor)
	}

	return options
}
