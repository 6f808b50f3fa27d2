package model

// ReadinessReport describes whether the linter can be invoked. JSON names
// follow the field names the admin client already understands.
type ReadinessReport struct {
	ExecEnabled        bool     `json:"execEnabled"`
	PHPBinary          string   `json:"phpBinary"`
	PHPBinaryExists    bool     `json:"phpBinaryExists"`
	PHPCSPath          string   `json:"phpcsPath"`
	PHPCSExists        bool     `json:"phpcsExists"`
	PHPCSVersionCmd    string   `json:"phpcsVersionCmd,omitempty"`
	PHPCSVersionOK     bool     `json:"phpcsVersionOk"`
	PHPCSVersionOutput string   `json:"phpcsVersionOutput"`
	Messages           []string `json:"messages"`
	Ready              bool     `json:"ready"`
}
