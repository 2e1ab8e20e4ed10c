package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/riderctl/internal/errors"
)

// FileSyntaxCheck validates the syntax of the files discovery reads:
// the riderctl config file and Toolbox settings.
type FileSyntaxCheck struct {
	files []string
}

var _ Check = (*FileSyntaxCheck)(nil)

// NewFileSyntaxCheck creates a syntax check over files. Empty entries are
// ignored.
func NewFileSyntaxCheck(files ...string) *FileSyntaxCheck {
	var kept []string
	for _, f := range files {
		if f != "" {
			kept = append(kept, f)
		}
	}
	return &FileSyntaxCheck{files: kept}
}

// Name returns the unique identifier for this check.
func (c *FileSyntaxCheck) Name() string {
	return "file-syntax"
}

// Category returns the grouping for this check.
func (c *FileSyntaxCheck) Category() string {
	return "config"
}

// syntaxFileResult represents the validation result for a single file.
type syntaxFileResult struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Run executes the syntax validation check.
func (c *FileSyntaxCheck) Run(context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Details:  make(map[string]any),
	}

	var fileResults []syntaxFileResult
	var errorCount, passCount, infoCount int
	for _, path := range c.files {
		fr := validateFile(path)
		fileResults = append(fileResults, fr)
		switch fr.Status {
		case "pass":
			passCount++
		case "error":
			errorCount++
		case "info":
			infoCount++
		}
	}

	result.Details["files"] = fileResults
	result.Details["checked"] = len(fileResults)
	result.Details["passed"] = passCount
	result.Details["errors"] = errorCount
	result.Details["missing"] = infoCount

	switch {
	case errorCount > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d file(s) have syntax errors", errorCount)
		result.FixHint = "review the error details and fix the syntax in each file"
	case passCount > 0:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d file(s) validated successfully", passCount)
	default:
		result.Status = SeverityInfo
		result.Message = "no files found to validate"
	}
	return result
}

// validateFile checks if a file is syntactically valid.
func validateFile(filePath string) syntaxFileResult {
	fr := syntaxFileResult{Path: filePath}

	data, err := os.ReadFile(filePath)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			fr.Status = "info"
			fr.Message = "file does not exist"
		case errors.Is(err, os.ErrPermission):
			fr.Status = "error"
			fr.Message = fmt.Sprintf("permission denied: %v", err)
		default:
			fr.Status = "error"
			fr.Message = fmt.Sprintf("read error: %v", err)
		}
		return fr
	}

	// Empty files are valid (no content to parse)
	if len(data) == 0 {
		fr.Status = "pass"
		fr.Message = "empty file"
		return fr
	}

	var v any
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		err = json.Unmarshal(data, &v)
		if err != nil {
			err = errors.New(formatJSONError(err, data))
		}
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &v)
		if err != nil {
			err = errors.New(formatYAMLError(err))
		}
	case ".toml":
		err = toml.Unmarshal(data, &v)
		if err != nil {
			err = errors.New(formatTOMLError(err))
		}
	default:
		fr.Status = "info"
		fr.Message = "unknown file type, not validated"
		return fr
	}

	if err != nil {
		fr.Status = "error"
		fr.Message = err.Error()
		return fr
	}
	fr.Status = "pass"
	return fr
}

// formatJSONError extracts position information from JSON syntax errors.
func formatJSONError(err error, data []byte) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(data, int(syntaxErr.Offset))
		return fmt.Sprintf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(data, int(typeErr.Offset))
		return fmt.Sprintf("JSON type error at line %d, column %d: %s", line, col, typeErr.Error())
	}

	return fmt.Sprintf("JSON error: %v", err)
}

// formatYAMLError strips the library prefix; yaml.v3 already reports the
// line in its message.
func formatYAMLError(err error) string {
	return "YAML syntax error: " + strings.TrimPrefix(err.Error(), "yaml: ")
}

// formatTOMLError extracts position information from TOML decode errors.
func formatTOMLError(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("TOML syntax error at line %d, column %d: %s",
			row, col, decodeErr.Error())
	}

	return fmt.Sprintf("TOML error: %v", err)
}

// offsetToLineCol converts a byte offset to line and column numbers.
// Lines and columns are 1-indexed.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	if offset > len(data) {
		offset = len(data)
	}
	if offset < 0 {
		offset = 0
	}

	line = 1
	lineStart := 0

	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col = offset - lineStart + 1
	return line, col
}
