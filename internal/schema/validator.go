package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Issue represents a single validation error from the schema.
type Issue struct {
	Path    string // Instance location (e.g., "/packageManager", "/components/auth/files")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// String renders the issue as "path: message", or just the message at the root.
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Result contains the outcome of a schema validation.
type Result struct {
	Valid  bool
	Issues []Issue
}

// Error is returned by callers that treat an invalid document as fatal.
type Error struct {
	Document string
	Issues   []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("%s does not match its schema: %s", e.Document, strings.Join(parts, "; "))
}

// Validator holds one embedded schema, compiled on first use.
type Validator struct {
	name   string
	source []byte

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// New returns a Validator for the schema document in source. The name is
// used as the schema resource URL and in error messages.
func New(name string, source []byte) *Validator {
	return &Validator{name: name, source: source}
}

func (v *Validator) schema() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(v.source))
		if err != nil {
			v.err = fmt.Errorf("unmarshaling schema %s: %w", v.name, err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(v.name, doc); err != nil {
			v.err = fmt.Errorf("adding schema resource %s: %w", v.name, err)
			return
		}
		v.compiled, v.err = c.Compile(v.name)
		if v.err != nil {
			v.err = fmt.Errorf("compiling schema %s: %w", v.name, v.err)
		}
	})
	return v.compiled, v.err
}

// Validate validates raw JSON bytes against the schema.
// The error return is for malformed JSON or schema compilation failures.
// Validation issues are returned in the Result.
func (v *Validator) Validate(data []byte) (*Result, error) {
	s, err := v.schema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = s.Validate(inst)
	if err == nil {
		return &Result{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &Result{
		Valid:  false,
		Issues: extractIssues(ve),
	}, nil
}

// Check validates data and converts an invalid result into an *Error naming document.
func (v *Validator) Check(document string, data []byte) error {
	res, err := v.Validate(data)
	if err != nil {
		return fmt.Errorf("validating %s: %w", document, err)
	}
	if !res.Valid {
		return &Error{Document: document, Issues: res.Issues}
	}
	return nil
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return deduplicate(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "oneOf" || keyword == "anyOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, Issue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}

// deduplicate removes duplicate issues (same path + keyword + message).
func deduplicate(issues []Issue) []Issue {
	seen := make(map[string]bool)
	var result []Issue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
