package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/yantr-labs/yantr/internal/platform"
)

// ErrExists is returned when a generated file would overwrite an existing one.
var ErrExists = errors.New("file already exists")

// Data holds all template variables available to scaffold templates.
type Data struct {
	ProjectName string // e.g., "my-api"
	Framework   string // "express", "hono" or "fastify"
	Runtime     string // "node" or "bun"
	Name        string // e.g., "user-profile" (generated files only)
	PascalName  string // Derived: UserProfile
	CamelName   string // Derived: userProfile
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string // slash-separated, relative to OutputDir
}

// NewProjectData returns the data used to render a new project.
func NewProjectData(projectName, framework, runtime string) *Data {
	return &Data{ProjectName: projectName, Framework: framework, Runtime: runtime}
}

// NewNamedData returns the data used to render a named file such as a route.
func NewNamedData(name, framework string) *Data {
	words := splitWords(name)
	d := &Data{Name: name, Framework: framework}
	for i, w := range words {
		lower := []rune(strings.ToLower(w))
		title := string(unicode.ToUpper(lower[0])) + string(lower[1:])
		d.PascalName += title
		if i == 0 {
			d.CamelName += string(lower)
		} else {
			d.CamelName += title
		}
	}
	return d
}

// ProjectSet is the template set for a new project.
const ProjectSet = "project"

// RouteSet returns the route template set for framework.
func RouteSet(framework string) string {
	return "route-" + framework
}

// Sets returns the names of all embedded template sets.
func Sets() []string {
	entries, _ := fs.ReadDir(scaffoldFS, "scaffolds")
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// Generate renders the named template set into outputDir. Existing files
// are never overwritten.
func Generate(set string, data *Data, outputDir string) (*Result, error) {
	root := path.Join("scaffolds", set)
	if _, err := fs.Stat(scaffoldFS, root); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", set, err)
	}

	type file struct {
		tmplPath string
		outRel   string
	}
	var files []file
	err := fs.WalkDir(scaffoldFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := strings.TrimPrefix(p, root+"/")
		rel = strings.TrimSuffix(rel, ".tmpl")
		rel = strings.ReplaceAll(rel, "__name__", data.Name)
		files = append(files, file{tmplPath: p, outRel: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading template set %q: %w", set, err)
	}

	// Check every destination first so a conflict leaves nothing half-written.
	for _, f := range files {
		out := filepath.Join(outputDir, filepath.FromSlash(f.outRel))
		if _, err := os.Stat(out); err == nil {
			return nil, fmt.Errorf("%s: %w", out, ErrExists)
		}
	}

	result := &Result{OutputDir: outputDir}
	for _, f := range files {
		content, err := render(f.tmplPath, data)
		if err != nil {
			return nil, err
		}

		out := filepath.Join(outputDir, filepath.FromSlash(f.outRel))
		if err := os.MkdirAll(filepath.Dir(out), platform.DirMode); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", f.outRel, err)
		}
		if err := os.WriteFile(out, content, platform.FileMode); err != nil {
			return nil, fmt.Errorf("writing %s: %w", out, err)
		}
		result.Files = append(result.Files, f.outRel)
	}

	return result, nil
}

func render(tmplPath string, data *Data) ([]byte, error) {
	raw, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}
	if !strings.HasSuffix(tmplPath, ".tmpl") {
		return raw, nil
	}

	tmpl, err := template.New(path.Base(tmplPath)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}

// splitWords breaks "user-profile", "user_profile" or "userProfile" into words.
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r) && len(cur) > 0 && !unicode.IsUpper(cur[len(cur)-1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
