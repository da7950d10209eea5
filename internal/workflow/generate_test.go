package workflow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/yantr-labs/yantr/internal/scaffold"
)

func TestGenerateRoute(t *testing.T) {
	env, _, _ := newTestEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"name":"api","dependencies":{"hono":"^4"}}`)
	writeFile(t, filepath.Join(dir, "src", "index.ts"), "")
	if _, err := Init(context.Background(), env, InitOptions{Dir: dir, SkipInstall: true}); err != nil {
		t.Fatal(err)
	}

	files, err := Generate(context.Background(), env, GenerateOptions{Dir: dir, Type: "route", Name: "users"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"src/routes/users.routes.ts"}) {
		t.Errorf("files = %v", files)
	}

	data, err := os.ReadFile(filepath.Join(dir, "src", "routes", "users.routes.ts"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "new Hono()") {
		t.Errorf("expected a hono route:\n%s", data)
	}

	_, err = Generate(context.Background(), env, GenerateOptions{Dir: dir, Type: "route", Name: "users"})
	if !errors.Is(err, scaffold.ErrExists) {
		t.Errorf("regenerating err = %v, want ErrExists", err)
	}
}

func TestGenerateErrors(t *testing.T) {
	env, _, _ := newTestEnv(t)
	dir := initProject(t, env)

	if _, err := Generate(context.Background(), env, GenerateOptions{Dir: dir, Type: "controller", Name: "users"}); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("err = %v, want ErrUnknownGenerator", err)
	}
	if _, err := Generate(context.Background(), env, GenerateOptions{Dir: dir, Type: "route", Name: "../escape"}); err == nil {
		t.Error("expected error for invalid name")
	}
}
