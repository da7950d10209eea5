package installer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/yantr-labs/yantr/internal/pkgmanager"
	"github.com/yantr-labs/yantr/internal/project"
	"github.com/yantr-labs/yantr/internal/registry"
)

const fixture = `
	{
	  "components": {
	    "base": {
	      "name": "Base",
	      "frameworkSpecific": true,
	      "files": {
	        "express": ["templates/express/base/error-handler.ts"],
	        "hono": ["templates/hono/base/error-handler.ts", "templates/hono/base/validator.ts"]
	      },
	      "dependencies": ["zod"]
	    },
	    "logger": {
	      "name": "Logger",
	      "files": ["templates/common/logger/logger.ts"],
	      "dependencies": ["pino"]
	    },
	    "auth": {
	      "name": "Authentication",
	      "files": ["templates/common/auth/jwt.ts", "templates/common/auth/refresh.ts"],
	      "dependencies": ["jsonwebtoken"],
	      "devDependencies": {"common": ["@types/jsonwebtoken"]}
	    },
	    "security": {
	      "name": "Security",
	      "frameworkSpecific": true,
	      "files": {
	        "fastify": ["templates/fastify/security/rate-limit.ts"]
	      },
	      "dependencies": {"common": ["helmet"], "bun": ["ignored"]}
	    },
	    "cors": {
	      "name": "CORS",
	      "frameworkSpecific": true,
	      "files": {"fastify": ["templates/fastify/cors/cors.ts"]}
	    },
	    "database": {
	      "name": "Database",
	      "variants": {
	        "postgres-prisma": {
	          "label": "PostgreSQL + Prisma",
	          "files": ["templates/database/postgres-prisma/client.ts"],
	          "dependencies": ["@prisma/client", "zod"],
	          "devDependencies": ["prisma"]
	        },
	        "mongodb-mongoose": {
	          "label": "MongoDB + Mongoose",
	          "files": ["templates/database/mongodb-mongoose/connection.ts"],
	          "dependencies": ["mongoose"]
	        }
	      }
	    }
	  }
	}
`

func loadFixture(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Parse([]byte(dedent.Dedent(fixture)), registry.FormatJSON)
	if err != nil {
		t.Fatalf("parsing fixture registry: %v", err)
	}
	return reg
}

// fakeFetcher serves template content derived from the path and fails for
// paths listed in fail.
type fakeFetcher struct {
	fail    map[string]bool
	fetched []string
}

func (f *fakeFetcher) Fetch(_ context.Context, path string) (string, error) {
	f.fetched = append(f.fetched, path)
	if f.fail[path] {
		return "", errors.New("404 not found")
	}
	return fmt.Sprintf("// %s\n", path), nil
}

type installCall struct {
	manager pkgmanager.Manager
	pkgs    []string
	dir     string
	dev     bool
}

type fakeInstaller struct {
	calls []installCall
	err   error
}

func (f *fakeInstaller) Install(_ context.Context, m pkgmanager.Manager, pkgs []string, dir string, dev bool) error {
	f.calls = append(f.calls, installCall{manager: m, pkgs: pkgs, dir: dir, dev: dev})
	return f.err
}

// recordingStore keeps a copy of every saved installed set.
type recordingStore struct {
	saves [][]string
	err   error
}

func (s *recordingStore) Save(cfg *project.Config) error {
	if s.err != nil {
		return s.err
	}
	s.saves = append(s.saves, append([]string(nil), cfg.InstalledComponents...))
	return nil
}
