package daemon

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/berrythewa/clipcycle/"

// The native hotkey library opens an X11 connection in its init on Linux,
// so only the binaries may link it.
func TestImports_NoNativeHotkeys(t *testing.T) {
	forbidden := map[string]bool{
		"golang.design/x/hotkey":              true,
		modulePath + "internal/hotkey/native": true,
	}

	seen := map[string]bool{}
	var visit func(pkg string, chain []string)
	visit = func(pkg string, chain []string) {
		if seen[pkg] {
			return
		}
		seen[pkg] = true

		dir := filepath.Join("..", "..", filepath.FromSlash(strings.TrimPrefix(pkg, modulePath)))
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files, "no sources for %s", pkg)

		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			require.NoError(t, err)

			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)

				next := append(append([]string{}, chain...), path)
				if forbidden[path] {
					t.Errorf("%s imports %s", strings.Join(chain, " -> "), path)
				}
				if strings.HasPrefix(path, modulePath) {
					visit(path, next)
				}
			}
		}
	}

	for _, pkg := range []string{
		"internal/daemon",
		"internal/config",
		"internal/clipboard",
		"internal/hotkey",
		"internal/mocks",
		"internal/cli",
		"internal/cli/cmd",
	} {
		visit(modulePath+pkg, []string{modulePath + pkg})
	}
}
