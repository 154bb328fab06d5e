package install

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/reactinit/cmd/reactinit/internal/scaffold"
	"github.com/go-drift/reactinit/cmd/reactinit/internal/workspace"
)

const initializerOutput = `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [],
  theme: {
    extend: {},
  },
  plugins: [],
}
`

// fakeRunner records commands and runs an optional hook per command.
// Executables listed in missing are not found by LookPath.
type fakeRunner struct {
	calls   []Command
	hook    func(Command) error
	missing []string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	for _, m := range f.missing {
		if m == name {
			return "", exec.ErrNotFound
		}
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(_ context.Context, c Command) error {
	f.calls = append(f.calls, c)
	if f.hook != nil {
		return f.hook(c)
	}
	return nil
}

func newWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	cfg := scaffold.Defaults()
	cfg.Features.Tailwind = true
	files, err := scaffold.Resolve(cfg)
	require.NoError(t, err)
	m, err := scaffold.ResolveManifest(cfg, "app")
	require.NoError(t, err)
	ws, err := workspace.Create(memfs.New(), "app", files, m, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return ws
}

func newInstaller(r Runner, pm string) *Installer {
	return &Installer{
		Runner:         r,
		PackageManager: pm,
		AbsDir:         "/work/app",
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRewriteTailwindContent(t *testing.T) {
	got, ok := RewriteTailwindContent(initializerOutput)
	require.True(t, ok)
	assert.Contains(t, got, "  content: ['./public/index.html','./src/**/*.{js,jsx,ts,tsx}'],\n")
	assert.Contains(t, got, "plugins: [],")

	got, ok = RewriteTailwindContent("module.exports = { content: [\n  ] }")
	require.True(t, ok)
	assert.Equal(t, "module.exports = { "+TailwindContent+" }", got)

	custom := "module.exports = { content: ['./x.html'] }"
	got, ok = RewriteTailwindContent(custom)
	assert.False(t, ok)
	assert.Equal(t, custom, got)
}

func TestInstallCommand(t *testing.T) {
	for _, pm := range []string{"npm", "pnpm", "yarn"} {
		c := InstallCommand(pm, "/p")
		assert.Equal(t, pm+" install", c.String())
		assert.Equal(t, "/p", c.Dir)
	}
}

func TestTailwindInitCommand(t *testing.T) {
	assert.Equal(t, "npx tailwindcss init -p", TailwindInitCommand("npm", "/p").String())
	assert.Equal(t, "pnpm exec tailwindcss init -p", TailwindInitCommand("pnpm", "/p").String())
	assert.Equal(t, "yarn tailwindcss init -p", TailwindInitCommand("yarn", "/p").String())
}

func TestInstaller_Install(t *testing.T) {
	r := &fakeRunner{}
	require.NoError(t, newInstaller(r, "pnpm").Install(context.Background()))

	require.Len(t, r.calls, 1)
	assert.Equal(t, Command{Name: "pnpm", Args: []string{"install"}, Dir: "/work/app"}, r.calls[0])
}

func TestInstaller_InstallFailureIsExternalTool(t *testing.T) {
	cause := errors.New("exit status 1")
	r := &fakeRunner{hook: func(Command) error { return cause }}

	err := newInstaller(r, "npm").Install(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, scaffold.ErrExternalTool))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "npm install failed")
}

func TestInstaller_SetupTailwind(t *testing.T) {
	ws := newWorkspace(t)
	r := &fakeRunner{hook: func(c Command) error {
		return ws.WriteFile(TailwindConfigFile, []byte(initializerOutput))
	}}

	require.NoError(t, newInstaller(r, "npm").SetupTailwind(context.Background(), ws))

	require.Len(t, r.calls, 1)
	assert.Equal(t, "npx tailwindcss init -p", r.calls[0].String())

	data, err := ws.ReadFile(TailwindConfigFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), TailwindContent)
	assert.NotContains(t, string(data), "content: []")
}

func TestInstaller_SetupTailwindMissingConfig(t *testing.T) {
	ws := newWorkspace(t)
	err := newInstaller(&fakeRunner{}, "npm").SetupTailwind(context.Background(), ws)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scaffold.ErrExternalTool))
}

func TestInstaller_SetupTailwindLeavesCustomContent(t *testing.T) {
	ws := newWorkspace(t)
	custom := "module.exports = { content: ['./index.html'] }\n"
	r := &fakeRunner{hook: func(Command) error {
		return ws.WriteFile(TailwindConfigFile, []byte(custom))
	}}

	require.NoError(t, newInstaller(r, "yarn").SetupTailwind(context.Background(), ws))
	data, err := ws.ReadFile(TailwindConfigFile)
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}

func TestInstaller_Preflight(t *testing.T) {
	require.NoError(t, newInstaller(&fakeRunner{}, "npm").Preflight(true))

	err := newInstaller(&fakeRunner{missing: []string{"pnpm"}}, "pnpm").Preflight(false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scaffold.ErrExternalTool))
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	assert.Contains(t, err.Error(), "pnpm not found")

	r := &fakeRunner{missing: []string{"npx"}}
	require.NoError(t, newInstaller(r, "npm").Preflight(false), "npx is only needed for tailwind")
	err = newInstaller(r, "npm").Preflight(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "npx not found")
	assert.Empty(t, r.calls)
}
