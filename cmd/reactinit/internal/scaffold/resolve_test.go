package scaffold

import (
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigs returns every toggle combination for both languages.
func allConfigs() []Config {
	var configs []Config
	for _, lang := range Languages {
		for mask := 0; mask < 32; mask++ {
			configs = append(configs, Config{
				Language: lang,
				Features: Features{
					Redux:    mask&1 != 0,
					Context:  mask&2 != 0,
					Router:   mask&4 != 0,
					Tailwind: mask&8 != 0,
					Axios:    mask&16 != 0,
				},
			})
		}
	}
	return configs
}

func configName(c Config) string {
	f := c.Features
	return fmt.Sprintf("%s/redux=%v,context=%v,router=%v,tailwind=%v,axios=%v",
		c.Language, f.Redux, f.Context, f.Router, f.Tailwind, f.Axios)
}

func mustResolve(t *testing.T, cfg Config) FileSet {
	t.Helper()
	files, err := Resolve(cfg)
	require.NoError(t, err)
	return files
}

func hasJSX(content string) bool {
	return strings.Contains(content, "/>") || strings.Contains(content, "</")
}

func TestResolve_AllCombinationsConsistent(t *testing.T) {
	for _, cfg := range allConfigs() {
		t.Run(configName(cfg), func(t *testing.T) {
			files := mustResolve(t, cfg)
			manifest, err := ResolveManifest(cfg, "app")
			require.NoError(t, err)

			require.NoError(t, files.Validate())
			require.NoError(t, files.CheckReferences())
			require.NoError(t, Verify(files, manifest))

			for _, p := range files.Paths() {
				content := files[p]
				if IsSource(p) && hasJSX(content) {
					assert.Contains(t, Imports(content), "react", "%s uses JSX without importing react", p)
				}
				if IsSource(p) {
					ext := path.Ext(p)
					if cfg.Language == JavaScript {
						assert.Equal(t, ".js", ext, p)
					} else {
						assert.Contains(t, []string{".ts", ".tsx"}, ext, p)
					}
				}
			}

			f := cfg.Features
			joined := strings.Join(func() []string {
				var all []string
				for _, p := range files.Paths() {
					all = append(all, files[p])
				}
				return all
			}(), "\n")

			assert.Equal(t, f.Redux, strings.Contains(joined, "react-redux"))
			assert.Equal(t, f.Router, strings.Contains(joined, "react-router-dom"))
			assert.Equal(t, f.Axios, strings.Contains(joined, "axios"))
			assert.Equal(t, f.Context, strings.Contains(joined, "useNotification"))
			assert.Equal(t, f.Router, strings.Contains(joined, "function About"))
			assert.Equal(t, f.Tailwind, strings.HasPrefix(files["src/styles/index.css"], "@tailwind base;"))
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	for _, cfg := range allConfigs() {
		first := mustResolve(t, cfg)
		second := mustResolve(t, cfg)
		assert.Equal(t, first, second, configName(cfg))
	}
}

func TestResolve_Defaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, JavaScript, cfg.Language)

	files := mustResolve(t, cfg)

	assert.Contains(t, files, "src/index.js")
	assert.Contains(t, files, "src/App.js")
	assert.Contains(t, files, "src/store/index.js")
	assert.Contains(t, files, "src/store/slices/counterSlice.js")
	assert.Contains(t, files, "src/hooks/useCounter.js")
	assert.Contains(t, files, "src/context/ThemeContext.js")
	assert.Contains(t, files, "src/context/NotificationContext.js")
	assert.Contains(t, files, "src/components/common/NotificationList.js")
	assert.Contains(t, files, "src/utils/constants.js")
	assert.Contains(t, files, ".env")
	assert.Contains(t, files, ".gitignore")
	assert.NotContains(t, files, "tsconfig.json")

	app := files["src/App.js"]
	assert.Contains(t, app, "<Router>")
	assert.Equal(t, 2, strings.Count(app, "<Route path="))
	assert.Contains(t, app, `<Route path="/" element={<Home />} />`)
	assert.Contains(t, app, `<Route path="/about" element={<About />} />`)

	assert.NotContains(t, files["src/styles/index.css"], "@tailwind")
	assert.NotContains(t, files["src/components/Home.js"], "axios")
}

func TestResolve_ContextOnlyScenario(t *testing.T) {
	cfg := Config{Language: JavaScript, Features: Features{Context: true}}
	files := mustResolve(t, cfg)

	assert.Contains(t, files, "src/context/ThemeContext.js")
	assert.Contains(t, files, "src/context/NotificationContext.js")
	assert.Contains(t, files, "src/components/common/NotificationList.js")
	assert.NotContains(t, files, "src/store/index.js")
	assert.NotContains(t, files, "src/hooks/useCounter.js")

	app := files["src/App.js"]
	assert.NotContains(t, app, "About")
	assert.NotContains(t, app, "Router")
	assert.Contains(t, app, `    <div className="App">
      <Navbar />
      <Home />
      <NotificationList />
    </div>`)

	entry := files["src/index.js"]
	assert.NotContains(t, entry, "Provider store")
	assert.Contains(t, entry, `  <React.StrictMode>
    <ThemeProvider>
      <NotificationProvider>
        <App />
      </NotificationProvider>
    </ThemeProvider>
  </React.StrictMode>`)
}

func TestResolve_ProvidersNestInsideStore(t *testing.T) {
	cfg := Config{Language: TypeScript, Features: Features{Redux: true, Context: true}}
	entry := mustResolve(t, cfg)["src/index.tsx"]

	assert.Contains(t, entry, `root.render(
  <React.StrictMode>
    <Provider store={store}>
      <ThemeProvider>
        <NotificationProvider>
          <App />
        </NotificationProvider>
      </ThemeProvider>
    </Provider>
  </React.StrictMode>
);`)
	assert.Contains(t, entry, "document.getElementById('root') as HTMLElement")
}

func TestResolve_TailwindScenario(t *testing.T) {
	plain := mustResolve(t, Config{Language: JavaScript})
	styled := mustResolve(t, Config{Language: JavaScript, Features: Features{Tailwind: true}})

	css := styled["src/styles/index.css"]
	lines := strings.Split(css, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, []string{"@tailwind base;", "@tailwind components;", "@tailwind utilities;", ""}, lines[:4])
	assert.Equal(t, plain["src/styles/index.css"], strings.Join(lines[4:], "\n"))

	manifest, err := ResolveManifest(Config{Language: JavaScript, Features: Features{Tailwind: true}}, "app")
	require.NoError(t, err)
	assert.Contains(t, manifest.DevDependencies, "tailwindcss")
	assert.Contains(t, manifest.DevDependencies, "postcss")
	assert.Contains(t, manifest.DevDependencies, "autoprefixer")
}

func TestResolve_AxiosReportsThroughOneChannel(t *testing.T) {
	tests := []struct {
		name    string
		context bool
		want    []string
		reject  []string
	}{
		{
			name:    "with notifications",
			context: true,
			want:    []string{"notify('Axios GET ✓', 'success');", "notify('Axios error', 'error');"},
			reject:  []string{"console.log", "console.error"},
		},
		{
			name:    "console only",
			context: false,
			want:    []string{"console.log('Axios GET ✓');", "console.error('Axios error');"},
			reject:  []string{"notify("},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Language: JavaScript, Features: Features{Axios: true, Context: tt.context}}
			home := mustResolve(t, cfg)["src/components/Home.js"]
			for _, w := range tt.want {
				assert.Contains(t, home, w)
			}
			for _, r := range tt.reject {
				assert.NotContains(t, home, r)
			}
			assert.Contains(t, home, "<button onClick={testCall}>Call httpbin.org</button>")
		})
	}
}

func TestResolve_ProbeURLIsConfigurable(t *testing.T) {
	cfg := Config{
		Language: JavaScript,
		Features: Features{Axios: true},
		ProbeURL: "http://localhost:8080/it's",
	}
	home := mustResolve(t, cfg)["src/components/Home.js"]
	assert.Contains(t, home, `await axios.get('http://localhost:8080/it\'s');`)
	assert.Contains(t, home, "Call localhost:8080")
	assert.NotContains(t, home, "httpbin")
}

func TestResolve_ProbeLabelEscapesMarkup(t *testing.T) {
	cfg := Config{
		Language: TypeScript,
		Features: Features{Axios: true},
		ProbeURL: "http://a<b>/get",
	}
	home := mustResolve(t, cfg)["src/components/Home.tsx"]
	assert.Contains(t, home, "<button onClick={testCall}>{'Call a<b>'}</button>")
	assert.NotContains(t, home, ">Call a<b></button>")
}

func TestResolve_APIURLInEnv(t *testing.T) {
	cfg := Defaults()
	cfg.APIURL = "https://backend.internal"
	files := mustResolve(t, cfg)
	assert.Contains(t, files[".env"], "REACT_APP_API_URL=https://backend.internal\n")
}

func TestResolve_ConstantsTrackLanguage(t *testing.T) {
	js := mustResolve(t, Config{Language: JavaScript})
	ts := mustResolve(t, Config{Language: TypeScript})

	assert.Contains(t, js, "src/utils/constants.js")
	assert.NotContains(t, js, "src/utils/constants.ts")
	assert.NotContains(t, js["src/utils/constants.js"], ": string")

	assert.Contains(t, ts, "src/utils/constants.ts")
	assert.Contains(t, ts["src/utils/constants.ts"], "API_BASE_URL: string")
	assert.Contains(t, ts, "tsconfig.json")
}

func TestResolve_NavbarFollowsFeatures(t *testing.T) {
	bare := mustResolve(t, Config{Language: JavaScript})["src/components/Navbar.js"]
	assert.NotContains(t, bare, "Link")
	assert.NotContains(t, bare, "useTheme")

	full := mustResolve(t, Config{Language: TypeScript, Features: Features{Router: true, Context: true}})["src/components/Navbar.tsx"]
	assert.Contains(t, full, `<Link to="/about"`)
	assert.Contains(t, full, "const { theme, toggle } = useTheme();")
	assert.Contains(t, full, "Toggle Theme ({theme})")
	assert.Contains(t, full, "const nav: React.CSSProperties")
}

func TestResolve_HomeUsesCounterWithRedux(t *testing.T) {
	home := mustResolve(t, Config{Language: JavaScript, Features: Features{Redux: true}})["src/components/Home.js"]
	assert.Contains(t, home, "import { useCounter } from '../hooks/useCounter';")
	assert.Contains(t, home, "const { value, inc, dec, add } = useCounter();")
	assert.Contains(t, home, "<button onClick={() => add(5)}>+5</button>")
}

func TestResolve_RejectsInvalidLanguage(t *testing.T) {
	_, err := Resolve(Config{Language: "coffeescript"})
	assert.Error(t, err)

	_, err = ResolveManifest(Config{}, "app")
	assert.Error(t, err)
}
