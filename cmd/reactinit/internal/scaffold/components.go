package scaffold

import (
	"net/url"
	"regexp"
)

// stack joins non-empty groups of lines with a blank line between them.
func stack(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, g...)
	}
	return out
}

func (r resolver) cssType() string {
	if r.lang == TypeScript {
		return ": React.CSSProperties"
	}
	return ""
}

// entry renders src/index: the root component inside StrictMode, the
// store provider and the two context providers, outermost first.
func (r resolver) entry() string {
	imports := block(0,
		always(
			"import React from 'react';",
			"import ReactDOM from 'react-dom/client';",
			"import './styles/index.css';",
			"import App from './App';",
		),
		when(r.f.Redux,
			"import { Provider } from 'react-redux';",
			"import { store } from './store';",
		),
		when(r.f.Context,
			"import { ThemeProvider } from './context/ThemeContext';",
			"import { NotificationProvider } from './context/NotificationContext';",
		),
	)

	container := "document.getElementById('root')"
	if r.lang == TypeScript {
		container += " as HTMLElement"
	}

	render := []string{
		"const root = ReactDOM.createRoot(" + container + ");",
		"root.render(",
	}
	render = append(render, nest(1, []string{"<App />"},
		wrapIf(true, "<React.StrictMode>", "</React.StrictMode>"),
		wrapIf(r.f.Redux, "<Provider store={store}>", "</Provider>"),
		wrapIf(r.f.Context, "<ThemeProvider>", "</ThemeProvider>"),
		wrapIf(r.f.Context, "<NotificationProvider>", "</NotificationProvider>"),
	)...)
	render = append(render, ");")

	return join(imports, render)
}

// app renders src/App: the shell around the navigation bar and the page
// content, routed or not.
func (r resolver) app() string {
	imports := block(0,
		always("import React from 'react';"),
		when(r.f.Router, "import { BrowserRouter as Router, Routes, Route } from 'react-router-dom';"),
		always(
			"import './styles/App.css';",
			"import Home from './components/Home';",
			"import Navbar from './components/Navbar';",
		),
		when(r.f.Context, "import NotificationList from './components/common/NotificationList';"),
	)

	about := block(0, when(r.f.Router,
		"function About() {",
		"  return (",
		"    <div style={{ padding: '2rem' }}>",
		"      <h1>About</h1>",
		"      <p>Scaffolded by reactinit.</p>",
		"    </div>",
		"  );",
		"}",
	))

	children := block(0,
		always("<Navbar />"),
		when(r.f.Router,
			"<Routes>",
			`  <Route path="/" element={<Home />} />`,
			`  <Route path="/about" element={<About />} />`,
			"</Routes>",
		),
		when(!r.f.Router, "<Home />"),
		when(r.f.Context, "<NotificationList />"),
	)

	shell := []string{
		"export default function App() {",
		"  return (",
	}
	shell = append(shell, nest(2, children,
		wrapIf(r.f.Router, "<Router>", "</Router>"),
		wrapIf(!r.f.Router, `<div className="App">`, "</div>"),
	)...)
	shell = append(shell, "  );", "}")

	return join(imports, about, shell)
}

// navbar renders src/components/Navbar. Route links and the theme toggle
// only appear with their features.
func (r resolver) navbar() string {
	imports := block(0,
		always("import React from 'react';"),
		when(r.f.Router, "import { Link, useLocation } from 'react-router-dom';"),
		when(r.f.Context, "import { useTheme } from '../context/ThemeContext';"),
	)

	css := r.cssType()
	hooks := block(1,
		when(r.f.Router, "const location = useLocation();"),
		when(r.f.Context, "const { theme, toggle } = useTheme();"),
	)
	styles := block(1,
		always("const nav"+css+" = { display: 'flex', alignItems: 'center', justifyContent: 'space-between', padding: '12px 16px', background: '#111', color: '#fff' };"),
		when(r.f.Router,
			"const link"+css+" = { color: '#fff', textDecoration: 'none', marginRight: 12 };",
			"const active"+css+" = { ...link, fontWeight: 'bold', textDecoration: 'underline' };",
		),
	)
	markup := block(1,
		always(
			"return (",
			"  <nav style={nav}>",
			"    <div style={{ display: 'flex', alignItems: 'center', gap: 12 }}>",
			"      <strong>React Starter</strong>",
		),
		when(r.f.Router,
			`      <Link to="/" style={location.pathname === '/' ? active : link}>`,
			"        Home",
			"      </Link>",
			`      <Link to="/about" style={location.pathname === '/about' ? active : link}>`,
			"        About",
			"      </Link>",
		),
		always("    </div>"),
		when(r.f.Context,
			"    <div>",
			"      <button onClick={toggle} style={{ background: '#333', color: '#fff', border: '1px solid #444', padding: '6px 10px', borderRadius: 6 }}>",
			"        Toggle Theme ({theme})",
			"      </button>",
			"    </div>",
		),
		always(
			"  </nav>",
			");",
		),
	)

	fn := []string{"export default function Navbar() {"}
	fn = append(fn, stack(hooks, styles, markup)...)
	fn = append(fn, "}")

	return join(imports, fn)
}

// home renders src/components/Home, the root page. Each feature adds a
// demo panel; the HTTP test reports through notifications when they exist
// and to the console otherwise.
func (r resolver) home() string {
	imports := block(0,
		always("import React from 'react';"),
		when(r.f.Redux, "import { useCounter } from '../hooks/useCounter';"),
		when(r.f.Context, "import { useNotification } from '../context/NotificationContext';"),
		when(r.f.Axios, "import axios from 'axios';"),
	)

	hooks := block(1,
		when(r.f.Redux, "const { value, inc, dec, add } = useCounter();"),
		when(r.f.Context, "const { add: notify } = useNotification();"),
	)

	success := "console.log('Axios GET ✓');"
	failure := "console.error('Axios error');"
	if r.f.Context {
		success = "notify('Axios GET ✓', 'success');"
		failure = "notify('Axios error', 'error');"
	}
	probe := block(1, when(r.f.Axios,
		"async function testCall() {",
		"  try {",
		"    await axios.get("+jsString(r.cfg.ProbeURL)+");",
		"    "+success,
		"  } catch {",
		"    "+failure,
		"  }",
		"}",
	))

	markup := block(1,
		always(
			"return (",
			"  <div style={{ padding: '2rem' }}>",
			"    <h1>Welcome 👋</h1>",
			"    <p>Your scaffolded app is ready.</p>",
		),
		when(r.f.Redux,
			"    <div style={{ marginTop: 16 }}>",
			"      <h3>Redux Counter</h3>",
			"      <p>",
			"        Value: <strong>{value}</strong>",
			"      </p>",
			"      <div style={{ display: 'flex', gap: 8 }}>",
			"        <button onClick={inc}>+1</button>",
			"        <button onClick={dec}>-1</button>",
			"        <button onClick={() => add(5)}>+5</button>",
			"      </div>",
			"    </div>",
		),
		when(r.f.Context,
			"    <div style={{ marginTop: 16 }}>",
			"      <h3>Notifications</h3>",
			"      <button onClick={() => notify('Hello from Notification!', 'info')}>Show Info</button>",
			"    </div>",
		),
		when(r.f.Axios,
			"    <div style={{ marginTop: 16 }}>",
			"      <h3>Axios Test</h3>",
			"      <button onClick={testCall}>"+probeLabel(r.cfg.ProbeURL)+"</button>",
			"    </div>",
		),
		always(
			"  </div>",
			");",
		),
	)

	fn := []string{"export default function Home() {"}
	fn = append(fn, stack(hooks, probe, markup)...)
	fn = append(fn, "}")

	return join(imports, fn)
}

var plainLabel = regexp.MustCompile(`^[A-Za-z0-9 .:\[\]-]+$`)

// probeLabel is the JSX content of the HTTP test button. Labels with
// characters that JSX text cannot hold verbatim become a string expression.
func probeLabel(raw string) string {
	label := "Call " + probeHost(raw)
	if plainLabel.MatchString(label) {
		return label
	}
	return "{" + jsString(label) + "}"
}

// probeHost is the host named by the HTTP test button.
func probeHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "test endpoint"
	}
	return u.Host
}
