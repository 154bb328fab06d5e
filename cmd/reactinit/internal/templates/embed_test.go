package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles_AllTemplatesRender(t *testing.T) {
	files, err := ListFiles(".")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, typed := range []bool{false, true} {
		for _, name := range files {
			out, err := Render(name, TemplateData{TypeScript: typed, APIURL: "https://api.example.com"})
			require.NoError(t, err, "render %s (typescript=%v)", name, typed)
			assert.NotContains(t, out, "[[", name)
			assert.NotContains(t, out, "]]", name)
		}
	}
}

func TestRender_TypeAnnotationsFollowLanguage(t *testing.T) {
	js, err := Render("src/store/slices/counterSlice.tmpl", TemplateData{})
	require.NoError(t, err)
	ts, err := Render("src/store/slices/counterSlice.tmpl", TemplateData{TypeScript: true})
	require.NoError(t, err)

	assert.NotContains(t, js, "PayloadAction")
	assert.NotContains(t, js, "interface")
	assert.Contains(t, ts, "PayloadAction<number>")
	assert.Contains(t, ts, "interface CounterState")
}

func TestRender_StoreTypesOnlyForTypeScript(t *testing.T) {
	js, err := Render("src/store/index.tmpl", TemplateData{})
	require.NoError(t, err)
	ts, err := Render("src/store/index.tmpl", TemplateData{TypeScript: true})
	require.NoError(t, err)

	assert.NotContains(t, js, "RootState")
	assert.Contains(t, ts, "export type RootState")
	assert.Contains(t, ts, "export type AppDispatch")
}

func TestRender_VerbatimFilesKeepJSXBraces(t *testing.T) {
	out, err := Render("src/components/common/NotificationList.tmpl", TemplateData{})
	require.NoError(t, err)
	assert.Contains(t, out, "style={{ position: 'fixed'")
}

func TestRender_Env(t *testing.T) {
	out, err := Render("root/env.tmpl", TemplateData{APIURL: "https://api.test"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "REACT_APP_API_URL=https://api.test\n"))
}

func TestRender_MissingFile(t *testing.T) {
	_, err := Render("src/nope.tmpl", TemplateData{})
	assert.Error(t, err)
}

func TestProcessTemplate_BadSyntax(t *testing.T) {
	_, err := ProcessTemplate("bad", "[[ if ]]", TemplateData{})
	assert.Error(t, err)
}
