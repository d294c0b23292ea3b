package routes

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/testutil"
)

const jsxRouter = `import { BrowserRouter, Routes, Route } from 'react-router-dom'
import Home from './routes/Home'

export default function App() {
  return (
    <BrowserRouter>
      <Routes>
        <Route path="/" element={<Home />} />
        <Route path='/about' element={<About />}></Route>
        <Route index element={<Index />} />
      </Routes>
    </BrowserRouter>
  )
}
`

const objectRouter = `import { createBrowserRouter, RouterProvider } from 'react-router-dom'
import Dashboard, { loader as dashboardLoader } from './routes/Dashboard'

const router = createBrowserRouter([
  {
    path: '/',
    element: <Root />,
    children: [
      { path: 'dashboard', element: <Dashboard />, loader: dashboardLoader },
    ],
  },
])

const options = { basename: '/app' }
`

func TestParse_JSXRoutes(t *testing.T) {
	got, err := Parse("src/App.tsx", []byte(jsxRouter))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, Route{Path: "/", Element: "<Home />", Form: FormJSX, Line: 8}, got[0])
	assert.Equal(t, "/about", got[1].Path)
	assert.Equal(t, "<About />", got[1].Element)
	assert.Equal(t, 9, got[1].Line)
}

func TestParse_RouteObjects(t *testing.T) {
	got, err := Parse("src/main.jsx", []byte(objectRouter))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "/", got[0].Path)
	assert.Equal(t, "<Root />", got[0].Element)
	assert.Equal(t, FormObject, got[0].Form)
	assert.Equal(t, 5, got[0].Line)
	assert.Equal(t, "dashboard", got[1].Path)
	assert.Equal(t, "<Dashboard />", got[1].Element)
}

func TestParse_PlainTypeScript(t *testing.T) {
	src := "export const routes = [{ path: \"/settings\", lazy: () => import('./Settings') }]\n"

	got, err := Parse("src/routes.ts", []byte(src))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "/settings", got[0].Path)
	assert.Empty(t, got[0].Element)
}

func TestParse_NoRoutes(t *testing.T) {
	got, err := Parse("src/main.tsx", []byte("console.log('hi')\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInspectFile_Missing(t *testing.T) {
	_, err := InspectFile(filepath.Join(t.TempDir(), "main.tsx"))
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestInspectFile(t *testing.T) {
	p := testutil.NewProject(t).File("src/main.tsx", jsxRouter)

	got, err := InspectFile(p.Path("src", "main.tsx"))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "a", unquote(`"a"`))
	assert.Equal(t, "a", unquote(`'a'`))
	assert.Equal(t, "a", unquote("`a`"))
	assert.Equal(t, "'a\"", unquote(`'a"`))
	assert.Equal(t, "x", unquote("x"))
}
