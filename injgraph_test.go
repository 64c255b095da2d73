package injgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/injgraph"
	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/depgraph"
	"github.com/katalvlaran/injgraph/expand"
	"github.com/katalvlaran/injgraph/normalize"
)

// Types of a small web application.
type (
	Config  struct{ Addr string }
	Store   interface{ Get(string) string }
	sqlDB   struct{ cfg *Config }
	Handler struct{ store Store }
	Server  struct {
		cfg *Config
		h   *Handler
	}
	Middleware func()
)

var (
	typeConfig     = component.TypeOf[*Config]()
	typeStore      = component.TypeOf[Store]()
	typeSQLDB      = component.TypeOf[*sqlDB]()
	typeHandler    = component.TypeOf[*Handler]()
	typeServer     = component.TypeOf[*Server]()
	typeMiddleware = component.TypeOf[Middleware]()
)

func newSQLDB(args []any) any       { return &sqlDB{cfg: args[0].(*Config)} }
func storeFromSQLDB(args []any) any { return args[0].(Store) }
func sqlDBAsStore(args []any) any   { return &sqlDB{cfg: args[0].(*Config)} }
func newHandler(args []any) any     { return &Handler{store: args[0].(Store)} }
func newServer(args []any) any      { return &Server{cfg: args[0].(*Config), h: args[1].(*Handler)} }
func newLogging(args []any) any     { return Middleware(func() {}) }
func newMetrics(args []any) any     { return Middleware(func() {}) }

var (
	appConfig      = &Config{Addr: ":8080"}
	allMiddlewares = func() []any { return nil }
)

func installConfig(s *component.Storage) {
	s.AddBinding(typeConfig, component.Created(appConfig))
}

func installStorage(s *component.Storage) {
	s.Install(component.Lazy(installConfig))
	s.AddBinding(typeStore, component.NewBinding(storeFromSQLDB, []component.TypeID{typeSQLDB}, false))
	s.AddBinding(typeSQLDB, component.NewBinding(newSQLDB, []component.TypeID{typeConfig}, true))
	s.AddCompressedBinding(typeSQLDB, typeStore, component.NewBinding(sqlDBAsStore, []component.TypeID{typeConfig}, true))
}

func installHTTP(s *component.Storage) {
	s.Install(component.Lazy(installConfig))
	s.Install(component.Lazy(installStorage))
	s.AddBinding(typeHandler, component.NewBinding(newHandler, []component.TypeID{typeStore}, true))
	s.AddBinding(typeServer, component.NewBinding(newServer, []component.TypeID{typeConfig, typeHandler}, true))
	s.AddMultibinding(typeMiddleware, component.MultibindingData{Create: newLogging, NeedsAllocation: true, GetAll: allMiddlewares})
	s.AddMultibinding(typeMiddleware, component.MultibindingData{Create: newMetrics, Deps: []component.TypeID{typeConfig}, NeedsAllocation: true, GetAll: allMiddlewares})
}

func newApp() *component.Storage {
	s := component.NewStorage(component.Named("app"))
	s.Expose(typeServer)
	s.Install(component.Lazy(installHTTP))

	return s
}

// TestResolve_Application runs the whole pipeline on a diamond-shaped install graph.
func TestResolve_Application(t *testing.T) {
	res, err := injgraph.Resolve(newApp())
	require.NoError(t, err)

	// Config is installed twice but bound once; sqlDB is folded into Store.
	assert.Len(t, res.Bindings, 4)
	_, ok := res.Binding(typeSQLDB)
	assert.False(t, ok)

	store, ok := res.Binding(typeStore)
	require.True(t, ok)
	assert.True(t, store.NeedsAllocation())
	assert.Equal(t, []component.TypeID{typeConfig}, store.Deps())

	require.Contains(t, res.Compressions, typeSQLDB)
	assert.Equal(t, typeStore, res.Compressions[typeSQLDB].InterfaceID)

	require.Contains(t, res.Multibindings, typeMiddleware)
	assert.Len(t, res.Multibindings[typeMiddleware].Elems, 2)

	// Allocator: Config (external) + Store + sqlDB + Handler + Server + 2 middlewares.
	assert.Equal(t, 1, res.Allocator.ExternalCount(typeConfig))
	assert.Equal(t, 1, res.Allocator.Count(typeSQLDB))
	assert.Equal(t, 1, res.Allocator.ExternalCount(typeStore))
	assert.Equal(t, 2, res.Allocator.Count(typeMiddleware))

	assert.Equal(t, []component.TypeID{typeConfig, typeStore, typeHandler, typeServer}, res.ConstructionOrder)
	require.NotNil(t, res.Graph)
	assert.ElementsMatch(t, []component.TypeID{typeStore, typeServer}, res.Graph.Dependents(typeConfig))
	assert.Nil(t, res.Graph.Cycles())
}

// TestResolve_WithoutDependencyCheck verifies the construction order is optional.
func TestResolve_WithoutDependencyCheck(t *testing.T) {
	res, err := injgraph.Resolve(newApp(), injgraph.WithoutDependencyCheck())
	require.NoError(t, err)
	assert.Nil(t, res.ConstructionOrder)
	assert.Nil(t, res.Graph)
	assert.Len(t, res.Bindings, 4)
}

func installSelf(s *component.Storage) {
	s.Install(component.Lazy(installSelf))
}

// TestResolve_InstallationLoop verifies an installation loop yields no result.
func TestResolve_InstallationLoop(t *testing.T) {
	s := component.NewStorage(component.Named("app"))
	s.Install(component.Lazy(installSelf))

	res, err := injgraph.Resolve(s)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, expand.ErrInstallationLoop))
}

func installOtherServer(s *component.Storage) {
	s.AddBinding(typeServer, component.NewBinding(newServer, []component.TypeID{typeConfig}, true))
}

// TestResolve_Conflict verifies an inconsistent duplicate yields no result.
func TestResolve_Conflict(t *testing.T) {
	s := newApp()
	s.Install(component.Lazy(installOtherServer))

	res, err := injgraph.Resolve(s)
	assert.Nil(t, res)
	var conflict *normalize.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, typeServer, conflict.Type)
}

func installLoopingHandler(s *component.Storage) {
	s.AddBinding(typeHandler, component.NewBinding(newHandler, []component.TypeID{typeServer}, true))
	s.AddBinding(typeServer, component.NewBinding(newServer, []component.TypeID{typeHandler}, true))
}

// TestResolve_DependencyLoop verifies a dependency loop yields no result.
func TestResolve_DependencyLoop(t *testing.T) {
	s := component.NewStorage(component.Named("app"))
	s.Install(component.Lazy(installLoopingHandler))

	res, err := injgraph.Resolve(s)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, depgraph.ErrDependencyLoop))

	var loop *depgraph.LoopError
	require.True(t, errors.As(err, &loop))
	require.Len(t, loop.Path, 3)
	assert.Equal(t, loop.Path[0], loop.Path[2])
	assert.ElementsMatch(t, []component.TypeID{typeHandler, typeServer}, loop.Path[:2])
}
