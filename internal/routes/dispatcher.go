package routes

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// Delayer wraps a stage with simulated latency.
type Delayer interface {
	Wrap(h gin.HandlerFunc) gin.HandlerFunc
}

// RouteInfo identifies a registered endpoint.
type RouteInfo struct {
	Method string
	Path   string
}

// Dispatcher registers endpoints on a gin engine. Each endpoint runs an
// ordered chain of stages: the auth gate for protected routes when auth is
// enabled, then the handler. With a delayer every stage is delayed on its
// own. A stage short-circuits the chain by aborting the context.
//
// Registering the same method and path again replaces the chain serving it.
type Dispatcher struct {
	engine *gin.Engine
	delay  Delayer

	// stage prefixes, fixed at construction
	protected []gin.HandlerFunc
	public    []gin.HandlerFunc

	mu     sync.RWMutex
	chains map[RouteInfo][]gin.HandlerFunc
	order  []RouteInfo
}

// NewDispatcher builds a dispatcher. A nil auth disables the gate and a nil
// delay disables latency simulation.
func NewDispatcher(engine *gin.Engine, auth gin.HandlerFunc, delay Delayer) *Dispatcher {
	d := &Dispatcher{
		engine: engine,
		delay:  delay,
		chains: map[RouteInfo][]gin.HandlerFunc{},
	}
	if auth != nil {
		d.protected = []gin.HandlerFunc{d.wrap(auth)}
	}
	return d
}

func (d *Dispatcher) wrap(h gin.HandlerFunc) gin.HandlerFunc {
	if d.delay == nil {
		return h
	}
	return d.delay.Wrap(h)
}

// Register adds an endpoint. Public endpoints skip the auth gate. Methods
// other than GET, POST, PUT and DELETE panic.
func (d *Dispatcher) Register(method, path string, handler gin.HandlerFunc, public bool) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		panic(fmt.Sprintf("routes: unsupported method %q for %s", method, path))
	}

	prefix := d.protected
	if public {
		prefix = d.public
	}
	chain := make([]gin.HandlerFunc, 0, len(prefix)+1)
	chain = append(chain, prefix...)
	chain = append(chain, d.wrap(handler))

	key := RouteInfo{Method: method, Path: path}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.chains[key]; !exists {
		d.order = append(d.order, key)
		d.engine.Handle(method, path, d.serve(key))
	}
	d.chains[key] = chain
}

func (d *Dispatcher) serve(key RouteInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		d.mu.RLock()
		chain := d.chains[key]
		d.mu.RUnlock()

		for _, stage := range chain {
			stage(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

// Routes lists the registered endpoints in registration order.
func (d *Dispatcher) Routes() []RouteInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]RouteInfo, len(d.order))
	copy(out, d.order)
	return out
}

// Group returns a helper registering protected routes under prefix.
func (d *Dispatcher) Group(prefix string) *RouteGroup {
	return &RouteGroup{d: d, prefix: prefix}
}

// RouteGroup registers routes sharing a path prefix.
type RouteGroup struct {
	d      *Dispatcher
	prefix string
	public bool
}

// Public returns a copy of the group whose routes skip the auth gate.
func (g *RouteGroup) Public() *RouteGroup {
	return &RouteGroup{d: g.d, prefix: g.prefix, public: true}
}

func (g *RouteGroup) GET(path string, h gin.HandlerFunc) {
	g.d.Register(http.MethodGet, g.prefix+path, h, g.public)
}

func (g *RouteGroup) POST(path string, h gin.HandlerFunc) {
	g.d.Register(http.MethodPost, g.prefix+path, h, g.public)
}

func (g *RouteGroup) PUT(path string, h gin.HandlerFunc) {
	g.d.Register(http.MethodPut, g.prefix+path, h, g.public)
}

func (g *RouteGroup) DELETE(path string, h gin.HandlerFunc) {
	g.d.Register(http.MethodDelete, g.prefix+path, h, g.public)
}
