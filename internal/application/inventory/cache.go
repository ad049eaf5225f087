package inventory

import "sync"

// NameCache caché inyectado de nombres de producto por ID, usado al
// enriquecer listados de movimientos. Es estado explícito con invalidación
// explícita (al renombrar o eliminar un producto), no un singleton de proceso.
type NameCache struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewNameCache construye un caché vacío.
func NewNameCache() *NameCache {
	return &NameCache{names: make(map[string]string)}
}

// Get devuelve el nombre cacheado del producto, si existe.
func (c *NameCache) Get(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[id]
	return name, ok
}

// Put registra el nombre del producto.
func (c *NameCache) Put(id, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[id] = name
}

// Invalidate elimina la entrada del producto (renombrado o eliminado).
func (c *NameCache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.names, id)
}
