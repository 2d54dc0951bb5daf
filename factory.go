package granary

type factory struct{}

var Factory factory

func (f factory) NewContext(cfg Config) *Context {
	return newContext(cfg)
}

func (f factory) NewRegistry(capacity int) *Registry {
	return newRegistry(capacity)
}

func (f factory) NewDirectory(capacity int) *Directory {
	return newDirectory(capacity)
}

// FactoryNewStorage builds a standalone dense storage, mainly for tests and
// tools that exercise one component type without a Directory.
func FactoryNewStorage[T any](capacity int) *ComponentStorage[T] {
	return newComponentStorage[T](capacity)
}
