package generator

// LayoutGenerator is an interface for dungeon layout algorithms
type LayoutGenerator interface {
	Generate() (*Layout, error)
	Reset() (*Layout, error)
	Name() string
}

var _ LayoutGenerator = (*BSPGenerator)(nil)
