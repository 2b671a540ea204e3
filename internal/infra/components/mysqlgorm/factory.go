package mysqlgorm

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (f *Factory) Create(cfg *Config) (*GormComponent, error) {
	return NewGormComponent(cfg), nil
}
