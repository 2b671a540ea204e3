package prometheus

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (f *Factory) Create(cfg *Config) (*Component, error) {
	applyDefaults(cfg)
	return NewComponent(cfg), nil
}

func applyDefaults(c *Config) {
	if c == nil {
		return
	}
	if c.Address == "" {
		c.Address = ":9090"
	}
	if c.Path == "" {
		c.Path = "/metrics"
	}
}
