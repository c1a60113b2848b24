package pngme

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

type messageConfig struct {
	limits      Limits
	compression Compression
}

type MessageOption func(*messageConfig)

// WithCompression selects the algorithm PackMessage uses. CompNone, the
// default, stores the message as-is.
func WithCompression(comp Compression) MessageOption {
	return func(c *messageConfig) { c.compression = comp }
}

// WithMessageLimits bounds message sizes in PackMessage and UnpackMessage.
func WithMessageLimits(l Limits) MessageOption {
	return func(c *messageConfig) { c.limits = l }
}

func newMessageConfig(opts []MessageOption) messageConfig {
	cfg := messageConfig{limits: defaultLimits(), compression: CompNone}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}
