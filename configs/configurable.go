package configs

// Configurable marks types whose values come from the config files.
type Configurable interface {
	JaspConfigurable()
}
