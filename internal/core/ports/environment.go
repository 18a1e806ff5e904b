package ports

/*
Environment is the interpreter's owned key/value environment. Children
receive a snapshot taken with Environ at spawn time.
*/
type Environment interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error

	// Environ returns every entry as KEY=VALUE in insertion order.
	Environ() []string
}
