package versions

import (
	"os"

	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
)

var (
	_ ports.Environment = OSEnvironment{}
	_ ports.Environment = MapEnvironment(nil)
)

// OSEnvironment reads variables of the current process.
type OSEnvironment struct{}

// LookupEnv implements ports.Environment.
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment serves variables from a map.
type MapEnvironment map[string]string

// LookupEnv implements ports.Environment.
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
