package params

import (
	"sync"

	"github.com/mohae/deepcopy"
)

var (
	randConfigLock sync.RWMutex
	randConfig     = DefaultRandConfig()
)

// ActiveRandConfig retrieves the settings in use.
func ActiveRandConfig() *RandConfig {
	randConfigLock.RLock()
	defer randConfigLock.RUnlock()
	return randConfig
}

// OverrideRandConfig replaces the settings in use. The preferred pattern is to
// call ActiveRandConfig().Copy(), change the specific parameters, and then
// call OverrideRandConfig(c).
func OverrideRandConfig(c *RandConfig) {
	randConfigLock.Lock()
	defer randConfigLock.Unlock()
	randConfig = c
}

// SetupTestConfigCleanup preserves the active settings and restores them when
// the test finishes.
func SetupTestConfigCleanup(t interface{ Cleanup(func()) }) {
	prev := ActiveRandConfig().Copy()
	t.Cleanup(func() {
		OverrideRandConfig(prev)
	})
}

// Copy returns a copy of the config object.
func (c *RandConfig) Copy() *RandConfig {
	config := deepcopy.Copy(*c).(RandConfig)
	return &config
}
