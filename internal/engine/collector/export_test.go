package collector

import "maps"

// GetFileStatusMap returns a copy of the internal file status map.
// This is exported for testing purposes only.
func (c *Collector) GetFileStatusMap() map[string]FileStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.fileStatus)
}
