//go:build !linux

package performance

// systemMemoryMB is not implemented off Linux; snapshots carry Go stats only
func systemMemoryMB() (total, available uint64) {
	return 0, 0
}
