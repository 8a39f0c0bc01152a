//go:build linux

package performance

import (
	"log"
	"syscall"
)

// systemMemoryMB uses sysinfo; buffers count as available since the kernel
// can reclaim them
func systemMemoryMB() (total, available uint64) {
	var info syscall.Sysinfo_t
	if err := syscall.Sysinfo(&info); err != nil {
		log.Printf("Warning: sysinfo failed: %v", err)
		return 0, 0
	}

	unit := uint64(info.Unit)
	total = (uint64(info.Totalram) * unit) / (1024 * 1024)
	available = ((uint64(info.Freeram) + uint64(info.Bufferram)) * unit) / (1024 * 1024)
	return total, available
}
