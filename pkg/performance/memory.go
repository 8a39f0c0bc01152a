package performance

import (
	"log"
	"runtime"
	"time"
)

// MemorySnapshot represents memory state at a point in time
type MemorySnapshot struct {
	Timestamp   time.Time
	TotalMB     uint64 // zero when the platform does not report it
	AvailableMB uint64
	GoAllocMB   uint64
	GoSysMB     uint64
	NumGC       uint32
}

// TakeSnapshot reads system and Go runtime memory
func TakeSnapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	snap := MemorySnapshot{
		Timestamp: time.Now(),
		GoAllocMB: m.Alloc / (1024 * 1024),
		GoSysMB:   m.Sys / (1024 * 1024),
		NumGC:     m.NumGC,
	}
	snap.TotalMB, snap.AvailableMB = systemMemoryMB()
	return snap
}

// LogMemorySnapshot logs a snapshot tagged with label
func LogMemorySnapshot(label string) MemorySnapshot {
	snap := TakeSnapshot()
	log.Printf("Memory %s | System[Total=%dMB, Avail=%dMB] Go[Alloc=%dMB, Sys=%dMB, GC=%d]",
		label, snap.TotalMB, snap.AvailableMB, snap.GoAllocMB, snap.GoSysMB, snap.NumGC)
	return snap
}
