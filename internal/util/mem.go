package util

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
)

func MemUsage() (alloc, sys uint64) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc, m.Sys
}

// HostMem returns total and used bytes plus the used percentage of the host.
func HostMem() (total, used uint64, percent float64, err error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("host memory: %w", err)
	}
	return vm.Total, vm.Used, vm.UsedPercent, nil
}

func HumanBytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	v := float64(n)
	i := -1
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", v, units[i])
}
