package system

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo summarizes the encode-relevant hardware of this machine.
type HostInfo struct {
	CPUModel    string
	CPUCores    int
	TotalMemory uint64
	FreeMemory  uint64
}

// Host gathers CPU and memory information for the doctor report. Fields stay
// zero-valued for whatever could not be probed.
func Host() HostInfo {
	var info HostInfo

	if counts, err := cpu.Counts(true); err == nil {
		info.CPUCores = counts
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		info.CPUModel = infos[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
		info.FreeMemory = vm.Available
	}
	return info
}
