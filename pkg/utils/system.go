package utils

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// GetSystemMetrics는 CPU와 메모리 사용률을 0~1 사이 값으로 반환합니다.
// 조회에 실패한 값은 0으로 둡니다.
func GetSystemMetrics() (float64, float64) {
	var cpuUsage, memoryUsage float64

	if percents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100
	} else if err != nil {
		Debug("system", "CPU 사용률 조회 실패: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		memoryUsage = vm.UsedPercent / 100
	} else {
		Debug("system", "메모리 사용률 조회 실패: %v", err)
	}

	return cpuUsage, memoryUsage
}
