package util

import (
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/denisbrodbeck/machineid"
)

var (
	machineID      string
	machineIDMutex sync.Mutex
)

// GetMachineID 获取当前机器的唯一标识符
// 优先使用 machineid 库，Linux 下回退到主板序列号
// 返回值: 机器ID字符串，如果全部获取失败则返回空字符串
func GetMachineID() string {
	machineIDMutex.Lock()
	defer machineIDMutex.Unlock()

	if machineID != "" {
		return machineID
	}

	id, err := machineid.ID()
	if err == nil && id != "" {
		machineID = id
		return machineID
	}

	if runtime.GOOS == "linux" {
		content, err := os.ReadFile("/sys/class/dmi/id/board_serial")
		if err == nil {
			serial := strings.TrimSpace(string(content))
			if serial != "" {
				machineID = serial
				return machineID
			}
		}
	}

	// 调用者应根据返回值判断是否成功获取机器ID
	return ""
}
