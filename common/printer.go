package common

import (
	"fmt"

	"github.com/tranvictor/enslens/config"
)

func DebugPrintf(format string, a ...any) (n int, err error) {
	if config.Debug {
		return fmt.Printf(format, a...)
	}

	return 0, nil
}
