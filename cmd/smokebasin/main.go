// Command smokebasin reads a heightmap of digit rows and reports the sum of
// low-point risk scores and the product of the largest basin sizes.
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
