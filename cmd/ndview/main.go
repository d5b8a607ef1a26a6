// Package main provides the ndview command, a tour of zero-copy array views.
//
// Usage:
//
//	ndview [-v=1] version
//	ndview [-v=1] demo
//	ndview [-v=1] temperature
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

var errUsage = errors.New("usage: ndview [flags] version|demo|temperature")

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if err := run(flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			flag.PrintDefaults()
			os.Exit(2)
		}
		klog.ErrorS(err, "Command failed", "args", flag.Args())
		klog.Flush()
		os.Exit(1)
	}
}

// run executes the subcommand named by args[0], writing its report to w.
func run(args []string, w io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	klog.V(1).InfoS("Running command", "command", args[0], "version", version)

	switch args[0] {
	case "version":
		_, err := fmt.Fprintf(w, "ndview %s\n", version)
		return err
	case "demo":
		return demo(w)
	case "temperature":
		return temperature(w)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}
