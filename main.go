/*
This is an example of application that will use the
engine packages to load a scene and cull it against its camera
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/acid/engine/core"
	"github.com/spaghettifunk/acid/testbed"
)

func main() {
	watch := flag.Bool("watch", false, "reload the scene every time the file changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-watch] scene.toml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		cancel()
	}()

	if err := testbed.Run(ctx, flag.Arg(0), *watch); err != nil {
		core.LogFatal("%s", err)
	}
}
