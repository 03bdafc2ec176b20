package runargs_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/runargs"
	"github.com/aretw0/runargs/pkg/domain"
)

// ExampleWriter_WriteRunArguments demonstrates how to use runargs purely as a Go library,
// passing an in-memory descriptor set instead of reading the userdev config from disk.
func ExampleWriter_WriteRunArguments() {
	dir, err := os.MkdirTemp("", "runargs-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	descriptors := domain.NewDescriptorSet(domain.RunDescriptor{
		Name:      "server",
		MainClass: "cpw.mods.bootstraplauncher.BootstrapLauncher",
		Args:      []string{"--launchTarget", "forgeserveruserdev"},
	})

	w := runargs.New()
	res, err := w.WriteRunArguments(context.Background(), runargs.Request{
		RunName:              "server",
		RunDirectory:         filepath.Join(dir, "run"),
		Descriptors:          descriptors,
		ProgramArguments:     []string{"--nogui"},
		JVMArgumentsFile:     filepath.Join(dir, "serverRunVmArgs.txt"),
		ProgramArgumentsFile: filepath.Join(dir, "serverRunProgramArgs.txt"),
	})
	if err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(res.ProgramArgumentsFile)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
	// Output:
	// # Main Class
	// cpw.mods.bootstraplauncher.BootstrapLauncher
	//
	// # Run-Type Program Arguments
	// "--launchTarget"
	// "forgeserveruserdev"
	//
	// # User Supplied Program Arguments
	// "--nogui"
}

// ExampleWriter_WriteRunArguments_unknownRunType shows the error for a run type the
// descriptor set does not publish.
func ExampleWriter_WriteRunArguments_unknownRunType() {
	dir, err := os.MkdirTemp("", "runargs-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	_, err = runargs.New().WriteRunArguments(context.Background(), runargs.Request{
		RunName:              "data",
		RunDirectory:         filepath.Join(dir, "run"),
		Descriptors:          domain.NewDescriptorSet(domain.RunDescriptor{Name: "client"}, domain.RunDescriptor{Name: "server"}),
		JVMArgumentsFile:     filepath.Join(dir, "jvm.txt"),
		ProgramArgumentsFile: filepath.Join(dir, "program.txt"),
	})
	fmt.Println(err)
	// Output:
	// run_type: trying to prepare unknown run type "data". Available: [client, server]
}
