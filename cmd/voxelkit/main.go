// Command voxelkit inspects and transforms voxel grid datasets.
//
// Usage:
//
//	voxelkit stats    -data hits.xyz -info info.json
//	voxelkit pipeline -data hits.xyz -info info.json -aggregate -min-count 2 -out dense.xyz
//	voxelkit report   -data hits.xyz -info info.json -out report.html
//	voxelkit store    -db grids.db (save|list|export|delete) ...
package main

import (
	"fmt"
	"log"
	"os"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: voxelkit <command> [flags]

commands:
  stats     print row count, index bounds and center-point extremes
  pipeline  compose transform operators over a dataset
  report    render an HTML count-distribution report
  store     manage grid datasets in a SQLite store

run 'voxelkit <command> -h' for command flags`)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("voxelkit: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "stats":
		err = runStats(os.Args[2:])
	case "pipeline":
		err = runPipeline(os.Args[2:])
	case "report":
		err = runReport(os.Args[2:])
	case "store":
		err = runStore(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}
