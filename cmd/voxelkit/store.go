package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gridsense/voxelkit/internal/frames"
	"github.com/gridsense/voxelkit/internal/voxeldb"
)

// runStore manages grid datasets in a SQLite store. The subcommand follows
// the flags: voxelkit store -db grids.db list
func runStore(args []string) error {
	fs := flag.NewFlagSet("store", flag.ExitOnError)
	dbPath := fs.String("db", "grids.db", "path to the SQLite database")
	dataPath := fs.String("data", "", "XYZ dataset to save")
	infoPath := fs.String("info", "", "grid info JSON document to save")
	name := fs.String("name", "", "dataset name for save")
	id := fs.String("id", "", "dataset id for export and delete")
	outPath := fs.String("out", "", "output XYZ path for export (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one store action: save, list, export or delete")
	}

	store, err := voxeldb.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch action := fs.Arg(0); action {
	case "save":
		g, err := loadGrid(*dataPath, *infoPath)
		if err != nil {
			return err
		}
		if *name == "" {
			*name = *dataPath
		}
		gridID, err := store.Save(*name, g)
		if err != nil {
			return err
		}
		log.Printf("saved %q (%d rows) as %s", *name, g.NumRows(), gridID)
		return nil

	case "list":
		records, err := store.List()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			log.Print("store is empty")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("%s  %-20s frame=%s res=%g rows=%d  %s\n",
				rec.ID, rec.Name, rec.FrameID, rec.Resolution, rec.RowCount,
				rec.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil

	case "export":
		if *id == "" {
			return fmt.Errorf("export requires -id")
		}
		g, err := store.Load(*id, frames.NewGraph())
		if err != nil {
			return err
		}
		return writeResult(*outPath, g)

	case "delete":
		if *id == "" {
			return fmt.Errorf("delete requires -id")
		}
		if err := store.Delete(*id); err != nil {
			return err
		}
		log.Printf("deleted %s", *id)
		return nil

	default:
		return fmt.Errorf("unknown store action %q", action)
	}
}
