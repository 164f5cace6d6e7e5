package voxelio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gridsense/voxelkit/internal/frames"
	"github.com/gridsense/voxelkit/internal/voxel"
)

// GridDocument is the JSON metadata document accompanying an XYZ dataset.
type GridDocument struct {
	Resolution float64 `json:"resolution"`
	FrameID    string  `json:"frame_id"`
}

// Info converts the document into grid metadata.
func (d GridDocument) Info() voxel.GridInfo {
	return voxel.GridInfo{Resolution: d.Resolution, FrameID: frames.FrameID(d.FrameID)}
}

// LoadGridDocument reads a grid info document from a JSON file.
func LoadGridDocument(path string) (GridDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GridDocument{}, fmt.Errorf("voxelio: read info document: %w", err)
	}
	var doc GridDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return GridDocument{}, fmt.Errorf("voxelio: parse info document %s: %w", path, err)
	}
	return doc, nil
}

// SaveGridDocument writes a grid info document as indented JSON.
func SaveGridDocument(path string, doc GridDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("voxelio: write info document: %w", err)
	}
	return nil
}
