package util

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

func TestPointCloudExport(t *testing.T) {
	positions := []mgl32.Vec3{
		{0, 0, 0},
		{1, 2, 3},
		{-1, 0.5, 4},
	}

	var buffer bytes.Buffer
	if err := WritePointCloud(&buffer, "fountain", positions); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(&buffer).Decode(doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected a single mesh with one primitive, got %d meshes", len(doc.Meshes))
	}
	primitive := doc.Meshes[0].Primitives[0]
	if primitive.Mode != gltf.PrimitivePoints {
		t.Errorf("primitive mode %v, want points", primitive.Mode)
	}
	accessor := doc.Accessors[primitive.Attributes[gltf.POSITION]]
	if accessor.Count != uint32(len(positions)) {
		t.Errorf("position accessor holds %d points, want %d", accessor.Count, len(positions))
	}
	if len(doc.Scenes[0].Nodes) != 1 || doc.Nodes[0].Mesh == nil || *doc.Nodes[0].Mesh != 0 {
		t.Errorf("scene does not reference the point cloud node")
	}
}

func TestPointCloudExportEmpty(t *testing.T) {
	var buffer bytes.Buffer
	if err := WritePointCloud(&buffer, "empty", nil); err == nil {
		t.Errorf("expected an error for an empty point cloud")
	}
	if buffer.Len() != 0 {
		t.Errorf("nothing should be written for an empty point cloud")
	}
}

func TestExportPointCloudToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.glb")
	if err := ExportPointCloud(path, "snapshot", []mgl32.Vec3{{1, 1, 1}}); err != nil {
		t.Fatalf("export: %v", err)
	}
	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	if len(doc.Meshes) != 1 {
		t.Errorf("exported file has %d meshes", len(doc.Meshes))
	}

	if err := ExportPointCloud(filepath.Join(t.TempDir(), "missing", "x.glb"), "x", []mgl32.Vec3{{}}); err == nil {
		t.Errorf("expected an error for a missing directory")
	}
}
