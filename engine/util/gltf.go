package util

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// NewPointCloudDocument builds a glTF document with a single points mesh.
func NewPointCloudDocument(name string, positions []mgl32.Vec3) (*gltf.Document, error) {
	if len(positions) == 0 {
		return nil, errors.New("point cloud is empty")
	}
	vertices := make([][3]float32, len(positions))
	for i, pos := range positions {
		vertices[i] = [3]float32(pos)
	}

	doc := gltf.NewDocument()
	positionAccessor := modeler.WritePosition(doc, vertices)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{
			{
				Mode:       gltf.PrimitivePoints,
				Attributes: map[string]uint32{gltf.POSITION: positionAccessor},
			},
		},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// WritePointCloud encodes the positions as a binary glTF (.glb) stream.
func WritePointCloud(w io.Writer, name string, positions []mgl32.Vec3) error {
	doc, err := NewPointCloudDocument(name, positions)
	if err != nil {
		return err
	}
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	if err = encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "encode point cloud")
	}
	return nil
}

// ExportPointCloud writes the positions to a .glb file at path.
func ExportPointCloud(path, name string, positions []mgl32.Vec3) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()
	if err = WritePointCloud(file, name, positions); err != nil {
		return errors.Wrapf(err, "export %s", path)
	}
	return nil
}
