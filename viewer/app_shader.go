package viewer

import (
	_ "embed"

	"github.com/memmaker/fountain/engine/glhf"
	"github.com/pkg/errors"
)

var (
	//go:embed shader/particle.vert
	particleVertexShaderSource string

	//go:embed shader/particle.frag
	particleFragmentShaderSource string

	//go:embed shader/flat.vert
	flatVertexShaderSource string

	//go:embed shader/flat.frag
	flatFragmentShaderSource string

	//go:embed shader/hud.vert
	hudVertexShaderSource string

	//go:embed shader/hud.frag
	hudFragmentShaderSource string
)

func loadParticleShader() (*glhf.Shader, error) {
	shader, err := glhf.NewShader(glhf.ParticleVertexFormat, glhf.ParticleUniformFormat, particleVertexShaderSource, particleFragmentShaderSource)
	return shader, errors.Wrap(err, "particle shader")
}

func loadFlatShader() (*glhf.Shader, error) {
	var (
		vertexFormat = glhf.AttrFormat{
			{Name: "position", Type: glhf.Vec3},
		}
		uniformFormat = glhf.AttrFormat{
			glhf.Attr{Name: "viewProjection", Type: glhf.Mat4},
			glhf.Attr{Name: "flatColor", Type: glhf.Vec4},
		}
	)
	shader, err := glhf.NewShader(vertexFormat, uniformFormat, flatVertexShaderSource, flatFragmentShaderSource)
	return shader, errors.Wrap(err, "flat shader")
}

func loadHudShader() (*glhf.Shader, error) {
	shader, err := glhf.NewShader(glhf.ScreenVertexFormat, glhf.ScreenUniformFormat, hudVertexShaderSource, hudFragmentShaderSource)
	return shader, errors.Wrap(err, "hud shader")
}
