package atlas

import (
	"fmt"
	"strconv"
	"strings"
)

// GLSL for the terrain pipeline. The fragment source is generated so the
// shade table and bit layout stay in lockstep with the Go constants.

const vertexSource = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in uint packedBlock;

uniform mat4 proj;
uniform mat4 view;

out vec3 localPos;
flat out uint vPacked;

void main() {
	gl_Position = proj * view * vec4(position, 1.0);
	localPos = position;
	vPacked = packedBlock;
}
`

const fragmentTemplate = `#version 410 core
in vec3 localPos;
flat in uint vPacked;

uniform sampler2D atlasTexture;
uniform uint textureCount;
uniform uint terrainSliceY;

out vec4 fragColor;

void main() {
	uint cell = vPacked & %#xu;
	uint face = (vPacked >> %du) & %#xu;

	float n = float(textureCount);
	vec2 cellOrigin = vec2(float(cell %% textureCount), float(cell / textureCount));

	vec2 uv;
	float shade;
	switch (face) {
	case 0u: // +X
		uv = (fract(localPos.yz) + cellOrigin) / n;
		shade = %s;
		break;
	case 1u: // -X
		uv = (fract(localPos.yz) + cellOrigin) / n;
		shade = %s;
		break;
	case 2u: // +Y, highlighted slice samples the whole texture as one cell
		if (uint(floor(localPos.y)) == terrainSliceY) {
			uv = fract(localPos.xz);
		} else {
			uv = (fract(localPos.xz) + cellOrigin) / n;
		}
		shade = %s;
		break;
	case 3u: // -Y
		uv = (fract(localPos.xz) + cellOrigin) / n;
		shade = %s;
		break;
	case 4u: // +Z
		uv = (fract(localPos.xy) + cellOrigin) / n;
		shade = %s;
		break;
	default: // -Z and unknown face ids
		uv = (fract(localPos.xy) + cellOrigin) / n;
		shade = %s;
		break;
	}

	vec4 sampled = texture(atlasTexture, uv);
	fragColor = vec4((1.0 - shade) * sampled.rgb, sampled.a);
}
`

// VertexSource returns the terrain vertex shader.
func VertexSource() string {
	return vertexSource
}

// FragmentSource returns the terrain fragment shader with the shade table
// and descriptor bit layout injected from the Go constants.
func FragmentSource() string {
	return fmt.Sprintf(fragmentTemplate,
		cellMask, cellBits, faceMask,
		glslFloat(ShadePosX),
		glslFloat(ShadeNegX),
		glslFloat(ShadePosY),
		glslFloat(ShadeNegY),
		glslFloat(ShadePosZ),
		glslFloat(ShadeNegZ),
	)
}

func glslFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
