package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad vertex shader: a unit quad scaled around an offset in play space.
// Play space maps straight onto NDC, like the window it is drawn into.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // -1..1 quad vertex

uniform vec2 uOffset;
uniform float uScale;
uniform vec2 uShake;

out vec2 vLocal;
out vec2 vWorld;

void main() {
    vLocal = aPos;
    vWorld = uOffset + aPos * uScale;
    gl_Position = vec4(vWorld + uShake, 0.0, 1.0);
}
` + "\x00"

// Quad fragment shader: one procedural pattern per palette.Shape.
const quadFragSrc = `#version 410 core

uniform vec3 uColor;
uniform vec3 uAccent;
uniform int uShape;
uniform float uTime;

in vec2 vLocal;
in vec2 vWorld;
out vec4 FragColor;

float hash(vec2 p) {
    return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453);
}

void main() {
    float r = length(vLocal);

    if (uShape == 0) {
        // Field: mown stripes with per-tuft noise.
        float stripe = step(0.5, fract(vWorld.x * 4.0));
        float tuft = hash(floor(vWorld * 48.0));
        FragColor = vec4(mix(uColor, uAccent, stripe * 0.45 + tuft * 0.25), 1.0);
        return;
    }
    if (uShape == 1) {
        // Body: rounded square with a dark outline.
        vec2 q = abs(vLocal) - 0.7;
        float d = length(max(q, 0.0));
        if (d > 0.3) discard;
        FragColor = vec4(d > 0.18 ? uAccent : uColor, 1.0);
        return;
    }
    if (uShape == 2) {
        // Wisp: breathing disc around a dark core.
        float pulse = 0.85 + 0.15 * sin(uTime * 6.0);
        if (r > pulse) discard;
        FragColor = vec4(r < 0.35 * pulse ? uAccent : uColor, 1.0);
        return;
    }
    if (uShape == 3) {
        // Bolt: soft glow.
        float a = clamp(1.0 - r, 0.0, 1.0);
        if (a <= 0.0) discard;
        FragColor = vec4(mix(uAccent, uColor, a), a * a);
        return;
    }
    if (uShape == 4) {
        // Axe: spinning diamond with a haft.
        float c = cos(uTime * 12.0);
        float s = sin(uTime * 12.0);
        vec2 p = vec2(c * vLocal.x - s * vLocal.y, s * vLocal.x + c * vLocal.y);
        if (abs(p.x) + abs(p.y) > 1.0) discard;
        FragColor = vec4(abs(p.y) < 0.2 ? uAccent : uColor, 1.0);
        return;
    }

    // Unknown style.
    float check = mod(floor(vLocal.x * 2.0) + floor(vLocal.y * 2.0), 2.0);
    FragColor = vec4(mix(uColor, uAccent, check), 1.0);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
