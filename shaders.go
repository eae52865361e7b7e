package glcanvas

import (
	"strconv"
	"strings"

	"github.com/tdewolff/glcanvas/internal/gradient"
)

// MaxGradientStops is the maximum number of color stops of a gradient.
const MaxGradientStops = gradient.MaxStops

const glslPrecision = `
#ifdef GL_ES
precision mediump float;
precision lowp int;
#endif
`

const flatVertexShader = glslPrecision + `
attribute vec2 aVertexPosition;
uniform bool uSkipMVTransform;
uniform mat4 uMVMatrix;
uniform mat4 uPMatrix;

void main(void) {
	vec4 pos = vec4(aVertexPosition, 0.0, 1.0);
	if (uSkipMVTransform) {
		gl_Position = uPMatrix * pos;
	} else {
		gl_Position = uPMatrix * uMVMatrix * pos;
	}
}
`

const flatFragmentShader = glslPrecision + `
uniform vec4 uColor;
uniform float uGlobalAlpha;

void main(void) {
	gl_FragColor = uColor * vec4(1.0, 1.0, 1.0, uGlobalAlpha);
}
`

// gradientVertexShader passes the position in user space to the fragment shader as vP2.
const gradientVertexShader = glslPrecision + `
attribute vec2 aVertexPosition;
uniform bool uSkipMVTransform;
uniform mat4 uMVMatrix;
uniform mat4 uPMatrix;
uniform mat4 uiMVMatrix;
varying vec2 vP2;

void main(void) {
	vec4 pos = vec4(aVertexPosition, 0.0, 1.0);
	if (uSkipMVTransform) {
		gl_Position = uPMatrix * pos;
		vP2 = (uiMVMatrix * pos).xy;
	} else {
		gl_Position = uPMatrix * uMVMatrix * pos;
		vP2 = pos.xy;
	}
}
`

// gradientStops maps t to a color, offsets are sorted and terminated by -1.
const gradientStops = `
const int MAX_STOPS = {maxStops};
const int MAX_OFFSETS = {maxOffsets};
uniform vec4 colors[MAX_STOPS];
uniform float offsets[MAX_OFFSETS];
uniform float uGlobalAlpha;

vec4 stopColor(float t) {
	t = clamp(t, 0.0, 1.0);
	if (offsets[0] == -1.0) {
		return vec4(0.0);
	} else if (t < offsets[0]) {
		return colors[0];
	}
	vec4 color = colors[0];
	for (int i = 0; i < MAX_STOPS; i++) {
		if (offsets[i+1] == -1.0) {
			color = colors[i];
			break;
		} else if (offsets[i] <= t && t < offsets[i+1]) {
			color = mix(colors[i], colors[i+1], (t - offsets[i]) / (offsets[i+1] - offsets[i]));
			break;
		}
	}
	return color;
}
`

var linearFragmentShader = glslPrecision + stopsSource() + `
uniform vec2 p0;
uniform vec2 p1;
varying vec2 vP2;

void main(void) {
	vec2 p1p0 = p1 - p0;
	float t = dot(vP2 - p0, p1p0) / dot(p1p0, p1p0);
	gl_FragColor = stopColor(t) * vec4(1.0, 1.0, 1.0, uGlobalAlpha);
}
`

// radialFragmentShader finds the largest t for which vP2 lies on the circle interpolated between
// (p0,r0) and (p1,r1) with non-negative radius. Pixels not covered by any such circle are transparent.
var radialFragmentShader = glslPrecision + stopsSource() + `
uniform vec2 p0;
uniform float r0;
uniform vec2 p1;
uniform float r1;
varying vec2 vP2;

void main(void) {
	vec2 cd = p1 - p0;
	vec2 pd = vP2 - p0;
	float dr = r1 - r0;
	float a = dot(cd, cd) - dr*dr;
	float b = dot(pd, cd) + r0*dr;
	float c = dot(pd, pd) - r0*r0;

	float t;
	if (abs(a) < 1e-6) {
		if (abs(b) < 1e-6) {
			gl_FragColor = vec4(0.0);
			return;
		}
		t = c / (2.0*b);
	} else {
		float disc = b*b - a*c;
		if (disc < 0.0) {
			gl_FragColor = vec4(0.0);
			return;
		}
		disc = sqrt(disc);
		float t0 = max((b + disc) / a, (b - disc) / a);
		float t1 = min((b + disc) / a, (b - disc) / a);
		t = t0;
		if (r0 + t*dr < 0.0) {
			t = t1;
		}
	}
	if (r0 + t*dr < 0.0) {
		gl_FragColor = vec4(0.0);
		return;
	}
	gl_FragColor = stopColor(t) * vec4(1.0, 1.0, 1.0, uGlobalAlpha);
}
`

var patternVertexShader = glslPrecision + repeatModes(`
attribute vec2 aVertexPosition;
attribute vec2 aTexCoord;
uniform bool uSkipMVTransform;
uniform mat4 uMVMatrix;
uniform mat4 uPMatrix;
uniform mat4 uiMVMatrix;
uniform int uRepeatMode;
uniform vec2 uTextureSize;
varying vec2 vTexCoord;

void main(void) {
	vec4 pos = vec4(aVertexPosition, 0.0, 1.0);
	if (uSkipMVTransform) {
		gl_Position = uPMatrix * pos;
		vTexCoord = (uiMVMatrix * pos).xy / uTextureSize;
	} else {
		gl_Position = uPMatrix * uMVMatrix * pos;
		vTexCoord = pos.xy / uTextureSize;
	}
	if (uRepeatMode == {src-rect}) {
		vTexCoord = aTexCoord;
	}
}
`)

var patternFragmentShader = glslPrecision + repeatModes(`
uniform int uRepeatMode;
uniform sampler2D uTexture;
uniform float uGlobalAlpha;
varying vec2 vTexCoord;

void main(void) {
	bool outX = vTexCoord.x < 0.0 || 1.0 < vTexCoord.x;
	bool outY = vTexCoord.y < 0.0 || 1.0 < vTexCoord.y;
	if ((uRepeatMode == {no-repeat} || uRepeatMode == {src-rect}) && (outX || outY) ||
		uRepeatMode == {repeat-x} && outY || uRepeatMode == {repeat-y} && outX) {
		gl_FragColor = vec4(0.0);
		return;
	}
	vec2 coord = vTexCoord;
	if (uRepeatMode == {repeat-x} || uRepeatMode == {repeat}) {
		coord.x = fract(coord.x);
	}
	if (uRepeatMode == {repeat-y} || uRepeatMode == {repeat}) {
		coord.y = fract(coord.y);
	}
	gl_FragColor = texture2D(uTexture, coord) * vec4(1.0, 1.0, 1.0, uGlobalAlpha);
}
`)

func stopsSource() string {
	return strings.NewReplacer(
		"{maxStops}", strconv.Itoa(MaxGradientStops),
		"{maxOffsets}", strconv.Itoa(MaxGradientStops+1),
	).Replace(gradientStops)
}

func repeatModes(src string) string {
	args := []string{}
	for mode := NoRepeat; mode <= SrcRect; mode++ {
		args = append(args, "{"+mode.String()+"}", strconv.Itoa(int(mode)))
	}
	return strings.NewReplacer(args...).Replace(src)
}
