package renderer

const litVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 3) in mat4 aInstance;

uniform mat4 uView;
uniform mat4 uProjection;
uniform mat4 uParent;
uniform mat4 uLightSpace;

out vec3 vNormal;
out vec3 vWorldPos;
out vec4 vLightPos;

void main() {
	mat4 model = uParent * aInstance;
	vec4 world = model * vec4(aPos, 1.0);
	vNormal = transpose(inverse(mat3(model))) * aNormal;
	vWorldPos = world.xyz;
	vLightPos = uLightSpace * world;
	gl_Position = uProjection * uView * world;
}
`

const litFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vWorldPos;
in vec4 vLightPos;

uniform vec3 uColor;
uniform float uRoughness;
uniform float uOpacity;
uniform bool uDoubleSided;

uniform vec3 uAmbientColor;
uniform float uAmbientIntensity;
uniform vec3 uLightColor;
uniform float uLightIntensity;
uniform vec3 uLightDir;
uniform vec3 uCameraPos;

uniform bool uShadows;
uniform sampler2DShadow uShadowMap;
uniform float uShadowBias;
uniform float uShadowTexel;

out vec4 FragColor;

float shadowFactor(float ndotl) {
	if (!uShadows) {
		return 1.0;
	}
	vec3 p = vLightPos.xyz / vLightPos.w * 0.5 + 0.5;
	if (p.z > 1.0) {
		return 1.0;
	}
	float bias = uShadowBias + 0.002 * (1.0 - ndotl);
	float sum = 0.0;
	for (int x = -2; x <= 2; x++) {
		for (int y = -2; y <= 2; y++) {
			vec2 offset = vec2(x, y) * uShadowTexel * 2.0;
			sum += texture(uShadowMap, vec3(p.xy + offset, p.z - bias));
		}
	}
	return sum / 25.0;
}

void main() {
	if (uOpacity < 0.5) {
		discard;
	}

	vec3 n = normalize(vNormal);
	if (uDoubleSided && !gl_FrontFacing) {
		n = -n;
	}
	vec3 l = normalize(-uLightDir);
	float ndotl = max(dot(n, l), 0.0);

	vec3 v = normalize(uCameraPos - vWorldPos);
	vec3 h = normalize(l + v);
	float shininess = mix(64.0, 4.0, uRoughness);
	float spec = pow(max(dot(n, h), 0.0), shininess) * (1.0 - uRoughness) * 0.3;

	float shadow = shadowFactor(ndotl);
	vec3 ambient = uAmbientColor * uAmbientIntensity;
	vec3 direct = uLightColor * uLightIntensity * ndotl * shadow * 0.45;
	vec3 color = uColor * (ambient + direct) + uLightColor * spec * shadow;

	FragColor = vec4(color, uOpacity);
}
`

const depthVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 3) in mat4 aInstance;

uniform mat4 uParent;
uniform mat4 uLightSpace;

void main() {
	gl_Position = uLightSpace * uParent * aInstance * vec4(aPos, 1.0);
}
`

const depthFragmentShader = `
#version 410 core

void main() {
}
`
