package pipeline

// Phong shader consumed by the scene. Same vertex attributes as raylib meshes
// (vertexPosition, vertexTexCoord, vertexNormal); everything else is published
// through the Pipeline by name.
const (
	phongVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = model * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(transpose(inverse(model))) * vertexNormal;
  gl_Position = projection * view * worldPos;
}
`
	phongFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
out vec4 finalColor;

struct Material {
  vec3 diffuseColor;
  vec3 specularColor;
  float shininess;
};

struct DirectionalLight {
  vec3 direction;
  vec3 ambient;
  vec3 diffuse;
  vec3 specular;
  bool bActive;
};

struct SpotLight {
  vec3 position;
  vec3 direction;
  float cutOff;
  float outerCutOff;
  float constant;
  float linear;
  float quadratic;
  vec3 ambient;
  vec3 diffuse;
  vec3 specular;
  bool bActive;
};

struct PointLight {
  vec3 position;
  float constant;
  float linear;
  float quadratic;
  vec3 ambient;
  vec3 diffuse;
  vec3 specular;
  bool bActive;
};

#define NR_POINT_LIGHTS 2

uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform SpotLight spotLight;
uniform PointLight pointLights[NR_POINT_LIGHTS];

vec3 calcDirectionalLight(DirectionalLight light, vec3 normal, vec3 viewDir, vec3 base) {
  vec3 lightDir = normalize(-light.direction);
  float diff = max(dot(normal, lightDir), 0.0);
  vec3 reflectDir = reflect(-lightDir, normal);
  float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));
  vec3 ambient = light.ambient * base;
  vec3 diffuse = light.diffuse * diff * base * material.diffuseColor;
  vec3 specular = light.specular * spec * material.specularColor;
  return ambient + diffuse + specular;
}

vec3 calcPointLight(PointLight light, vec3 normal, vec3 viewDir, vec3 base) {
  vec3 lightDir = normalize(light.position - fragPosition);
  float diff = max(dot(normal, lightDir), 0.0);
  vec3 reflectDir = reflect(-lightDir, normal);
  float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));
  float distance = length(light.position - fragPosition);
  float attenuation = 1.0 / (light.constant + light.linear * distance + light.quadratic * (distance * distance));
  vec3 ambient = light.ambient * base * attenuation;
  vec3 diffuse = light.diffuse * diff * base * material.diffuseColor * attenuation;
  vec3 specular = light.specular * spec * material.specularColor * attenuation;
  return ambient + diffuse + specular;
}

vec3 calcSpotLight(SpotLight light, vec3 normal, vec3 viewDir, vec3 base) {
  vec3 lightDir = normalize(light.position - fragPosition);
  float diff = max(dot(normal, lightDir), 0.0);
  vec3 reflectDir = reflect(-lightDir, normal);
  float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));
  float distance = length(light.position - fragPosition);
  float attenuation = 1.0 / (light.constant + light.linear * distance + light.quadratic * (distance * distance));
  float theta = dot(lightDir, normalize(-light.direction));
  float epsilon = light.cutOff - light.outerCutOff;
  float intensity = clamp((theta - light.outerCutOff) / epsilon, 0.0, 1.0);
  vec3 ambient = light.ambient * base * attenuation * intensity;
  vec3 diffuse = light.diffuse * diff * base * material.diffuseColor * attenuation * intensity;
  vec3 specular = light.specular * spec * material.specularColor * attenuation * intensity;
  return ambient + diffuse + specular;
}

void main() {
  vec4 base;
  if (bUseTexture) {
    base = texture(objectTexture, fragTexCoord * UVscale);
  } else {
    base = objectColor;
  }
  if (!bUseLighting) {
    finalColor = base;
    return;
  }
  vec3 normal = normalize(fragNormal);
  vec3 viewDir = normalize(viewPosition - fragPosition);
  vec3 result = vec3(0.0);
  if (directionalLight.bActive) {
    result += calcDirectionalLight(directionalLight, normal, viewDir, base.rgb);
  }
  for (int i = 0; i < NR_POINT_LIGHTS; i++) {
    if (pointLights[i].bActive) {
      result += calcPointLight(pointLights[i], normal, viewDir, base.rgb);
    }
  }
  if (spotLight.bActive) {
    result += calcSpotLight(spotLight, normal, viewDir, base.rgb);
  }
  finalColor = vec4(result, base.a);
}
`
)
