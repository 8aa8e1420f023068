package server

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	UV           [2]float64             `json:"uv"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// handleInspect reports what the ray through the center of pixel (x, y)
// hits first. Row 0 is the top of the image.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	params, err := parseSceneParams(values)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, height, err := s.build(params)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	x, err := parseIntParam(values, "x", params.Width/2, 0, params.Width-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parseIntParam(values, "y", height/2, 0, height-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, params.Width, height, x, y))
}

// inspectPixel casts a single ray through the pixel center. The lens and
// shutter jitter are drawn from a fixed seed so repeated requests agree.
func inspectPixel(sceneObj *scene.Scene, width, height, x, y int) InspectResponse {
	random := rand.New(rand.NewSource(0))
	s := (float64(x) + 0.5) / float64(width)
	t := (float64(height-1-y) + 0.5) / float64(height)
	ray := sceneObj.Camera.GetRay(s, t, random)

	hit, ok := sceneObj.World.Hit(ray, 0.001, math.Inf(1), random)
	if !ok {
		return InspectResponse{Hit: false}
	}

	materialType, properties := extractMaterialInfo(hit.Material, hit)
	return InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		UV:           [2]float64{hit.U, hit.V},
		Distance:     hit.T * ray.Direction.Length(),
		FrontFace:    ray.Direction.Dot(hit.Normal) < 0,
		Properties:   properties,
	}
}

// extractMaterialInfo describes a material, sampling textures at the hit
func extractMaterialInfo(mat material.Material, hit *material.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		addTextureInfo(properties, "albedo", m.Albedo, hit)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff"
		return "dielectric", properties

	case *material.DiffuseLight:
		addTextureInfo(properties, "emission", m.Emit, hit)
		return "diffuse_light", properties

	case *material.Isotropic:
		addTextureInfo(properties, "albedo", m.Albedo, hit)
		return "isotropic", properties

	default:
		return "unknown", properties
	}
}

func addTextureInfo(properties map[string]interface{}, key string, texture material.Texture, hit *material.HitRecord) {
	c := texture.Value(hit.U, hit.V, hit.Point)
	properties[key] = vecArray(c)
	properties["color"] = hexColor(c)
	properties["texture"] = textureName(texture)
}

func textureName(texture material.Texture) string {
	switch texture.(type) {
	case *material.SolidColor:
		return "solid"
	case *material.CheckerTexture:
		return "checker"
	case *material.NoiseTexture:
		return "noise"
	case *material.ImageTexture:
		return "image"
	default:
		return fmt.Sprintf("%T", texture)
	}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// hexColor formats a color as #rrggbb, clamping emitters brighter than 1
func hexColor(c core.Color) string {
	channel := func(v float64) int {
		return int(math.Min(math.Max(v, 0), 1) * 255)
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(c.X), channel(c.Y), channel(c.Z))
}
