package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/mkarlik/go-smallray/pkg/core"
	"github.com/mkarlik/go-smallray/pkg/lights"
	"github.com/mkarlik/go-smallray/pkg/material"
)

// Scene interface to avoid circular imports
type Scene interface {
	Intersect(ray core.Ray) (core.Isect, bool)
	Occluded(point, dir core.Vec3, tMax float64) bool
	GetMaterial(matID int) *material.Material
	GetLight(lightID int) lights.Light
	GetLightCount() int
	GetBackgroundLight() *lights.BackgroundLight
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	NumWorkers      int // Parallel row workers, 0 means NumCPU
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 16,
	}
}

// Raytracer renders a direct-lighting preview of a scene. It only exercises
// the scene's query surface (Intersect, Occluded, accessors); full transport
// belongs to an integrator, not here.
type Raytracer struct {
	scene  Scene
	camera *Camera
	width  int
	height int
	config SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, camera *Camera, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: camera,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// RenderPass renders the full frame, parallelizing across rows
func (rt *Raytracer) RenderPass() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, rt.height)
	for y := 0; y < rt.height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for y := range rows {
				// Per-row seed keeps output deterministic regardless of scheduling
				sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(y) + 1)))
				rt.renderRow(img, y, sampler)
			}
		}(w)
	}
	wg.Wait()

	return img
}

// renderRow renders a single row of pixels
func (rt *Raytracer) renderRow(img *image.RGBA, y int, sampler core.Sampler) {
	spp := rt.config.SamplesPerPixel
	if spp <= 0 {
		spp = 1
	}

	for x := 0; x < rt.width; x++ {
		accum := core.Vec3{}
		for s := 0; s < spp; s++ {
			jitter := sampler.Get2D()
			ray := rt.camera.GenerateRay(float64(x)+jitter.X, float64(y)+jitter.Y)
			accum = accum.Add(rt.traceRay(ray, sampler))
		}
		img.Set(x, y, toRGBA(accum.Multiply(1.0/float64(spp))))
	}
}

// traceRay evaluates a single primary ray: emitted radiance for emitter hits,
// one sampled light plus a sky term otherwise, background on a miss
func (rt *Raytracer) traceRay(ray core.Ray, sampler core.Sampler) core.Vec3 {
	isect, hit := rt.scene.Intersect(ray)
	if !hit {
		if background := rt.scene.GetBackgroundLight(); background != nil {
			return background.GetRadiance(ray.Direction)
		}
		return core.Vec3{}
	}

	// The surface is a registered emitter: report its radiance directly
	if isect.LightID >= 0 {
		return rt.scene.GetLight(isect.LightID).GetRadiance(ray.Direction)
	}

	hitPoint := ray.At(isect.Dist)
	normal := isect.Normal
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}
	mat := rt.scene.GetMaterial(isect.MatID)

	// Direct lighting: pick one light uniformly and weight by the count.
	// The float-derived index may land on count itself; GetLight clamps it.
	result := core.Vec3{}
	if count := rt.scene.GetLightCount(); count > 0 {
		light := rt.scene.GetLight(int(sampler.Get1D() * float64(count)))
		// The background is covered by the sky term below
		if light.Type() != lights.LightTypeBackground {
			if sample, ok := light.Illuminate(hitPoint, sampler.Get2D()); ok && sample.PDF > 0 {
				cosTheta := normal.Dot(sample.Direction)
				if cosTheta > 0 && !rt.scene.Occluded(hitPoint, sample.Direction, sample.Distance) {
					result = sample.Radiance.
						MultiplyVec(mat.DiffuseReflectance).
						Multiply(float64(count) * cosTheta / (math.Pi * sample.PDF))
				}
			}
		}
	}

	// Sky term: one cosine-weighted sample toward the background. With a
	// cosine/pi density the cosine and the diffuse 1/pi cancel.
	if background := rt.scene.GetBackgroundLight(); background != nil {
		skyDir := core.SampleCosineHemisphere(normal, sampler.Get2D())
		if !rt.scene.Occluded(hitPoint, skyDir, core.MaxDist) {
			result = result.Add(background.GetRadiance(skyDir).MultiplyVec(mat.DiffuseReflectance))
		}
	}

	return result
}

// toRGBA tone-maps a linear radiance value into an 8-bit display color,
// compressing by luminance so bright pixels keep their hue
func toRGBA(c core.Vec3) color.RGBA {
	mapped := c.Multiply(1.0 / (1.0 + c.Luminance())).Clamp(0, 1).GammaCorrect(2.2)
	return color.RGBA{
		R: uint8(mapped.X * 255.999),
		G: uint8(mapped.Y * 255.999),
		B: uint8(mapped.Z * 255.999),
		A: 255,
	}
}
