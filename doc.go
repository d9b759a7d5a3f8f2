// Package sparks is an ambient text effect for [Ebitengine].
//
// Each scene's phrases are rasterized once on a small offscreen layer and
// sampled into a point cloud (a [Mask]). A [Timeline] fades the scenes in and
// out in a loop while a [ParticleSystem] launches glyphs from beyond the
// screen edge toward the center. Everything is drawn with additive blending
// so overlapping glyphs glow.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and frame
// loop for you:
//
//	cfg, err := sparks.LoadConfig("scenes.yaml")
//	// ...
//	engine, err := sparks.NewEngine(cfg.Scenes(sparks.DefaultTPS), sparks.Options{
//		Width: 1280, Height: 720,
//	})
//	// ...
//	err = sparks.Run(ctx, engine, sparks.RunConfig{Title: "sparks"})
//
// For headless use, render frames onto an [ImageSurface]:
//
//	surface := sparks.NewImageSurface(1280, 720)
//	for range 120 {
//		engine.Frame(surface)
//	}
//	png.Encode(w, surface.Image())
//
// # Frame order
//
// [Engine.Frame] always runs the same steps: advance the tick counter and the
// timeline, spawn particles against the active mask, clear the surface, draw
// the mask and the particles additively, restore normal blending, then step
// and retire particles.
//
// [Ebitengine]: https://ebitengine.org
package sparks
