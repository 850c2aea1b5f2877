// Package gfx is a small software 3D renderer with a scene-graph API.
//
// It draws scenes made of meshes and directional lights, seen through a
// perspective camera, into an RGBA canvas. The canvas is a host node: hosts
// mount it into a container element and present its image.
//
// Pipeline (fixed):
//
//	Scene → World transform → View/Projection → Culling → Flat Phong shading → Rasterization.
//
// The renderer does not own a frame timer. SetAnimationLoop registers the
// per-frame callback with the FrameSource passed in RendererOptions.
package gfx
