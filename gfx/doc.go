// Package gfx provides the small software rendering core of the orrery.
//
// It is intended for a single fixed scene: a packed-RGB framebuffer, a
// Bresenham line rasterizer, and a yaw/pitch camera with a hand-rolled
// perspective projection. It is not a general 3D renderer: there is no
// clipping and no lighting.
//
// Pipeline (fixed):
//
//	World point → Camera.WorldToScreen → Framebuffer.PointColor / DrawLine → Pixels.
//
// Colors are packed 24-bit RGB values (0xRRGGBB) throughout. Depth values are
// forward projections along the camera's view axis; they are only compared
// when depth testing is enabled on the framebuffer.
package gfx
