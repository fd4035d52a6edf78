// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the CPU kernels' configuration types.
package cpu

import (
	internalcpu "github.com/born-ml/tapegrad/internal/backend/cpu"
)

// UpscaleMethod selects the interpolation used by 2D upscaling.
type UpscaleMethod = internalcpu.UpscaleMethod

// Tap is one weighted input position along an axis.
type Tap = internalcpu.Tap

// NearestNeighbor upscaling.
type NearestNeighbor = internalcpu.NearestNeighbor

// Bilinear upscaling with aligned corners.
type Bilinear = internalcpu.Bilinear

// Name returns the backend name.
func Name() string {
	return internalcpu.Name()
}
