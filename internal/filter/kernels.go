package filter

// Standard kernel matrices for the filters original_source's build-
// filtered-out filters.c would have defined (see SPEC_FULL.md's Filter
// engine note): that file isn't present in original_source/, so these
// use the conventional image-processing kernels for each named effect.
// Box blur is the one kernel with source: original_source/shared/bmp.c's
// blurbox_filter.

var boxBlurKernel = matrix(3,
	1, 1, 1,
	1, 1, 1,
	1, 1, 1,
)

var gaussianBlur3x3Kernel = matrix(3,
	1, 2, 1,
	2, 4, 2,
	1, 2, 1,
)

var gaussianBlur5x5Kernel = matrix(5,
	1, 4, 6, 4, 1,
	4, 16, 24, 16, 4,
	6, 24, 36, 24, 6,
	4, 16, 24, 16, 4,
	1, 4, 6, 4, 1,
)

var sharpenKernel = matrix(3,
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
)

var sharpenIntenseKernel = matrix(3,
	-1, -1, -1,
	-1, 9, -1,
	-1, -1, -1,
)

var edgeDetectKernel = matrix(3,
	-1, -1, -1,
	-1, 8, -1,
	-1, -1, -1,
)

var sobelHorizontalKernel = matrix(3,
	-1, 0, 1,
	-2, 0, 2,
	-1, 0, 1,
)

var sobelVerticalKernel = matrix(3,
	-1, -2, -1,
	0, 0, 0,
	1, 2, 1,
)

var laplacianKernel = matrix(3,
	0, 1, 0,
	1, -4, 1,
	0, 1, 0,
)

var embossKernel = matrix(3,
	-2, -1, 0,
	-1, 1, 1,
	0, 1, 2,
)

var embossIntenseKernel = matrix(3,
	-4, -2, 0,
	-2, 1, 2,
	0, 2, 4,
)

var motionBlurKernel = matrix(5,
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
	0, 0, 0, 0, 1,
)

var motionBlurHorizontalKernel = matrix(5,
	0, 0, 0, 0, 0,
	0, 0, 0, 0, 0,
	1, 1, 1, 1, 1,
	0, 0, 0, 0, 0,
	0, 0, 0, 0, 0,
)

var motionBlurVerticalKernel = matrix(5,
	0, 0, 1, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 1, 0, 0,
)

// Oil painting and crosshatch have no standard literal convolution-matrix
// form (the former is a mode filter over a neighborhood, the latter a
// directional line-drawing effect); both are approximated here as
// convolutions so they fit the engine's single ApplyConvolution kernel,
// per SPEC_FULL.md's Filter engine note. Oil painting approximates the
// smoothing/posterizing effect with a wide unweighted box average;
// crosshatch approximates the crossed-diagonal hatching look with a
// diagonal-emphasis kernel.
var oilPaintingKernel = matrix(5,
	1, 1, 1, 1, 1,
	1, 1, 1, 1, 1,
	1, 1, 1, 1, 1,
	1, 1, 1, 1, 1,
	1, 1, 1, 1, 1,
)

var crosshatchKernel = matrix(5,
	2, 0, 0, 0, 2,
	0, 2, 0, 2, 0,
	0, 0, 1, 0, 0,
	0, 2, 0, 2, 0,
	2, 0, 0, 0, 2,
)
