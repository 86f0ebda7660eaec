package filter

// Matrix is a square convolution kernel, row-major, matching
// original_source/shared/bmp.c's convolution_matrix_t.
type Matrix struct {
	Weights []float64
	Size    int32 // 3, 5, or 7
}

// ApplyConvolution runs one generic convolution kernel over the row range
// in args, reading neighbor pixels from args.Reference and writing results
// into args.Image, following original_source's apply_convolution/
// generic_convolution_filter exactly: border-clamped sampling,
// weight-sum normalization skipped for non-positive sums (so zero-sum
// kernels like Sobel pass through unnormalized), per-channel clamp.
func ApplyConvolution(args ThreadArgs, k Matrix) {
	width := args.Image.DIBHeader.Width
	height := args.Height
	stride := args.Image.RowStride()
	half := k.Size / 2

	var weightSum float64
	for _, w := range k.Weights {
		weightSum += w
	}
	normalize := weightSum > 0

	for y := args.StartRow; y < args.EndRow; y++ {
		outRow := args.Image.Pixels[y*stride : y*stride+stride]
		for x := int32(0); x < width; x++ {
			var sumB, sumG, sumR float64
			for ky := -half; ky <= half; ky++ {
				for kx := -half; kx <= half; kx++ {
					px := clampCoord(x+kx, width)
					py := clampCoord(y+ky, height)
					refRow := args.Reference[py*stride : py*stride+stride]
					weight := k.Weights[(ky+half)*k.Size+(kx+half)]
					sumB += float64(refRow[px*3]) * weight
					sumG += float64(refRow[px*3+1]) * weight
					sumR += float64(refRow[px*3+2]) * weight
				}
			}
			if normalize {
				sumB /= weightSum
				sumG /= weightSum
				sumR /= weightSum
			}
			outRow[x*3] = clampByte(sumB)
			outRow[x*3+1] = clampByte(sumG)
			outRow[x*3+2] = clampByte(sumR)
		}
	}
}

func clampCoord(v, limit int32) int32 {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}

func convolutionFilter(k Matrix) Func {
	return func(args ThreadArgs) {
		ApplyConvolution(args, k)
	}
}

func matrix(size int32, weights ...float64) Matrix {
	return Matrix{Weights: weights, Size: size}
}
