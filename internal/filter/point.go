package filter

// Point filters operate on each pixel independently, reading and writing
// the mutable image directly; no reference image is used. All share the
// same row/stride walk as original_source/shared/bmp.c's
// blackAndWhite_filter.

func forEachPixel(args ThreadArgs, fn func(row []byte, x int32)) {
	width := args.Image.DIBHeader.Width
	stride := args.Image.RowStride()
	pixels := args.Image.Pixels
	for y := args.StartRow; y < args.EndRow; y++ {
		row := pixels[y*stride : y*stride+stride]
		for x := int32(0); x < width; x++ {
			fn(row, x)
		}
	}
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func identityFilter(args ThreadArgs) {}

func blackAndWhiteFilter(args ThreadArgs) {
	forEachPixel(args, func(row []byte, x int32) {
		b, g, r := row[x*3], row[x*3+1], row[x*3+2]
		gray := clampByte(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
		row[x*3], row[x*3+1], row[x*3+2] = gray, gray, gray
	})
}

func redFilter(args ThreadArgs) {
	forEachPixel(args, func(row []byte, x int32) {
		row[x*3], row[x*3+1] = 0, 0
	})
}

func greenFilter(args ThreadArgs) {
	forEachPixel(args, func(row []byte, x int32) {
		row[x*3], row[x*3+2] = 0, 0
	})
}

func blueFilter(args ThreadArgs) {
	forEachPixel(args, func(row []byte, x int32) {
		row[x*3+1], row[x*3+2] = 0, 0
	})
}

func cyanFilter(args ThreadArgs) {
	forEachPixel(args, func(row []byte, x int32) {
		row[x*3+2] = 0
	})
}

func magentaFilter(args ThreadArgs) {
	forEachPixel(args, func(row []byte, x int32) {
		row[x*3+1] = 0
	})
}

func yellowFilter(args ThreadArgs) {
	forEachPixel(args, func(row []byte, x int32) {
		row[x*3] = 0
	})
}

func sepiaFilter(args ThreadArgs) {
	forEachPixel(args, func(row []byte, x int32) {
		b, g, r := float64(row[x*3]), float64(row[x*3+1]), float64(row[x*3+2])
		row[x*3+2] = clampByte(0.393*r + 0.769*g + 0.189*b)
		row[x*3+1] = clampByte(0.349*r + 0.686*g + 0.168*b)
		row[x*3] = clampByte(0.272*r + 0.534*g + 0.131*b)
	})
}

func invertFilter(args ThreadArgs) {
	forEachPixel(args, func(row []byte, x int32) {
		row[x*3] = 255 - row[x*3]
		row[x*3+1] = 255 - row[x*3+1]
		row[x*3+2] = 255 - row[x*3+2]
	})
}
