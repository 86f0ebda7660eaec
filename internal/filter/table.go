package filter

// Table reproduces original_source/include/filters.h's
// OPT_TO_REQUEST_SIMPLE_FILTERS/OPT_TO_REQUEST_COMPLEX_FILTERS macro lists
// verbatim: point filters first, then convolution filters, in declaration
// order. ID's iota ordering above must track this slice's order exactly —
// that ordering is a wire contract shared by every client and server
// build (SUPPLEMENTED FEATURES item 5).
var Table = []Entry{
	{Identity, "identity", "id", "identity", "Apply no filter to the image", KindPoint, identityFilter},
	{BlackAndWhite, "blackAndWhite", "bw", "blackAndWhite", "Apply a black and white filter to the image", KindPoint, blackAndWhiteFilter},
	{Red, "red", "r", "red", "Keep only red channel", KindPoint, redFilter},
	{Green, "green", "g", "green", "Keep only green channel", KindPoint, greenFilter},
	{Blue, "blue", "b", "blue", "Keep only blue channel", KindPoint, blueFilter},
	{Cyan, "cyan", "c", "cyan", "Keep cyan (blue + green)", KindPoint, cyanFilter},
	{Magenta, "magenta", "m", "magenta", "Keep magenta (red + blue)", KindPoint, magentaFilter},
	{Yellow, "yellow", "y", "yellow", "Keep yellow (red + green)", KindPoint, yellowFilter},
	{Sepia, "sepia", "sep", "sepia", "Apply sepia tone effect", KindPoint, sepiaFilter},
	{Invert, "invert", "inv", "invert", "Invert all colors (negative)", KindPoint, invertFilter},

	{Blur, "blur", "bl", "blur", "Apply a box blur filter (3x3)", KindConvolution, convolutionFilter(boxBlurKernel)},
	{GaussianBlur, "gaussian_blur", "gb", "gaussian-blur", "Apply a gaussian blur filter (3x3)", KindConvolution, convolutionFilter(gaussianBlur3x3Kernel)},
	{GaussianBlur5x5, "gaussian_blur5x5", "gb5", "gaussian-blur-5x5", "Apply a strong gaussian blur (5x5)", KindConvolution, convolutionFilter(gaussianBlur5x5Kernel)},
	{Sharpen, "sharpen", "sh", "sharpen", "Apply a sharpen filter", KindConvolution, convolutionFilter(sharpenKernel)},
	{SharpenIntense, "sharpen_intense", "shi", "sharpen-intense", "Apply an intense sharpen filter", KindConvolution, convolutionFilter(sharpenIntenseKernel)},
	{EdgeDetect, "edge_detect", "ed", "edge-detect", "Apply edge detection", KindConvolution, convolutionFilter(edgeDetectKernel)},
	{SobelHorizontal, "sobel_h", "soh", "sobel-horizontal", "Apply Sobel horizontal edge detection", KindConvolution, convolutionFilter(sobelHorizontalKernel)},
	{SobelVertical, "sobel_v", "sov", "sobel-vertical", "Apply Sobel vertical edge detection", KindConvolution, convolutionFilter(sobelVerticalKernel)},
	{Laplacian, "laplacian", "lap", "laplacian", "Apply Laplacian edge detection", KindConvolution, convolutionFilter(laplacianKernel)},
	{Emboss, "emboss", "em", "emboss", "Apply an emboss effect", KindConvolution, convolutionFilter(embossKernel)},
	{EmbossIntense, "emboss_intense", "emi", "emboss-intense", "Apply an intense emboss effect", KindConvolution, convolutionFilter(embossIntenseKernel)},
	{MotionBlur, "motion_blur", "mb", "motion-blur", "Apply diagonal motion blur", KindConvolution, convolutionFilter(motionBlurKernel)},
	{MotionBlurHorizontal, "motion_blur_h", "mbh", "motion-blur-horizontal", "Apply horizontal motion blur", KindConvolution, convolutionFilter(motionBlurHorizontalKernel)},
	{MotionBlurVertical, "motion_blur_v", "mbv", "motion-blur-vertical", "Apply vertical motion blur", KindConvolution, convolutionFilter(motionBlurVerticalKernel)},
	{OilPainting, "oil_painting", "oil", "oil-painting", "Apply oil painting effect", KindConvolution, convolutionFilter(oilPaintingKernel)},
	{Crosshatch, "crosshatch", "ch", "crosshatch", "Apply crosshatch drawing effect", KindConvolution, convolutionFilter(crosshatchKernel)},
}

// ByID returns the catalogue entry for id, and false if id is out of
// range.
func ByID(id ID) (Entry, bool) {
	if id < 0 || int(id) >= len(Table) {
		return Entry{}, false
	}
	return Table[id], true
}

// ByFlag looks up an entry by either its short or long flag, without the
// leading dash(es) — matching original_source's process_options_to_request
// comparison against argv[3].
func ByFlag(flag string) (Entry, bool) {
	for _, e := range Table {
		if e.ShortFlag == flag || e.LongFlag == flag {
			return e, true
		}
	}
	return Entry{}, false
}

func init() {
	if len(Table) != int(numFilters) {
		panic("filter: Table length does not match ID enumeration")
	}
	for i, e := range Table {
		if e.ID != ID(i) {
			panic("filter: Table entry out of order with ID enumeration")
		}
	}
}
