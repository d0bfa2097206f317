package chromakey

// shrinkExpand grows (steps > 0) or contracts (steps < 0) the opaque region
// of the matte by replacing each sample with the max or min of its 3x3
// neighborhood, |steps| times. Neighbors outside the frame are excluded from
// the neighborhood rather than treated as zero.
//
// Each iteration reads from a full-frame snapshot and writes to a separate
// target, so a pass never observes its own writes.
func shrinkExpand(matte []uint8, width, height, steps int) []uint8 {
	if steps == 0 || len(matte) == 0 {
		return matte
	}
	expand := steps > 0
	iters := steps
	if iters < 0 {
		iters = -iters
	}

	src := matte
	dst := make([]uint8, len(matte))
	for it := 0; it < iters; it++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := src[y*width+x]
				for dy := -1; dy <= 1; dy++ {
					ny := y + dy
					if ny < 0 || ny >= height {
						continue
					}
					for dx := -1; dx <= 1; dx++ {
						nx := x + dx
						if nx < 0 || nx >= width {
							continue
						}
						s := src[ny*width+nx]
						if expand {
							if s > v {
								v = s
							}
						} else if s < v {
							v = s
						}
					}
				}
				dst[y*width+x] = v
			}
		}
		src, dst = dst, src
	}
	// src holds the last-written buffer; fold it back into the caller's
	// slice so the matte identity is preserved.
	if &src[0] != &matte[0] {
		copy(matte, src)
	}
	return matte
}

// feather softens matte edges with `radius` passes of a 3x3 box blur. The
// mean is taken over in-bounds neighbors only, so border pixels are not
// darkened by phantom zero samples.
func feather(matte []uint8, width, height, radius int) []uint8 {
	if radius <= 0 {
		return matte
	}
	src := make([]uint8, len(matte))
	for pass := 0; pass < radius; pass++ {
		copy(src, matte)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				sum, count := 0, 0
				for dy := -1; dy <= 1; dy++ {
					ny := y + dy
					if ny < 0 || ny >= height {
						continue
					}
					for dx := -1; dx <= 1; dx++ {
						nx := x + dx
						if nx < 0 || nx >= width {
							continue
						}
						sum += int(src[ny*width+nx])
						count++
					}
				}
				matte[y*width+x] = uint8((sum + count/2) / count)
			}
		}
	}
	return matte
}
